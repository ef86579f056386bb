package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseDealDailyShape(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
		wantLen int
	}{
		{"空 result 合法", `{"result":[]}`, "", 0},
		{"正常两行", `{"result":[{"PRODUCT_CODE":"17"},{"PRODUCT_CODE":"01"}]}`, "", 2},
		{"缺 result 报出实际键", `{"jsonCallBack":"x","pageHelp":{}}`, "result", 0},
		{"result 非数组报出实际类型", `{"result":{"a":1}}`, "object", 0},
		{"result 元素非对象", `{"result":[{"PRODUCT_CODE":"17"},3]}`, "result[1]", 0},
		{"根不是对象", `[1,2,3]`, "array", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			items, err := parseDealDaily([]byte(c.body))
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("parseDealDaily: %v", err)
				}
				if len(items) != c.wantLen {
					t.Fatalf("len = %d, want %d", len(items), c.wantLen)
				}
				return
			}
			if err == nil {
				t.Fatalf("期望报错（含 %q），实际成功", c.wantErr)
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("err = %v, 应包含 %q", err, c.wantErr)
			}
		})
	}
}

func TestParseDealDailyMissingResultNamesKeys(t *testing.T) {
	_, err := parseDealDaily([]byte(`{"code":"0","data":[]}`))
	if err == nil {
		t.Fatal("期望报错")
	}
	for _, k := range []string{"code", "data"} {
		if !strings.Contains(err.Error(), k) {
			t.Errorf("err = %v, 应列出实际存在的键 %q", err, k)
		}
	}
}

func TestQueryURL(t *testing.T) {
	c := NewClient()
	u := c.queryURL("2024-01-05")
	for _, part := range []string{
		"query.sse.com.cn/commonQuery.do",
		"sqlId=COMMON_SSE_SJ_GPSJ_CJGK_MRGK_C",
		"PRODUCT_CODE=01%2C02%2C03%2C11%2C17",
		"type=inParams",
		"SEARCH_DATE=2024-01-05",
	} {
		if !strings.Contains(u, part) {
			t.Errorf("url = %s, 缺少 %s", u, part)
		}
	}
}

func TestGetDealDaily(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[{"PRODUCT_CODE":"17","LIST_NUM":"2000"}]}`))
	}))
	defer srv.Close()

	c := &Client{HTTPClient: srv.Client(), BaseURL: srv.URL}
	items, err := c.GetDealDaily(context.Background(), "20240105")
	if err != nil {
		t.Fatalf("GetDealDaily: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if got := items[0].Get("LIST_NUM").String(); got != "2000" {
		t.Errorf("LIST_NUM = %s, want 2000", got)
	}
	if gotReq.URL.Query().Get("SEARCH_DATE") != "2024-01-05" {
		t.Errorf("SEARCH_DATE = %s", gotReq.URL.Query().Get("SEARCH_DATE"))
	}
	if gotReq.Header.Get("X-Requested-With") != "XMLHttpRequest" {
		t.Errorf("缺少 XHR 标记头: %v", gotReq.Header)
	}
	if gotReq.Header.Get("Referer") != referer {
		t.Errorf("Referer = %s", gotReq.Header.Get("Referer"))
	}
}

func TestGetDealDailyHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	c := &Client{HTTPClient: srv.Client(), BaseURL: srv.URL}
	_, err := c.GetDealDaily(context.Background(), "20240105")
	if err == nil || !strings.Contains(err.Error(), "504") {
		t.Fatalf("err = %v, 应为 http 504", err)
	}
}

func TestGetDealDailyBadAPIDate(t *testing.T) {
	c := NewClient()
	if _, err := c.GetDealDaily(context.Background(), "2024-01-05"); err == nil {
		t.Fatal("非 8 位日期应直接报错，不发请求")
	}
}
