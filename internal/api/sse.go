// Package api 封装上交所 commonQuery 数据接口：单次 GET、固定请求头，
// 用 gjson 校验响应结构。按设计不做重试，任何失败都直接向上抛。
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"marketDaily/internal/trace"
)

// 上交所每日成交概况查询
const (
	DealDailyURL   = "http://query.sse.com.cn/commonQuery.do"
	sqlIDDealDaily = "COMMON_SSE_SJ_GPSJ_CJGK_MRGK_C"
	productCodes   = "01,02,03,11,17" // 主板A、主板B、科创板、股票回购、股票合计
	queryType      = "inParams"
)

// 请求超时（整次请求的硬上限，无重试）
const defaultHTTPTimeout = 20 * time.Second

// 请求头（上交所接口校验 Referer，缺了返回空壳页面）
const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer        = "http://www.sse.com.cn/"
	acceptHeader   = "application/json, text/javascript, */*; q=0.01"
	acceptLanguage = "zh-CN,zh;q=0.9,en;q=0.8"
)

type Client struct {
	HTTPClient *http.Client
	BaseURL    string // 测试时可指到 httptest.Server
}

func NewClient() *Client {
	return &Client{HTTPClient: &http.Client{Timeout: defaultHTTPTimeout}, BaseURL: DealDailyURL}
}

// GetDealDaily 拉取 apiDate（YYYYMMDD）当日的成交概况原始行。
// 非交易日上游返回空 result，此时返回空切片而非错误；结构不符时报错并
// 指出实际的键/类型，便于区分“上游改了格式”与网络故障。
func (c *Client) GetDealDaily(ctx context.Context, apiDate string) ([]gjson.Result, error) {
	if c == nil {
		return nil, fmt.Errorf("api client is nil")
	}
	if len(apiDate) != 8 {
		return nil, fmt.Errorf("api: apiDate 必须是 YYYYMMDD，实际 %q", apiDate)
	}
	// 上游查询参数要连字符形式
	u := c.queryURL(apiDate[:4] + "-" + apiDate[4:6] + "-" + apiDate[6:])
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	trace.Log(ctx, "api: req GET %s", u)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	trace.Log(ctx, "api: resp status=%d len=%d", resp.StatusCode, len(body))
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}
	return parseDealDaily(body)
}

func (c *Client) queryURL(searchDate string) string {
	q := url.Values{}
	q.Set("sqlId", sqlIDDealDaily)
	q.Set("PRODUCT_CODE", productCodes)
	q.Set("type", queryType)
	q.Set("SEARCH_DATE", searchDate)
	base := c.BaseURL
	if base == "" {
		base = DealDailyURL
	}
	return base + "?" + q.Encode()
}

// parseDealDaily 校验响应信封：根必须是对象且带 result 数组，元素必须是对象。
func parseDealDaily(body []byte) ([]gjson.Result, error) {
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("api: 响应不是 JSON 对象，实际为 %s", typeName(root))
	}
	result := root.Get("result")
	if !result.Exists() {
		return nil, fmt.Errorf("api: 响应缺少 result 键，实际键为 %v", topKeys(root))
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("api: result 不是数组，实际为 %s", typeName(result))
	}
	items := result.Array()
	for i := range items {
		if !items[i].IsObject() {
			return nil, fmt.Errorf("api: result[%d] 不是对象，实际为 %s", i, typeName(items[i]))
		}
	}
	return items, nil
}

func topKeys(root gjson.Result) []string {
	keys := []string{}
	root.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

func typeName(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "array"
	case v.IsObject():
		return "object"
	}
	switch v.Type {
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	case gjson.True, gjson.False:
		return "bool"
	case gjson.Null:
		return "null"
	}
	return "unknown"
}
