// Package reshape 把上游按品种返回的原始行重排成固定的 8 行指标 × 5 列板块表。
package reshape

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"marketDaily/internal/model"
)

// metric 一行指标：展示名与上游字段名。
type metric struct {
	name  string
	field string
}

// 8 行指标，声明顺序即输出行顺序
var metrics = []metric{
	{"挂牌数", "LIST_NUM"},
	{"市价总值", "TOTAL_VALUE"},
	{"流通市值", "NEGO_VALUE"},
	{"成交金额", "TRADE_AMT"},
	{"成交量", "TRADE_VOL"},
	{"平均市盈率", "AVG_PE_RATE"},
	{"换手率", "TOTAL_TO_RATE"},
	{"流通换手率", "NEGO_TO_RATE"},
}

// PRODUCT_CODE 到板块列名的映射，表外的代码直接丢弃（容忍上游夹带未知品种）
var segmentNames = map[string]string{
	"17": "股票",
	"01": "主板A",
	"02": "主板B",
	"03": "科创板",
	"11": "股票回购",
}

// Records 把校验过的原始行重排为固定表。
// 空输入返回空表（非交易日）；非空输入固定产出 8 行，缺哪个板块哪列为 null。
// 同一板块出现多次时后出现的覆盖先出现的。
func Records(items []gjson.Result) []model.DealDailyRow {
	rows := make([]model.DealDailyRow, 0, len(metrics))
	if len(items) == 0 {
		return rows
	}
	bySegment := make(map[string]gjson.Result, len(items))
	for _, it := range items {
		code := strings.TrimSpace(it.Get("PRODUCT_CODE").String())
		name, ok := segmentNames[code]
		if !ok {
			continue
		}
		bySegment[name] = it
	}
	for _, m := range metrics {
		rows = append(rows, model.DealDailyRow{
			Metric:  m.name,
			Stock:   cell(bySegment, "股票", m.field),
			MainA:   cell(bySegment, "主板A", m.field),
			MainB:   cell(bySegment, "主板B", m.field),
			Star:    cell(bySegment, "科创板", m.field),
			Buyback: cell(bySegment, "股票回购", m.field),
		})
	}
	return rows
}

func cell(bySegment map[string]gjson.Result, segment, field string) *float64 {
	it, ok := bySegment[segment]
	if !ok {
		return nil
	}
	return parseCell(it.Get(field))
}

// parseCell 宽松取数：数字直接用；字符串去空白后按 float 解析，
// ""/"-"/"--"/"null"/"None" 与解析失败的值一律按缺失处理，单格坏数据不报错。
func parseCell(v gjson.Result) *float64 {
	switch v.Type {
	case gjson.Number:
		f := v.Float()
		return &f
	case gjson.String:
		s := strings.TrimSpace(v.String())
		switch s {
		case "", "-", "--", "null", "None":
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}
