// Package model 定义成交概况快照的行结构与落盘文档。
package model

// DealDailyRow 固定列的一行：指标名 + 五个板块的取值。
// 字段声明顺序即输出 JSON 的键顺序；缺失的格子为 nil，序列化为 null。
type DealDailyRow struct {
	Metric  string   `json:"单日情况"`
	Stock   *float64 `json:"股票"`
	MainA   *float64 `json:"主板A"`
	MainB   *float64 `json:"主板B"`
	Star    *float64 `json:"科创板"`
	Buyback *float64 `json:"股票回购"`
}

// Snapshot 单次运行的落盘文档：{date, data}。
type Snapshot struct {
	Date string         `json:"date"`
	Data []DealDailyRow `json:"data"`
}
