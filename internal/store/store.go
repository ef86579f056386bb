// Package store 负责快照落盘：按月份目录组织文件，JSON 两空格缩进、
// 非 ASCII 原样输出、末尾带换行。同目录旧文件一律保留。
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"marketDaily/internal/model"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultPath 计算默认输出路径 <baseDir>/YYYY-MM/YYYY-MM-DD.json。
func DefaultPath(baseDir, fileDate string) string {
	month := fileDate
	if len(fileDate) >= len("2006-01") {
		month = fileDate[:len("2006-01")]
	}
	return filepath.Join(baseDir, month, fileDate+".json")
}

// Save 把 {date, data} 写到 path，父目录不存在时自动创建，返回实际写入路径。
// 同样输入重复运行产出逐字节一致的文件；rows 为 nil 时 data 落为 []。
func Save(path, fileDate string, rows []model.DealDailyRow) (string, error) {
	if rows == nil {
		rows = []model.DealDailyRow{}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model.Snapshot{Date: fileDate, Data: rows}); err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
