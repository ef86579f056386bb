// Package dateutil 把用户输入的日期归一成两种表示：接口查询用的 YYYYMMDD
// 与落盘文件名用的 YYYY-MM-DD。只做格式校验，不做日历校验。
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// 文件名日期的 time.Format 布局
const fileDateLayout = "2006-01-02"

// ErrBadDate 日期格式不合法（既不是 8 位数字也不是 4-2-2 的连字符形式）。
var ErrBadDate = errors.New("date 必须是 YYYYMMDD 或 YYYY-MM-DD")

// DateSpec 同一天的两种表示。不变式：两个字段描述同一个日历日，
// APIDate 即 FileDate 去掉连字符。
type DateSpec struct {
	APIDate  string // YYYYMMDD，上游查询参数用
	FileDate string // YYYY-MM-DD，输出文件名用
}

// Normalize 解析可选的日期输入；空串取本地当天。
// 注意只校验字符形态，13 月、32 日这类越界值原样放行，由上游决定有无数据。
func Normalize(value string) (DateSpec, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		fd := time.Now().Format(fileDateLayout)
		return DateSpec{APIDate: strings.ReplaceAll(fd, "-", ""), FileDate: fd}, nil
	}
	if strings.Contains(value, "-") {
		parts := strings.Split(value, "-")
		if len(parts) != 3 {
			return DateSpec{}, ErrBadDate
		}
		y, m, d := parts[0], parts[1], parts[2]
		if len(y) != 4 || len(m) != 2 || len(d) != 2 ||
			!allDigits(y) || !allDigits(m) || !allDigits(d) {
			return DateSpec{}, ErrBadDate
		}
		return DateSpec{APIDate: y + m + d, FileDate: y + "-" + m + "-" + d}, nil
	}
	if len(value) == 8 && allDigits(value) {
		return DateSpec{
			APIDate:  value,
			FileDate: value[:4] + "-" + value[4:6] + "-" + value[6:8],
		}, nil
	}
	return DateSpec{}, ErrBadDate
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
