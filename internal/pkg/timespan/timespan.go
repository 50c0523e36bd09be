package timespan

import (
	"strconv"
	"strings"
	"time"
)

// 时间范围符号，由前端表格的 timespan 查询参数传入
const (
	Span1d  = "1d"
	Span7d  = "7d"
	Span14d = "14d"
	Span30d = "30d"
	SpanAll = "all"

	// Default 未传 timespan 时的默认值
	Default = Span7d
)

// Valid 校验 timespan 符号是否在闭集内
func Valid(token string) bool {
	switch token {
	case Span1d, Span7d, Span14d, Span30d, SpanAll:
		return true
	}
	return false
}

// Days 解析符号中的天数，"all" 返回 0
func Days(token string) int {
	if token == SpanAll {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(token, "d"))
	if err != nil {
		return 0
	}
	return n
}

// Cutoff 把 timespan 符号解析为窗口下界。
// "all" 与未传参均不设下界，返回 ok=false。
func Cutoff(token string, now time.Time) (time.Time, bool) {
	if token == "" || token == SpanAll {
		return time.Time{}, false
	}
	return now.Add(-time.Duration(Days(token)) * 24 * time.Hour), true
}

// CutoffEpoch 返回窗口下界的秒级时间戳字符串，
// 事件表的 event_ts/timestamp 列以该格式存储。
func CutoffEpoch(token string, now time.Time) (string, bool) {
	cutoff, ok := Cutoff(token, now)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(cutoff.Unix(), 10), true
}
