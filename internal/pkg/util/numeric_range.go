package util

import (
	"strconv"
	"strings"
)

// NumericRange 闭区间数值过滤。Min/Max 为 nil 表示该侧无界。
type NumericRange struct {
	Min *int
	Max *int
}

// ParseNumericRange 解析 "min,max" 形式的区间参数。
// 非数字的一侧视为无界；整体不是两段时视为无过滤。
func ParseNumericRange(s string) NumericRange {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return NumericRange{}
	}
	var r NumericRange
	if v, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
		r.Min = &v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
		r.Max = &v
	}
	return r
}

// Empty 两侧均无界
func (r NumericRange) Empty() bool {
	return r.Min == nil && r.Max == nil
}

// Contains 判断 v 是否落在区间内，边界包含
func (r NumericRange) Contains(v int) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}
