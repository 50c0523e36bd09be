package dto

import "strings"

// ListQueryDTO 表格类接口通用查询参数。
// _start/_end 为零基记录区间，页大小 = _end - _start。
type ListQueryDTO struct {
	Start    *int   `form:"_start" binding:"omitempty,min=0"`
	End      *int   `form:"_end" binding:"omitempty,min=0"`
	Sort     string `form:"_sort"`
	Order    string `form:"_order" binding:"omitempty,oneof=asc desc ASC DESC"`
	Timespan string `form:"timespan" binding:"omitempty,oneof=1d 7d 14d 30d all"`
	UserName string `form:"userName"`
}

// Skip 偏移量
func (q *ListQueryDTO) Skip() int {
	if q.Start == nil {
		return 0
	}
	return *q.Start
}

// Take 页大小。未指定 _end 时为 -1（不限制）；
// 指定了 _end 时恒为非负，零宽或倒置区间得 0（空页）。
func (q *ListQueryDTO) Take() int {
	if q.End == nil {
		return -1
	}
	take := *q.End - q.Skip()
	if take < 0 {
		return 0
	}
	return take
}

// Desc 排序方向，未指定时取 defaultDesc
func (q *ListQueryDTO) Desc(defaultDesc bool) bool {
	if q.Order == "" {
		return defaultDesc
	}
	return strings.EqualFold(q.Order, "desc")
}

// HasNextPage 按过滤后的总行数判断是否还有下一页；不限制时恒为 false
func (q *ListQueryDTO) HasNextPage(total int) bool {
	take := q.Take()
	if take < 0 {
		return false
	}
	return q.Skip()+take < total
}

// TimelineQueryDTO 单用户每日时间线的查询参数
type TimelineQueryDTO struct {
	Timespan string `form:"timespan" binding:"omitempty,oneof=7d 14d 30d"`
}
