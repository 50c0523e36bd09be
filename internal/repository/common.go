package repository

import (
	"gorm.io/gorm"
)

// UserCount 按作者分组后的计数行
type UserCount struct {
	UserID uint64
	Count  int
}

// GroupOpts 分组结果的排序与分页，直接下推到 SQL
type GroupOpts struct {
	SortByUser bool // true 按 user_id 排序，否则按计数排序
	Desc       bool
	Skip       int
	Take       int // <0 表示不限制，==0 是合法的空页（LIMIT 0）
}

// CommitterCount 按提交者分组后的计数行
type CommitterCount struct {
	Committer *string
	Count     int
}

// groupCountByUser 在事件表上执行按作者分组计数，排序与分页下推到 SQL
func groupCountByUser(q *gorm.DB, opts *GroupOpts) ([]UserCount, error) {
	rows := make([]UserCount, 0)
	q = q.Select("user_id, COUNT(*) AS count").Group("user_id")

	order := "count DESC"
	if opts != nil {
		switch {
		case opts.SortByUser && opts.Desc:
			order = "user_id DESC"
		case opts.SortByUser:
			order = "user_id ASC"
		case opts.Desc:
			order = "count DESC"
		default:
			order = "count ASC"
		}
		if opts.Skip > 0 {
			q = q.Offset(opts.Skip)
		}
		if opts.Take >= 0 {
			q = q.Limit(opts.Take)
		}
	}

	if err := q.Order(order).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// countDistinctUsers 统计窗口内出现过的作者数
func countDistinctUsers(q *gorm.DB) (int64, error) {
	var total int64
	err := q.Distinct("user_id").Count(&total).Error
	return total, err
}
