package repository

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/util"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// CommitGroupQuery 提交者分组查询条件
type CommitGroupQuery struct {
	Since           *time.Time
	CommitterFilter string            // 提交者名子串过滤，忽略大小写
	CountRange      util.NumericRange // 分组计数的 HAVING 区间
	SortByCommitter bool
	Desc            bool
	Skip            int
	Take            int // <0 表示不限制，==0 是合法的空页
}

type CommitRepo interface {
	CountByCommitter(ctx context.Context, q *CommitGroupQuery) ([]CommitterCount, error)
	CountInWindow(ctx context.Context, since *time.Time) (int64, error)
}

type commitRepoImpl struct {
	db *gorm.DB
}

func NewCommitRepo(db *gorm.DB) CommitRepo {
	return &commitRepoImpl{db: db}
}

func (s *commitRepoImpl) CountByCommitter(ctx context.Context, q *CommitGroupQuery) ([]CommitterCount, error) {
	rows := make([]CommitterCount, 0)

	tx := s.db.WithContext(ctx).Model(&model.Commit{}).
		Select("committer, COUNT(*) AS count").
		Group("committer")

	if q.Since != nil {
		tx = tx.Where("timestamp >= ?", *q.Since)
	}
	if q.CommitterFilter != "" {
		tx = tx.Where("LOWER(committer) LIKE ?", "%"+strings.ToLower(q.CommitterFilter)+"%")
	}
	if q.CountRange.Min != nil {
		tx = tx.Having("COUNT(*) >= ?", *q.CountRange.Min)
	}
	if q.CountRange.Max != nil {
		tx = tx.Having("COUNT(*) <= ?", *q.CountRange.Max)
	}

	// 默认按计数倒序，提交者排序为字典序
	order := "count DESC"
	switch {
	case q.SortByCommitter && q.Desc:
		order = "committer DESC"
	case q.SortByCommitter:
		order = "committer ASC"
	case !q.Desc && !q.SortByCommitter:
		order = "count ASC"
	}

	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}
	if q.Take >= 0 {
		tx = tx.Limit(q.Take)
	}

	if err := tx.Order(order).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *commitRepoImpl) CountInWindow(ctx context.Context, since *time.Time) (int64, error) {
	var total int64
	tx := s.db.WithContext(ctx).Model(&model.Commit{})
	if since != nil {
		tx = tx.Where("timestamp >= ?", *since)
	}
	err := tx.Count(&total).Error
	return total, err
}
