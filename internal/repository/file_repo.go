package repository

import (
	"Pulse/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type FileRepo interface {
	CountByUser(ctx context.Context, since *time.Time, opts *GroupOpts) ([]UserCount, error)
	CountGroups(ctx context.Context, since *time.Time) (int64, error)
}

type fileRepoImpl struct {
	db *gorm.DB
}

func NewFileRepo(db *gorm.DB) FileRepo {
	return &fileRepoImpl{db: db}
}

func (s *fileRepoImpl) CountByUser(ctx context.Context, since *time.Time, opts *GroupOpts) ([]UserCount, error) {
	return groupCountByUser(s.eventWindow(ctx, since), opts)
}

func (s *fileRepoImpl) CountGroups(ctx context.Context, since *time.Time) (int64, error) {
	return countDistinctUsers(s.eventWindow(ctx, since))
}

func (s *fileRepoImpl) eventWindow(ctx context.Context, since *time.Time) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.File{})
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	return q
}
