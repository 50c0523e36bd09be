package repository

import (
	"Pulse/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type ReactionRepo interface {
	CountByUser(ctx context.Context, since *time.Time, opts *GroupOpts) ([]UserCount, error)
	CountGroups(ctx context.Context, since *time.Time) (int64, error)
	CountBetweenEpoch(ctx context.Context, fromTs, toTs string) (int64, error)
	ListEpochByUser(ctx context.Context, userID uint64, fromTs, toTs string) ([]string, error)
}

type reactionRepoImpl struct {
	db *gorm.DB
}

func NewReactionRepo(db *gorm.DB) ReactionRepo {
	return &reactionRepoImpl{db: db}
}

func (s *reactionRepoImpl) CountByUser(ctx context.Context, since *time.Time, opts *GroupOpts) ([]UserCount, error) {
	return groupCountByUser(s.eventWindow(ctx, since), opts)
}

func (s *reactionRepoImpl) CountGroups(ctx context.Context, since *time.Time) (int64, error) {
	return countDistinctUsers(s.eventWindow(ctx, since))
}

func (s *reactionRepoImpl) CountBetweenEpoch(ctx context.Context, fromTs, toTs string) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Where("event_ts >= ? AND event_ts < ?", fromTs, toTs).
		Count(&total).Error
	return total, err
}

func (s *reactionRepoImpl) ListEpochByUser(ctx context.Context, userID uint64, fromTs, toTs string) ([]string, error) {
	values := make([]string, 0)
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Where("user_id = ?", userID).
		Where("event_ts >= ? AND event_ts <= ?", fromTs, toTs).
		Pluck("event_ts", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *reactionRepoImpl) eventWindow(ctx context.Context, since *time.Time) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.Reaction{})
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	return q
}
