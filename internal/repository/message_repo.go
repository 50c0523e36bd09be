package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type MessageRepo interface {
	List(ctx context.Context, orderBy string, desc bool, skip, take int) ([]*model.Message, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Message, error)
	Create(ctx context.Context, message *model.Message) error
	Update(ctx context.Context, message *model.Message) error
	Delete(ctx context.Context, id uint64) error

	CountByUser(ctx context.Context, since *time.Time, opts *GroupOpts) ([]UserCount, error)
	CountGroups(ctx context.Context, since *time.Time) (int64, error)
	CountBetweenEpoch(ctx context.Context, fromTs, toTs string) (int64, error)
	ListEpochByUser(ctx context.Context, userID uint64, fromTs, toTs string) ([]string, error)

	CountMatchingByUser(ctx context.Context, keyword string, since time.Time) ([]UserCount, error)
	ListMatchingByUser(ctx context.Context, userID uint64, keyword string, since time.Time) ([]*model.Message, error)
}

type messageRepoImpl struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepoImpl{db: db}
}

func (s *messageRepoImpl) List(ctx context.Context, orderBy string, desc bool, skip, take int) ([]*model.Message, error) {
	messages := make([]*model.Message, 0)
	q := s.db.WithContext(ctx).Model(&model.Message{})
	if orderBy != "" {
		dir := " ASC"
		if desc {
			dir = " DESC"
		}
		q = q.Order(orderBy + dir)
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	// take<0 不限制，==0 下推 LIMIT 0 得空页
	if take >= 0 {
		q = q.Limit(take)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *messageRepoImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Message{}).Count(&total).Error
	return total, err
}

func (s *messageRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Message, error) {
	var message model.Message
	err := s.db.WithContext(ctx).First(&message, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (s *messageRepoImpl) Create(ctx context.Context, message *model.Message) error {
	return s.db.WithContext(ctx).Create(message).Error
}

func (s *messageRepoImpl) Update(ctx context.Context, message *model.Message) error {
	return s.db.WithContext(ctx).Updates(message).Error
}

func (s *messageRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Message{}, id).Error
}

func (s *messageRepoImpl) CountByUser(ctx context.Context, since *time.Time, opts *GroupOpts) ([]UserCount, error) {
	return groupCountByUser(s.eventWindow(ctx, since), opts)
}

func (s *messageRepoImpl) CountGroups(ctx context.Context, since *time.Time) (int64, error) {
	return countDistinctUsers(s.eventWindow(ctx, since))
}

func (s *messageRepoImpl) CountBetweenEpoch(ctx context.Context, fromTs, toTs string) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Message{}).
		Where("event_ts >= ? AND event_ts < ?", fromTs, toTs).
		Count(&total).Error
	return total, err
}

func (s *messageRepoImpl) ListEpochByUser(ctx context.Context, userID uint64, fromTs, toTs string) ([]string, error) {
	values := make([]string, 0)
	err := s.db.WithContext(ctx).Model(&model.Message{}).
		Where("user_id = ?", userID).
		Where("timestamp >= ? AND timestamp <= ?", fromTs, toTs).
		Pluck("timestamp", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *messageRepoImpl) CountMatchingByUser(ctx context.Context, keyword string, since time.Time) ([]UserCount, error) {
	rows := make([]UserCount, 0)
	err := s.db.WithContext(ctx).Model(&model.Message{}).
		Select("user_id, COUNT(*) AS count").
		Where("text LIKE ?", "%"+keyword+"%").
		Where("created_at >= ?", since).
		Group("user_id").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *messageRepoImpl) ListMatchingByUser(ctx context.Context, userID uint64, keyword string, since time.Time) ([]*model.Message, error) {
	messages := make([]*model.Message, 0)
	err := s.db.WithContext(ctx).
		Preload("Channel").
		Where("user_id = ?", userID).
		Where("text LIKE ?", "%"+keyword+"%").
		Where("created_at >= ?", since).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *messageRepoImpl) eventWindow(ctx context.Context, since *time.Time) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.Message{})
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	return q
}
