package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/repository"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCountService() (CountService, *fakeMessageRepo) {
	messageRepo := &fakeMessageRepo{
		counts: []repository.UserCount{
			{UserID: 1, Count: 10},
			{UserID: 2, Count: 3},
		},
		total: 2,
	}
	userRepo := &fakeUserRepo{users: []*model.User{
		{ID: 1, FirstName: strPtr("Alice"), LastName: strPtr("Archer")},
		{ID: 2, FirstName: strPtr("Bob")},
	}}
	svc := NewCountService(messageRepo, &fakeReactionRepo{}, &fakeFileRepo{}, userRepo)
	return svc, messageRepo
}

func TestGetMessageCounts(t *testing.T) {
	svc, _ := newTestCountService()

	rows, total, err := svc.GetMessageCounts(context.Background(), &dto.ListQueryDTO{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)

	// 单数据源视图的名字取 firstName+lastName
	assert.Equal(t, "Alice Archer", *rows[0].UserName)
	assert.Equal(t, "Bob", *rows[1].UserName)
	assert.Equal(t, 10, rows[0].Count)

	// 未传 timespan 时标签为默认值
	assert.Equal(t, "7d", rows[0].Timespan)
}

func TestGetMessageCountsUnknownUser(t *testing.T) {
	messageRepo := &fakeMessageRepo{counts: []repository.UserCount{{UserID: 99, Count: 1}}, total: 1}
	svc := NewCountService(messageRepo, &fakeReactionRepo{}, &fakeFileRepo{}, &fakeUserRepo{})

	rows, _, err := svc.GetMessageCounts(context.Background(), &dto.ListQueryDTO{Timespan: "30d"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// 注册表里查不到的作者名字为空
	assert.Nil(t, rows[0].UserName)
	assert.Equal(t, "30d", rows[0].Timespan)
}

func TestInteractivityTimeline(t *testing.T) {
	now := time.Now()
	todayNoon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())

	messageRepo := &fakeMessageRepo{epochs: []string{strconv.FormatInt(todayNoon.Unix(), 10)}}
	reactionRepo := &fakeReactionRepo{epochs: []string{strconv.FormatInt(todayNoon.Unix(), 10)}}
	userRepo := &fakeUserRepo{users: []*model.User{{ID: 1, DisplayName: strPtr("alice")}}}

	svc := NewInteractivityService(messageRepo, reactionRepo, &fakeFileRepo{}, userRepo)

	stats, err := svc.GetTimeline(context.Background(), 1, "14d")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.UserID)
	assert.Equal(t, "alice", *stats.UserName)
	require.Len(t, stats.DailyStats, 14)

	// 事件落在最后一天（今天）的桶里
	last := stats.DailyStats[13]
	assert.Equal(t, now.Format("2006-01-02"), last.Date)
	assert.Equal(t, 1, last.MessageCount)
	assert.Equal(t, 1, last.ReactionCount)
	assert.Equal(t, 2, last.TotalCount)
}

func TestInteractivityTimelineUserNotFound(t *testing.T) {
	svc := NewInteractivityService(&fakeMessageRepo{}, &fakeReactionRepo{}, &fakeFileRepo{}, &fakeUserRepo{})

	_, err := svc.GetTimeline(context.Background(), 42, "7d")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
