package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitterCountsDefaults(t *testing.T) {
	repo := &fakeCommitRepo{
		counts: []repository.CommitterCount{
			{Committer: strPtr("alice"), Count: 5},
			{Committer: nil, Count: 2},
		},
		total: 7,
	}
	svc := NewCommitService(repo)

	rows, total, hasNextPage, err := svc.GetCommitterCounts(context.Background(), &dto.CommitListQueryDTO{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.False(t, hasNextPage) // 未指定 _end 时返回全部，没有下一页

	// 默认计数倒序，窗口不设下界，不限制条数
	assert.True(t, repo.lastQuery.Desc)
	assert.False(t, repo.lastQuery.SortByCommitter)
	assert.Nil(t, repo.lastQuery.Since)
	assert.Equal(t, -1, repo.lastQuery.Take)

	require.Len(t, rows, 2)
	assert.Equal(t, "alice", rows[0].Committer)

	// 提交者为空的行展示为 Unknown
	assert.Equal(t, "Unknown", rows[1].Committer)

	// 未传 timespan 时标签为 all
	assert.Equal(t, "all", rows[0].Timespan)
}

func TestCommitterCountsQueryBuild(t *testing.T) {
	repo := &fakeCommitRepo{}
	svc := NewCommitService(repo)

	start, end := 10, 20
	_, _, _, err := svc.GetCommitterCounts(context.Background(), &dto.CommitListQueryDTO{
		Start:    &start,
		End:      &end,
		Sort:     "committer",
		Filter:   "committer",
		Value:    "ali",
		Timespan: "30d",
	})
	require.NoError(t, err)

	q := repo.lastQuery
	assert.Equal(t, 10, q.Skip)
	assert.Equal(t, 10, q.Take)
	assert.True(t, q.SortByCommitter)

	// 提交者排序未指定方向时默认正序
	assert.False(t, q.Desc)
	assert.Equal(t, "ali", q.CommitterFilter)
	assert.NotNil(t, q.Since)
}

func TestCommitterCountsZeroWidthWindow(t *testing.T) {
	repo := &fakeCommitRepo{total: 7}
	svc := NewCommitService(repo)

	// _start == _end 是合法的空页，不退化成不限制
	start, end := 1, 1
	rows, total, hasNextPage, err := svc.GetCommitterCounts(context.Background(), &dto.CommitListQueryDTO{
		Start: &start,
		End:   &end,
	})
	require.NoError(t, err)
	assert.Len(t, rows, 0)
	assert.Equal(t, int64(7), total)
	assert.True(t, hasNextPage)
	assert.Equal(t, 1, repo.lastQuery.Skip)
	assert.Equal(t, 0, repo.lastQuery.Take)
}

func TestCommitterCountsRangeFilter(t *testing.T) {
	repo := &fakeCommitRepo{}
	svc := NewCommitService(repo)

	_, _, _, err := svc.GetCommitterCounts(context.Background(), &dto.CommitListQueryDTO{
		Filter:   "count",
		Value:    "3,10",
		Operator: "between",
	})
	require.NoError(t, err)

	r := repo.lastQuery.CountRange
	require.NotNil(t, r.Min)
	require.NotNil(t, r.Max)
	assert.Equal(t, 3, *r.Min)
	assert.Equal(t, 10, *r.Max)
}
