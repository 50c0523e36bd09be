package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/repository"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func testUsers() []*model.User {
	return []*model.User{
		{ID: 1, SlackID: "U01", DisplayName: strPtr("alice"), FirstName: strPtr("Alice"), LastName: strPtr("Archer")},
		{ID: 2, SlackID: "U02", RealName: strPtr("Bob Builder"), FirstName: strPtr("Bob")},
		{ID: 3, SlackID: "U03"},
	}
}

func TestCombineAllUsers(t *testing.T) {
	users := testUsers()
	msg := []repository.UserCount{{UserID: 1, Count: 3}, {UserID: 2, Count: 1}}
	react := []repository.UserCount{{UserID: 1, Count: 1}}
	file := []repository.UserCount{{UserID: 2, Count: 1}}

	rows := combineAllUsers(users, msg, react, file, "7d")
	require.Len(t, rows, 3)

	byID := make(map[uint64]*dto.ActivityRowDTO)
	for _, row := range rows {
		byID[row.UserID] = row
		// 总量恒等于三项计数之和
		assert.Equal(t, row.MessageCount+row.ReactionCount+row.FileCount, row.TotalCount)
		assert.Equal(t, "7d", row.Timespan)
	}

	assert.Equal(t, 4, byID[1].TotalCount)
	assert.Equal(t, 2, byID[2].TotalCount)

	// 没有任何事件的用户也占一行，计数补零
	assert.Equal(t, 0, byID[3].TotalCount)

	// 展示名 displayName 优先，其次 realName
	assert.Equal(t, "alice", *byID[1].UserName)
	assert.Equal(t, "Bob Builder", *byID[2].UserName)
	assert.Nil(t, byID[3].UserName)
}

func TestCombineActiveUsers(t *testing.T) {
	users := testUsers()
	msg := []repository.UserCount{{UserID: 2, Count: 2}}
	react := []repository.UserCount{{UserID: 1, Count: 1}, {UserID: 2, Count: 1}}
	var file []repository.UserCount

	rows := combineActiveUsers(users, msg, react, file, "30d")
	require.Len(t, rows, 2)

	// 行序按消息→表情→文件的首次出现顺序
	assert.Equal(t, uint64(2), rows[0].UserID)
	assert.Equal(t, uint64(1), rows[1].UserID)
	assert.Equal(t, 3, rows[0].TotalCount)

	// 活跃视图的名字取 firstName+lastName
	assert.Equal(t, "Bob", *rows[0].UserName)
	assert.Equal(t, "Alice Archer", *rows[1].UserName)
}

func TestFinishListDefaultSort(t *testing.T) {
	rows := []*dto.ActivityRowDTO{
		{UserID: 1, TotalCount: 2},
		{UserID: 2, TotalCount: 5},
		{UserID: 3, TotalCount: 5},
		{UserID: 4, TotalCount: 1},
	}

	got, total, hasNextPage, err := finishList(rows, &dto.ListQueryDTO{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.False(t, hasNextPage) // 未指定 _end 时返回全部，没有下一页

	// 默认总量倒序，计数相同保持原有相对顺序
	assert.Equal(t, uint64(2), got[0].UserID)
	assert.Equal(t, uint64(3), got[1].UserID)
	assert.Equal(t, uint64(1), got[2].UserID)
	assert.Equal(t, uint64(4), got[3].UserID)
}

func TestFinishListExplicitSortAndPage(t *testing.T) {
	rows := []*dto.ActivityRowDTO{
		{UserID: 3, MessageCount: 1, TotalCount: 1},
		{UserID: 1, MessageCount: 9, TotalCount: 9},
		{UserID: 2, MessageCount: 4, TotalCount: 4},
	}

	start, end := 0, 2
	q := &dto.ListQueryDTO{Start: &start, End: &end, Sort: "userId", Order: "asc"}

	got, total, hasNextPage, err := finishList(rows, q)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.True(t, hasNextPage)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].UserID)
	assert.Equal(t, uint64(2), got[1].UserID)

	// 只传 _sort 不传 _order 时仍走默认排序
	q2 := &dto.ListQueryDTO{Sort: "userId"}
	got2, _, _, err := finishList([]*dto.ActivityRowDTO{
		{UserID: 1, TotalCount: 1},
		{UserID: 2, TotalCount: 8},
	}, q2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got2[0].UserID)
}

func TestFinishListDegenerateWindows(t *testing.T) {
	rows := []*dto.ActivityRowDTO{
		{UserID: 1, TotalCount: 3},
		{UserID: 2, TotalCount: 2},
		{UserID: 3, TotalCount: 1},
	}

	// 零宽区间 [1,1) 是合法的空页，不是"不限制"
	start, end := 1, 1
	got, total, hasNextPage, err := finishList(rows, &dto.ListQueryDTO{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Len(t, got, 0)
	assert.Equal(t, int64(3), total)
	assert.True(t, hasNextPage)

	// 倒置区间同样得空页
	start, end = 2, 1
	got, _, _, err = finishList(rows, &dto.ListQueryDTO{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Len(t, got, 0)
}

func TestFilterRowsByName(t *testing.T) {
	rows := []*dto.ActivityRowDTO{
		{UserID: 1, UserName: strPtr("Alice Archer")},
		{UserID: 2, UserName: strPtr("bob")},
		{UserID: 3},
	}

	got := filterRowsByName(rows, "ali")
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].UserID)

	// 大小写不敏感
	got = filterRowsByName(rows, "BOB")
	require.Len(t, got, 1)

	// 名字为空的行匹配不到任何子串
	got = filterRowsByName(rows, "")
	assert.Len(t, got, 3)
	got = filterRowsByName(rows, "zzz")
	assert.Len(t, got, 0)
}

func TestSliceRows(t *testing.T) {
	rows := []*dto.ActivityRowDTO{{UserID: 1}, {UserID: 2}, {UserID: 3}}

	assert.Len(t, sliceRows(rows, 0, 2), 2)
	assert.Len(t, sliceRows(rows, 2, 2), 1)
	assert.Len(t, sliceRows(rows, 3, 2), 0)
	assert.Len(t, sliceRows(rows, 0, 10), 3)

	// take<0 取到末尾，take==0 是空页
	assert.Len(t, sliceRows(rows, 0, -1), 3)
	assert.Len(t, sliceRows(rows, 0, 0), 0)
	assert.Len(t, sliceRows(rows, 1, 0), 0)
}

func TestBuildDailyStats(t *testing.T) {
	start := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	day0 := start.Unix()
	day1 := start.AddDate(0, 0, 1).Unix()

	msgTs := []string{
		epochStr(day0) + ".000100", // 带小数后缀的 Slack 时间戳
		epochStr(day0 + 3600),
		epochStr(day1 + 10),
	}
	reactTs := []string{epochStr(day1)}

	stats := buildDailyStats(start, 3, msgTs, reactTs)
	require.Len(t, stats, 3)

	assert.Equal(t, "2026-04-20", stats[0].Date)
	assert.Equal(t, 2, stats[0].MessageCount)
	assert.Equal(t, 0, stats[0].ReactionCount)

	assert.Equal(t, "2026-04-21", stats[1].Date)
	assert.Equal(t, 1, stats[1].MessageCount)
	assert.Equal(t, 1, stats[1].ReactionCount)
	assert.Equal(t, 2, stats[1].TotalCount)

	// 没有事件的日期补零行，不跳过
	assert.Equal(t, "2026-04-22", stats[2].Date)
	assert.Equal(t, 0, stats[2].TotalCount)
}

func TestParseEpochs(t *testing.T) {
	epochs := parseEpochs([]string{"1714041600", "1714041601.000200", "bogus", ""})
	require.Len(t, epochs, 2)
	assert.Equal(t, int64(1714041600), epochs[0])
	assert.Equal(t, int64(1714041601), epochs[1])
}

func epochStr(ts int64) string {
	return strconv.FormatInt(ts, 10)
}
