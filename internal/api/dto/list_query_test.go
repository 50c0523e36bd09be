package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuerySkipTake(t *testing.T) {
	one, three := 1, 3

	tests := []struct {
		name string
		q    ListQueryDTO
		skip int
		take int
	}{
		{"未传区间", ListQueryDTO{}, 0, -1},
		{"只传 _start", ListQueryDTO{Start: &three}, 3, -1},
		{"正常区间", ListQueryDTO{Start: &one, End: &three}, 1, 2},
		{"零宽区间是空页", ListQueryDTO{Start: &one, End: &one}, 1, 0},
		{"倒置区间夹到空页", ListQueryDTO{Start: &three, End: &one}, 3, 0},
		{"只传 _end", ListQueryDTO{End: &three}, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.skip, tt.q.Skip())
			assert.Equal(t, tt.take, tt.q.Take())
		})
	}
}

func TestListQueryHasNextPage(t *testing.T) {
	one, three := 1, 3

	// 不限制时全部返回，没有下一页
	q := ListQueryDTO{}
	assert.False(t, q.HasNextPage(100))

	q = ListQueryDTO{Start: &one, End: &three}
	assert.True(t, q.HasNextPage(10))
	assert.False(t, q.HasNextPage(3))

	// 空页之后仍有剩余行
	q = ListQueryDTO{Start: &one, End: &one}
	assert.True(t, q.HasNextPage(3))
	assert.False(t, q.HasNextPage(1))
}

func TestListQueryDesc(t *testing.T) {
	q := ListQueryDTO{}
	assert.True(t, q.Desc(true))
	assert.False(t, q.Desc(false))

	q.Order = "ASC"
	assert.False(t, q.Desc(true))
	q.Order = "desc"
	assert.True(t, q.Desc(false))
}
