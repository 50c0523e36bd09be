package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func testRepo() *model.Repo {
	return &model.Repo{
		ID:   1,
		Name: "pulse",
		URL:  "https://github.com/acme/pulse",
		User: model.GithubUser{ID: 10, GitHubUsername: "acme"},
		Commits: []model.Commit{
			{Author: strPtr("alice"), NumberOfLinesAdded: intPtr(10), NumberOfLinesRemoved: intPtr(2)},
			{Author: strPtr("bob"), NumberOfLinesAdded: intPtr(5), NumberOfLinesRemoved: intPtr(1)},
			{Author: strPtr("alice"), NumberOfLinesAdded: intPtr(3)},
			{Author: nil, NumberOfLinesAdded: intPtr(100)},
		},
	}
}

func TestBuildRepositoryRows(t *testing.T) {
	rows := buildRepositoryRows([]*model.Repo{testRepo()})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "pulse", row.Name)
	assert.Equal(t, "acme", row.Owner)
	assert.Equal(t, "https://github.com/acme/pulse", row.URL)

	// 作者为空的提交不计入贡献者
	require.Len(t, row.Contributors, 2)
	assert.Equal(t, 2, row.NumberOfContributors)

	// 贡献者顺序按提交里的首次出现顺序
	assert.Equal(t, "alice", row.Contributors[0].Name)
	assert.Equal(t, 13, row.Contributors[0].LinesAdded)
	assert.Equal(t, 2, row.Contributors[0].LinesRemoved)
	assert.Equal(t, "bob", row.Contributors[1].Name)

	assert.Equal(t, 18, row.NumberOfLinesAdded)
	assert.Equal(t, 3, row.NumberOfLinesRemoved)
}

func TestBuildRepositoryRowsEmptyCommits(t *testing.T) {
	repo := &model.Repo{Name: "empty", User: model.GithubUser{GitHubUsername: "acme"}}

	rows := buildRepositoryRows([]*model.Repo{repo})
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].NumberOfContributors)
	assert.Empty(t, rows[0].Contributors)
	assert.Equal(t, 0, rows[0].NumberOfLinesAdded)
}

func TestPageRepositoryRows(t *testing.T) {
	rows := []*dto.RepositoryDTO{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	got := pageRepositoryRows(rows, 0, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)

	got = pageRepositoryRows(rows, 2, 2)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].Name)

	assert.Len(t, pageRepositoryRows(rows, 3, 2), 0)

	// take<0 取到末尾，take==0 是空页
	assert.Len(t, pageRepositoryRows(rows, 0, -1), 3)
	assert.Len(t, pageRepositoryRows(rows, 0, 0), 0)
}

func TestFilterRepositoryRows(t *testing.T) {
	rows := []*dto.RepositoryDTO{
		{Name: "a", NumberOfContributors: 1, NumberOfLinesAdded: 10, NumberOfLinesRemoved: 0},
		{Name: "b", NumberOfContributors: 3, NumberOfLinesAdded: 50, NumberOfLinesRemoved: 5},
		{Name: "c", NumberOfContributors: 5, NumberOfLinesAdded: 100, NumberOfLinesRemoved: 20},
	}

	// 区间为空时不过滤
	got := filterRepositoryRows(rows, util.NumericRange{}, util.NumericRange{}, util.NumericRange{})
	assert.Len(t, got, 3)

	// 闭区间，边界包含
	got = filterRepositoryRows(rows, util.ParseNumericRange("3,5"), util.NumericRange{}, util.NumericRange{})
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Name)
	assert.Equal(t, "c", got[1].Name)

	// 多个区间叠加
	got = filterRepositoryRows(rows,
		util.ParseNumericRange("1,5"),
		util.ParseNumericRange(",60"),
		util.ParseNumericRange("1,"),
	)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Name)
}
