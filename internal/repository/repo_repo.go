package repository

import (
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"context"
	"strings"

	"gorm.io/gorm"
)

// RepoListQuery 仓库列表查询条件，子串过滤均忽略大小写。
// 分页不下推：数值区间过滤作用在派生值上，调用方在内存完成分页。
type RepoListQuery struct {
	Name  string
	Owner string
	URL   string
	Sort  string // name | owner
	Desc  bool
}

type RepoRepo interface {
	ListWithCommits(ctx context.Context, q *RepoListQuery) ([]*model.Repo, error)
}

type repoRepoImpl struct {
	db *gorm.DB
}

func NewRepoRepo(db *gorm.DB) RepoRepo {
	return &repoRepoImpl{db: db}
}

func (s *repoRepoImpl) ListWithCommits(ctx context.Context, q *RepoListQuery) ([]*model.Repo, error) {
	repos := make([]*model.Repo, 0)

	tx := s.applyFilters(s.db.WithContext(ctx).Model(&model.Repo{}), q).
		Preload("User").
		Preload("Commits", "author IS NOT NULL AND author <> ?", consts.BotCommitAuthor)

	order := "repos.name"
	if q.Sort == "owner" {
		order = "users.github_username"
	}
	if q.Desc {
		order += " DESC"
	} else {
		order += " ASC"
	}

	if err := tx.Order(order).Find(&repos).Error; err != nil {
		return nil, err
	}
	return repos, nil
}


func (s *repoRepoImpl) applyFilters(tx *gorm.DB, q *RepoListQuery) *gorm.DB {
	// 排序与 owner 过滤都要用到 users 表，统一 JOIN
	tx = tx.Joins("JOIN users ON users.id = repos.user_id")

	if q.Name != "" {
		tx = tx.Where("LOWER(repos.name) LIKE ?", "%"+strings.ToLower(q.Name)+"%")
	}
	if q.Owner != "" {
		tx = tx.Where("LOWER(users.github_username) LIKE ?", "%"+strings.ToLower(q.Owner)+"%")
	}
	if q.URL != "" {
		tx = tx.Where("LOWER(repos.url) LIKE ?", "%"+strings.ToLower(q.URL)+"%")
	}
	return tx
}
