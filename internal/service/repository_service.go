package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/util"
	"Pulse/internal/repository"
	"context"
	"strings"
)

type RepositoryService interface {
	// GetRepositories 每个仓库一行贡献者汇总，数值区间过滤作用在派生值上
	GetRepositories(ctx context.Context, q *dto.RepoListQueryDTO) ([]*dto.RepositoryDTO, int64, bool, error)
}

type repositoryServiceImpl struct {
	repoRepo repository.RepoRepo
}

func NewRepositoryService(repoRepo repository.RepoRepo) RepositoryService {
	return &repositoryServiceImpl{repoRepo: repoRepo}
}

func (s *repositoryServiceImpl) GetRepositories(ctx context.Context, q *dto.RepoListQueryDTO) ([]*dto.RepositoryDTO, int64, bool, error) {
	skip, take := 0, -1
	if q.Start != nil {
		skip = *q.Start
	}
	if q.End != nil {
		take = *q.End - skip
		if take < 0 {
			take = 0
		}
	}

	sortField := q.Sort
	if sortField == "" {
		sortField = "name"
	}

	// 数值区间作用在派生值上，只能在拉取后过滤，分页随之在内存完成
	repos, err := s.repoRepo.ListWithCommits(ctx, &repository.RepoListQuery{
		Name:  q.Name,
		Owner: q.Owner,
		URL:   q.URL,
		Sort:  sortField,
		Desc:  strings.EqualFold(q.Order, "desc"),
	})
	if err != nil {
		return nil, 0, false, err
	}

	rows := buildRepositoryRows(repos)
	rows = filterRepositoryRows(rows,
		util.ParseNumericRange(q.NumberOfContributors),
		util.ParseNumericRange(q.NumberOfLinesAdded),
		util.ParseNumericRange(q.NumberOfLinesRemoved),
	)

	total := len(rows)
	rows = pageRepositoryRows(rows, skip, take)
	hasNextPage := take >= 0 && skip+take < total
	return rows, int64(total), hasNextPage, nil
}

// pageRepositoryRows 过滤后的内存分页。take<0 表示取到末尾，take==0 是合法的空页
func pageRepositoryRows(rows []*dto.RepositoryDTO, skip, take int) []*dto.RepositoryDTO {
	if skip >= len(rows) {
		return []*dto.RepositoryDTO{}
	}
	if skip < 0 {
		skip = 0
	}
	end := len(rows)
	if take >= 0 && skip+take < end {
		end = skip + take
	}
	return rows[skip:end]
}

// buildRepositoryRows 把每个仓库的提交折叠成贡献者汇总，
// 贡献者顺序按提交里的首次出现顺序
func buildRepositoryRows(repos []*model.Repo) []*dto.RepositoryDTO {
	rows := make([]*dto.RepositoryDTO, 0, len(repos))
	for _, repo := range repos {
		contributors := foldContributors(repo.Commits)

		linesAdded, linesRemoved := 0, 0
		for _, c := range contributors {
			linesAdded += c.LinesAdded
			linesRemoved += c.LinesRemoved
		}

		rows = append(rows, &dto.RepositoryDTO{
			Name:                 repo.Name,
			Owner:                repo.User.GitHubUsername,
			URL:                  repo.URL,
			Contributors:         contributors,
			NumberOfContributors: len(contributors),
			NumberOfLinesAdded:   linesAdded,
			NumberOfLinesRemoved: linesRemoved,
		})
	}
	return rows
}

func foldContributors(commits []model.Commit) []*dto.ContributorDTO {
	byName := make(map[string]*dto.ContributorDTO)
	order := make([]*dto.ContributorDTO, 0)

	for _, commit := range commits {
		if commit.Author == nil {
			continue
		}
		entry, ok := byName[*commit.Author]
		if !ok {
			entry = &dto.ContributorDTO{Name: *commit.Author}
			byName[*commit.Author] = entry
			order = append(order, entry)
		}
		if commit.NumberOfLinesAdded != nil {
			entry.LinesAdded += *commit.NumberOfLinesAdded
		}
		if commit.NumberOfLinesRemoved != nil {
			entry.LinesRemoved += *commit.NumberOfLinesRemoved
		}
	}
	return order
}

// filterRepositoryRows 三个闭区间过滤依次应用，边界包含；
// 两侧都无界的区间不过滤任何行
func filterRepositoryRows(rows []*dto.RepositoryDTO, contributors, linesAdded, linesRemoved util.NumericRange) []*dto.RepositoryDTO {
	if contributors.Empty() && linesAdded.Empty() && linesRemoved.Empty() {
		return rows
	}
	filtered := make([]*dto.RepositoryDTO, 0, len(rows))
	for _, row := range rows {
		if !contributors.Contains(row.NumberOfContributors) {
			continue
		}
		if !linesAdded.Contains(row.NumberOfLinesAdded) {
			continue
		}
		if !linesRemoved.Contains(row.NumberOfLinesRemoved) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}
