package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/util"
	"Pulse/internal/repository"
	"context"
	"strings"
)

// unknownCommitter 提交者为空时的展示名
const unknownCommitter = "Unknown"

type CommitService interface {
	// GetCommitterCounts 窗口内按提交者分组计数，HAVING 区间与排序下推存储层
	GetCommitterCounts(ctx context.Context, q *dto.CommitListQueryDTO) ([]*dto.CommitterCountDTO, int64, bool, error)
}

type commitServiceImpl struct {
	commitRepo repository.CommitRepo
}

func NewCommitService(commitRepo repository.CommitRepo) CommitService {
	return &commitServiceImpl{commitRepo: commitRepo}
}

func (s *commitServiceImpl) GetCommitterCounts(ctx context.Context, q *dto.CommitListQueryDTO) ([]*dto.CommitterCountDTO, int64, bool, error) {
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

	since := windowStart(q.Timespan)

	query := &repository.CommitGroupQuery{
		Since:           since,
		SortByCommitter: q.Sort == "committer",
		Skip:            skip,
		Take:            take,
	}

	// 提交者排序默认正序，计数排序默认倒序
	switch {
	case q.Order != "":
		query.Desc = strings.EqualFold(q.Order, "desc")
	case query.SortByCommitter:
		query.Desc = false
	default:
		query.Desc = true
	}

	switch q.Filter {
	case "committer":
		query.CommitterFilter = q.Value
	case "count":
		query.CountRange = util.ParseNumericRange(q.Value)
	}

	counts, err := s.commitRepo.CountByCommitter(ctx, query)
	if err != nil {
		return nil, 0, false, err
	}

	total, err := s.commitRepo.CountInWindow(ctx, since)
	if err != nil {
		return nil, 0, false, err
	}

	label := q.Timespan
	if label == "" {
		label = "all"
	}

	rows := make([]*dto.CommitterCountDTO, 0, len(counts))
	for _, c := range counts {
		name := unknownCommitter
		if c.Committer != nil && *c.Committer != "" {
			name = *c.Committer
		}
		rows = append(rows, &dto.CommitterCountDTO{
			Committer: name,
			Count:     c.Count,
			Timespan:  label,
		})
	}

	hasNextPage := take >= 0 && skip+take < int(total)
	return rows, total, hasNextPage, nil
}
