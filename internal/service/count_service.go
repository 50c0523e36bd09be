package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/timespan"
	"Pulse/internal/repository"
	"context"
	"time"
)

// userCounter 单事件源的按作者分组能力，三张事件表的仓储都满足
type userCounter interface {
	CountByUser(ctx context.Context, since *time.Time, opts *repository.GroupOpts) ([]repository.UserCount, error)
	CountGroups(ctx context.Context, since *time.Time) (int64, error)
}

type CountService interface {
	GetMessageCounts(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.UserCountDTO, int64, error)
	GetReactionCounts(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.UserCountDTO, int64, error)
	GetFileCounts(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.UserCountDTO, int64, error)
}

type countServiceImpl struct {
	messageRepo  repository.MessageRepo
	reactionRepo repository.ReactionRepo
	fileRepo     repository.FileRepo
	userRepo     repository.UserRepo
}

func NewCountService(
	messageRepo repository.MessageRepo,
	reactionRepo repository.ReactionRepo,
	fileRepo repository.FileRepo,
	userRepo repository.UserRepo,
) CountService {
	return &countServiceImpl{
		messageRepo:  messageRepo,
		reactionRepo: reactionRepo,
		fileRepo:     fileRepo,
		userRepo:     userRepo,
	}
}

func (s *countServiceImpl) GetMessageCounts(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.UserCountDTO, int64, error) {
	return s.getCounts(ctx, s.messageRepo, q)
}

func (s *countServiceImpl) GetReactionCounts(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.UserCountDTO, int64, error) {
	return s.getCounts(ctx, s.reactionRepo, q)
}

func (s *countServiceImpl) GetFileCounts(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.UserCountDTO, int64, error) {
	return s.getCounts(ctx, s.fileRepo, q)
}

// getCounts 单数据源聚合：窗口内按作者分组计数，排序分页下推存储层
func (s *countServiceImpl) getCounts(ctx context.Context, counter userCounter, q *dto.ListQueryDTO) ([]*dto.UserCountDTO, int64, error) {
	since := windowStart(q.Timespan)

	opts := &repository.GroupOpts{
		Skip: q.Skip(),
		Take: q.Take(),
	}
	if q.Sort == "userId" {
		opts.SortByUser = true
		opts.Desc = q.Desc(false)
	} else {
		// 默认按计数倒序
		opts.Desc = q.Desc(true)
	}

	counts, err := counter.CountByUser(ctx, since, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err := counter.CountGroups(ctx, since)
	if err != nil {
		return nil, 0, err
	}

	users, err := s.lookupUsers(ctx, counts)
	if err != nil {
		return nil, 0, err
	}

	label := spanLabel(q.Timespan)
	rows := make([]*dto.UserCountDTO, 0, len(counts))
	for _, c := range counts {
		var name *string
		if u, ok := users[c.UserID]; ok {
			name = u.FullName()
		}
		rows = append(rows, &dto.UserCountDTO{
			UserID:   c.UserID,
			UserName: name,
			Count:    c.Count,
			Timespan: label,
		})
	}
	return rows, total, nil
}

func (s *countServiceImpl) lookupUsers(ctx context.Context, counts []repository.UserCount) (map[uint64]*model.User, error) {
	ids := make([]uint64, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.UserID)
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// windowStart timespan 符号对应的窗口下界，"all" 返回 nil
func windowStart(token string) *time.Time {
	cutoff, ok := timespan.Cutoff(token, time.Now())
	if !ok {
		return nil
	}
	return &cutoff
}

// spanLabel 返回行上携带的 timespan 标签
func spanLabel(token string) string {
	if token == "" {
		return timespan.Default
	}
	return token
}
