package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/timespan"
	"Pulse/internal/repository"
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type InteractivityService interface {
	// GetList 每位注册用户一行，未活跃用户计数补零
	GetList(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.ActivityRowDTO, int64, bool, error)
	// GetActiveList 只包含窗口内出现过事件的用户
	GetActiveList(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.ActivityRowDTO, int64, bool, error)
	// GetTimeline 单用户最近 N 天的逐日计数
	GetTimeline(ctx context.Context, userID uint64, span string) (*dto.UserDailyStatsDTO, error)
}

type interactivityServiceImpl struct {
	messageRepo  repository.MessageRepo
	reactionRepo repository.ReactionRepo
	fileRepo     repository.FileRepo
	userRepo     repository.UserRepo
}

func NewInteractivityService(
	messageRepo repository.MessageRepo,
	reactionRepo repository.ReactionRepo,
	fileRepo repository.FileRepo,
	userRepo repository.UserRepo,
) InteractivityService {
	return &interactivityServiceImpl{
		messageRepo:  messageRepo,
		reactionRepo: reactionRepo,
		fileRepo:     fileRepo,
		userRepo:     userRepo,
	}
}

func (s *interactivityServiceImpl) GetList(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.ActivityRowDTO, int64, bool, error) {
	users, msg, react, file, err := s.fetchWindow(ctx, q.Timespan)
	if err != nil {
		return nil, 0, false, err
	}

	rows := combineAllUsers(users, msg, react, file, spanLabel(q.Timespan))
	return finishList(rows, q)
}

func (s *interactivityServiceImpl) GetActiveList(ctx context.Context, q *dto.ListQueryDTO) ([]*dto.ActivityRowDTO, int64, bool, error) {
	users, msg, react, file, err := s.fetchWindow(ctx, q.Timespan)
	if err != nil {
		return nil, 0, false, err
	}

	rows := combineActiveUsers(users, msg, react, file, spanLabel(q.Timespan))
	return finishList(rows, q)
}

// fetchWindow 并发拉取全量用户与三张事件表的窗口内分组计数。
// 三个分组互不依赖，合并在拿到全部结果之后进行。
func (s *interactivityServiceImpl) fetchWindow(ctx context.Context, token string) (
	[]*model.User, []repository.UserCount, []repository.UserCount, []repository.UserCount, error,
) {
	since := windowStart(token)

	var (
		users             []*model.User
		msg, react, files []repository.UserCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.userRepo.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		msg, err = s.messageRepo.CountByUser(gctx, since, nil)
		return err
	})
	g.Go(func() (err error) {
		react, err = s.reactionRepo.CountByUser(gctx, since, nil)
		return err
	})
	g.Go(func() (err error) {
		files, err = s.fileRepo.CountByUser(gctx, since, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, nil, err
	}
	return users, msg, react, files, nil
}

func (s *interactivityServiceImpl) GetTimeline(ctx context.Context, userID uint64, span string) (*dto.UserDailyStatsDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	days := timespan.Days(span)
	if days == 0 {
		days = timespan.Days(timespan.Default)
	}

	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1))

	fromTs := strconv.FormatInt(start.Unix(), 10)
	toTs := strconv.FormatInt(end.Unix(), 10)

	var msgTs, reactTs []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		msgTs, err = s.messageRepo.ListEpochByUser(gctx, userID, fromTs, toTs)
		return err
	})
	g.Go(func() (err error) {
		reactTs, err = s.reactionRepo.ListEpochByUser(gctx, userID, fromTs, toTs)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return &dto.UserDailyStatsDTO{
		UserID:     user.ID,
		UserName:   user.DashboardName(),
		DailyStats: buildDailyStats(start, days, msgTs, reactTs),
	}, nil
}

// combineAllUsers 合并三个分组结果，每位注册用户一行，缺失计数补零
func combineAllUsers(users []*model.User, msg, react, file []repository.UserCount, label string) []*dto.ActivityRowDTO {
	msgBy := countsByUser(msg)
	reactBy := countsByUser(react)
	fileBy := countsByUser(file)

	rows := make([]*dto.ActivityRowDTO, 0, len(users))
	for _, u := range users {
		m := msgBy[u.ID]
		r := reactBy[u.ID]
		f := fileBy[u.ID]
		rows = append(rows, &dto.ActivityRowDTO{
			UserID:        u.ID,
			UserName:      u.DashboardName(),
			MessageCount:  m,
			ReactionCount: r,
			FileCount:     f,
			TotalCount:    m + r + f,
			Timespan:      label,
		})
	}
	return rows
}

// combineActiveUsers 合并三个分组结果，只保留窗口内出现过事件的用户，
// 行序按消息→表情→文件的首次出现顺序
func combineActiveUsers(users []*model.User, msg, react, file []repository.UserCount, label string) []*dto.ActivityRowDTO {
	msgBy := countsByUser(msg)
	reactBy := countsByUser(react)
	fileBy := countsByUser(file)

	userBy := make(map[uint64]*model.User, len(users))
	for _, u := range users {
		userBy[u.ID] = u
	}

	seen := make(map[uint64]bool)
	order := make([]uint64, 0, len(msg)+len(react)+len(file))
	for _, counts := range [][]repository.UserCount{msg, react, file} {
		for _, c := range counts {
			if !seen[c.UserID] {
				seen[c.UserID] = true
				order = append(order, c.UserID)
			}
		}
	}

	rows := make([]*dto.ActivityRowDTO, 0, len(order))
	for _, id := range order {
		m := msgBy[id]
		r := reactBy[id]
		f := fileBy[id]
		var name *string
		if u, ok := userBy[id]; ok {
			name = u.FullName()
		}
		rows = append(rows, &dto.ActivityRowDTO{
			UserID:        id,
			UserName:      name,
			MessageCount:  m,
			ReactionCount: r,
			FileCount:     f,
			TotalCount:    m + r + f,
			Timespan:      label,
		})
	}
	return rows
}

func countsByUser(counts []repository.UserCount) map[uint64]int {
	byID := make(map[uint64]int, len(counts))
	for _, c := range counts {
		byID[c.UserID] = c.Count
	}
	return byID
}

// finishList 合并结果的收尾：过滤→排序→切片，全部在内存完成。
// 工作区人数有限，这里不追求把排序分页下推到存储层。
func finishList(rows []*dto.ActivityRowDTO, q *dto.ListQueryDTO) ([]*dto.ActivityRowDTO, int64, bool, error) {
	rows = filterRowsByName(rows, q.UserName)

	if q.Sort != "" && q.Order != "" {
		sortActivityRows(rows, q.Sort, q.Desc(true))
	} else {
		// 默认按总量倒序
		sortActivityRows(rows, "totalCount", true)
	}

	total := len(rows)
	paged := sliceRows(rows, q.Skip(), q.Take())
	return paged, int64(total), q.HasNextPage(total), nil
}

// filterRowsByName 用户名子串过滤，忽略大小写；名字为空的行匹配不到任何子串
func filterRowsByName(rows []*dto.ActivityRowDTO, substr string) []*dto.ActivityRowDTO {
	if substr == "" {
		return rows
	}
	needle := strings.ToLower(substr)
	filtered := make([]*dto.ActivityRowDTO, 0, len(rows))
	for _, row := range rows {
		if row.UserName != nil && strings.Contains(strings.ToLower(*row.UserName), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// sortActivityRows 按指定字段稳定排序，计数相同的行保持原有相对顺序
func sortActivityRows(rows []*dto.ActivityRowDTO, field string, desc bool) {
	less := func(a, b *dto.ActivityRowDTO) bool {
		switch field {
		case "userId":
			return a.UserID < b.UserID
		case "userName":
			an, bn := "", ""
			if a.UserName != nil {
				an = *a.UserName
			}
			if b.UserName != nil {
				bn = *b.UserName
			}
			return an < bn
		case "messageCount":
			return a.MessageCount < b.MessageCount
		case "reactionCount":
			return a.ReactionCount < b.ReactionCount
		case "fileCount":
			return a.FileCount < b.FileCount
		default:
			return a.TotalCount < b.TotalCount
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// sliceRows 应用 skip/take 切片。take<0 表示取到末尾，take==0 是合法的空页
func sliceRows(rows []*dto.ActivityRowDTO, skip, take int) []*dto.ActivityRowDTO {
	if skip >= len(rows) {
		return []*dto.ActivityRowDTO{}
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

// buildDailyStats 把两组秒级时间戳装进逐日桶，起始日起连续 days 天，
// 没有事件的日期补零行，不跳过
func buildDailyStats(start time.Time, days int, msgTs, reactTs []string) []*dto.DailyStatDTO {
	msgEpochs := parseEpochs(msgTs)
	reactEpochs := parseEpochs(reactTs)

	stats := make([]*dto.DailyStatDTO, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		dayStart := day.Unix()
		dayEnd := day.AddDate(0, 0, 1).Unix() - 1

		m := countInRange(msgEpochs, dayStart, dayEnd)
		r := countInRange(reactEpochs, dayStart, dayEnd)

		stats = append(stats, &dto.DailyStatDTO{
			Date:          day.Format("2006-01-02"),
			MessageCount:  m,
			ReactionCount: r,
			TotalCount:    m + r,
		})
	}
	return stats
}

func parseEpochs(values []string) []int64 {
	epochs := make([]int64, 0, len(values))
	for _, v := range values {
		// 兼容 "1714041600.000200" 形式的 Slack 时间戳
		if dot := strings.IndexByte(v, '.'); dot >= 0 {
			v = v[:dot]
		}
		if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
			epochs = append(epochs, ts)
		}
	}
	return epochs
}

func countInRange(epochs []int64, from, to int64) int {
	n := 0
	for _, ts := range epochs {
		if ts >= from && ts <= to {
			n++
		}
	}
	return n
}
