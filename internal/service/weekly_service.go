package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const secondsInDay = 86400

type WeeklyService interface {
	// GetWeeklyCounts 固定最近7个自然日的全员每日计数，从旧到新
	GetWeeklyCounts(ctx context.Context) ([]*dto.WeeklyCountDTO, error)
}

type weeklyServiceImpl struct {
	messageRepo  repository.MessageRepo
	reactionRepo repository.ReactionRepo
}

func NewWeeklyService(messageRepo repository.MessageRepo, reactionRepo repository.ReactionRepo) WeeklyService {
	return &weeklyServiceImpl{
		messageRepo:  messageRepo,
		reactionRepo: reactionRepo,
	}
}

func (s *weeklyServiceImpl) GetWeeklyCounts(ctx context.Context) ([]*dto.WeeklyCountDTO, error) {
	if cached, err := s.fromCache(ctx); err == nil && len(cached) == 7 {
		return cached, nil
	}

	rows, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	s.cache(ctx, rows)
	return rows, nil
}

func (s *weeklyServiceImpl) compute(ctx context.Context) ([]*dto.WeeklyCountDTO, error) {
	// 以 UTC 当日零点为基准，往回取7个自然日
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	todayTs := today.Unix()

	rows := make([]*dto.WeeklyCountDTO, 7)

	// 每一天的计数相互独立，并发查询
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 7; i++ {
		g.Go(func() error {
			dayStart := todayTs - int64(i)*secondsInDay
			dayEnd := dayStart + secondsInDay
			fromTs := strconv.FormatInt(dayStart, 10)
			toTs := strconv.FormatInt(dayEnd, 10)

			msgCount, err := s.messageRepo.CountBetweenEpoch(gctx, fromTs, toTs)
			if err != nil {
				return err
			}
			reactCount, err := s.reactionRepo.CountBetweenEpoch(gctx, fromTs, toTs)
			if err != nil {
				return err
			}

			// 行序从旧到新
			rows[6-i] = &dto.WeeklyCountDTO{
				Week:          weekLabel(time.Unix(dayStart, 0).UTC()),
				MessageCount:  int(msgCount),
				ReactionCount: int(reactCount),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *weeklyServiceImpl) fromCache(ctx context.Context) ([]*dto.WeeklyCountDTO, error) {
	list, err := redis.GetList(ctx, consts.WeeklyCountKey)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	rows := make([]*dto.WeeklyCountDTO, 0, len(list))
	for _, v := range list {
		var row *dto.WeeklyCountDTO
		if err := json.Unmarshal([]byte(v), &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *weeklyServiceImpl) cache(ctx context.Context, rows []*dto.WeeklyCountDTO) {
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return
		}
		values = append(values, string(data))
	}

	// 计算距离午夜的时间，提前5分钟过期
	expiration := untilMidnight(time.Now()) - time.Minute*5
	if expiration < 0 {
		return
	}
	_ = redis.SetListWithExpiration(ctx, consts.WeeklyCountKey, values, expiration)
}

// weekLabel "Mon: 2026-01-05" 形式的桶标签
func weekLabel(day time.Time) string {
	return day.Format("Mon") + ": " + day.Format("2006-01-02")
}

func untilMidnight(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return midnight.Sub(now)
}
