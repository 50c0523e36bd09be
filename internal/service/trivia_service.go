package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"math/rand"
	"regexp"
	"time"

	"github.com/goccy/go-json"
)

// mentionPattern Slack 原始文本里的用户提及，如 <@U05ABCDEF>
var mentionPattern = regexp.MustCompile(`<@([A-Z0-9]+)>`)

// sentinelUserName 窗口内没有任何命中时返回的占位行
const sentinelUserName = "no users found"

type TriviaService interface {
	// GetCards 每个关键词一张卡片：最近7天命中最多的作者及一条随机示例。
	// 没有命中时返回占位行，不报错。
	GetCards(ctx context.Context) (map[string]*dto.TriviaCardDTO, error)
	// Refresh 重算全部卡片并写入缓存，定时任务调用
	Refresh(ctx context.Context) error
}

type triviaServiceImpl struct {
	messageRepo repository.MessageRepo
	userRepo    repository.UserRepo
	keywords    []string
}

func NewTriviaService(messageRepo repository.MessageRepo, userRepo repository.UserRepo, keywords []string) TriviaService {
	return &triviaServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		keywords:    keywords,
	}
}

func (s *triviaServiceImpl) GetCards(ctx context.Context) (map[string]*dto.TriviaCardDTO, error) {
	cards := make(map[string]*dto.TriviaCardDTO, len(s.keywords))
	for _, keyword := range s.keywords {
		card := s.cardFromCache(ctx, keyword)
		if card == nil {
			computed, err := s.computeCard(ctx, keyword)
			if err != nil {
				return nil, err
			}
			s.cacheCard(ctx, keyword, computed)
			card = computed
		}
		cards[keyword] = card
	}
	return cards, nil
}

func (s *triviaServiceImpl) Refresh(ctx context.Context) error {
	for _, keyword := range s.keywords {
		// 先失效再重算，重算失败时下个请求走慢路径而不是读旧卡片
		_ = redis.DeleteKey(ctx, consts.TriviaCardKey+keyword)

		card, err := s.computeCard(ctx, keyword)
		if err != nil {
			return err
		}
		s.cacheCard(ctx, keyword, card)
	}
	return nil
}

func (s *triviaServiceImpl) computeCard(ctx context.Context, keyword string) (*dto.TriviaCardDTO, error) {
	since := time.Now().AddDate(0, 0, -7)

	counts, err := s.messageRepo.CountMatchingByUser(ctx, keyword, since)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return sentinelCard(), nil
	}

	// 计数并列时取查询返回的首行，先后顺序不作承诺
	top := counts[0]

	user, err := s.userRepo.FindByID(ctx, top.UserID)
	if err != nil {
		return nil, err
	}

	card := &dto.TriviaCardDTO{
		UserID:       top.UserID,
		MessageCount: top.Count,
	}
	if user != nil {
		card.UserName = user.DashboardName()
		if user.AvatarURL != nil {
			card.ProfileImage = *user.AvatarURL
		}
	}
	if card.UserName == nil {
		fallback := fmt.Sprintf("User %d", top.UserID)
		card.UserName = &fallback
	}

	if err = s.attachRandomLine(ctx, card, keyword, since); err != nil {
		return nil, err
	}
	return card, nil
}

// attachRandomLine 从该作者的命中消息中均匀随机取一条作为示例
func (s *triviaServiceImpl) attachRandomLine(ctx context.Context, card *dto.TriviaCardDTO, keyword string, since time.Time) error {
	matches, err := s.messageRepo.ListMatchingByUser(ctx, card.UserID, keyword, since)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return nil
	}

	pick := matches[rand.Intn(len(matches))]
	if pick.Text != nil {
		card.RandomLine = s.substituteMentions(ctx, *pick.Text)
	}
	card.RandomLineChannelID = pick.Channel.SlackID
	card.RandomLineChannelName = pick.Channel.Name
	card.RandomLineTimestamp = pick.Timestamp
	return nil
}

// substituteMentions 把原始提及标记替换为成员展示名，查不到的保持原样
func (s *triviaServiceImpl) substituteMentions(ctx context.Context, text string) string {
	return mentionPattern.ReplaceAllStringFunc(text, func(token string) string {
		slackID := mentionPattern.FindStringSubmatch(token)[1]
		user, err := s.userRepo.FindBySlackID(ctx, slackID)
		if err != nil || user == nil {
			return token
		}
		if name := user.DashboardName(); name != nil {
			return "@" + *name
		}
		return token
	})
}

// cardFromCache 缓存只是加速，读失败或内容损坏时记日志走重算，不影响请求
func (s *triviaServiceImpl) cardFromCache(ctx context.Context, keyword string) *dto.TriviaCardDTO {
	value, err := redis.GetValue(ctx, consts.TriviaCardKey+keyword)
	if err != nil {
		log.WarnContext(ctx, "read trivia cache failed", "keyword", keyword, "err", err)
		return nil
	}
	return decodeCard(value)
}

func decodeCard(value string) *dto.TriviaCardDTO {
	if value == "" {
		return nil
	}
	var card dto.TriviaCardDTO
	if err := json.Unmarshal([]byte(value), &card); err != nil {
		return nil
	}
	return &card
}

func (s *triviaServiceImpl) cacheCard(ctx context.Context, keyword string, card *dto.TriviaCardDTO) {
	data, err := json.Marshal(card)
	if err != nil {
		return
	}

	// 计算距离午夜的时间，提前5分钟过期
	expiration := untilMidnight(time.Now()) - time.Minute*5
	if expiration < 0 {
		return
	}
	_ = redis.SetWithExpiration(ctx, consts.TriviaCardKey+keyword, string(data), expiration)
}

func sentinelCard() *dto.TriviaCardDTO {
	name := sentinelUserName
	return &dto.TriviaCardDTO{
		UserID:       0,
		UserName:     &name,
		MessageCount: 0,
	}
}
