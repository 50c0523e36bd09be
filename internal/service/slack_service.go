package service

import (
	"Pulse/internal/api/config"
	"Pulse/internal/api/dto"
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

type SlackService interface {
	// InviteUser 邀请成员进入工作区，受限成员身份
	InviteUser(ctx context.Context, req *dto.SlackInviteDTO) (*dto.SlackOkDTO, error)
	// PostMessage 向频道发送一条消息
	PostMessage(ctx context.Context, req *dto.SlackMessageDTO) (*dto.SlackOkDTO, error)
}

type slackServiceImpl struct {
	client *resty.Client
	teamID string
}

func NewSlackService(cfg *config.SlackConfig) SlackService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.UserToken).
		SetTimeout(10 * time.Second)
	return &slackServiceImpl{
		client: client,
		teamID: cfg.TeamID,
	}
}

func (s *slackServiceImpl) InviteUser(ctx context.Context, req *dto.SlackInviteDTO) (*dto.SlackOkDTO, error) {
	teamID := req.TeamID
	if teamID == "" {
		teamID = s.teamID
	}

	body := map[string]any{
		"email":       req.Email,
		"channel_ids": req.ChannelIDs,
		"team_id":     teamID,
		// 受限成员只能访问被邀请进的频道
		"is_restricted": true,
	}
	return s.call(ctx, "/admin.users.invite", body)
}

func (s *slackServiceImpl) PostMessage(ctx context.Context, req *dto.SlackMessageDTO) (*dto.SlackOkDTO, error) {
	body := map[string]any{
		"channel": req.Channel,
		"text":    req.Text,
	}
	return s.call(ctx, "/chat.postMessage", body)
}

// call Slack Web API 统一出口。业务失败体现在响应体的 ok/error 字段，
// 原样透传给前端，只有传输层错误才返回 error。
func (s *slackServiceImpl) call(ctx context.Context, path string, body map[string]any) (*dto.SlackOkDTO, error) {
	result := &dto.SlackOkDTO{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		log.ErrorContext(ctx, "CallSlack", "path", path, "err", err)
		return nil, ErrSlackUpstream
	}
	if resp.IsError() {
		log.ErrorContext(ctx, "CallSlack", "path", path, "status", resp.StatusCode())
		return nil, ErrSlackUpstream
	}
	return result, nil
}
