package dto

// SlackInviteDTO 邀请用户进入工作区
type SlackInviteDTO struct {
	Email      string   `json:"email" binding:"required,email"`
	ChannelIDs []string `json:"channel_ids" binding:"required,min=1"`
	TeamID     string   `json:"team_id"`
}

// SlackMessageDTO 向频道发送消息
type SlackMessageDTO struct {
	Channel string `json:"channel" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

// SlackOkDTO Slack 调用结果
type SlackOkDTO struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
