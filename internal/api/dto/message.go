package dto

import "time"

// MessageDTO 消息明细
type MessageDTO struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Type        string    `json:"type"`
	Timestamp   string    `json:"timestamp"`
	Text        *string   `json:"text"`
	ChannelID   uint64    `json:"channelId"`
	ChannelType string    `json:"channelType"`
	EventTs     string    `json:"eventTs"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ParentID    *string   `json:"parentId"`
	ThreadTs    *string   `json:"threadTs"`
}

// CreateMessageDTO 新增消息请求体
type CreateMessageDTO struct {
	UserID      uint64  `json:"userId" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Timestamp   string  `json:"timestamp" binding:"required"`
	Text        *string `json:"text"`
	ChannelID   uint64  `json:"channelId" binding:"required"`
	ChannelType string  `json:"channelType" binding:"required"`
	EventTs     string  `json:"eventTs" binding:"required"`
	ParentID    *string `json:"parentId"`
	ThreadTs    *string `json:"threadTs"`
}

// UpdateMessageDTO 修改消息请求体，字段均可选
type UpdateMessageDTO struct {
	UserID      *uint64 `json:"userId"`
	Type        *string `json:"type"`
	Timestamp   *string `json:"timestamp"`
	Text        *string `json:"text"`
	ChannelID   *uint64 `json:"channelId"`
	ChannelType *string `json:"channelType"`
	EventTs     *string `json:"eventTs"`
	ParentID    *string `json:"parentId"`
	ThreadTs    *string `json:"threadTs"`
}

// DeletedDTO 删除结果
type DeletedDTO struct {
	ID uint64 `json:"id"`
}
