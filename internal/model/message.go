package model

import "time"

// Message Slack 消息事件，追加写入，聚合侧不修改。
// Timestamp/EventTs 为秒级时间戳字符串，CreatedAt 为入库时间。
type Message struct {
	ID          uint64  `gorm:"primaryKey"`
	UserID      uint64  `gorm:"index;not null"`
	Type        string  `gorm:"type:varchar(30);not null"`
	Timestamp   string  `gorm:"type:varchar(20);index;not null"`
	Text        *string `gorm:"type:text"`
	ChannelID   uint64  `gorm:"index;not null;uniqueIndex:idx_channel_event"`
	ChannelType string  `gorm:"type:varchar(30);not null"`
	EventTs     string  `gorm:"type:varchar(20);index;not null;uniqueIndex:idx_channel_event"`
	ParentID    *string `gorm:"type:varchar(20)"`
	ThreadTs    *string `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Channel Channel `gorm:"foreignKey:ChannelID;references:ID"`
}

func (Message) TableName() string {
	return "messages"
}
