package model

import "time"

// Channel Slack 频道
type Channel struct {
	ID        uint64 `gorm:"primaryKey"`
	SlackID   string `gorm:"type:varchar(20);uniqueIndex:idx_channel_slack_id"`
	Name      string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

func (Channel) TableName() string {
	return "channels"
}
