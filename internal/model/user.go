package model

import (
	"time"
)

// User Slack 工作区成员，由外部同步进程写入，聚合侧只读
type User struct {
	ID          uint64  `gorm:"primaryKey"`
	SlackID     string  `gorm:"type:varchar(20);uniqueIndex:idx_slack_id"`
	DisplayName *string `gorm:"type:varchar(100)"`
	RealName    *string `gorm:"type:varchar(100)"`
	FirstName   *string `gorm:"type:varchar(100)"`
	LastName    *string `gorm:"type:varchar(100)"`
	AvatarURL   *string `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}

// DashboardName 看板展示名：displayName 优先，其次 realName，都没有返回 nil
func (u *User) DashboardName() *string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return u.DisplayName
	}
	if u.RealName != nil && *u.RealName != "" {
		return u.RealName
	}
	return nil
}

// FullName 拼接 firstName + lastName，都为空返回 nil
func (u *User) FullName() *string {
	first := ""
	last := ""
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	full := first
	if last != "" {
		if full != "" {
			full += " "
		}
		full += last
	}
	if full == "" {
		return nil
	}
	return &full
}
