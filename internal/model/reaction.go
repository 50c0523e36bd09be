package model

import "time"

// Reaction 表情回应事件
type Reaction struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"index;not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	EventTs   string `gorm:"type:varchar(20);index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Reaction) TableName() string {
	return "reactions"
}
