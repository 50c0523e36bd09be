package model

import "time"

// File 文件上传事件
type File struct {
	ID        uint64  `gorm:"primaryKey"`
	UserID    uint64  `gorm:"index;not null"`
	Name      *string `gorm:"type:varchar(255)"`
	Mimetype  *string `gorm:"type:varchar(100)"`
	Timestamp string  `gorm:"type:varchar(20);index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (File) TableName() string {
	return "files"
}
