package model

import "time"

// GithubUser GitHub 库中的仓库拥有者
type GithubUser struct {
	ID             uint64 `gorm:"primaryKey"`
	GitHubUsername string `gorm:"column:github_username;type:varchar(100);not null"`
	CreatedAt      time.Time
}

func (GithubUser) TableName() string {
	return "users"
}

// Repo GitHub 仓库
type Repo struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(200);index;not null"`
	URL       string `gorm:"type:varchar(512);not null"`
	UserID    uint64 `gorm:"index;not null"`
	CreatedAt time.Time

	User    GithubUser `gorm:"foreignKey:UserID;references:ID"`
	Commits []Commit   `gorm:"foreignKey:RepoID;references:ID"`
}

func (Repo) TableName() string {
	return "repos"
}

// Commit 提交记录，作者为自由文本，不一定对应工作区成员
type Commit struct {
	ID                   uint64  `gorm:"primaryKey"`
	RepoID               uint64  `gorm:"index;not null"`
	Author               *string `gorm:"type:varchar(100);index"`
	Committer            *string `gorm:"type:varchar(100);index"`
	Message              *string `gorm:"type:text"`
	NumberOfLinesAdded   *int
	NumberOfLinesRemoved *int
	Timestamp            time.Time `gorm:"index"`
	CreatedAt            time.Time
}

func (Commit) TableName() string {
	return "commits"
}
