package dto

// UserCountDTO 单数据源的 (作者, 计数) 行
type UserCountDTO struct {
	UserID   uint64  `json:"userId"`
	UserName *string `json:"userName"`
	Count    int     `json:"count"`
	Timespan string  `json:"timespan"`
}

// ActivityRowDTO 跨数据源合并后的互动统计行
type ActivityRowDTO struct {
	UserID        uint64  `json:"userId"`
	UserName      *string `json:"userName"`
	MessageCount  int     `json:"messageCount"`
	ReactionCount int     `json:"reactionCount"`
	FileCount     int     `json:"fileCount"`
	TotalCount    int     `json:"totalCount"`
	Timespan      string  `json:"timespan"`
}

// DailyStatDTO 单日计数桶
type DailyStatDTO struct {
	Date          string `json:"date"` // ISO 日期：2026-01-07
	MessageCount  int    `json:"messageCount"`
	ReactionCount int    `json:"reactionCount"`
	TotalCount    int    `json:"totalCount"`
}

// UserDailyStatsDTO 单用户每日时间线
type UserDailyStatsDTO struct {
	UserID     uint64          `json:"userId"`
	UserName   *string         `json:"userName"`
	DailyStats []*DailyStatDTO `json:"dailyStats"`
}

// WeeklyCountDTO 最近7天的每日全员计数行
type WeeklyCountDTO struct {
	Week          string `json:"week"` // "Mon: 2026-01-05"
	MessageCount  int    `json:"messageCount"`
	ReactionCount int    `json:"reactionCount"`
}
