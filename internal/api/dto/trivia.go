package dto

// TriviaCardDTO 趣味统计卡片：窗口内某关键词命中最多的作者及一条随机示例
type TriviaCardDTO struct {
	UserID                uint64  `json:"userId"`
	UserName              *string `json:"userName"`
	ProfileImage          string  `json:"profileImage"`
	MessageCount          int     `json:"messageCount"`
	RandomLine            string  `json:"randomLine"`
	RandomLineChannelID   string  `json:"randomLineChannelId"`
	RandomLineChannelName string  `json:"randomLineChannelName"`
	RandomLineTimestamp   string  `json:"randomLineTimestamp"`
}
