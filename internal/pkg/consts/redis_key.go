package consts

const (
	// WeeklyCountKey 最近7天每日消息/表情统计缓存
	WeeklyCountKey = "pulse:weekly_count"
	// TriviaCardKey 趣味统计卡片缓存，后接关键词
	TriviaCardKey = "pulse:trivia:"
)
