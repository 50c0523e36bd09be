package api

import "Pulse/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	MessageHandler       *handler.MessageHandler
	CountHandler         *handler.CountHandler
	InteractivityHandler *handler.InteractivityHandler
	WeeklyHandler        *handler.WeeklyHandler
	TriviaHandler        *handler.TriviaHandler
	RepositoryHandler    *handler.RepositoryHandler
	CommitHandler        *handler.CommitHandler
	SlackHandler         *handler.SlackHandler
}
