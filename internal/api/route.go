package api

import (
	"Pulse/internal/api/middleware"
	"Pulse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware())
		{
			// Slack 消息明细与 CRUD
			authGroup.GET("/messages", group.MessageHandler.GetList)
			authGroup.GET("/messages/:id", group.MessageHandler.GetOne)

			// 单数据源聚合
			authGroup.GET("/messages-count", group.CountHandler.GetMessageCounts)
			authGroup.GET("/reactions-count", group.CountHandler.GetReactionCounts)
			authGroup.GET("/files-count", group.CountHandler.GetFileCounts)

			// 跨数据源合并视图
			authGroup.GET("/interactivity", group.InteractivityHandler.GetList)
			authGroup.GET("/interactivity/active", group.InteractivityHandler.GetActiveList)
			authGroup.GET("/interactivity/:id", group.InteractivityHandler.GetTimeline)

			// 固定窗口小部件
			authGroup.GET("/weekly-count", group.WeeklyHandler.GetWeeklyCounts)
			authGroup.GET("/trivia", group.TriviaHandler.GetCards)

			// GitHub 侧
			authGroup.GET("/repositories", group.RepositoryHandler.GetRepositories)
			authGroup.GET("/commits-count-of-users", group.CommitHandler.GetCommitterCounts)

			// 需要 admin 角色的写操作
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("/messages", group.MessageHandler.Create)
				adminGroup.PATCH("/messages/:id", group.MessageHandler.Update)
				adminGroup.DELETE("/messages/:id", group.MessageHandler.Delete)

				adminGroup.POST("/slack/invite", group.SlackHandler.InviteUser)
				adminGroup.POST("/slack/message", group.SlackHandler.PostMessage)
			}
		}
	}

	return r
}
