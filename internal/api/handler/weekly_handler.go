package handler

import (
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type WeeklyHandler struct {
	weeklySvc service.WeeklyService
}

func NewWeeklyHandler(weeklySvc service.WeeklyService) *WeeklyHandler {
	return &WeeklyHandler{
		weeklySvc: weeklySvc,
	}
}

func (s *WeeklyHandler) GetWeeklyCounts(c *gin.Context) {
	rows, err := s.weeklySvc.GetWeeklyCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, rows, int64(len(rows)))
}
