package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type InteractivityHandler struct {
	interactivitySvc service.InteractivityService
}

func NewInteractivityHandler(interactivitySvc service.InteractivityService) *InteractivityHandler {
	return &InteractivityHandler{
		interactivitySvc: interactivitySvc,
	}
}

func (s *InteractivityHandler) GetList(c *gin.Context) {
	var q dto.ListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	rows, total, hasNextPage, err := s.interactivitySvc.GetList(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, rows, total, hasNextPage)
}

func (s *InteractivityHandler) GetActiveList(c *gin.Context) {
	var q dto.ListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	rows, total, hasNextPage, err := s.interactivitySvc.GetActiveList(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, rows, total, hasNextPage)
}

func (s *InteractivityHandler) GetTimeline(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var q dto.TimelineQueryDTO
	if err = c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	stats, err := s.interactivitySvc.GetTimeline(c.Request.Context(), userID, q.Timespan)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Item(c, stats)
}
