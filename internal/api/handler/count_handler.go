package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type CountHandler struct {
	countSvc service.CountService
}

func NewCountHandler(countSvc service.CountService) *CountHandler {
	return &CountHandler{
		countSvc: countSvc,
	}
}

func (s *CountHandler) GetMessageCounts(c *gin.Context) {
	var q dto.ListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	rows, total, err := s.countSvc.GetMessageCounts(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, rows, total, q.HasNextPage(int(total)))
}

func (s *CountHandler) GetReactionCounts(c *gin.Context) {
	var q dto.ListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	rows, total, err := s.countSvc.GetReactionCounts(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, rows, total, q.HasNextPage(int(total)))
}

func (s *CountHandler) GetFileCounts(c *gin.Context) {
	var q dto.ListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	rows, total, err := s.countSvc.GetFileCounts(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, rows, total, q.HasNextPage(int(total)))
}
