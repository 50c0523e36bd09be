package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type CommitHandler struct {
	commitSvc service.CommitService
}

func NewCommitHandler(commitSvc service.CommitService) *CommitHandler {
	return &CommitHandler{
		commitSvc: commitSvc,
	}
}

func (s *CommitHandler) GetCommitterCounts(c *gin.Context) {
	var q dto.CommitListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	rows, total, hasNextPage, err := s.commitSvc.GetCommitterCounts(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, rows, total, hasNextPage)
}
