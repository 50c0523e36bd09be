package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type RepositoryHandler struct {
	repositorySvc service.RepositoryService
}

func NewRepositoryHandler(repositorySvc service.RepositoryService) *RepositoryHandler {
	return &RepositoryHandler{
		repositorySvc: repositorySvc,
	}
}

func (s *RepositoryHandler) GetRepositories(c *gin.Context) {
	var q dto.RepoListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	rows, total, hasNextPage, err := s.repositorySvc.GetRepositories(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, rows, total, hasNextPage)
}
