package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type SlackHandler struct {
	slackSvc service.SlackService
}

func NewSlackHandler(slackSvc service.SlackService) *SlackHandler {
	return &SlackHandler{
		slackSvc: slackSvc,
	}
}

func (s *SlackHandler) InviteUser(c *gin.Context) {
	var req dto.SlackInviteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.slackSvc.InviteUser(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, result)
}

func (s *SlackHandler) PostMessage(c *gin.Context) {
	var req dto.SlackMessageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.slackSvc.PostMessage(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, result)
}
