package handler

import (
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type TriviaHandler struct {
	triviaSvc service.TriviaService
}

func NewTriviaHandler(triviaSvc service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		triviaSvc: triviaSvc,
	}
}

func (s *TriviaHandler) GetCards(c *gin.Context) {
	cards, err := s.triviaSvc.GetCards(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Item(c, cards)
}
