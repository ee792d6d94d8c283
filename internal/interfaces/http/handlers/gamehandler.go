package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wordnest/internal/application/game/usecases"
	"wordnest/internal/interfaces/http/middleware"
	"wordnest/internal/shared/utils"
)

type GameHandler struct {
	submitUC *usecases.SubmitScoreUseCase
}

func NewGameHandler(submitUC *usecases.SubmitScoreUseCase) *GameHandler {
	return &GameHandler{submitUC: submitUC}
}

type submitScoreRequest struct {
	Kind   string `json:"kind" binding:"required" validate:"required,oneof=flashcards word_match spelling"`
	Points int    `json:"points" validate:"min=0,max=10000"`
}

func (h *GameHandler) SubmitScore(c *gin.Context) {
	var req submitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	score, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitScoreCommand{
		UserID: middleware.UserID(c),
		Kind:   req.Kind,
		Points: req.Points,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "score recorded", gin.H{
		"id":     score.ID,
		"kind":   score.Kind,
		"points": score.Points,
	})
}
