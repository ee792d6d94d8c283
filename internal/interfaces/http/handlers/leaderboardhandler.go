package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wordnest/internal/application/leaderboard/usecases"
	"wordnest/internal/interfaces/http/middleware"
	"wordnest/internal/shared/utils"
)

type LeaderboardHandler struct {
	getUC *usecases.GetLeaderboardUseCase
}

func NewLeaderboardHandler(getUC *usecases.GetLeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{getUC: getUC}
}

func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetLeaderboardCommand{
		Limit:  limit,
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	rows := make([]gin.H, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, rankedRow(row))
	}

	payload := gin.H{"rows": rows}
	if result.Me != nil {
		payload["me"] = rankedRow(result.Me)
	}
	utils.SuccessResponse(c, http.StatusOK, "", payload)
}

func rankedRow(row *usecases.RankedRow) gin.H {
	return gin.H{
		"rank":    row.Rank,
		"user_id": row.UserID,
		"name":    row.Name,
		"points":  row.Points,
	}
}
