package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wordnest/internal/application/user/usecases"
	"wordnest/internal/shared/utils"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	listUC *usecases.ListAuditEntriesUseCase
}

func NewAuditHandler(listUC *usecases.ListAuditEntriesUseCase) *AuditHandler {
	return &AuditHandler{listUC: listUC}
}

func (h *AuditHandler) ListByActor(c *gin.Context) {
	actorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid actor id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.listUC.Execute(c.Request.Context(), usecases.ListAuditEntriesCommand{
		ActorID: uint(actorID),
		Limit:   limit,
	})
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		items = append(items, gin.H{
			"id":          entry.ID,
			"actor_id":    entry.ActorID,
			"action":      entry.Action,
			"entity_type": entry.EntityType,
			"entity_id":   entry.EntityID,
			"before":      entry.Before,
			"after":       entry.After,
			"created_at":  entry.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"entries": items})
}
