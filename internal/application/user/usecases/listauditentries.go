package usecases

import (
	"context"

	"wordnest/internal/domain/audit"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type ListAuditEntriesCommand struct {
	ActorID uint
	Limit   int
}

type ListAuditEntriesUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListAuditEntriesUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditEntriesUseCase {
	return &ListAuditEntriesUseCase{auditRepo: auditRepo, logger: logger}
}

func (uc *ListAuditEntriesUseCase) Execute(ctx context.Context, cmd ListAuditEntriesCommand) ([]*audit.Entry, error) {
	if cmd.ActorID == 0 {
		return nil, apperrors.NewValidationError("actor id is required")
	}
	limit := cmd.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	entries, err := uc.auditRepo.ListByActor(ctx, cmd.ActorID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err, "actor_id", cmd.ActorID)
		return nil, apperrors.NewInternalError("failed to list audit entries")
	}
	return entries, nil
}
