package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wordnest/internal/domain/audit"
	"wordnest/internal/infrastructure/persistence/mappers"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/logger"
)

// AuditLogRepository implements the append-only audit log store.
type AuditLogRepository struct {
	db     *gorm.DB
	mapper *mappers.AuditLogMapper
	logger logger.Interface
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
		logger: logger,
	}
}

// Insert appends an audit entry
func (r *AuditLogRepository) Insert(ctx context.Context, entry *audit.Entry) error {
	model := r.mapper.ToModel(entry)

	if err := dbFor(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to insert audit entry",
			"actor_id", entry.ActorID, "action", entry.Action, "error", err)
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	entry.ID = model.ID
	return nil
}

// ListByActor returns an actor's entries, newest first
func (r *AuditLogRepository) ListByActor(ctx context.Context, actorID uint, limit int) ([]*audit.Entry, error) {
	var entryModels []*models.AuditLogModel

	query := dbFor(ctx, r.db).
		Where("actor_id = ?", actorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		r.logger.Errorw("failed to list audit entries", "actor_id", actorID, "error", err)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	return r.mapper.ToEntities(entryModels), nil
}
