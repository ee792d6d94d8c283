package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"

	"wordnest/internal/domain/audit"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/mapper"
)

// AuditLogMapper converts between audit entries and models.
type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(model *models.AuditLogModel) *audit.Entry {
	if model == nil {
		return nil
	}
	return &audit.Entry{
		ID:         model.ID,
		ActorID:    model.ActorID,
		Action:     model.Action,
		EntityType: model.EntityType,
		EntityID:   model.EntityID,
		Before:     json.RawMessage(model.Before),
		After:      json.RawMessage(model.After),
		CreatedAt:  model.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(entry *audit.Entry) *models.AuditLogModel {
	if entry == nil {
		return nil
	}
	return &models.AuditLogModel{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Before:     datatypes.JSON(entry.Before),
		After:      datatypes.JSON(entry.After),
		CreatedAt:  entry.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(logModels []*models.AuditLogModel) []*audit.Entry {
	return mapper.MapSlicePtr(logModels, m.ToEntity)
}
