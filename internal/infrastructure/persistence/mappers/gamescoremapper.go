package mappers

import (
	"wordnest/internal/domain/game"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/mapper"
)

// GameScoreMapper converts between game score entities and models.
type GameScoreMapper struct{}

func NewGameScoreMapper() *GameScoreMapper {
	return &GameScoreMapper{}
}

func (m *GameScoreMapper) ToEntity(model *models.GameScoreModel) *game.Score {
	if model == nil {
		return nil
	}
	return &game.Score{
		ID:        model.ID,
		UserID:    model.UserID,
		Kind:      model.Kind,
		Points:    model.Points,
		CreatedAt: model.CreatedAt,
	}
}

func (m *GameScoreMapper) ToModel(entity *game.Score) *models.GameScoreModel {
	if entity == nil {
		return nil
	}
	return &models.GameScoreModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		Kind:      entity.Kind,
		Points:    entity.Points,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *GameScoreMapper) ToEntities(scoreModels []*models.GameScoreModel) []*game.Score {
	return mapper.MapSlicePtr(scoreModels, m.ToEntity)
}
