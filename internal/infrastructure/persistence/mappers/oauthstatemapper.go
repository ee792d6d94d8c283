package mappers

import (
	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/persistence/models"
)

// OAuthStateMapper converts between OAuth state entities and models.
type OAuthStateMapper struct{}

func NewOAuthStateMapper() *OAuthStateMapper {
	return &OAuthStateMapper{}
}

func (m *OAuthStateMapper) ToEntity(model *models.OAuthStateModel) *user.OAuthState {
	if model == nil {
		return nil
	}
	return &user.OAuthState{
		Value:      model.Value,
		Provider:   model.Provider,
		Mode:       model.Mode,
		UserID:     model.UserID,
		Redirect:   model.Redirect,
		CreatedAt:  model.CreatedAt,
		ExpiresAt:  model.ExpiresAt,
		ConsumedAt: model.ConsumedAt,
	}
}

func (m *OAuthStateMapper) ToModel(entity *user.OAuthState) *models.OAuthStateModel {
	if entity == nil {
		return nil
	}
	return &models.OAuthStateModel{
		Value:      entity.Value,
		Provider:   entity.Provider,
		Mode:       entity.Mode,
		UserID:     entity.UserID,
		Redirect:   entity.Redirect,
		CreatedAt:  entity.CreatedAt,
		ExpiresAt:  entity.ExpiresAt,
		ConsumedAt: entity.ConsumedAt,
	}
}
