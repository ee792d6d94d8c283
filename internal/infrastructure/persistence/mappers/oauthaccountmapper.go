package mappers

import (
	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/mapper"
)

// OAuthAccountMapper converts between OAuth account entities and models.
type OAuthAccountMapper struct{}

func NewOAuthAccountMapper() *OAuthAccountMapper {
	return &OAuthAccountMapper{}
}

func (m *OAuthAccountMapper) ToEntity(model *models.OAuthAccountModel) *user.OAuthAccount {
	if model == nil {
		return nil
	}
	return &user.OAuthAccount{
		ID:             model.ID,
		UserID:         model.UserID,
		Provider:       model.Provider,
		ProviderUserID: model.ProviderUserID,
		ProviderEmail:  model.ProviderEmail,
		LastLoginAt:    model.LastLoginAt,
		LoginCount:     model.LoginCount,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func (m *OAuthAccountMapper) ToModel(entity *user.OAuthAccount) *models.OAuthAccountModel {
	if entity == nil {
		return nil
	}
	return &models.OAuthAccountModel{
		ID:             entity.ID,
		UserID:         entity.UserID,
		Provider:       entity.Provider,
		ProviderUserID: entity.ProviderUserID,
		ProviderEmail:  entity.ProviderEmail,
		LastLoginAt:    entity.LastLoginAt,
		LoginCount:     entity.LoginCount,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}
}

func (m *OAuthAccountMapper) ToEntities(accountModels []*models.OAuthAccountModel) []*user.OAuthAccount {
	return mapper.MapSlicePtr(accountModels, m.ToEntity)
}
