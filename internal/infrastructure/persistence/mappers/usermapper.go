package mappers

import (
	"fmt"

	"wordnest/internal/domain/user"
	vo "wordnest/internal/domain/user/valueobjects"
	"wordnest/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}
	name, err := vo.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create name value object: %w", err)
	}

	auth := &user.AuthData{
		PasswordHash:               model.PasswordHash,
		EmailVerified:              model.EmailVerified,
		EmailVerificationToken:     model.EmailVerificationToken,
		EmailVerificationExpiresAt: model.EmailVerificationExpiresAt,
	}

	return user.Reconstruct(
		model.ID,
		email,
		name,
		model.Role,
		model.AvatarURL,
		model.CreatedAt,
		model.UpdatedAt,
		auth,
	)
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:                         entity.ID(),
		Email:                      entity.Email().String(),
		Name:                       entity.Name().String(),
		Role:                       entity.Role(),
		AvatarURL:                  entity.AvatarURL(),
		PasswordHash:               entity.PasswordHash(),
		EmailVerified:              entity.EmailVerified(),
		EmailVerificationToken:     entity.EmailVerificationToken(),
		EmailVerificationExpiresAt: entity.EmailVerificationExpiresAt(),
		CreatedAt:                  entity.CreatedAt(),
		UpdatedAt:                  entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	if userModels == nil {
		return nil, nil
	}
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
