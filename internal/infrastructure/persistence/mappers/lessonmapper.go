package mappers

import (
	"wordnest/internal/domain/lesson"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/mapper"
)

// LessonMapper converts between lesson entities and models.
type LessonMapper struct{}

func NewLessonMapper() *LessonMapper {
	return &LessonMapper{}
}

func (m *LessonMapper) ToEntity(model *models.LessonModel) *lesson.Lesson {
	if model == nil {
		return nil
	}
	return &lesson.Lesson{
		ID:        model.ID,
		Slug:      model.Slug,
		Title:     model.Title,
		Language:  model.Language,
		Body:      model.Body,
		Position:  model.Position,
		Published: model.Published,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *LessonMapper) ToModel(entity *lesson.Lesson) *models.LessonModel {
	if entity == nil {
		return nil
	}
	return &models.LessonModel{
		ID:        entity.ID,
		Slug:      entity.Slug,
		Title:     entity.Title,
		Language:  entity.Language,
		Body:      entity.Body,
		Position:  entity.Position,
		Published: entity.Published,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (m *LessonMapper) ToEntities(lessonModels []*models.LessonModel) []*lesson.Lesson {
	return mapper.MapSlicePtr(lessonModels, m.ToEntity)
}

func (m *LessonMapper) ProgressToEntity(model *models.LessonProgressModel) *lesson.Progress {
	if model == nil {
		return nil
	}
	return &lesson.Progress{
		ID:          model.ID,
		UserID:      model.UserID,
		LessonID:    model.LessonID,
		CompletedAt: model.CompletedAt,
	}
}

func (m *LessonMapper) ProgressToEntities(progressModels []*models.LessonProgressModel) []*lesson.Progress {
	return mapper.MapSlicePtr(progressModels, m.ProgressToEntity)
}
