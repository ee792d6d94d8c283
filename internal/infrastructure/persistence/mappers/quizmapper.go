package mappers

import (
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/datatypes"

	"wordnest/internal/domain/quiz"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/mapper"
)

// QuizMapper converts between quiz entities and models. Question choices
// round-trip through a JSON column.
type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(model *models.QuizModel) (*quiz.Quiz, error) {
	if model == nil {
		return nil, nil
	}

	questions := make([]*quiz.Question, 0, len(model.Questions))
	for i := range model.Questions {
		question, err := m.questionToEntity(&model.Questions[i])
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	sort.Slice(questions, func(i, j int) bool {
		return questions[i].Position < questions[j].Position
	})

	return &quiz.Quiz{
		ID:        model.ID,
		LessonID:  model.LessonID,
		Title:     model.Title,
		Questions: questions,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func (m *QuizMapper) ToModel(entity *quiz.Quiz) (*models.QuizModel, error) {
	if entity == nil {
		return nil, nil
	}

	questionModels := make([]models.QuizQuestionModel, 0, len(entity.Questions))
	for _, question := range entity.Questions {
		choices, err := json.Marshal(question.Choices)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal question choices: %w", err)
		}
		questionModels = append(questionModels, models.QuizQuestionModel{
			ID:          question.ID,
			QuizID:      entity.ID,
			Prompt:      question.Prompt,
			Choices:     datatypes.JSON(choices),
			AnswerIndex: question.AnswerIndex,
			Position:    question.Position,
		})
	}

	return &models.QuizModel{
		ID:        entity.ID,
		LessonID:  entity.LessonID,
		Title:     entity.Title,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
		Questions: questionModels,
	}, nil
}

func (m *QuizMapper) questionToEntity(model *models.QuizQuestionModel) (*quiz.Question, error) {
	var choices []string
	if len(model.Choices) > 0 {
		if err := json.Unmarshal(model.Choices, &choices); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question choices: %w", err)
		}
	}
	return &quiz.Question{
		ID:          model.ID,
		QuizID:      model.QuizID,
		Prompt:      model.Prompt,
		Choices:     choices,
		AnswerIndex: model.AnswerIndex,
		Position:    model.Position,
	}, nil
}

func (m *QuizMapper) AttemptToEntity(model *models.QuizAttemptModel) *quiz.Attempt {
	if model == nil {
		return nil
	}
	return &quiz.Attempt{
		ID:        model.ID,
		UserID:    model.UserID,
		QuizID:    model.QuizID,
		Score:     model.Score,
		Total:     model.Total,
		CreatedAt: model.CreatedAt,
	}
}

func (m *QuizMapper) AttemptToModel(entity *quiz.Attempt) *models.QuizAttemptModel {
	if entity == nil {
		return nil
	}
	return &models.QuizAttemptModel{
		ID:        entity.ID,
		UserID:    entity.UserID,
		QuizID:    entity.QuizID,
		Score:     entity.Score,
		Total:     entity.Total,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *QuizMapper) AttemptsToEntities(attemptModels []*models.QuizAttemptModel) []*quiz.Attempt {
	return mapper.MapSlicePtr(attemptModels, m.AttemptToEntity)
}
