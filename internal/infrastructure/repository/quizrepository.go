package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wordnest/internal/domain/quiz"
	"wordnest/internal/infrastructure/persistence/mappers"
	"wordnest/internal/infrastructure/persistence/models"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// QuizRepository implements the quiz repository backed by GORM.
type QuizRepository struct {
	db     *gorm.DB
	mapper *mappers.QuizMapper
	logger logger.Interface
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *gorm.DB, logger logger.Interface) quiz.Repository {
	return &QuizRepository{
		db:     db,
		mapper: mappers.NewQuizMapper(),
		logger: logger,
	}
}

// CreateQuiz inserts a quiz with its questions in one transaction
func (r *QuizRepository) CreateQuiz(ctx context.Context, entity *quiz.Quiz) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map quiz entity to model", "error", err)
		return fmt.Errorf("failed to map quiz entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("lesson already has a quiz")
		}
		r.logger.Errorw("failed to create quiz", "lesson_id", entity.LessonID, "error", err)
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	entity.ID = model.ID
	return nil
}

// GetByLessonID retrieves the quiz for a lesson, (nil, nil) when absent
func (r *QuizRepository) GetByLessonID(ctx context.Context, lessonID uint) (*quiz.Quiz, error) {
	var model models.QuizModel

	err := r.db.WithContext(ctx).
		Preload("Questions").
		Where("lesson_id = ?", lessonID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get quiz by lesson", "lesson_id", lessonID, "error", err)
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByID retrieves a quiz by ID, (nil, nil) when absent
func (r *QuizRepository) GetByID(ctx context.Context, id uint) (*quiz.Quiz, error) {
	var model models.QuizModel

	err := r.db.WithContext(ctx).
		Preload("Questions").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get quiz by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// CreateAttempt records a graded submission
func (r *QuizRepository) CreateAttempt(ctx context.Context, attempt *quiz.Attempt) error {
	model := r.mapper.AttemptToModel(attempt)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create quiz attempt",
			"user_id", attempt.UserID, "quiz_id", attempt.QuizID, "error", err)
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}

	attempt.ID = model.ID
	return nil
}

// ListAttempts returns a user's attempts, newest first
func (r *QuizRepository) ListAttempts(ctx context.Context, userID uint, limit int) ([]*quiz.Attempt, error) {
	var attemptModels []*models.QuizAttemptModel

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&attemptModels).Error; err != nil {
		r.logger.Errorw("failed to list quiz attempts", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list quiz attempts: %w", err)
	}

	return r.mapper.AttemptsToEntities(attemptModels), nil
}

// TotalScoreByUser sums quiz scores per user
func (r *QuizRepository) TotalScoreByUser(ctx context.Context) (map[uint]int64, error) {
	type row struct {
		UserID uint
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).Model(&models.QuizAttemptModel{}).
		Select("user_id, SUM(score) AS total").
		Group("user_id").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to sum quiz scores", "error", err)
		return nil, fmt.Errorf("failed to sum quiz scores: %w", err)
	}

	totals := make(map[uint]int64, len(rows))
	for _, r := range rows {
		totals[r.UserID] = r.Total
	}
	return totals, nil
}
