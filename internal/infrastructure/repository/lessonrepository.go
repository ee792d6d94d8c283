package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wordnest/internal/domain/lesson"
	"wordnest/internal/infrastructure/persistence/mappers"
	"wordnest/internal/infrastructure/persistence/models"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/biztime"
	"wordnest/internal/shared/logger"
)

// LessonRepository implements the lesson repository backed by GORM.
type LessonRepository struct {
	db     *gorm.DB
	mapper *mappers.LessonMapper
	logger logger.Interface
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *gorm.DB, logger logger.Interface) lesson.Repository {
	return &LessonRepository{
		db:     db,
		mapper: mappers.NewLessonMapper(),
		logger: logger,
	}
}

// Create inserts a new lesson
func (r *LessonRepository) Create(ctx context.Context, entity *lesson.Lesson) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("lesson slug %q is already in use", entity.Slug))
		}
		r.logger.Errorw("failed to create lesson", "slug", entity.Slug, "error", err)
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	entity.ID = model.ID
	return nil
}

// Update persists changes to a lesson
func (r *LessonRepository) Update(ctx context.Context, entity *lesson.Lesson) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.LessonModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(fmt.Sprintf("lesson slug %q is already in use", entity.Slug))
		}
		r.logger.Errorw("failed to update lesson", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update lesson: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("lesson")
	}
	return nil
}

// GetBySlug retrieves a lesson by slug, (nil, nil) when absent
func (r *LessonRepository) GetBySlug(ctx context.Context, slug string) (*lesson.Lesson, error) {
	var model models.LessonModel

	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get lesson by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// GetByID retrieves a lesson by ID, (nil, nil) when absent
func (r *LessonRepository) GetByID(ctx context.Context, id uint) (*lesson.Lesson, error) {
	var model models.LessonModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get lesson by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// ListPublished returns published lessons ordered by position
func (r *LessonRepository) ListPublished(ctx context.Context) ([]*lesson.Lesson, error) {
	var lessonModels []*models.LessonModel

	if err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("position ASC, id ASC").
		Find(&lessonModels).Error; err != nil {
		r.logger.Errorw("failed to list published lessons", "error", err)
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	return r.mapper.ToEntities(lessonModels), nil
}

// MarkCompleted records completion. Idempotent: a second completion keeps
// the original row via ON CONFLICT DO NOTHING.
func (r *LessonRepository) MarkCompleted(ctx context.Context, userID, lessonID uint) error {
	model := &models.LessonProgressModel{
		UserID:      userID,
		LessonID:    lessonID,
		CompletedAt: biztime.NowUTC(),
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to mark lesson completed",
			"user_id", userID, "lesson_id", lessonID, "error", err)
		return fmt.Errorf("failed to mark lesson completed: %w", err)
	}
	return nil
}

// IsCompleted reports whether a user completed a lesson
func (r *LessonRepository) IsCompleted(ctx context.Context, userID, lessonID uint) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.LessonProgressModel{}).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check lesson completion",
			"user_id", userID, "lesson_id", lessonID, "error", err)
		return false, fmt.Errorf("failed to check lesson completion: %w", err)
	}

	return count > 0, nil
}

// ListCompleted returns a user's completions, oldest first
func (r *LessonRepository) ListCompleted(ctx context.Context, userID uint) ([]*lesson.Progress, error) {
	var progressModels []*models.LessonProgressModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at ASC").
		Find(&progressModels).Error; err != nil {
		r.logger.Errorw("failed to list lesson completions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list lesson completions: %w", err)
	}

	return r.mapper.ProgressToEntities(progressModels), nil
}
