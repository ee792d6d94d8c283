package usecases

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/language"

	"wordnest/internal/domain/lesson"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// UpdateLessonCommand carries partial edits. Nil fields are left alone.
type UpdateLessonCommand struct {
	LessonID  uint
	Title     *string
	Language  *string
	Body      *string
	Position  *int
	Published *bool
}

type UpdateLessonUseCase struct {
	lessonRepo lesson.Repository
	logger     logger.Interface
}

func NewUpdateLessonUseCase(lessonRepo lesson.Repository, logger logger.Interface) *UpdateLessonUseCase {
	return &UpdateLessonUseCase{lessonRepo: lessonRepo, logger: logger}
}

func (uc *UpdateLessonUseCase) Execute(ctx context.Context, cmd UpdateLessonCommand) (*lesson.Lesson, error) {
	found, err := uc.lessonRepo.GetByID(ctx, cmd.LessonID)
	if err != nil {
		uc.logger.Errorw("failed to load lesson", "error", err, "lesson_id", cmd.LessonID)
		return nil, apperrors.NewInternalError("failed to update lesson")
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError("lesson")
	}

	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title cannot be empty")
		}
		found.Title = title
	}
	if cmd.Language != nil {
		tag, err := language.Parse(*cmd.Language)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid language tag: " + *cmd.Language)
		}
		found.Language = tag.String()
	}
	if cmd.Body != nil {
		found.Body = *cmd.Body
	}
	if cmd.Position != nil {
		found.Position = *cmd.Position
	}
	if cmd.Published != nil {
		found.Published = *cmd.Published
	}
	found.UpdatedAt = time.Now().UTC()

	if err := uc.lessonRepo.Update(ctx, found); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update lesson", "error", err, "lesson_id", found.ID)
		return nil, apperrors.NewInternalError("failed to update lesson")
	}

	uc.logger.Infow("lesson updated", "lesson_id", found.ID)
	return found, nil
}
