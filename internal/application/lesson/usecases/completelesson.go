package usecases

import (
	"context"

	"wordnest/internal/domain/lesson"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type CompleteLessonCommand struct {
	UserID uint
	Slug   string
}

type CompleteLessonUseCase struct {
	lessonRepo lesson.Repository
	logger     logger.Interface
}

func NewCompleteLessonUseCase(lessonRepo lesson.Repository, logger logger.Interface) *CompleteLessonUseCase {
	return &CompleteLessonUseCase{lessonRepo: lessonRepo, logger: logger}
}

// Execute marks a lesson done for a student. Completing an already
// completed lesson is a no-op, not an error.
func (uc *CompleteLessonUseCase) Execute(ctx context.Context, cmd CompleteLessonCommand) error {
	if cmd.UserID == 0 {
		return apperrors.NewUnauthenticatedError()
	}

	found, err := uc.lessonRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to load lesson", "error", err, "slug", cmd.Slug)
		return apperrors.NewInternalError("failed to complete lesson")
	}
	if found == nil || !found.Published {
		return apperrors.NewNotFoundError("lesson")
	}

	if err := uc.lessonRepo.MarkCompleted(ctx, cmd.UserID, found.ID); err != nil {
		uc.logger.Errorw("failed to mark lesson completed", "error", err, "lesson_id", found.ID, "user_id", cmd.UserID)
		return apperrors.NewInternalError("failed to complete lesson")
	}

	uc.logger.Infow("lesson completed", "lesson_id", found.ID, "user_id", cmd.UserID)
	return nil
}
