package usecases

import (
	"context"

	"wordnest/internal/domain/lesson"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
	"wordnest/internal/shared/services/markdown"
)

type GetLessonCommand struct {
	Slug   string
	UserID uint
}

type GetLessonResult struct {
	Lesson *lesson.Lesson
	// BodyHTML is the markdown body rendered and sanitized for embedding.
	BodyHTML  string
	Completed bool
}

type GetLessonUseCase struct {
	lessonRepo lesson.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewGetLessonUseCase(lessonRepo lesson.Repository, renderer markdown.Renderer, logger logger.Interface) *GetLessonUseCase {
	return &GetLessonUseCase{lessonRepo: lessonRepo, renderer: renderer, logger: logger}
}

func (uc *GetLessonUseCase) Execute(ctx context.Context, cmd GetLessonCommand) (*GetLessonResult, error) {
	if cmd.Slug == "" {
		return nil, apperrors.NewValidationError("lesson slug is required")
	}

	found, err := uc.lessonRepo.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to load lesson", "error", err, "slug", cmd.Slug)
		return nil, apperrors.NewInternalError("failed to load lesson")
	}
	if found == nil || !found.Published {
		return nil, apperrors.NewNotFoundError("lesson")
	}

	html, err := uc.renderer.ToHTMLSanitized(found.Body)
	if err != nil {
		uc.logger.Errorw("failed to render lesson body", "error", err, "lesson_id", found.ID)
		return nil, apperrors.NewInternalError("failed to render lesson")
	}

	completed := false
	if cmd.UserID != 0 {
		completed, err = uc.lessonRepo.IsCompleted(ctx, cmd.UserID, found.ID)
		if err != nil {
			uc.logger.Warnw("failed to load completion state", "error", err, "lesson_id", found.ID)
			completed = false
		}
	}

	return &GetLessonResult{
		Lesson:    found,
		BodyHTML:  html,
		Completed: completed,
	}, nil
}
