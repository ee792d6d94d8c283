package usecases

import (
	"context"

	"wordnest/internal/domain/lesson"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type CreateLessonCommand struct {
	Slug      string
	Title     string
	Language  string
	Body      string
	Position  int
	Published bool
}

type CreateLessonUseCase struct {
	lessonRepo lesson.Repository
	logger     logger.Interface
}

func NewCreateLessonUseCase(lessonRepo lesson.Repository, logger logger.Interface) *CreateLessonUseCase {
	return &CreateLessonUseCase{lessonRepo: lessonRepo, logger: logger}
}

func (uc *CreateLessonUseCase) Execute(ctx context.Context, cmd CreateLessonCommand) (*lesson.Lesson, error) {
	newLesson, err := lesson.NewLesson(cmd.Slug, cmd.Title, cmd.Language, cmd.Body, cmd.Position)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	newLesson.Published = cmd.Published

	if err := uc.lessonRepo.Create(ctx, newLesson); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create lesson", "error", err, "slug", newLesson.Slug)
		return nil, apperrors.NewInternalError("failed to create lesson")
	}

	uc.logger.Infow("lesson created", "lesson_id", newLesson.ID, "slug", newLesson.Slug)
	return newLesson, nil
}
