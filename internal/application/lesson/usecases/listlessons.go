// Package usecases holds the lesson catalog operations.
package usecases

import (
	"context"

	"wordnest/internal/domain/lesson"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type ListLessonsCommand struct {
	// UserID is zero for anonymous browsing; completion flags are only
	// filled for signed-in students.
	UserID uint
}

// LessonSummary is one catalog row. The body stays behind the detail
// endpoint.
type LessonSummary struct {
	ID        uint
	Slug      string
	Title     string
	Language  string
	Position  int
	Completed bool
}

type ListLessonsUseCase struct {
	lessonRepo lesson.Repository
	logger     logger.Interface
}

func NewListLessonsUseCase(lessonRepo lesson.Repository, logger logger.Interface) *ListLessonsUseCase {
	return &ListLessonsUseCase{lessonRepo: lessonRepo, logger: logger}
}

func (uc *ListLessonsUseCase) Execute(ctx context.Context, cmd ListLessonsCommand) ([]*LessonSummary, error) {
	lessons, err := uc.lessonRepo.ListPublished(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list lessons", "error", err)
		return nil, apperrors.NewInternalError("failed to list lessons")
	}

	completed := map[uint]bool{}
	if cmd.UserID != 0 {
		progress, err := uc.lessonRepo.ListCompleted(ctx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to load lesson progress", "error", err, "user_id", cmd.UserID)
			return nil, apperrors.NewInternalError("failed to list lessons")
		}
		for _, p := range progress {
			completed[p.LessonID] = true
		}
	}

	summaries := make([]*LessonSummary, 0, len(lessons))
	for _, l := range lessons {
		summaries = append(summaries, &LessonSummary{
			ID:        l.ID,
			Slug:      l.Slug,
			Title:     l.Title,
			Language:  l.Language,
			Position:  l.Position,
			Completed: completed[l.ID],
		})
	}
	return summaries, nil
}
