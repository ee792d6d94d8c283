// Package usecases holds the quiz operations. A quiz only opens once its
// lesson is completed, and answer keys never leave the server.
package usecases

import (
	"context"

	"wordnest/internal/domain/lesson"
	"wordnest/internal/domain/quiz"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type GetQuizCommand struct {
	LessonSlug string
	UserID     uint
}

// QuestionView is a question with the answer key stripped.
type QuestionView struct {
	ID      uint
	Prompt  string
	Choices []string
}

type QuizView struct {
	ID        uint
	LessonID  uint
	Title     string
	Questions []*QuestionView
}

type GetQuizUseCase struct {
	quizRepo   quiz.Repository
	lessonRepo lesson.Repository
	logger     logger.Interface
}

func NewGetQuizUseCase(quizRepo quiz.Repository, lessonRepo lesson.Repository, logger logger.Interface) *GetQuizUseCase {
	return &GetQuizUseCase{quizRepo: quizRepo, lessonRepo: lessonRepo, logger: logger}
}

func (uc *GetQuizUseCase) Execute(ctx context.Context, cmd GetQuizCommand) (*QuizView, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewUnauthenticatedError()
	}

	found, err := uc.lessonRepo.GetBySlug(ctx, cmd.LessonSlug)
	if err != nil {
		uc.logger.Errorw("failed to load lesson for quiz", "error", err, "slug", cmd.LessonSlug)
		return nil, apperrors.NewInternalError("failed to load quiz")
	}
	if found == nil || !found.Published {
		return nil, apperrors.NewNotFoundError("lesson")
	}

	completed, err := uc.lessonRepo.IsCompleted(ctx, cmd.UserID, found.ID)
	if err != nil {
		uc.logger.Errorw("failed to check lesson completion", "error", err, "lesson_id", found.ID)
		return nil, apperrors.NewInternalError("failed to load quiz")
	}
	if !completed {
		return nil, apperrors.NewValidationError("complete the lesson before taking its quiz")
	}

	q, err := uc.quizRepo.GetByLessonID(ctx, found.ID)
	if err != nil {
		uc.logger.Errorw("failed to load quiz", "error", err, "lesson_id", found.ID)
		return nil, apperrors.NewInternalError("failed to load quiz")
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("quiz")
	}

	view := &QuizView{
		ID:        q.ID,
		LessonID:  q.LessonID,
		Title:     q.Title,
		Questions: make([]*QuestionView, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		view.Questions = append(view.Questions, &QuestionView{
			ID:      question.ID,
			Prompt:  question.Prompt,
			Choices: question.Choices,
		})
	}
	return view, nil
}
