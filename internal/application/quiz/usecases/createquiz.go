package usecases

import (
	"context"

	"wordnest/internal/domain/lesson"
	"wordnest/internal/domain/quiz"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type QuestionInput struct {
	Prompt      string
	Choices     []string
	AnswerIndex int
}

type CreateQuizCommand struct {
	LessonID  uint
	Title     string
	Questions []QuestionInput
}

type CreateQuizUseCase struct {
	quizRepo   quiz.Repository
	lessonRepo lesson.Repository
	logger     logger.Interface
}

func NewCreateQuizUseCase(quizRepo quiz.Repository, lessonRepo lesson.Repository, logger logger.Interface) *CreateQuizUseCase {
	return &CreateQuizUseCase{quizRepo: quizRepo, lessonRepo: lessonRepo, logger: logger}
}

func (uc *CreateQuizUseCase) Execute(ctx context.Context, cmd CreateQuizCommand) (*quiz.Quiz, error) {
	owner, err := uc.lessonRepo.GetByID(ctx, cmd.LessonID)
	if err != nil {
		uc.logger.Errorw("failed to load lesson for quiz", "error", err, "lesson_id", cmd.LessonID)
		return nil, apperrors.NewInternalError("failed to create quiz")
	}
	if owner == nil {
		return nil, apperrors.NewNotFoundError("lesson")
	}

	q := &quiz.Quiz{
		LessonID: cmd.LessonID,
		Title:    cmd.Title,
	}
	for i, input := range cmd.Questions {
		q.Questions = append(q.Questions, &quiz.Question{
			Prompt:      input.Prompt,
			Choices:     input.Choices,
			AnswerIndex: input.AnswerIndex,
			Position:    i,
		})
	}

	if err := q.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.quizRepo.CreateQuiz(ctx, q); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create quiz", "error", err, "lesson_id", cmd.LessonID)
		return nil, apperrors.NewInternalError("failed to create quiz")
	}

	uc.logger.Infow("quiz created", "quiz_id", q.ID, "lesson_id", q.LessonID)
	return q, nil
}
