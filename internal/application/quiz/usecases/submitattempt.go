package usecases

import (
	"context"

	"wordnest/internal/domain/lesson"
	"wordnest/internal/domain/quiz"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// PointsSink receives earned points for ranking. The Redis leaderboard
// satisfies this; a nil sink disables ranking.
type PointsSink interface {
	AddPoints(ctx context.Context, userID uint, points int64) error
}

type SubmitAttemptCommand struct {
	UserID  uint
	QuizID  uint
	Answers []int
}

type SubmitAttemptResult struct {
	Attempt *quiz.Attempt
	Correct int
	Total   int
}

type SubmitAttemptUseCase struct {
	quizRepo   quiz.Repository
	lessonRepo lesson.Repository
	points     PointsSink
	logger     logger.Interface
}

func NewSubmitAttemptUseCase(
	quizRepo quiz.Repository,
	lessonRepo lesson.Repository,
	points PointsSink,
	logger logger.Interface,
) *SubmitAttemptUseCase {
	return &SubmitAttemptUseCase{
		quizRepo:   quizRepo,
		lessonRepo: lessonRepo,
		points:     points,
		logger:     logger,
	}
}

// Execute grades a submission. The completion gate is re-checked here, not
// just at quiz fetch, so a crafted request cannot skip the lesson.
func (uc *SubmitAttemptUseCase) Execute(ctx context.Context, cmd SubmitAttemptCommand) (*SubmitAttemptResult, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewUnauthenticatedError()
	}

	q, err := uc.quizRepo.GetByID(ctx, cmd.QuizID)
	if err != nil {
		uc.logger.Errorw("failed to load quiz", "error", err, "quiz_id", cmd.QuizID)
		return nil, apperrors.NewInternalError("failed to grade attempt")
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("quiz")
	}

	completed, err := uc.lessonRepo.IsCompleted(ctx, cmd.UserID, q.LessonID)
	if err != nil {
		uc.logger.Errorw("failed to check lesson completion", "error", err, "lesson_id", q.LessonID)
		return nil, apperrors.NewInternalError("failed to grade attempt")
	}
	if !completed {
		return nil, apperrors.NewValidationError("complete the lesson before taking its quiz")
	}

	correct, total := q.Score(cmd.Answers)

	attempt := &quiz.Attempt{
		UserID: cmd.UserID,
		QuizID: q.ID,
		Score:  correct,
		Total:  total,
	}
	if err := uc.quizRepo.CreateAttempt(ctx, attempt); err != nil {
		uc.logger.Errorw("failed to record attempt", "error", err, "quiz_id", q.ID, "user_id", cmd.UserID)
		return nil, apperrors.NewInternalError("failed to record attempt")
	}

	if uc.points != nil && correct > 0 {
		if err := uc.points.AddPoints(ctx, cmd.UserID, int64(correct)); err != nil {
			// Ranking is best effort; the periodic reconciliation will
			// pick the points up from the attempt row.
			uc.logger.Warnw("failed to add leaderboard points", "error", err, "user_id", cmd.UserID)
		}
	}

	uc.logger.Infow("quiz attempt graded",
		"quiz_id", q.ID, "user_id", cmd.UserID, "score", correct, "total", total)

	return &SubmitAttemptResult{
		Attempt: attempt,
		Correct: correct,
		Total:   total,
	}, nil
}
