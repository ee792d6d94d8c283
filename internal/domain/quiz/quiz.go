// Package quiz holds per-lesson quizzes. Scoring is plain arithmetic over
// already-authenticated requests; the interesting rule is the gate that a
// quiz opens only after its lesson is completed.
package quiz

import (
	"context"
	"fmt"
	"time"
)

// Quiz belongs to a lesson.
type Quiz struct {
	ID        uint
	LessonID  uint
	Title     string
	Questions []*Question
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Question is one multiple-choice prompt. AnswerIndex points into Choices.
type Question struct {
	ID          uint
	QuizID      uint
	Prompt      string
	Choices     []string
	AnswerIndex int
	Position    int
}

// Score counts correct answers. Answers shorter than the question list
// leave the remainder wrong; extra answers are ignored.
func (q *Quiz) Score(answers []int) (correct, total int) {
	total = len(q.Questions)
	for i, question := range q.Questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == question.AnswerIndex {
			correct++
		}
	}
	return correct, total
}

// Validate checks structural integrity of an authored quiz.
func (q *Quiz) Validate() error {
	if q.LessonID == 0 {
		return fmt.Errorf("quiz must belong to a lesson")
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz needs at least one question")
	}
	for _, question := range q.Questions {
		if len(question.Choices) < 2 {
			return fmt.Errorf("question %q needs at least two choices", question.Prompt)
		}
		if question.AnswerIndex < 0 || question.AnswerIndex >= len(question.Choices) {
			return fmt.Errorf("question %q has answer index out of range", question.Prompt)
		}
	}
	return nil
}

// Attempt is a student's graded submission.
type Attempt struct {
	ID        uint
	UserID    uint
	QuizID    uint
	Score     int
	Total     int
	CreatedAt time.Time
}

// Repository persists quizzes and attempts.
type Repository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetByLessonID(ctx context.Context, lessonID uint) (*Quiz, error)
	GetByID(ctx context.Context, id uint) (*Quiz, error)

	CreateAttempt(ctx context.Context, attempt *Attempt) error
	ListAttempts(ctx context.Context, userID uint, limit int) ([]*Attempt, error)
	// TotalScoreByUser sums quiz scores per user for leaderboard
	// reconciliation.
	TotalScoreByUser(ctx context.Context) (map[uint]int64, error)
}
