package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/domain/lesson"
	"wordnest/internal/domain/quiz"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type fakeQuizRepo struct {
	mu       sync.Mutex
	nextID   uint
	quizzes  map[uint]*quiz.Quiz
	attempts []*quiz.Attempt
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[uint]*quiz.Quiz)}
}

func (r *fakeQuizRepo) CreateQuiz(ctx context.Context, q *quiz.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.quizzes {
		if existing.LessonID == q.LessonID {
			return apperrors.NewConflictError("lesson already has a quiz")
		}
	}
	r.nextID++
	q.ID = r.nextID
	r.quizzes[q.ID] = q
	return nil
}

func (r *fakeQuizRepo) GetByLessonID(ctx context.Context, lessonID uint) (*quiz.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.quizzes {
		if q.LessonID == lessonID {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuizRepo) GetByID(ctx context.Context, id uint) (*quiz.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quizzes[id], nil
}

func (r *fakeQuizRepo) CreateAttempt(ctx context.Context, attempt *quiz.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	attempt.ID = uint(len(r.attempts) + 1)
	attempt.CreatedAt = time.Now()
	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *fakeQuizRepo) ListAttempts(ctx context.Context, userID uint, limit int) ([]*quiz.Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*quiz.Attempt
	for _, a := range r.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) TotalScoreByUser(ctx context.Context) (map[uint]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := make(map[uint]int64)
	for _, a := range r.attempts {
		totals[a.UserID] += int64(a.Score)
	}
	return totals, nil
}

// fakeLessonGate implements the two lesson lookups the quiz flow needs.
type fakeLessonGate struct {
	lessons   map[uint]*lesson.Lesson
	completed map[[2]uint]bool
}

func newFakeLessonGate() *fakeLessonGate {
	return &fakeLessonGate{
		lessons:   make(map[uint]*lesson.Lesson),
		completed: make(map[[2]uint]bool),
	}
}

func (r *fakeLessonGate) Create(ctx context.Context, l *lesson.Lesson) error {
	l.ID = uint(len(r.lessons) + 1)
	r.lessons[l.ID] = l
	return nil
}

func (r *fakeLessonGate) Update(ctx context.Context, l *lesson.Lesson) error { return nil }

func (r *fakeLessonGate) GetBySlug(ctx context.Context, slug string) (*lesson.Lesson, error) {
	for _, l := range r.lessons {
		if l.Slug == slug {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLessonGate) GetByID(ctx context.Context, id uint) (*lesson.Lesson, error) {
	return r.lessons[id], nil
}

func (r *fakeLessonGate) ListPublished(ctx context.Context) ([]*lesson.Lesson, error) {
	return nil, nil
}

func (r *fakeLessonGate) MarkCompleted(ctx context.Context, userID, lessonID uint) error {
	r.completed[[2]uint{userID, lessonID}] = true
	return nil
}

func (r *fakeLessonGate) IsCompleted(ctx context.Context, userID, lessonID uint) (bool, error) {
	return r.completed[[2]uint{userID, lessonID}], nil
}

func (r *fakeLessonGate) ListCompleted(ctx context.Context, userID uint) ([]*lesson.Progress, error) {
	return nil, nil
}

type recordingSink struct {
	mu     sync.Mutex
	points map[uint]int64
}

func newRecordingSink() *recordingSink {
	return &recordingSink{points: make(map[uint]int64)}
}

func (s *recordingSink) AddPoints(ctx context.Context, userID uint, points int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points[userID] += points
	return nil
}

type quizFixture struct {
	quizRepo   *fakeQuizRepo
	lessonRepo *fakeLessonGate
	lesson     *lesson.Lesson
	quiz       *quiz.Quiz
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()

	lessonRepo := newFakeLessonGate()
	l, err := lesson.NewLesson("greetings", "Greetings", "es", "# Hola", 1)
	require.NoError(t, err)
	l.Published = true
	require.NoError(t, lessonRepo.Create(context.Background(), l))

	quizRepo := newFakeQuizRepo()
	q := &quiz.Quiz{
		LessonID: l.ID,
		Title:    "Greetings check",
		Questions: []*quiz.Question{
			{Prompt: "hello", Choices: []string{"hola", "adios"}, AnswerIndex: 0, Position: 0},
			{Prompt: "goodbye", Choices: []string{"hola", "adios"}, AnswerIndex: 1, Position: 1},
			{Prompt: "thanks", Choices: []string{"gracias", "por favor"}, AnswerIndex: 0, Position: 2},
		},
	}
	require.NoError(t, quizRepo.CreateQuiz(context.Background(), q))

	return &quizFixture{quizRepo: quizRepo, lessonRepo: lessonRepo, lesson: l, quiz: q}
}

func TestGetQuizStripsAnswers(t *testing.T) {
	f := newQuizFixture(t)
	require.NoError(t, f.lessonRepo.MarkCompleted(context.Background(), 1, f.lesson.ID))

	uc := NewGetQuizUseCase(f.quizRepo, f.lessonRepo, logger.NewLogger())

	view, err := uc.Execute(context.Background(), GetQuizCommand{LessonSlug: "greetings", UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, f.quiz.ID, view.ID)
	require.Len(t, view.Questions, 3)
	assert.Equal(t, "hello", view.Questions[0].Prompt)
	assert.Equal(t, []string{"hola", "adios"}, view.Questions[0].Choices)
}

func TestGetQuizRequiresLessonCompletion(t *testing.T) {
	f := newQuizFixture(t)

	uc := NewGetQuizUseCase(f.quizRepo, f.lessonRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetQuizCommand{LessonSlug: "greetings", UserID: 1})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSubmitAttempt(t *testing.T) {
	f := newQuizFixture(t)
	require.NoError(t, f.lessonRepo.MarkCompleted(context.Background(), 1, f.lesson.ID))
	sink := newRecordingSink()

	uc := NewSubmitAttemptUseCase(f.quizRepo, f.lessonRepo, sink, logger.NewLogger())

	result, err := uc.Execute(context.Background(), SubmitAttemptCommand{
		UserID:  1,
		QuizID:  f.quiz.ID,
		Answers: []int{0, 1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, int64(2), sink.points[1])

	attempts, err := f.quizRepo.ListAttempts(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, 2, attempts[0].Score)
}

func TestSubmitAttemptShortAnswers(t *testing.T) {
	f := newQuizFixture(t)
	require.NoError(t, f.lessonRepo.MarkCompleted(context.Background(), 1, f.lesson.ID))

	uc := NewSubmitAttemptUseCase(f.quizRepo, f.lessonRepo, nil, logger.NewLogger())

	result, err := uc.Execute(context.Background(), SubmitAttemptCommand{
		UserID:  1,
		QuizID:  f.quiz.ID,
		Answers: []int{0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 3, result.Total)
}

func TestSubmitAttemptEnforcesGate(t *testing.T) {
	f := newQuizFixture(t)

	uc := NewSubmitAttemptUseCase(f.quizRepo, f.lessonRepo, newRecordingSink(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), SubmitAttemptCommand{
		UserID:  1,
		QuizID:  f.quiz.ID,
		Answers: []int{0, 1, 0},
	})
	assert.True(t, apperrors.IsValidationError(err))

	attempts, err := f.quizRepo.ListAttempts(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestCreateQuizValidates(t *testing.T) {
	f := newQuizFixture(t)

	second, err := lesson.NewLesson("numbers", "Numbers", "es", "# Numeros", 2)
	require.NoError(t, err)
	second.Published = true
	require.NoError(t, f.lessonRepo.Create(context.Background(), second))

	uc := NewCreateQuizUseCase(f.quizRepo, f.lessonRepo, logger.NewLogger())

	created, err := uc.Execute(context.Background(), CreateQuizCommand{
		LessonID: second.ID,
		Title:    "Numbers check",
		Questions: []QuestionInput{
			{Prompt: "one", Choices: []string{"uno", "dos"}, AnswerIndex: 0},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 0, created.Questions[0].Position)

	_, err = uc.Execute(context.Background(), CreateQuizCommand{
		LessonID: second.ID,
		Title:    "No questions",
	})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateQuizCommand{
		LessonID: 99,
		Title:    "Orphan",
		Questions: []QuestionInput{
			{Prompt: "one", Choices: []string{"uno", "dos"}, AnswerIndex: 0},
		},
	})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), CreateQuizCommand{
		LessonID: second.ID,
		Title:    "Bad answer index",
		Questions: []QuestionInput{
			{Prompt: "one", Choices: []string{"uno", "dos"}, AnswerIndex: 5},
		},
	})
	assert.True(t, apperrors.IsValidationError(err))
}
