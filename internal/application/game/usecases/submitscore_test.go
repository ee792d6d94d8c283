package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/domain/game"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type fakeGameRepo struct {
	mu     sync.Mutex
	scores []*game.Score
}

func (r *fakeGameRepo) Create(ctx context.Context, score *game.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	score.ID = uint(len(r.scores) + 1)
	r.scores = append(r.scores, score)
	return nil
}

func (r *fakeGameRepo) ListByUser(ctx context.Context, userID uint, limit int) ([]*game.Score, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*game.Score
	for _, s := range r.scores {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeGameRepo) TotalPointsByUser(ctx context.Context) (map[uint]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := make(map[uint]int64)
	for _, s := range r.scores {
		totals[s.UserID] += int64(s.Points)
	}
	return totals, nil
}

type recordingSink struct {
	points map[uint]int64
}

func (s *recordingSink) AddPoints(ctx context.Context, userID uint, points int64) error {
	s.points[userID] += points
	return nil
}

func TestSubmitScore(t *testing.T) {
	repo := &fakeGameRepo{}
	sink := &recordingSink{points: make(map[uint]int64)}
	uc := NewSubmitScoreUseCase(repo, sink, logger.NewLogger())

	score, err := uc.Execute(context.Background(), SubmitScoreCommand{
		UserID: 1,
		Kind:   game.KindFlashcards,
		Points: 40,
	})
	require.NoError(t, err)
	assert.NotZero(t, score.ID)
	assert.Equal(t, int64(40), sink.points[1])

	totals, err := repo.TotalPointsByUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(40), totals[1])
}

func TestSubmitScoreRejectsBadInput(t *testing.T) {
	repo := &fakeGameRepo{}
	uc := NewSubmitScoreUseCase(repo, nil, logger.NewLogger())

	tests := []struct {
		name string
		cmd  SubmitScoreCommand
	}{
		{name: "unknown kind", cmd: SubmitScoreCommand{UserID: 1, Kind: "chess", Points: 10}},
		{name: "negative points", cmd: SubmitScoreCommand{UserID: 1, Kind: game.KindSpelling, Points: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}

	_, err := uc.Execute(context.Background(), SubmitScoreCommand{Kind: game.KindSpelling, Points: 10})
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthenticated, authErr.Type)

	assert.Empty(t, repo.scores)
}
