package http

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/domain/game"
	"wordnest/internal/domain/quiz"
)

type stubQuizRepo struct {
	quiz.Repository
	totals map[uint]int64
}

func (r stubQuizRepo) TotalScoreByUser(ctx context.Context) (map[uint]int64, error) {
	return r.totals, nil
}

type stubGameRepo struct {
	game.Repository
	totals map[uint]int64
}

func (r stubGameRepo) TotalPointsByUser(ctx context.Context) (map[uint]int64, error) {
	return r.totals, nil
}

func TestDBRankingTopClampsLimit(t *testing.T) {
	ranking := newDBRanking(
		stubQuizRepo{totals: map[uint]int64{1: 10, 2: 30, 3: 20}},
		stubGameRepo{totals: map[uint]int64{1: 5}},
	)
	ctx := context.Background()

	top, err := ranking.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, uint(2), top[0].UserID)
	assert.Equal(t, int64(30), top[0].Points)
	assert.Equal(t, uint(3), top[1].UserID)

	// A non-positive limit yields nothing rather than the full table.
	top, err = ranking.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)

	top, err = ranking.Top(ctx, -5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestDBRankingRankMergesTotals(t *testing.T) {
	ranking := newDBRanking(
		stubQuizRepo{totals: map[uint]int64{1: 10, 2: 30}},
		stubGameRepo{totals: map[uint]int64{1: 25}},
	)

	rank, points, err := ranking.Rank(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	assert.Equal(t, int64(35), points)

	rank, points, err = ranking.Rank(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, rank)
	assert.Zero(t, points)
}
