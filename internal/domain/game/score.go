// Package game records scores from the vocabulary mini-games. Scores feed
// the leaderboard alongside quiz results.
package game

import (
	"context"
	"fmt"
	"time"
)

// Known game kinds. Unknown kinds are rejected at submission.
const (
	KindFlashcards = "flashcards"
	KindWordMatch  = "word_match"
	KindSpelling   = "spelling"
)

var validKinds = map[string]struct{}{
	KindFlashcards: {},
	KindWordMatch:  {},
	KindSpelling:   {},
}

// Score is one finished game round.
type Score struct {
	ID        uint
	UserID    uint
	Kind      string
	Points    int
	CreatedAt time.Time
}

// NewScore validates and builds a game score.
func NewScore(userID uint, kind string, points int) (*Score, error) {
	if userID == 0 {
		return nil, fmt.Errorf("game score needs a user")
	}
	if _, ok := validKinds[kind]; !ok {
		return nil, fmt.Errorf("unknown game kind: %s", kind)
	}
	if points < 0 {
		return nil, fmt.Errorf("game points cannot be negative")
	}
	return &Score{
		UserID:    userID,
		Kind:      kind,
		Points:    points,
		CreatedAt: time.Now(),
	}, nil
}

// Repository persists game scores.
type Repository interface {
	Create(ctx context.Context, score *Score) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*Score, error)
	// TotalPointsByUser sums game points per user for leaderboard
	// reconciliation.
	TotalPointsByUser(ctx context.Context) (map[uint]int64, error)
}
