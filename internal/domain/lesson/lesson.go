// Package lesson holds the vocabulary lesson catalog. Lessons are
// authored by admins in markdown and rendered to sanitized HTML at read
// time.
package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Lesson is one unit of vocabulary content.
type Lesson struct {
	ID        uint
	Slug      string
	Title     string
	Language  string // BCP-47 tag, e.g. "es", "fr", "pt-BR"
	Body      string // markdown source
	Position  int
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLesson validates and creates a lesson. The language must parse as a
// BCP-47 tag.
func NewLesson(slug, title, lang, body string, position int) (*Lesson, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language tag %q: %w", lang, err)
	}

	now := time.Now().UTC()
	return &Lesson{
		Slug:      slug,
		Title:     strings.TrimSpace(title),
		Language:  tag.String(),
		Body:      body,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Progress marks a student's completion of a lesson.
type Progress struct {
	ID          uint
	UserID      uint
	LessonID    uint
	CompletedAt time.Time
}

// Repository persists lessons and per-user progress.
type Repository interface {
	Create(ctx context.Context, lesson *Lesson) error
	Update(ctx context.Context, lesson *Lesson) error
	GetBySlug(ctx context.Context, slug string) (*Lesson, error)
	GetByID(ctx context.Context, id uint) (*Lesson, error)
	// ListPublished returns published lessons ordered by position.
	ListPublished(ctx context.Context) ([]*Lesson, error)

	// MarkCompleted is idempotent: completing twice keeps the first
	// completion time.
	MarkCompleted(ctx context.Context, userID, lessonID uint) error
	IsCompleted(ctx context.Context, userID, lessonID uint) (bool, error)
	ListCompleted(ctx context.Context, userID uint) ([]*Progress, error)
}
