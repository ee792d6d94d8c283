// Package audit records security-relevant mutations. Entries are append
// only; nothing in the application updates or deletes them.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Entry is one immutable audit record. Before and After hold JSON
// snapshots of the touched entity around the mutation.
type Entry struct {
	ID         uint
	ActorID    uint
	Action     string
	EntityType string
	EntityID   uint
	Before     json.RawMessage
	After      json.RawMessage
	CreatedAt  time.Time
}

// NewEntry builds an audit entry; before/after may be nil (creation has no
// before, deletion no after).
func NewEntry(actorID uint, action, entityType string, entityID uint, before, after any) (*Entry, error) {
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}

	entry := &Entry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}

	var err error
	if before != nil {
		if entry.Before, err = json.Marshal(before); err != nil {
			return nil, fmt.Errorf("failed to marshal before snapshot: %w", err)
		}
	}
	if after != nil {
		if entry.After, err = json.Marshal(after); err != nil {
			return nil, fmt.Errorf("failed to marshal after snapshot: %w", err)
		}
	}
	return entry, nil
}

// Repository appends audit entries. Insert-only.
type Repository interface {
	Insert(ctx context.Context, entry *Entry) error
	ListByActor(ctx context.Context, actorID uint, limit int) ([]*Entry, error)
}
