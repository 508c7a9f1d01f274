// Package store is the gateway to lynt records.
package store

import (
	"context"
	"errors"

	"local.dev/lyntr-backend/internal/models"
)

// ErrNotFound marks an absent lynt. An expected, user-triggerable
// condition, not a system fault.
var ErrNotFound = errors.New("lynt not found")

type LyntStore interface {
	// Create persists a fully-formed record in a single write.
	Create(ctx context.Context, l models.Lynt) (models.Lynt, error)

	// ResolveRepostTarget returns the id if a lynt with that id exists,
	// ErrNotFound otherwise. Used to validate repost requests before
	// persisting anything.
	ResolveRepostTarget(ctx context.Context, id string) (string, error)

	// FetchForRead returns the record joined with its author and the
	// viewer-dependent like fields. The view carries the raw parent pointer
	// for chain resolution.
	FetchForRead(ctx context.Context, id, viewerID string) (models.LyntView, error)

	// IncrementViews applies an atomic views = views + 1. Concurrent
	// increments must all land.
	IncrementViews(ctx context.Context, id string) error
}
