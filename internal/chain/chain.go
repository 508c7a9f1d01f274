// Package chain resolves the ancestry of a repost into the list of
// original lynts it ultimately references, oldest first.
package chain

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"local.dev/lyntr-backend/internal/models"
	"local.dev/lyntr-backend/internal/store"
)

// DefaultMaxDepth bounds how far up the parent chain a single read walks.
const DefaultMaxDepth = 50

type Fetcher interface {
	FetchForRead(ctx context.Context, id, viewerID string) (models.LyntView, error)
}

type Resolver struct {
	Store    Fetcher
	MaxDepth int
	Log      zerolog.Logger
}

// Resolve walks the parent chain starting at parentID and returns the
// original (non-repost) lynts along it, root first. Reposts on the chain
// are traversed but not surfaced. Missing or unreadable ancestors
// truncate the chain rather than failing the read.
func (r *Resolver) Resolve(ctx context.Context, viewerID string, parentID *string) []models.LyntView {
	out := []models.LyntView{}
	if parentID == nil || *parentID == "" {
		return out
	}

	max := r.MaxDepth
	if max <= 0 {
		max = DefaultMaxDepth
	}

	visited := map[string]struct{}{}
	cur := *parentID
	for depth := 0; depth < max && cur != ""; depth++ {
		if _, seen := visited[cur]; seen {
			r.Log.Warn().Str("lynt_id", cur).Msg("cycle in repost chain, stopping walk")
			break
		}
		visited[cur] = struct{}{}

		v, err := r.Store.FetchForRead(ctx, cur, viewerID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				r.Log.Error().Err(err).Str("lynt_id", cur).Msg("chain ancestor fetch failed")
			}
			break
		}

		if !v.Reposted {
			out = append([]models.LyntView{v}, out...)
		}

		if v.Parent == nil {
			break
		}
		cur = *v.Parent
	}
	return out
}
