package store

import (
	"context"
	"sync"

	"local.dev/lyntr-backend/internal/models"
)

// MemoryStore is an in-process LyntStore. Used when no database is
// configured, and by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	lynts map[string]models.Lynt
	users map[string]models.User
	likes map[string]map[string]struct{} // lyntId -> set(userId)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lynts: map[string]models.Lynt{},
		users: map[string]models.User{},
		likes: map[string]map[string]struct{}{},
	}
}

func (s *MemoryStore) Create(_ context.Context, l models.Lynt) (models.Lynt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lynts[l.ID] = l
	return l, nil
}

func (s *MemoryStore) ResolveRepostTarget(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.lynts[id]; !ok {
		return "", ErrNotFound
	}
	return id, nil
}

func (s *MemoryStore) FetchForRead(_ context.Context, id, viewerID string) (models.LyntView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lynts[id]
	if !ok {
		return models.LyntView{}, ErrNotFound
	}
	return s.viewLocked(l, viewerID), nil
}

func (s *MemoryStore) IncrementViews(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lynts[id]
	if !ok {
		return ErrNotFound
	}
	l.Views++
	s.lynts[id] = l
	return nil
}

// PutUser registers an author profile for read joins.
func (s *MemoryStore) PutUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// AddLike records a like edge so reads can aggregate it.
func (s *MemoryStore) AddLike(lyntID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.likes[lyntID]
	if set == nil {
		set = map[string]struct{}{}
		s.likes[lyntID] = set
	}
	set[userID] = struct{}{}
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lynts)
}

func (s *MemoryStore) viewLocked(l models.Lynt, viewerID string) models.LyntView {
	author, ok := s.users[l.UserID]
	if !ok {
		author = models.User{ID: l.UserID}
	}
	set := s.likes[l.ID]
	_, liked := set[viewerID]
	return models.LyntView{
		ID:        l.ID,
		Content:   l.Content,
		CreatedAt: l.CreatedAt,
		HasLink:   l.HasLink,
		HasImage:  l.HasImage,
		Reposted:  l.Reposted,
		Parent:    l.Parent,
		Author:    author,
		LikeCount: int64(len(set)),
		LikedByMe: liked,
		Views:     l.Views,
	}
}
