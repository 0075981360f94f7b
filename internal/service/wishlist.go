package service

import (
	"context"
	"fmt"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/repository"
)

// WishlistEntry pairs a stored key with its resolved session. Session is
// nil when the key no longer resolves; stale keys are surfaced, not erased.
type WishlistEntry struct {
	Key     string
	Session *domain.Session
}

type WishlistService struct {
	repo *repository.Repository
}

func NewWishlistService(repo *repository.Repository) *WishlistService {
	return &WishlistService{repo: repo}
}

// Add bookmarks a session on the caller's profile. Duplicates are rejected.
func (s *WishlistService) Add(ctx context.Context, id domain.Identity, sessionKey string) (*domain.Session, error) {
	sess, err := s.repo.GetSession(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	prof, err := getOrCreateProfile(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if prof.HasInWishlist(sessionKey) {
		return nil, domain.ErrAlreadyInWishlist
	}

	prof.SessionsInWishlist = append(prof.SessionsInWishlist, sessionKey)
	if err := s.repo.PutProfile(ctx, prof); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}
	return sess, nil
}

// List returns the caller's wishlist in insertion order.
func (s *WishlistService) List(ctx context.Context, id domain.Identity) ([]WishlistEntry, error) {
	prof, err := getOrCreateProfile(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.SessionsByKeys(ctx, prof.SessionsInWishlist)
	if err != nil {
		return nil, err
	}
	entries := make([]WishlistEntry, len(sessions))
	for i, sess := range sessions {
		entries[i] = WishlistEntry{Key: prof.SessionsInWishlist[i], Session: sess}
	}
	return entries, nil
}
