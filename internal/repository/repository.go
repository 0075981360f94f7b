// Package repository maps domain entities onto the document store and
// wraps its transaction primitive. The same typed accessors work directly
// against the store or inside a transaction.
package repository

import (
	"context"
	"errors"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/store"
)

const (
	KindProfile    = "Profile"
	KindConference = "Conference"
	KindSession    = "Session"
	KindSpeaker    = "Speaker"
)

// accessor is what a view reads and writes through: the store itself or a
// transaction handle.
type accessor interface {
	store.Reader
	store.Writer
}

type view struct {
	src accessor
}

type Repository struct {
	view
	s store.Store
}

func New(s store.Store) *Repository {
	return &Repository{view: view{src: s}, s: s}
}

// Tx is the transactional face of the repository: the same typed accessors,
// writes deferred until commit.
type Tx struct {
	view
}

// Transact runs fn atomically across entity groups. Commit contention
// surfaces as domain.ErrTxConflict; the caller decides whether a retry is
// safe.
func (r *Repository) Transact(ctx context.Context, fn func(tx *Tx) error) error {
	err := r.s.RunInTransaction(ctx, func(t store.Tx) error {
		return fn(&Tx{view: view{src: t}})
	})
	if errors.Is(err, store.ErrConcurrentTx) {
		return domain.ErrTxConflict
	}
	return err
}

// AllocateConferenceKey reserves a key for a new conference owned by the
// organizer's profile (ancestor relationship, used by the created-by query).
func (r *Repository) AllocateConferenceKey(ctx context.Context, organizerUserID string) (*store.Key, error) {
	parent := store.NewNameKey(KindProfile, organizerUserID, nil)
	id, err := r.s.AllocateID(ctx, KindConference, parent)
	if err != nil {
		return nil, err
	}
	return store.NewIDKey(KindConference, id, parent), nil
}

// AllocateSessionKey reserves a key for a new session under its conference.
func (r *Repository) AllocateSessionKey(ctx context.Context, conferenceKey *store.Key) (*store.Key, error) {
	id, err := r.s.AllocateID(ctx, KindSession, conferenceKey)
	if err != nil {
		return nil, err
	}
	return store.NewIDKey(KindSession, id, conferenceKey), nil
}
