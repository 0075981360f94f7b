package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/repository"
)

// profileAccessor is satisfied by both the repository and its transaction
// handle, so lazy profile creation works inside and outside transactions.
type profileAccessor interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	PutProfile(ctx context.Context, p *domain.Profile) error
}

// getOrCreateProfile returns the caller's profile, creating it on first
// access seeded from the authenticated identity.
func getOrCreateProfile(ctx context.Context, acc profileAccessor, id domain.Identity) (*domain.Profile, error) {
	prof, err := acc.GetProfile(ctx, id.UserID)
	if err == nil {
		return prof, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	prof = &domain.Profile{
		UserID:       id.UserID,
		DisplayName:  id.DisplayName,
		MainEmail:    id.Email,
		TeeShirtSize: domain.TeeShirtNotSpecified,
	}
	if err := acc.PutProfile(ctx, prof); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return prof, nil
}

type ProfileService struct {
	repo *repository.Repository
}

func NewProfileService(repo *repository.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	return getOrCreateProfile(ctx, s.repo, id)
}

// Save updates the user-modifiable fields, leaving blank inputs untouched.
func (s *ProfileService) Save(ctx context.Context, id domain.Identity, input domain.SaveProfileInput) (*domain.Profile, error) {
	prof, err := getOrCreateProfile(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		prof.DisplayName = input.DisplayName
	}
	if input.TeeShirtSize != "" {
		size, err := domain.ParseTeeShirtSize(input.TeeShirtSize)
		if err != nil {
			return nil, err
		}
		prof.TeeShirtSize = size
	}

	if err := s.repo.PutProfile(ctx, prof); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return prof, nil
}
