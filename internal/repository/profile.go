package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/store"
)

func ProfileKey(userID string) *store.Key {
	return store.NewNameKey(KindProfile, userID, nil)
}

func (v view) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	e, err := v.src.Get(ctx, ProfileKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNoSuchEntity) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profileFromEntity(e), nil
}

func (v view) PutProfile(ctx context.Context, p *domain.Profile) error {
	if err := v.src.Put(ctx, profileToEntity(p)); err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

func profileToEntity(p *domain.Profile) *store.Entity {
	e := store.NewEntity(ProfileKey(p.UserID))
	e.Props["displayName"] = p.DisplayName
	e.Props["mainEmail"] = p.MainEmail
	e.Props["teeShirtSize"] = string(p.TeeShirtSize)
	e.Props["conferenceKeysToAttend"] = append([]string(nil), p.ConferenceKeysToAttend...)
	e.Props["sessionsInWishlist"] = append([]string(nil), p.SessionsInWishlist...)
	return e
}

func profileFromEntity(e *store.Entity) *domain.Profile {
	return &domain.Profile{
		UserID:                 e.Key.Name,
		DisplayName:            e.Str("displayName"),
		MainEmail:              e.Str("mainEmail"),
		TeeShirtSize:           domain.TeeShirtSize(e.Str("teeShirtSize")),
		ConferenceKeysToAttend: e.Strings("conferenceKeysToAttend"),
		SessionsInWishlist:     e.Strings("sessionsInWishlist"),
	}
}
