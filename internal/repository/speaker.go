package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/store"
)

func SpeakerKey(displayName string) *store.Key {
	return store.NewNameKey(KindSpeaker, displayName, nil)
}

func (v view) GetSpeaker(ctx context.Context, displayName string) (*domain.Speaker, error) {
	e, err := v.src.Get(ctx, SpeakerKey(displayName))
	if err != nil {
		if errors.Is(err, store.ErrNoSuchEntity) {
			return nil, domain.ErrSpeakerNotFound
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	return speakerFromEntity(e), nil
}

func (v view) PutSpeaker(ctx context.Context, s *domain.Speaker) error {
	if err := v.src.Put(ctx, speakerToEntity(s)); err != nil {
		return fmt.Errorf("put speaker: %w", err)
	}
	return nil
}

// SpeakersBySessionCount returns every speaker, busiest first. Ties share
// the top spot, which is what makes them featured.
func (r *Repository) SpeakersBySessionCount(ctx context.Context) ([]*domain.Speaker, error) {
	entities, err := r.s.Run(ctx, store.Query{
		Kind: KindSpeaker,
		Orders: []store.Order{
			{Field: "sessionCount", Descending: true, Numeric: true},
			{Field: "displayName"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query speakers: %w", err)
	}
	out := make([]*domain.Speaker, len(entities))
	for i, e := range entities {
		out[i] = speakerFromEntity(e)
	}
	return out, nil
}

func speakerToEntity(s *domain.Speaker) *store.Entity {
	e := store.NewEntity(SpeakerKey(s.DisplayName))
	e.Props["displayName"] = s.DisplayName
	e.Props["sessionKeys"] = append([]string(nil), s.SessionKeys...)
	e.Props["sessionCount"] = s.SessionCount
	e.Props["featured"] = s.Featured
	return e
}

func speakerFromEntity(e *store.Entity) *domain.Speaker {
	return &domain.Speaker{
		DisplayName:  e.Str("displayName"),
		SessionKeys:  e.Strings("sessionKeys"),
		SessionCount: e.Int("sessionCount"),
		Featured:     e.Bool("featured"),
	}
}
