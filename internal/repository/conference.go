package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/store"
)

func (v view) GetConference(ctx context.Context, websafeKey string) (*domain.Conference, error) {
	key, err := store.DecodeKeyOfKind(websafeKey, KindConference)
	if err != nil {
		return nil, domain.ErrConferenceNotFound
	}
	e, err := v.src.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNoSuchEntity) {
			return nil, domain.ErrConferenceNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return conferenceFromEntity(e), nil
}

func (v view) PutConference(ctx context.Context, c *domain.Conference) error {
	e, err := conferenceToEntity(c)
	if err != nil {
		return err
	}
	if err := v.src.Put(ctx, e); err != nil {
		return fmt.Errorf("put conference: %w", err)
	}
	return nil
}

// QueryConferences runs a compiled conference plan.
func (r *Repository) QueryConferences(ctx context.Context, q store.Query) ([]*domain.Conference, error) {
	entities, err := r.s.Run(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query conferences: %w", err)
	}
	out := make([]*domain.Conference, len(entities))
	for i, e := range entities {
		out[i] = conferenceFromEntity(e)
	}
	return out, nil
}

// ConferencesByOrganizer is the cheap ancestor query over the organizer's
// profile.
func (r *Repository) ConferencesByOrganizer(ctx context.Context, userID string) ([]*domain.Conference, error) {
	return r.QueryConferences(ctx, store.Query{
		Kind:     KindConference,
		Ancestor: ProfileKey(userID),
		Orders:   []store.Order{{Field: "name"}},
	})
}

// ConferencesByKeys resolves websafe keys in order, skipping entries that
// no longer resolve.
func (r *Repository) ConferencesByKeys(ctx context.Context, websafeKeys []string) ([]*domain.Conference, error) {
	keys := make([]*store.Key, 0, len(websafeKeys))
	for _, wk := range websafeKeys {
		key, err := store.DecodeKeyOfKind(wk, KindConference)
		if err != nil {
			return nil, domain.ErrConferenceNotFound
		}
		keys = append(keys, key)
	}
	entities, err := r.s.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get conferences: %w", err)
	}
	out := make([]*domain.Conference, 0, len(entities))
	for _, e := range entities {
		if e != nil {
			out = append(out, conferenceFromEntity(e))
		}
	}
	return out, nil
}

// NearCapacityConferences returns conferences with 0 < seatsAvailable <= 5.
func (r *Repository) NearCapacityConferences(ctx context.Context) ([]*domain.Conference, error) {
	return r.QueryConferences(ctx, store.Query{
		Kind: KindConference,
		Filters: []store.Filter{
			{Field: "seatsAvailable", Op: store.OpGreater, Value: int64(0)},
			{Field: "seatsAvailable", Op: store.OpLessEq, Value: int64(5)},
		},
		Orders: []store.Order{{Field: "seatsAvailable", Numeric: true}, {Field: "name"}},
	})
}

func conferenceToEntity(c *domain.Conference) (*store.Entity, error) {
	key, err := store.DecodeKeyOfKind(c.Key, KindConference)
	if err != nil {
		return nil, fmt.Errorf("conference key: %w", err)
	}
	e := store.NewEntity(key)
	e.Props["name"] = c.Name
	e.Props["description"] = c.Description
	e.Props["organizerUserId"] = c.OrganizerUserID
	e.Props["topics"] = append([]string(nil), c.Topics...)
	e.Props["city"] = c.City
	e.Props["startDate"] = formatDate(c.StartDate)
	e.Props["endDate"] = formatDate(c.EndDate)
	e.Props["month"] = c.Month
	e.Props["maxAttendees"] = c.MaxAttendees
	e.Props["seatsAvailable"] = c.SeatsAvailable
	return e, nil
}

func conferenceFromEntity(e *store.Entity) *domain.Conference {
	return &domain.Conference{
		Key:             e.Key.Encode(),
		Name:            e.Str("name"),
		Description:     e.Str("description"),
		OrganizerUserID: e.Str("organizerUserId"),
		Topics:          e.Strings("topics"),
		City:            e.Str("city"),
		StartDate:       parseDate(e.Str("startDate")),
		EndDate:         parseDate(e.Str("endDate")),
		Month:           e.Int("month"),
		MaxAttendees:    e.Int("maxAttendees"),
		SeatsAvailable:  e.Int("seatsAvailable"),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.DateFormat)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}
