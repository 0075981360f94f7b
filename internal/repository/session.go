package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/store"
)

func (v view) GetSession(ctx context.Context, websafeKey string) (*domain.Session, error) {
	key, err := store.DecodeKeyOfKind(websafeKey, KindSession)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	e, err := v.src.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNoSuchEntity) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromEntity(e), nil
}

func (v view) PutSession(ctx context.Context, s *domain.Session) error {
	e, err := sessionToEntity(s)
	if err != nil {
		return err
	}
	if err := v.src.Put(ctx, e); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// QuerySessions runs a compiled session plan.
func (r *Repository) QuerySessions(ctx context.Context, q store.Query) ([]*domain.Session, error) {
	entities, err := r.s.Run(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	out := make([]*domain.Session, len(entities))
	for i, e := range entities {
		out[i] = sessionFromEntity(e)
	}
	return out, nil
}

// SessionsByConference returns a conference's sessions via the ancestor
// relationship, optionally narrowed to one session type.
func (r *Repository) SessionsByConference(ctx context.Context, conferenceKey *store.Key, typeOfSession string) ([]*domain.Session, error) {
	q := store.Query{
		Kind:     KindSession,
		Ancestor: conferenceKey,
		Orders:   []store.Order{{Field: "name"}},
	}
	if typeOfSession != "" {
		q.Filters = append(q.Filters, store.Filter{
			Field: "typeOfSession", Op: store.OpEqual, Value: typeOfSession,
		})
	}
	return r.QuerySessions(ctx, q)
}

// SessionsByKeys resolves websafe keys in stored order. Keys whose target
// no longer exists come back as nil slots rather than being erased.
func (r *Repository) SessionsByKeys(ctx context.Context, websafeKeys []string) ([]*domain.Session, error) {
	keys := make([]*store.Key, 0, len(websafeKeys))
	for _, wk := range websafeKeys {
		key, err := store.DecodeKeyOfKind(wk, KindSession)
		if err != nil {
			return nil, domain.ErrSessionNotFound
		}
		keys = append(keys, key)
	}
	entities, err := r.s.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}
	out := make([]*domain.Session, len(entities))
	for i, e := range entities {
		if e != nil {
			out[i] = sessionFromEntity(e)
		}
	}
	return out, nil
}

func sessionToEntity(s *domain.Session) (*store.Entity, error) {
	key, err := store.DecodeKeyOfKind(s.Key, KindSession)
	if err != nil {
		return nil, fmt.Errorf("session key: %w", err)
	}
	e := store.NewEntity(key)
	e.Props["name"] = s.Name
	e.Props["highlights"] = append([]string(nil), s.Highlights...)
	e.Props["speakerName"] = s.SpeakerName
	e.Props["duration"] = s.Duration
	e.Props["typeOfSession"] = string(s.TypeOfSession)
	e.Props["date"] = formatDate(s.Date)
	if s.StartTime != nil {
		e.Props["startTime"] = int(*s.StartTime)
	}
	return e, nil
}

func sessionFromEntity(e *store.Entity) *domain.Session {
	s := &domain.Session{
		Key:           e.Key.Encode(),
		Name:          e.Str("name"),
		Highlights:    e.Strings("highlights"),
		SpeakerName:   e.Str("speakerName"),
		Duration:      e.Int("duration"),
		TypeOfSession: domain.SessionType(e.Str("typeOfSession")),
		Date:          parseDate(e.Str("date")),
	}
	if e.Key.Parent != nil {
		s.ConferenceKey = e.Key.Parent.Encode()
	}
	if _, ok := e.Props["startTime"]; ok {
		t := domain.TimeOfDay(e.Int("startTime"))
		s.StartTime = &t
	}
	return s
}
