package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/query"
	"github.com/confcentral/confcentral/internal/repository"
	"github.com/confcentral/confcentral/internal/service/ports"
	"github.com/confcentral/confcentral/internal/store"
	"github.com/wb-go/wbf/logger"
)

type SessionService struct {
	repo     *repository.Repository
	compiler *query.Compiler
	queue    ports.TaskQueue
	logger   logger.Logger
}

func NewSessionService(
	repo *repository.Repository,
	queue ports.TaskQueue,
	log logger.Logger,
) *SessionService {
	return &SessionService{
		repo:     repo,
		compiler: query.NewCompiler(query.SessionFilters()),
		queue:    queue,
		logger:   log,
	}
}

// Create adds a session under the conference and upserts its speaker in one
// transaction. Only the conference organizer may create sessions. Any
// session creation marks the speaker featured and enqueues the async
// recompute of the featured-speaker announcement.
func (s *SessionService) Create(ctx context.Context, id domain.Identity, conferenceKey string, input domain.CreateSessionInput) (*domain.Session, error) {
	sess, err := buildSession(input)
	if err != nil {
		return nil, err
	}

	confKey, err := store.DecodeKeyOfKind(conferenceKey, repository.KindConference)
	if err != nil {
		return nil, domain.ErrConferenceNotFound
	}
	sessKey, err := s.repo.AllocateSessionKey(ctx, confKey)
	if err != nil {
		return nil, fmt.Errorf("allocate session key: %w", err)
	}
	sess.Key = sessKey.Encode()
	sess.ConferenceKey = conferenceKey

	err = s.repo.Transact(ctx, func(tx *repository.Tx) error {
		conf, err := tx.GetConference(ctx, conferenceKey)
		if err != nil {
			return err
		}
		if conf.OrganizerUserID != id.UserID {
			return domain.ErrForbidden
		}

		speaker, err := tx.GetSpeaker(ctx, sess.SpeakerName)
		if err != nil {
			if !errors.Is(err, domain.ErrSpeakerNotFound) {
				return err
			}
			speaker = &domain.Speaker{DisplayName: sess.SpeakerName}
		}
		speaker.AddSession(sess.Key)

		if err := tx.PutSession(ctx, sess); err != nil {
			return err
		}
		return tx.PutSpeaker(ctx, speaker)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		logger.String("session_key", sess.Key),
		logger.String("conference_key", conferenceKey),
		logger.String("speaker", sess.SpeakerName),
	)

	if err := s.queue.Enqueue(ctx, ports.Task{Type: ports.TaskSetFeaturedSpeaker}); err != nil {
		s.logger.Error("failed to enqueue featured speaker recompute",
			logger.String("session_key", sess.Key),
			logger.String("error", err.Error()),
		)
	}

	return sess, nil
}

func buildSession(input domain.CreateSessionInput) (*domain.Session, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: session name is required", domain.ErrValidation)
	}
	if input.SpeakerName == "" {
		return nil, fmt.Errorf("%w: speaker name is required", domain.ErrValidation)
	}
	if input.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}

	sess := &domain.Session{
		Name:          input.Name,
		Highlights:    input.Highlights,
		SpeakerName:   input.SpeakerName,
		Duration:      input.Duration,
		TypeOfSession: domain.SessionNotSpecified,
	}

	if input.TypeOfSession != "" {
		t, err := domain.ParseSessionType(input.TypeOfSession)
		if err != nil {
			return nil, err
		}
		sess.TypeOfSession = t
	}
	if input.Date != "" {
		date, err := time.Parse(domain.DateFormat, input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, input.Date)
		}
		sess.Date = &date
	}
	if input.StartTime != "" {
		t, err := domain.ParseTimeOfDay(input.StartTime)
		if err != nil {
			return nil, err
		}
		sess.StartTime = &t
	}
	return sess, nil
}

// ByConference lists a conference's sessions, optionally narrowed by type.
func (s *SessionService) ByConference(ctx context.Context, conferenceKey, typeOfSession string) ([]*domain.Session, error) {
	confKey, err := store.DecodeKeyOfKind(conferenceKey, repository.KindConference)
	if err != nil {
		return nil, domain.ErrConferenceNotFound
	}
	if typeOfSession != "" {
		if _, err := domain.ParseSessionType(typeOfSession); err != nil {
			return nil, err
		}
	}
	return s.repo.SessionsByConference(ctx, confKey, typeOfSession)
}

// BySpeaker lists every session the named speaker presents, across all
// conferences.
func (s *SessionService) BySpeaker(ctx context.Context, displayName string) ([]*domain.Session, error) {
	speaker, err := s.repo.GetSpeaker(ctx, displayName)
	if err != nil {
		return nil, err
	}
	sessions, err := s.repo.SessionsByKeys(ctx, speaker.SessionKeys)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		if sess != nil {
			out = append(out, sess)
		}
	}
	return out, nil
}

// Query compiles the submitted session filters and runs them across all
// conferences.
func (s *SessionService) Query(ctx context.Context, clauses []query.Clause) ([]*domain.Session, error) {
	plan, err := s.compiler.Compile(clauses)
	if err != nil {
		return nil, err
	}
	return s.repo.QuerySessions(ctx, plan)
}
