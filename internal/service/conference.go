package service

import (
	"context"
	"fmt"
	"time"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/query"
	"github.com/confcentral/confcentral/internal/repository"
	"github.com/confcentral/confcentral/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Creation defaults for fields the organizer left out.
var (
	defaultCity   = "Default City"
	defaultTopics = []string{"Default", "Topic"}
)

type ConferenceService struct {
	repo     *repository.Repository
	compiler *query.Compiler
	queue    ports.TaskQueue
	logger   logger.Logger
}

func NewConferenceService(
	repo *repository.Repository,
	queue ports.TaskQueue,
	log logger.Logger,
) *ConferenceService {
	return &ConferenceService{
		repo:     repo,
		compiler: query.NewCompiler(query.ConferenceFilters()),
		queue:    queue,
		logger:   log,
	}
}

// Create stores a new conference owned by the caller's profile and enqueues
// the confirmation-email work item. seatsAvailable starts at maxAttendees.
func (s *ConferenceService) Create(ctx context.Context, id domain.Identity, input domain.CreateConferenceInput) (*domain.Conference, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: conference name is required", domain.ErrValidation)
	}

	conf := &domain.Conference{
		Name:            input.Name,
		Description:     input.Description,
		OrganizerUserID: id.UserID,
		Topics:          input.Topics,
		City:            input.City,
	}
	if conf.City == "" {
		conf.City = defaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = append([]string(nil), defaultTopics...)
	}

	if input.StartDate != "" {
		start, err := time.Parse(domain.DateFormat, input.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date %q", domain.ErrValidation, input.StartDate)
		}
		conf.StartDate = &start
		conf.Month = int(start.Month())
	}
	if input.EndDate != "" {
		end, err := time.Parse(domain.DateFormat, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date %q", domain.ErrValidation, input.EndDate)
		}
		conf.EndDate = &end
	}

	if input.MaxAttendees != nil {
		if *input.MaxAttendees < 0 {
			return nil, fmt.Errorf("%w: maxAttendees must not be negative", domain.ErrValidation)
		}
		conf.MaxAttendees = *input.MaxAttendees
	}
	if conf.MaxAttendees > 0 {
		conf.SeatsAvailable = conf.MaxAttendees
	}

	// The profile has to exist before it can parent the conference key.
	if _, err := getOrCreateProfile(ctx, s.repo, id); err != nil {
		return nil, err
	}

	key, err := s.repo.AllocateConferenceKey(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("allocate conference key: %w", err)
	}
	conf.Key = key.Encode()

	if err := s.repo.PutConference(ctx, conf); err != nil {
		return nil, err
	}

	s.logger.Info("conference created",
		logger.String("conference_key", conf.Key),
		logger.String("organizer", id.UserID),
	)

	if err := s.queue.Enqueue(ctx, ports.Task{
		Type: ports.TaskSendConfirmationEmail,
		Params: map[string]string{
			ports.ParamEmail:      id.Email,
			ports.ParamConference: conf.Name,
		},
	}); err != nil {
		s.logger.Error("failed to enqueue confirmation email",
			logger.String("conference_key", conf.Key),
			logger.String("error", err.Error()),
		)
	}

	return conf, nil
}

// Query compiles the submitted filters and runs them.
func (s *ConferenceService) Query(ctx context.Context, clauses []query.Clause) ([]*domain.Conference, error) {
	plan, err := s.compiler.Compile(clauses)
	if err != nil {
		return nil, err
	}
	return s.repo.QueryConferences(ctx, plan)
}

// Get resolves one conference plus its organizer's display name.
func (s *ConferenceService) Get(ctx context.Context, websafeKey string) (*domain.Conference, string, error) {
	conf, err := s.repo.GetConference(ctx, websafeKey)
	if err != nil {
		return nil, "", err
	}
	var organizerName string
	if prof, err := s.repo.GetProfile(ctx, conf.OrganizerUserID); err == nil {
		organizerName = prof.DisplayName
	}
	return conf, organizerName, nil
}

// Created lists the conferences the caller organizes.
func (s *ConferenceService) Created(ctx context.Context, id domain.Identity) ([]*domain.Conference, error) {
	if _, err := getOrCreateProfile(ctx, s.repo, id); err != nil {
		return nil, err
	}
	return s.repo.ConferencesByOrganizer(ctx, id.UserID)
}

// Attending lists the conferences on the caller's registration list.
func (s *ConferenceService) Attending(ctx context.Context, id domain.Identity) ([]*domain.Conference, error) {
	prof, err := getOrCreateProfile(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	return s.repo.ConferencesByKeys(ctx, prof.ConferenceKeysToAttend)
}

// Register books one seat: appending the conference key to the profile and
// decrementing seatsAvailable commit atomically or not at all. The two
// entities live in different groups, hence the cross-group transaction.
func (s *ConferenceService) Register(ctx context.Context, id domain.Identity, websafeKey string) (bool, error) {
	err := s.repo.Transact(ctx, func(tx *repository.Tx) error {
		prof, err := getOrCreateProfile(ctx, tx, id)
		if err != nil {
			return err
		}
		conf, err := tx.GetConference(ctx, websafeKey)
		if err != nil {
			return err
		}
		if prof.IsAttending(websafeKey) {
			return domain.ErrAlreadyRegistered
		}
		if conf.SeatsAvailable <= 0 {
			return domain.ErrNoSeatsAvailable
		}

		prof.ConferenceKeysToAttend = append(prof.ConferenceKeysToAttend, websafeKey)
		conf.SeatsAvailable--

		if err := tx.PutProfile(ctx, prof); err != nil {
			return err
		}
		return tx.PutConference(ctx, conf)
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("registered for conference",
		logger.String("conference_key", websafeKey),
		logger.String("user_id", id.UserID),
	)
	return true, nil
}

// Unregister frees the caller's seat. A pair that was never registered is a
// no-op reported as false, not an error.
func (s *ConferenceService) Unregister(ctx context.Context, id domain.Identity, websafeKey string) (bool, error) {
	var registered bool
	err := s.repo.Transact(ctx, func(tx *repository.Tx) error {
		registered = false
		prof, err := getOrCreateProfile(ctx, tx, id)
		if err != nil {
			return err
		}
		conf, err := tx.GetConference(ctx, websafeKey)
		if err != nil {
			return err
		}

		if !prof.RemoveConference(websafeKey) {
			return nil
		}
		registered = true
		conf.SeatsAvailable++

		if err := tx.PutProfile(ctx, prof); err != nil {
			return err
		}
		return tx.PutConference(ctx, conf)
	})
	if err != nil {
		return false, err
	}

	if registered {
		s.logger.Info("unregistered from conference",
			logger.String("conference_key", websafeKey),
			logger.String("user_id", id.UserID),
		)
	}
	return registered, nil
}
