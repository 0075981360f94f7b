package service

import (
	"context"
	"sync"
	"testing"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/query"
	"github.com/confcentral/confcentral/internal/repository"
	"github.com/confcentral/confcentral/internal/service/ports"
	"github.com/confcentral/confcentral/internal/service/ports/mocks"
	"github.com/confcentral/confcentral/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var (
	alice = domain.Identity{UserID: "alice", Email: "alice@example.com", DisplayName: "Alice"}
	bob   = domain.Identity{UserID: "bob", Email: "bob@example.com", DisplayName: "Bob"}
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type testEnv struct {
	repo  *repository.Repository
	queue *mocks.MockTaskQueue
	log   logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		repo:  repository.New(store.NewMemory()),
		queue: mocks.NewMockTaskQueue(t),
		log:   newTestLogger(t),
	}
}

func (e *testEnv) conferences() *ConferenceService {
	return NewConferenceService(e.repo, e.queue, e.log)
}

func (e *testEnv) sessions() *SessionService {
	return NewSessionService(e.repo, e.queue, e.log)
}

func intPtr(n int) *int { return &n }

func createConference(t *testing.T, svc *ConferenceService, id domain.Identity, name string, maxAttendees int) *domain.Conference {
	t.Helper()
	conf, err := svc.Create(context.Background(), id, domain.CreateConferenceInput{
		Name:         name,
		MaxAttendees: intPtr(maxAttendees),
	})
	require.NoError(t, err)
	return conf
}

func TestConferenceService_Create_AppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()

	conf, err := svc.Create(context.Background(), alice, domain.CreateConferenceInput{Name: "GopherCon"})

	require.NoError(t, err)
	assert.Equal(t, "Default City", conf.City)
	assert.Equal(t, []string{"Default", "Topic"}, conf.Topics)
	assert.Equal(t, 0, conf.SeatsAvailable)
	assert.Equal(t, "alice", conf.OrganizerUserID)
	assert.NotEmpty(t, conf.Key)

	stored, _, err := svc.Get(context.Background(), conf.Key)
	require.NoError(t, err)
	assert.Equal(t, "GopherCon", stored.Name)
}

func TestConferenceService_Create_FullInput(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()

	conf, err := svc.Create(context.Background(), alice, domain.CreateConferenceInput{
		Name:         "GopherCon",
		Description:  "All things Go",
		City:         "London",
		Topics:       []string{"Go", "Cloud"},
		StartDate:    "2026-06-15",
		EndDate:      "2026-06-17",
		MaxAttendees: intPtr(100),
	})

	require.NoError(t, err)
	assert.Equal(t, 6, conf.Month)
	assert.Equal(t, 100, conf.MaxAttendees)
	assert.Equal(t, 100, conf.SeatsAvailable)
	require.NotNil(t, conf.StartDate)
	assert.Equal(t, "2026-06-15", conf.StartDate.Format(domain.DateFormat))
}

func TestConferenceService_Create_RequiresName(t *testing.T) {
	env := newTestEnv(t)
	svc := env.conferences()

	_, err := svc.Create(context.Background(), alice, domain.CreateConferenceInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConferenceService_Create_RejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.conferences()

	_, err := svc.Create(context.Background(), alice, domain.CreateConferenceInput{
		Name:      "GopherCon",
		StartDate: "June 15th",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConferenceService_Create_RejectsNegativeMaxAttendees(t *testing.T) {
	env := newTestEnv(t)
	svc := env.conferences()

	_, err := svc.Create(context.Background(), alice, domain.CreateConferenceInput{
		Name:         "GopherCon",
		MaxAttendees: intPtr(-1),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConferenceService_Create_EnqueuesConfirmationEmail(t *testing.T) {
	env := newTestEnv(t)
	var captured ports.Task
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, task ports.Task) { captured = task }).
		Return(nil)
	svc := env.conferences()

	_, err := svc.Create(context.Background(), alice, domain.CreateConferenceInput{Name: "GopherCon"})

	require.NoError(t, err)
	assert.Equal(t, ports.TaskSendConfirmationEmail, captured.Type)
	assert.Equal(t, "alice@example.com", captured.Params[ports.ParamEmail])
	assert.Equal(t, "GopherCon", captured.Params[ports.ParamConference])
}

func TestConferenceService_Query_ByCityAndSeats(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()

	for _, in := range []domain.CreateConferenceInput{
		{Name: "GopherCon", City: "London", MaxAttendees: intPtr(50)},
		{Name: "PyData", City: "London", MaxAttendees: intPtr(5)},
		{Name: "CloudSummit", City: "Berlin", MaxAttendees: intPtr(50)},
	} {
		_, err := svc.Create(context.Background(), alice, in)
		require.NoError(t, err)
	}

	out, err := svc.Query(context.Background(), []query.Clause{
		{Field: "CITY", Operator: "EQ", Value: "London"},
		{Field: "MAX_ATTENDEES", Operator: "GT", Value: "10"},
	})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "GopherCon", out[0].Name)
}

func TestConferenceService_Query_InvalidFilter(t *testing.T) {
	env := newTestEnv(t)
	svc := env.conferences()

	_, err := svc.Query(context.Background(), []query.Clause{
		{Field: "MONTH", Operator: "GT", Value: "5"},
		{Field: "MAX_ATTENDEES", Operator: "LT", Value: "100"},
	})

	assert.ErrorIs(t, err, domain.ErrMultipleInequalityFilters)
}

func TestConferenceService_Get_ReturnsOrganizerName(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()
	conf := createConference(t, svc, alice, "GopherCon", 10)

	_, organizerName, err := svc.Get(context.Background(), conf.Key)

	require.NoError(t, err)
	assert.Equal(t, "Alice", organizerName)
}

func TestConferenceService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := env.conferences()

	_, _, err := svc.Get(context.Background(), "not-a-key")

	assert.ErrorIs(t, err, domain.ErrConferenceNotFound)
}

func TestConferenceService_Created_ListsOwnOnly(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()
	createConference(t, svc, alice, "GopherCon", 10)
	createConference(t, svc, bob, "PyData", 10)

	out, err := svc.Created(context.Background(), alice)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "GopherCon", out[0].Name)
}

func TestConferenceService_Register_Success(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()
	conf := createConference(t, svc, alice, "GopherCon", 2)

	ok, err := svc.Register(context.Background(), bob, conf.Key)

	require.NoError(t, err)
	assert.True(t, ok)

	stored, _, err := svc.Get(context.Background(), conf.Key)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.SeatsAvailable)

	attending, err := svc.Attending(context.Background(), bob)
	require.NoError(t, err)
	require.Len(t, attending, 1)
	assert.Equal(t, "GopherCon", attending[0].Name)
}

func TestConferenceService_Register_Twice(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()
	conf := createConference(t, svc, alice, "GopherCon", 5)

	_, err := svc.Register(context.Background(), bob, conf.Key)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), bob, conf.Key)

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	stored, _, err := svc.Get(context.Background(), conf.Key)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.SeatsAvailable)
}

func TestConferenceService_Register_SoldOut(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()
	conf := createConference(t, svc, alice, "GopherCon", 1)

	_, err := svc.Register(context.Background(), bob, conf.Key)
	require.NoError(t, err)

	carol := domain.Identity{UserID: "carol", Email: "carol@example.com", DisplayName: "Carol"}
	_, err = svc.Register(context.Background(), carol, conf.Key)

	assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable)
}

func TestConferenceService_Register_ConferenceNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := env.conferences()

	_, err := svc.Register(context.Background(), bob, "bogus")

	assert.ErrorIs(t, err, domain.ErrConferenceNotFound)
}

func TestConferenceService_Unregister_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()
	conf := createConference(t, svc, alice, "GopherCon", 2)

	_, err := svc.Register(context.Background(), bob, conf.Key)
	require.NoError(t, err)

	ok, err := svc.Unregister(context.Background(), bob, conf.Key)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, _, err := svc.Get(context.Background(), conf.Key)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.SeatsAvailable)

	attending, err := svc.Attending(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, attending)
}

func TestConferenceService_Unregister_NotRegistered(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()
	conf := createConference(t, svc, alice, "GopherCon", 2)

	ok, err := svc.Unregister(context.Background(), bob, conf.Key)

	require.NoError(t, err)
	assert.False(t, ok)

	stored, _, err := svc.Get(context.Background(), conf.Key)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.SeatsAvailable)
}

// With more contenders than seats, exactly seatsAvailable registrations may
// win; everyone else must see the sold-out error and no seat may be lost or
// double-booked.
func TestConferenceService_Register_ConcurrentContention(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	svc := env.conferences()

	const seats = 3
	const contenders = 12
	conf := createConference(t, svc, alice, "GopherCon", seats)

	var wg sync.WaitGroup
	results := make(chan error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := domain.Identity{
				UserID: string(rune('a'+n)) + "-user",
				Email:  "user@example.com",
			}
			_, err := svc.Register(context.Background(), id, conf.Key)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	won, soldOut := 0, 0
	for err := range results {
		switch {
		case err == nil:
			won++
		case assert.ErrorIs(t, err, domain.ErrNoSeatsAvailable):
			soldOut++
		}
	}
	assert.Equal(t, seats, won)
	assert.Equal(t, contenders-seats, soldOut)

	stored, _, err := svc.Get(context.Background(), conf.Key)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.SeatsAvailable)
}
