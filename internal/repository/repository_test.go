package repository

import (
	"context"
	"testing"
	"time"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo() *Repository {
	return New(store.NewMemory())
}

func TestRepository_ConferenceRoundTrip(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	key, err := repo.AllocateConferenceKey(ctx, "alice")
	require.NoError(t, err)

	start := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 17, 0, 0, 0, 0, time.UTC)
	conf := &domain.Conference{
		Key:             key.Encode(),
		Name:            "GopherCon",
		Description:     "All things Go",
		OrganizerUserID: "alice",
		Topics:          []string{"Go", "Cloud"},
		City:            "London",
		StartDate:       &start,
		EndDate:         &end,
		Month:           6,
		MaxAttendees:    100,
		SeatsAvailable:  97,
	}
	require.NoError(t, repo.PutConference(ctx, conf))

	got, err := repo.GetConference(ctx, conf.Key)
	require.NoError(t, err)
	assert.Equal(t, conf.Name, got.Name)
	assert.Equal(t, conf.Topics, got.Topics)
	assert.Equal(t, 97, got.SeatsAvailable)
	require.NotNil(t, got.StartDate)
	assert.True(t, got.StartDate.Equal(start))
	require.NotNil(t, got.EndDate)
	assert.True(t, got.EndDate.Equal(end))
}

func TestRepository_ConferenceWithoutDates(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	key, err := repo.AllocateConferenceKey(ctx, "alice")
	require.NoError(t, err)
	conf := &domain.Conference{Key: key.Encode(), Name: "GopherCon", OrganizerUserID: "alice"}
	require.NoError(t, repo.PutConference(ctx, conf))

	got, err := repo.GetConference(ctx, conf.Key)
	require.NoError(t, err)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
	assert.Zero(t, got.Month)
}

func TestRepository_GetConference_BadKey(t *testing.T) {
	repo := newRepo()

	_, err := repo.GetConference(context.Background(), "not-a-key")

	assert.ErrorIs(t, err, domain.ErrConferenceNotFound)
}

func TestRepository_ConferencesByKeys_SkipsMissing(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	key, err := repo.AllocateConferenceKey(ctx, "alice")
	require.NoError(t, err)
	conf := &domain.Conference{Key: key.Encode(), Name: "GopherCon", OrganizerUserID: "alice"}
	require.NoError(t, repo.PutConference(ctx, conf))

	gone := store.NewIDKey(KindConference, 999, ProfileKey("alice")).Encode()
	got, err := repo.ConferencesByKeys(ctx, []string{conf.Key, gone})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "GopherCon", got[0].Name)
}

func TestRepository_SessionRoundTrip(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	confKey, err := repo.AllocateConferenceKey(ctx, "alice")
	require.NoError(t, err)
	sessKey, err := repo.AllocateSessionKey(ctx, confKey)
	require.NoError(t, err)

	startTime := domain.TimeOfDay(9*60 + 30)
	sess := &domain.Session{
		Key:           sessKey.Encode(),
		ConferenceKey: confKey.Encode(),
		Name:          "Generics in practice",
		Highlights:    []string{"type sets", "inference"},
		SpeakerName:   "Grace Hopper",
		Duration:      45,
		TypeOfSession: domain.SessionLecture,
		StartTime:     &startTime,
	}
	require.NoError(t, repo.PutSession(ctx, sess))

	got, err := repo.GetSession(ctx, sess.Key)
	require.NoError(t, err)
	assert.Equal(t, sess.Name, got.Name)
	assert.Equal(t, sess.Highlights, got.Highlights)
	assert.Equal(t, domain.SessionLecture, got.TypeOfSession)
	assert.Equal(t, confKey.Encode(), got.ConferenceKey)
	require.NotNil(t, got.StartTime)
	assert.Equal(t, startTime, *got.StartTime)
}

func TestRepository_SessionWithoutStartTime(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	confKey, err := repo.AllocateConferenceKey(ctx, "alice")
	require.NoError(t, err)
	sessKey, err := repo.AllocateSessionKey(ctx, confKey)
	require.NoError(t, err)

	sess := &domain.Session{
		Key:           sessKey.Encode(),
		ConferenceKey: confKey.Encode(),
		Name:          "Hallway track",
		SpeakerName:   "Various",
		TypeOfSession: domain.SessionNotSpecified,
	}
	require.NoError(t, repo.PutSession(ctx, sess))

	got, err := repo.GetSession(ctx, sess.Key)
	require.NoError(t, err)
	assert.Nil(t, got.StartTime)
}

func TestRepository_SessionsByKeys_AlignsAndMarksMissing(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	confKey, err := repo.AllocateConferenceKey(ctx, "alice")
	require.NoError(t, err)
	sessKey, err := repo.AllocateSessionKey(ctx, confKey)
	require.NoError(t, err)
	sess := &domain.Session{
		Key: sessKey.Encode(), ConferenceKey: confKey.Encode(),
		Name: "Talk", SpeakerName: "Grace Hopper", TypeOfSession: domain.SessionNotSpecified,
	}
	require.NoError(t, repo.PutSession(ctx, sess))

	gone := store.NewIDKey(KindSession, 999, confKey).Encode()
	got, err := repo.SessionsByKeys(ctx, []string{gone, sess.Key})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0])
	require.NotNil(t, got[1])
	assert.Equal(t, "Talk", got[1].Name)
}

func TestRepository_ProfileRoundTrip(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	prof := &domain.Profile{
		UserID:                 "alice",
		DisplayName:            "Alice",
		MainEmail:              "alice@example.com",
		TeeShirtSize:           domain.TeeShirtLW,
		ConferenceKeysToAttend: []string{"c1", "c2"},
		SessionsInWishlist:     []string{"s1"},
	}
	require.NoError(t, repo.PutProfile(ctx, prof))

	got, err := repo.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, prof.DisplayName, got.DisplayName)
	assert.Equal(t, prof.TeeShirtSize, got.TeeShirtSize)
	assert.Equal(t, prof.ConferenceKeysToAttend, got.ConferenceKeysToAttend)
	assert.Equal(t, prof.SessionsInWishlist, got.SessionsInWishlist)
}

func TestRepository_GetProfile_Missing(t *testing.T) {
	repo := newRepo()

	_, err := repo.GetProfile(context.Background(), "nobody")

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestRepository_SpeakersBySessionCount_Ordering(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	for _, s := range []*domain.Speaker{
		{DisplayName: "Rob", SessionKeys: []string{"a"}, SessionCount: 1, Featured: true},
		{DisplayName: "Grace", SessionKeys: []string{"a", "b"}, SessionCount: 2, Featured: true},
		{DisplayName: "Ada", SessionKeys: []string{"a", "b"}, SessionCount: 2, Featured: true},
	} {
		require.NoError(t, repo.PutSpeaker(ctx, s))
	}

	got, err := repo.SpeakersBySessionCount(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Ada", got[0].DisplayName)
	assert.Equal(t, "Grace", got[1].DisplayName)
	assert.Equal(t, "Rob", got[2].DisplayName)
}

func TestRepository_Transact_CrossGroupAtomicity(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	require.NoError(t, repo.PutProfile(ctx, &domain.Profile{UserID: "bob", TeeShirtSize: domain.TeeShirtNotSpecified}))
	confKey, err := repo.AllocateConferenceKey(ctx, "alice")
	require.NoError(t, err)
	conf := &domain.Conference{Key: confKey.Encode(), Name: "GopherCon", OrganizerUserID: "alice", MaxAttendees: 2, SeatsAvailable: 2}
	require.NoError(t, repo.PutConference(ctx, conf))

	err = repo.Transact(ctx, func(tx *Tx) error {
		prof, err := tx.GetProfile(ctx, "bob")
		if err != nil {
			return err
		}
		c, err := tx.GetConference(ctx, conf.Key)
		if err != nil {
			return err
		}
		prof.ConferenceKeysToAttend = append(prof.ConferenceKeysToAttend, conf.Key)
		c.SeatsAvailable--
		if err := tx.PutProfile(ctx, prof); err != nil {
			return err
		}
		return tx.PutConference(ctx, c)
	})
	require.NoError(t, err)

	prof, err := repo.GetProfile(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{conf.Key}, prof.ConferenceKeysToAttend)
	got, err := repo.GetConference(ctx, conf.Key)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SeatsAvailable)
}
