package service

import (
	"context"
	"testing"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_AddAndList(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	conf := createConference(t, env.conferences(), alice, "GopherCon", 10)
	s1 := createSession(t, env.sessions(), alice, conf.Key, domain.CreateSessionInput{
		Name: "Talk A", SpeakerName: "Grace Hopper",
	})
	s2 := createSession(t, env.sessions(), alice, conf.Key, domain.CreateSessionInput{
		Name: "Talk B", SpeakerName: "Rob",
	})
	svc := NewWishlistService(env.repo)

	added, err := svc.Add(context.Background(), bob, s2.Key)
	require.NoError(t, err)
	assert.Equal(t, "Talk B", added.Name)
	_, err = svc.Add(context.Background(), bob, s1.Key)
	require.NoError(t, err)

	entries, err := svc.List(context.Background(), bob)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Insertion order, not name order.
	assert.Equal(t, "Talk B", entries[0].Session.Name)
	assert.Equal(t, "Talk A", entries[1].Session.Name)
}

func TestWishlistService_Add_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	env.queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)
	conf := createConference(t, env.conferences(), alice, "GopherCon", 10)
	sess := createSession(t, env.sessions(), alice, conf.Key, domain.CreateSessionInput{
		Name: "Talk", SpeakerName: "Grace Hopper",
	})
	svc := NewWishlistService(env.repo)

	_, err := svc.Add(context.Background(), bob, sess.Key)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), bob, sess.Key)

	assert.ErrorIs(t, err, domain.ErrAlreadyInWishlist)
}

func TestWishlistService_Add_SessionNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWishlistService(env.repo)

	_, err := svc.Add(context.Background(), bob, "bogus")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestWishlistService_List_Empty(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWishlistService(env.repo)

	entries, err := svc.List(context.Background(), bob)

	require.NoError(t, err)
	assert.Empty(t, entries)
}
