package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/handler/dto"
	hmocks "github.com/confcentral/confcentral/internal/handler/mocks"
	"github.com/confcentral/confcentral/internal/middleware"
	"github.com/confcentral/confcentral/internal/query"
	"github.com/confcentral/confcentral/internal/router"
	"github.com/confcentral/confcentral/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

var testIdentity = domain.Identity{
	UserID:      "alice",
	Email:       "alice@example.com",
	DisplayName: "Alice",
}

type testMocks struct {
	conferences   *hmocks.MockConferenceSvc
	sessions      *hmocks.MockSessionSvc
	profiles      *hmocks.MockProfileSvc
	wishlist      *hmocks.MockWishlistSvc
	announcements *hmocks.MockAnnouncementSvc
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		conferences:   hmocks.NewMockConferenceSvc(t),
		sessions:      hmocks.NewMockSessionSvc(t),
		profiles:      hmocks.NewMockProfileSvc(t),
		wishlist:      hmocks.NewMockWishlistSvc(t),
		announcements: hmocks.NewMockAnnouncementSvc(t),
	}

	h := NewHandler(m.conferences, m.sessions, m.profiles, m.wishlist, m.announcements)
	r := router.InitRouter("test", h, middleware.Auth(testJWTSecret))

	return m, r
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   testIdentity.UserID,
		"email": testIdentity.Email,
		"name":  testIdentity.DisplayName,
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", bearerToken(t))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Conferences ---

func TestHandler_CreateConference_Success(t *testing.T) {
	m, r := setupRouter(t)

	conf := &domain.Conference{
		Key:             "key-1",
		Name:            "GopherCon",
		OrganizerUserID: "alice",
		City:            "London",
		Topics:          []string{"Go"},
		MaxAttendees:    100,
		SeatsAvailable:  100,
	}
	m.conferences.EXPECT().Create(mock.Anything, testIdentity, mock.Anything).Return(conf, nil)

	w := doJSON(t, r, http.MethodPost, "/api/conferences", dto.CreateConferenceRequest{
		Name: "GopherCon",
		City: "London",
	}, true)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ConferenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GopherCon", resp.Name)
	assert.Equal(t, "key-1", resp.WebsafeKey)
	assert.Equal(t, "Alice", resp.OrganizerDisplayName)
}

func TestHandler_CreateConference_Unauthorized(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/conferences", dto.CreateConferenceRequest{Name: "X"}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateConference_BadToken(t *testing.T) {
	_, r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/conferences", bytes.NewBufferString(`{"name":"X"}`))
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateConference_MissingName(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/conferences", map[string]string{"city": "London"}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QueryConferences_Public(t *testing.T) {
	m, r := setupRouter(t)

	m.conferences.EXPECT().
		Query(mock.Anything, []query.Clause{{Field: "CITY", Operator: "EQ", Value: "London"}}).
		Return([]*domain.Conference{{Key: "key-1", Name: "GopherCon"}}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/queries/conferences", dto.QueryRequest{
		Filters: []query.Clause{{Field: "CITY", Operator: "EQ", Value: "London"}},
	}, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ConferenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "GopherCon", resp[0].Name)
}

func TestHandler_QueryConferences_InvalidFilter(t *testing.T) {
	m, r := setupRouter(t)

	m.conferences.EXPECT().Query(mock.Anything, mock.Anything).
		Return(nil, domain.ErrMultipleInequalityFilters)

	w := doJSON(t, r, http.MethodPost, "/api/queries/conferences", dto.QueryRequest{}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetConference_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.conferences.EXPECT().Get(mock.Anything, "missing").
		Return(nil, "", domain.ErrConferenceNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/conferences/missing", nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Register_Conflicts(t *testing.T) {
	for name, svcErr := range map[string]error{
		"already registered": domain.ErrAlreadyRegistered,
		"sold out":           domain.ErrNoSeatsAvailable,
		"commit contention":  domain.ErrTxConflict,
	} {
		t.Run(name, func(t *testing.T) {
			m, r := setupRouter(t)
			m.conferences.EXPECT().Register(mock.Anything, testIdentity, "key-1").
				Return(false, svcErr)

			w := doJSON(t, r, http.MethodPost, "/api/conferences/key-1/registration", nil, true)

			assert.Equal(t, http.StatusConflict, w.Code)
		})
	}
}

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.conferences.EXPECT().Register(mock.Anything, testIdentity, "key-1").Return(true, nil)

	w := doJSON(t, r, http.MethodPost, "/api/conferences/key-1/registration", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BooleanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandler_Unregister_NotRegisteredIsFalseNotError(t *testing.T) {
	m, r := setupRouter(t)

	m.conferences.EXPECT().Unregister(mock.Anything, testIdentity, "key-1").Return(false, nil)

	w := doJSON(t, r, http.MethodDelete, "/api/conferences/key-1/registration", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BooleanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

// --- Sessions ---

func TestHandler_CreateSession_Forbidden(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().Create(mock.Anything, testIdentity, "key-1", mock.Anything).
		Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPost, "/api/conferences/key-1/sessions", dto.CreateSessionRequest{
		Name:        "Talk",
		SpeakerName: "Grace Hopper",
	}, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateSession_Success(t *testing.T) {
	m, r := setupRouter(t)

	sess := &domain.Session{
		Key:           "sess-1",
		ConferenceKey: "key-1",
		Name:          "Talk",
		SpeakerName:   "Grace Hopper",
		TypeOfSession: domain.SessionLecture,
	}
	m.sessions.EXPECT().Create(mock.Anything, testIdentity, "key-1", mock.Anything).Return(sess, nil)

	w := doJSON(t, r, http.MethodPost, "/api/conferences/key-1/sessions", dto.CreateSessionRequest{
		Name:          "Talk",
		SpeakerName:   "Grace Hopper",
		TypeOfSession: "LECTURE",
	}, true)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.WebsafeKey)
	assert.Equal(t, "LECTURE", resp.TypeOfSession)
}

func TestHandler_GetConferenceSessions_PassesTypeFilter(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().ByConference(mock.Anything, "key-1", "KEYNOTE").
		Return([]*domain.Session{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/conferences/key-1/sessions?type=KEYNOTE", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetSessionsBySpeaker(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().BySpeaker(mock.Anything, "Grace Hopper").
		Return([]*domain.Session{{Key: "sess-1", Name: "Talk", SpeakerName: "Grace Hopper"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/speakers/Grace%20Hopper/sessions", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Talk", resp[0].Name)
}

func TestHandler_QueryAllSessions(t *testing.T) {
	m, r := setupRouter(t)

	m.sessions.EXPECT().Query(mock.Anything, mock.Anything).
		Return([]*domain.Session{{Key: "sess-1", Name: "Talk"}}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/queries/sessions", dto.QueryRequest{
		Filters: []query.Clause{{Field: "TYPE", Operator: "EQ", Value: "LECTURE"}},
	}, false)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Wishlist ---

func TestHandler_AddSessionToWishlist_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	m.wishlist.EXPECT().Add(mock.Anything, testIdentity, "sess-1").
		Return(nil, domain.ErrAlreadyInWishlist)

	w := doJSON(t, r, http.MethodPost, "/api/wishlist/sess-1", nil, true)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetSessionsInWishlist_MarksMissing(t *testing.T) {
	m, r := setupRouter(t)

	m.wishlist.EXPECT().List(mock.Anything, testIdentity).Return([]service.WishlistEntry{
		{Key: "sess-1", Session: &domain.Session{Key: "sess-1", Name: "Talk"}},
		{Key: "sess-gone", Session: nil},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/wishlist", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.WishlistEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.False(t, resp[0].Missing)
	assert.True(t, resp[1].Missing)
	assert.Nil(t, resp[1].Session)
}

// --- Profile ---

func TestHandler_GetProfile(t *testing.T) {
	m, r := setupRouter(t)

	m.profiles.EXPECT().Get(mock.Anything, testIdentity).Return(&domain.Profile{
		UserID:       "alice",
		DisplayName:  "Alice",
		TeeShirtSize: domain.TeeShirtNotSpecified,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserID)
	assert.Equal(t, "NOT_SPECIFIED", resp.TeeShirtSize)
}

func TestHandler_SaveProfile_BadSize(t *testing.T) {
	m, r := setupRouter(t)

	m.profiles.EXPECT().Save(mock.Anything, testIdentity, domain.SaveProfileInput{TeeShirtSize: "HUGE"}).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/profile", dto.SaveProfileRequest{TeeShirtSize: "HUGE"}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Announcements ---

func TestHandler_GetAnnouncement(t *testing.T) {
	m, r := setupRouter(t)

	m.announcements.EXPECT().Announcement().Return("hurry up")

	w := doJSON(t, r, http.MethodGet, "/api/announcements/conferences", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AnnouncementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hurry up", resp.Announcement)
}

func TestHandler_GetSpeakerAnnouncement_Empty(t *testing.T) {
	m, r := setupRouter(t)

	m.announcements.EXPECT().SpeakerAnnouncement().Return("")

	w := doJSON(t, r, http.MethodGet, "/api/announcements/speakers", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AnnouncementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Announcement)
}

func TestHandler_Health(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
}
