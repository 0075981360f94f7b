package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/handler/dto"
	"github.com/confcentral/confcentral/internal/middleware"
	"github.com/confcentral/confcentral/internal/query"
	"github.com/confcentral/confcentral/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type ConferenceSvc interface {
	Create(ctx context.Context, id domain.Identity, input domain.CreateConferenceInput) (*domain.Conference, error)
	Query(ctx context.Context, clauses []query.Clause) ([]*domain.Conference, error)
	Get(ctx context.Context, websafeKey string) (*domain.Conference, string, error)
	Created(ctx context.Context, id domain.Identity) ([]*domain.Conference, error)
	Attending(ctx context.Context, id domain.Identity) ([]*domain.Conference, error)
	Register(ctx context.Context, id domain.Identity, websafeKey string) (bool, error)
	Unregister(ctx context.Context, id domain.Identity, websafeKey string) (bool, error)
}

type SessionSvc interface {
	Create(ctx context.Context, id domain.Identity, conferenceKey string, input domain.CreateSessionInput) (*domain.Session, error)
	ByConference(ctx context.Context, conferenceKey, typeOfSession string) ([]*domain.Session, error)
	BySpeaker(ctx context.Context, displayName string) ([]*domain.Session, error)
	Query(ctx context.Context, clauses []query.Clause) ([]*domain.Session, error)
}

type ProfileSvc interface {
	Get(ctx context.Context, id domain.Identity) (*domain.Profile, error)
	Save(ctx context.Context, id domain.Identity, input domain.SaveProfileInput) (*domain.Profile, error)
}

type WishlistSvc interface {
	Add(ctx context.Context, id domain.Identity, sessionKey string) (*domain.Session, error)
	List(ctx context.Context, id domain.Identity) ([]service.WishlistEntry, error)
}

type AnnouncementSvc interface {
	Announcement() string
	SpeakerAnnouncement() string
}

type Handler struct {
	conferenceService   ConferenceSvc
	sessionService      SessionSvc
	profileService      ProfileSvc
	wishlistService     WishlistSvc
	announcementService AnnouncementSvc
}

func NewHandler(
	conferenceService ConferenceSvc,
	sessionService SessionSvc,
	profileService ProfileSvc,
	wishlistService WishlistSvc,
	announcementService AnnouncementSvc,
) *Handler {
	return &Handler{
		conferenceService:   conferenceService,
		sessionService:      sessionService,
		profileService:      profileService,
		wishlistService:     wishlistService,
		announcementService: announcementService,
	}
}

// identity pulls the caller identity the auth middleware stored; it aborts
// with 401 when absent.
func (h *Handler) identity(c *ginext.Context) (domain.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()},
		)
		return domain.Identity{}, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrConferenceNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSpeakerNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrNoSeatsAvailable),
		errors.Is(err, domain.ErrAlreadyInWishlist),
		errors.Is(err, domain.ErrTxConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrMultipleInequalityFilters):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
