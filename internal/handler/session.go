package handler

import (
	"net/http"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateSession(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.sessionService.Create(c.Request.Context(), id, c.Param("key"), domain.CreateSessionInput{
		Name:          req.Name,
		Highlights:    req.Highlights,
		SpeakerName:   req.SpeakerName,
		Duration:      req.Duration,
		TypeOfSession: req.TypeOfSession,
		Date:          req.Date,
		StartTime:     req.StartTime,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(sess))
}

func (h *Handler) GetConferenceSessions(c *ginext.Context) {
	sessions, err := h.sessionService.ByConference(
		c.Request.Context(), c.Param("key"), c.Query("type"),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponses(sessions))
}

func (h *Handler) GetSessionsBySpeaker(c *ginext.Context) {
	sessions, err := h.sessionService.BySpeaker(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponses(sessions))
}

func (h *Handler) QueryAllSessions(c *ginext.Context) {
	var req dto.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sessions, err := h.sessionService.Query(c.Request.Context(), req.Filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponses(sessions))
}

func (h *Handler) AddSessionToWishlist(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	sess, err := h.wishlistService.Add(c.Request.Context(), id, c.Param("sessionKey"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(sess))
}

func (h *Handler) GetSessionsInWishlist(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	entries, err := h.wishlistService.List(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWishlistResponse(entries))
}
