package handler

import (
	"net/http"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateConference(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CreateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	conf, err := h.conferenceService.Create(c.Request.Context(), id, domain.CreateConferenceInput{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConferenceResponse(conf, id.DisplayName))
}

func (h *Handler) QueryConferences(c *ginext.Context) {
	var req dto.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	confs, err := h.conferenceService.Query(c.Request.Context(), req.Filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConferenceResponses(confs, ""))
}

func (h *Handler) GetConference(c *ginext.Context) {
	conf, organizerName, err := h.conferenceService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConferenceResponse(conf, organizerName))
}

func (h *Handler) GetConferencesCreated(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	confs, err := h.conferenceService.Created(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConferenceResponses(confs, id.DisplayName))
}

func (h *Handler) GetConferencesToAttend(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	confs, err := h.conferenceService.Attending(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConferenceResponses(confs, ""))
}

func (h *Handler) RegisterForConference(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	success, err := h.conferenceService.Register(c.Request.Context(), id, c.Param("key"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BooleanResponse{Success: success})
}

func (h *Handler) UnregisterFromConference(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	success, err := h.conferenceService.Unregister(c.Request.Context(), id, c.Param("key"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BooleanResponse{Success: success})
}

func (h *Handler) GetAnnouncement(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.AnnouncementResponse{
		Announcement: h.announcementService.Announcement(),
	})
}

func (h *Handler) GetSpeakerAnnouncement(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.AnnouncementResponse{
		Announcement: h.announcementService.SpeakerAnnouncement(),
	})
}
