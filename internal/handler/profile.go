package handler

import (
	"net/http"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetProfile(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	prof, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(prof))
}

func (h *Handler) SaveProfile(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	prof, err := h.profileService.Save(c.Request.Context(), id, domain.SaveProfileInput{
		DisplayName:  req.DisplayName,
		TeeShirtSize: req.TeeShirtSize,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(prof))
}
