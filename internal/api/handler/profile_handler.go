package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/identity-hub/identity-api/internal/core/ports"
)

// ProfileHandler serves remote profile lookups.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /v2/users/:id/profile. The reserved id "invalid" is the
// only input guaranteed to resolve to 404 against the stub client.
//
// @Summary      Fetch a user's remote profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  profileResponse
// @Failure      404  {object}  errorResponse
// @Router       /v2/users/{id}/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}
