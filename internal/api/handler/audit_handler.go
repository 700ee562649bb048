package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/identity-hub/identity-api/internal/core/ports"
)

// AuditHandler serves the user lifecycle audit trail.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// History handles GET /v2/users/:id/events.
//
// @Summary      List a user's lifecycle events, newest first
// @Tags         users
// @Produce      json
// @Param        id     path      string  true   "User id"
// @Param        limit  query     int     false  "Max events"
// @Success      200    {object}  auditHistoryResponse
// @Router       /v2/users/{id}/events [get]
func (h *AuditHandler) History(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	userID := c.Param("id")

	events, err := h.service.History(c.Request().Context(), userID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditHistoryResponse(userID, events))
}
