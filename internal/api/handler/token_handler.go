package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/identity-hub/identity-api/internal/core/ports"
)

// TokenHandler mints informational identity assertions.
type TokenHandler struct {
	service ports.TokenService
}

func NewTokenHandler(service ports.TokenService) *TokenHandler {
	return &TokenHandler{service: service}
}

// Issue handles POST /v2/tokens.
//
// @Summary      Issue an identity assertion for an existing user
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Target user"
// @Success      201   {object}  issueTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v2/tokens [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.service.Issue(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, issueTokenResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}
