package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/identity-hub/identity-api/internal/core/domain"
	"github.com/identity-hub/identity-api/internal/core/ports"
)

// UserHandler exposes the user record operations over HTTP.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v2/users — creates a user from a typed request.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v2/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// CreateGuest handles POST /v2/users/guest — the guest factory.
//
// @Summary      Create a guest user
// @Tags         users
// @Produce      json
// @Success      201  {object}  userResponse
// @Router       /v2/users/guest [post]
func (h *UserHandler) CreateGuest(c echo.Context) error {
	guest, err := h.service.CreateGuest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(guest))
}

// Get handles GET /v2/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /v2/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List handles GET /v2/users with optional role/page/limit query parameters.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        role   query     string  false  "Filter by role"
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Rows per page"
// @Success      200    {object}  listUsersResponse
// @Router       /v2/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Role:  c.QueryParam("role"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Validate handles POST /v2/users/validate — yields the accept/reject verdict
// for an arbitrary JSON object. Malformed shapes are a false verdict, never an
// error; only a payload that is not a JSON object at all is rejected with 400.
//
// @Summary      Validate a candidate user mapping
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Candidate mapping"
// @Success      200   {object}  validateResponse
// @Failure      400   {object}  errorResponse
// @Router       /v2/users/validate [post]
func (h *UserHandler) Validate(c echo.Context) error {
	var candidate map[string]any
	if err := c.Bind(&candidate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload must be a JSON object")
	}
	return c.JSON(http.StatusOK, validateResponse{Valid: h.service.Validate(candidate)})
}

// GetConfig handles GET /v2/users/:id/config.
//
// @Summary      Get a user's preferences
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userConfigPayload
// @Failure      404  {object}  errorResponse
// @Router       /v2/users/{id}/config [get]
func (h *UserHandler) GetConfig(c echo.Context) error {
	cfg, err := h.service.GetConfig(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConfigPayload(cfg))
}

// SaveConfig handles PUT /v2/users/:id/config.
//
// @Summary      Replace a user's preferences
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      userConfigPayload  true  "Preferences"
// @Success      200   {object}  userConfigPayload
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v2/users/{id}/config [put]
func (h *UserHandler) SaveConfig(c echo.Context) error {
	var req userConfigPayload
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	cfg := domain.UserConfig{
		Theme:         req.Theme,
		Language:      req.Language,
		Notifications: req.Notifications,
	}
	if err := h.service.SaveConfig(c.Request().Context(), c.Param("id"), cfg); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toConfigPayload(&cfg))
}
