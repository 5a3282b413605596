package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"classtrack/internal/service"
)

// SessionHandler handles session registry endpoints.
type SessionHandler struct {
	authService    service.AuthService
	sessionService service.SessionService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(authService service.AuthService, sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{authService: authService, sessionService: sessionService}
}

// CreateSessionRequest represents a session creation request.
type CreateSessionRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create godoc
// @Summary Create an attendance session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Session data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /sessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.sessionService.Create(c.Request().Context(), caller, req.Name)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "session created successfully",
		"session": session,
	})
}

// ListOwn godoc
// @Summary List the calling instructor's sessions
// @Tags sessions
// @Produce json
// @Success 200 {array} model.Session
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /sessions [get]
func (h *SessionHandler) ListOwn(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	sessions, err := h.sessionService.ListOwn(c.Request().Context(), caller)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

// ListAll godoc
// @Summary List all sessions
// @Tags sessions
// @Produce json
// @Success 200 {array} model.Session
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /sessions/all [get]
func (h *SessionHandler) ListAll(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	sessions, err := h.sessionService.ListAll(c.Request().Context(), caller)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

// Delete godoc
// @Summary Delete a session and its attendance
// @Tags sessions
// @Produce json
// @Param id path int true "Session internal id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	if err := h.sessionService.Delete(c.Request().Context(), caller, uint(id)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "session deleted successfully",
	})
}
