package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"classtrack/internal/qr"
	"classtrack/internal/service"
)

// QRHandler renders scannable check-in codes for sessions.
type QRHandler struct {
	authService    service.AuthService
	sessionService service.SessionService
	baseURL        string
}

// NewQRHandler creates a new QR handler. baseURL is the externally reachable
// API address embedded in the payload.
func NewQRHandler(authService service.AuthService, sessionService service.SessionService, baseURL string) *QRHandler {
	return &QRHandler{
		authService:    authService,
		sessionService: sessionService,
		baseURL:        strings.TrimRight(baseURL, "/"),
	}
}

// Render godoc
// @Summary Render the check-in QR code for a session
// @Tags qr
// @Produce png
// @Param code path string true "Session short code"
// @Success 200 {file} binary
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /qr/{code} [get]
func (h *QRHandler) Render(c echo.Context) error {
	if _, err := resolveCaller(c, h.authService); err != nil {
		return httpError(err)
	}

	session, err := h.sessionService.ResolveByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpError(err)
	}

	payload := h.baseURL + "/api/attendance/checkin/" + session.Code
	png, err := qr.Render(payload)
	if err != nil {
		return httpError(err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
