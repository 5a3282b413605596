package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"classtrack/internal/model"
	"classtrack/internal/service"
)

// AttendanceHandler handles check-in and ledger endpoints.
type AttendanceHandler struct {
	authService       service.AuthService
	attendanceService service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(authService service.AuthService, attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{authService: authService, attendanceService: attendanceService}
}

// CheckInRequest represents a student check-in by session code.
type CheckInRequest struct {
	Code string `json:"code" validate:"required"`
}

// SessionAttendanceResponse lists who checked in to one session.
type SessionAttendanceResponse struct {
	SessionID   uint              `json:"session_id"`
	SessionName string            `json:"session_name"`
	Attendance  []AttendanceEntry `json:"attendance"`
}

// AttendanceEntry is one (student, timestamp) pair.
type AttendanceEntry struct {
	StudentID string `json:"student_id"`
	Timestamp string `json:"timestamp"`
}

// CheckIn godoc
// @Summary Mark attendance for a session code
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body CheckInRequest true "Session code"
// @Success 200 {object} map[string]string "already marked"
// @Success 201 {object} map[string]interface{} "newly marked"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, alreadyMarked, err := h.attendanceService.CheckIn(c.Request().Context(), caller, req.Code)
	if err != nil {
		return httpError(err)
	}

	if alreadyMarked {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "attendance already marked",
		})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "attendance marked successfully",
		"record":  record,
	})
}

// ViewForSession godoc
// @Summary View attendance for an owned session
// @Tags attendance
// @Produce json
// @Param id path int true "Session internal id"
// @Success 200 {object} SessionAttendanceResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance/{id} [get]
func (h *AttendanceHandler) ViewForSession(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	session, records, err := h.attendanceService.ViewForSession(c.Request().Context(), caller, uint(id))
	if err != nil {
		return httpError(err)
	}

	resp := SessionAttendanceResponse{
		SessionID:   session.ID,
		SessionName: session.Name,
		Attendance:  make([]AttendanceEntry, 0, len(records)),
	}
	for _, record := range records {
		resp.Attendance = append(resp.Attendance, AttendanceEntry{
			StudentID: record.StudentID,
			Timestamp: record.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// ListAll godoc
// @Summary List the full attendance ledger
// @Tags attendance
// @Produce json
// @Success 200 {array} model.Attendance
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance [get]
func (h *AttendanceHandler) ListAll(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	records, err := h.attendanceService.ListAll(c.Request().Context(), caller)
	if err != nil {
		return httpError(err)
	}
	if records == nil {
		records = []model.Attendance{}
	}
	return c.JSON(http.StatusOK, records)
}

// Delete godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) Delete(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	if err := h.attendanceService.Delete(c.Request().Context(), caller, uint(id)); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "attendance record deleted successfully",
	})
}
