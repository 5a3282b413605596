package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"classtrack/internal/service"
)

// UserHandler handles admin user-directory endpoints.
type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	users, err := h.userService.ListUsers(c.Request().Context(), caller)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Delete godoc
// @Summary Delete a user and their dependent rows
// @Tags users
// @Produce json
// @Param userID path string true "External user id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{userID} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := resolveCaller(c, h.authService)
	if err != nil {
		return httpError(err)
	}

	if err := h.userService.DeleteUser(c.Request().Context(), caller, c.Param("userID")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "user deleted successfully",
	})
}
