package handler

import (
	"github.com/labstack/echo/v4"

	"classtrack/internal/auth"
	errs "classtrack/internal/errors"
	"classtrack/internal/model"
	"classtrack/internal/service"
)

// resolveCaller loads the user behind the request's verified bearer token.
// The jwt middleware stores the validated *auth.Claims in the context; this
// turns the surviving subject claim into a live User.
func resolveCaller(c echo.Context, authService service.AuthService) (*model.User, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims.Subject == "" {
		return nil, errs.ErrInvalidToken
	}
	return authService.ResolveCaller(c.Request().Context(), claims.Subject)
}

// httpError translates a domain error into the echo error the boundary
// returns.
func httpError(err error) *echo.HTTPError {
	he := errs.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
