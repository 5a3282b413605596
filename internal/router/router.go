package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"classtrack/internal/auth"
	"classtrack/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	sessionHandler *handler.SessionHandler,
	attendanceHandler *handler.AttendanceHandler,
	userHandler *handler.UserHandler,
	qrHandler *handler.QRHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require JWT authentication). Validation goes through
	// the same JWTService that issues tokens, so issue and verify cannot
	// drift apart.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	}))

	// Session routes
	secured.POST("/sessions", sessionHandler.Create)
	secured.GET("/sessions", sessionHandler.ListOwn)
	secured.GET("/sessions/all", sessionHandler.ListAll)
	secured.DELETE("/sessions/:id", sessionHandler.Delete)

	// Attendance routes
	secured.POST("/attendance", attendanceHandler.CheckIn)
	secured.GET("/attendance", attendanceHandler.ListAll)
	secured.GET("/attendance/:id", attendanceHandler.ViewForSession)
	secured.DELETE("/attendance/:id", attendanceHandler.Delete)

	// QR routes
	secured.GET("/qr/:code", qrHandler.Render)

	// Admin user routes
	secured.GET("/users", userHandler.List)
	secured.DELETE("/users/:userID", userHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
