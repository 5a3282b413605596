package main

import (
	"log"
	"net/http"
	"os"

	_ "classtrack/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"classtrack/internal/auth"
	"classtrack/internal/cache"
	"classtrack/internal/config"
	"classtrack/internal/db"
	"classtrack/internal/handler"
	"classtrack/internal/model"
	"classtrack/internal/repository"
	"classtrack/internal/router"
	"classtrack/internal/service"
)

// @title Class Attendance API
// @version 1.0
// @description Attendance tracking with instructor sessions, student QR check-ins, and admin auditing.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Attendance{},
			&model.Session{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Attendance{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessionCache := cache.NewSessionCache(cacheClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	sessionService := service.NewSessionService(sessionRepo, sessionCache)
	attendanceService := service.NewAttendanceService(attendanceRepo, sessionService)
	userService := service.NewUserService(userRepo, sessionRepo, sessionCache)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	sessionHandler := handler.NewSessionHandler(authService, sessionService)
	attendanceHandler := handler.NewAttendanceHandler(authService, attendanceService)
	userHandler := handler.NewUserHandler(authService, userService)
	qrHandler := handler.NewQRHandler(authService, sessionService, cfg.APIBaseURL)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		sessionHandler,
		attendanceHandler,
		userHandler,
		qrHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
