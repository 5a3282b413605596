package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"classtrack/internal/auth"
	"classtrack/internal/cache"
	"classtrack/internal/config"
	"classtrack/internal/db"
	errs "classtrack/internal/errors"
	"classtrack/internal/model"
	"classtrack/internal/repository"
	"classtrack/internal/service"
)

type seedUser struct {
	username string
	email    string
	password string
	role     string
}

var seedUsers = []seedUser{
	{"admin", "admin@classtrack.local", "admin123", "admin"},
	{"alice", "alice@classtrack.local", "alice123", "instructor"},
	{"bob", "bob@classtrack.local", "bob12345", "student"},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Session{}, &model.Attendance{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	sessionService := service.NewSessionService(sessionRepo, cache.NewSessionCache(cache.New("", "", 0)))

	ctx := context.Background()

	var instructor *model.User
	for _, su := range seedUsers {
		user, err := authService.Register(ctx, su.username, su.email, su.password, su.role)
		if errors.Is(err, errs.ErrDuplicateUser) {
			log.Printf("Skipping %s: already registered", su.username)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", su.username, err)
		}
		log.Printf("Seeded %s user %s (%s)", user.Role, user.Username, user.ExternalID)
		if user.Role == model.RoleInstructor {
			instructor = user
		}
	}

	if instructor != nil {
		session, err := sessionService.Create(ctx, instructor, "Demo Lecture")
		if err != nil {
			log.Fatalf("Failed to seed session: %v", err)
		}
		log.Printf("Seeded session %q with code %s", session.Name, session.Code)
	}

	log.Println("Seed completed")
}
