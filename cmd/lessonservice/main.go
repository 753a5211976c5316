package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lesson-sage/internal/auth"
	"lesson-sage/internal/config"
	"lesson-sage/internal/database"
	"lesson-sage/internal/lesson"
	"lesson-sage/internal/logger"
	"lesson-sage/internal/server"
)

// main is the entry point for the LessonService.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "LessonService: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if cfg.DBConnectionString == "" {
		return fmt.Errorf("DB_CONNECTION_STRING is not set")
	}
	// Only verifies tokens; the UserService issues them with the same secret.
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DBConnectionString)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info("database connected")

	lessonHandler := lesson.NewHandler(lesson.NewService(lesson.NewPostgresRepository(db)), log)

	r := server.NewRouter(log, "LessonService")
	lessonHandler.RegisterRoutes(r, auth.Middleware(tokens))

	port := cfg.Port
	if port == "" {
		port = "8081"
	}
	return server.Run(ctx, log, "LessonService", port, r)
}
