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
	"lesson-sage/internal/logger"
	"lesson-sage/internal/server"
	"lesson-sage/internal/user" // internal package for user logic
)

// main is the entry point for the UserService.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "UserService: %v\n", err)
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

	// Need the database connection string. Fail fast if it's not set.
	if cfg.DBConnectionString == "" {
		return fmt.Errorf("DB_CONNECTION_STRING is not set")
	}
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

	// Dependency injection, done manually: repository -> service -> handler.
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService, tokens, log, cfg.MaxAvatarBytes)

	r := server.NewRouter(log, "UserService")
	userHandler.RegisterRoutes(r, auth.Middleware(tokens))

	port := cfg.Port
	if port == "" {
		port = "8080" // Default for UserService
	}
	return server.Run(ctx, log, "UserService", port, r)
}
