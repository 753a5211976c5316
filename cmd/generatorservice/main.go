package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lesson-sage/internal/auth"
	"lesson-sage/internal/config"
	"lesson-sage/internal/generator"
	"lesson-sage/internal/llm" // The internal package for this service
	"lesson-sage/internal/logger"
	"lesson-sage/internal/server"
)

// main is the entry point for the GeneratorService.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "GeneratorService: %v\n", err)
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

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		return err
	}

	// A missing API key is a deployment error, so refuse to start.
	gen, err := generator.New(cfg.Generator.Backend, cfg.CredentialStore(), cfg.Generator.Options())
	if err != nil {
		return fmt.Errorf("could not build %q generator: %w", cfg.Generator.Backend, err)
	}
	log.Info("generator ready", "backend", gen.Name())

	llmHandler := llm.NewHandler(llm.NewService(gen), log)

	r := server.NewRouter(log, "GeneratorService")
	llmHandler.RegisterRoutes(r, auth.Middleware(tokens))

	port := cfg.Port
	if port == "" {
		port = "8083"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return server.Run(ctx, log, "GeneratorService", port, r)
}
