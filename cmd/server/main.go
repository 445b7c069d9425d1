package main

import (
	"fmt"
	"log"

	"taxlens/internal/config"
	"taxlens/internal/extraction"
	"taxlens/internal/handler"
	"taxlens/internal/router"
	"taxlens/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The registry is built once and shared read-only across all requests.
	registry := extraction.NewRegistry()
	engine := extraction.NewEngine(registry, cfg.Engine.FieldConcurrency)

	extractSvc := service.NewExtractionService(engine, service.ExtractionConfig{
		TimeBudget:    cfg.Engine.TimeBudget,
		MaxInputBytes: cfg.Engine.MaxInputBytes,
		BatchLimit:    cfg.Engine.BatchLimit,
		Concurrency:   cfg.Engine.BatchConcurrency,
	})

	extractH := handler.NewExtractHandler(extractSvc)
	registryH := handler.NewRegistryHandler(registry)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, extractH, registryH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
