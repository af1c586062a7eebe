package main

import (
	"fmt"
	"log"

	"invogen/internal/config"
	"invogen/internal/export"
	"invogen/internal/generator"
	"invogen/internal/generator/anthropic"
	"invogen/internal/generator/openai"
	"invogen/internal/handler"
	"invogen/internal/port"
	"invogen/internal/render/fpdf"
	"invogen/internal/router"
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
	// A missing API key must stop the process here, not fail per request.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Register completion providers
	generator.RegisterProvider("openai", func(pc *config.ProviderConfig) (port.TextCompletionProvider, error) {
		return openai.NewClient(pc), nil
	})
	generator.RegisterProvider("anthropic", func(pc *config.ProviderConfig) (port.TextCompletionProvider, error) {
		return anthropic.NewClient(pc), nil
	})

	provider, err := generator.NewProvider(&cfg.Provider)
	if err != nil {
		return fmt.Errorf("failed to initialize completion provider: %w", err)
	}

	// Initialize services
	genSvc := generator.NewService(provider)
	dispatcher := export.NewDispatcher(fpdf.NewRenderer())

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(genSvc, dispatcher)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, invoiceH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
