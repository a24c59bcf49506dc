package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/finstart-api/internal/config"
	"github.com/phrazzld/finstart-api/internal/generation"
	"github.com/phrazzld/finstart-api/internal/platform/gemini"
	"github.com/phrazzld/finstart-api/internal/platform/openai"
)

// newGenerator selects the configured LLM provider. Without an API key the
// server still starts and lesson generation reports itself unconfigured.
func newGenerator(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (generation.Generator, error) {
	if cfg.APIKey() == "" {
		log.Warn("no API key configured for LLM provider, lesson generation is disabled",
			slog.String("provider", cfg.Provider))
		return generation.NewUnconfigured(), nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		g, err := gemini.NewGenerator(ctx, log, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini generator: %w", err)
		}
		log.Info("lesson generation enabled",
			slog.String("provider", cfg.Provider),
			slog.String("model", cfg.ModelName))
		return g, nil

	case config.ProviderOpenAI:
		g, err := openai.NewGenerator(log, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai generator: %w", err)
		}
		log.Info("lesson generation enabled",
			slog.String("provider", cfg.Provider),
			slog.String("model", cfg.ModelName))
		return g, nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
}
