package completion

import (
	"context"

	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/pkg/config"
)

// NewFromConfig builds the client for the configured provider. Missing
// credentials or a provider that cannot be created leave the client unavailable.
func NewFromConfig(ctx context.Context, cfg config.CompletionConfig, logger *zap.Logger) *Client {
	if !cfg.Configured() {
		logger.Warn("No completion provider credential configured, AI endpoints will return placeholders",
			zap.String("provider", cfg.Provider))
		return NewClient(nil, logger)
	}

	var provider Provider
	switch cfg.Provider {
	case "groq":
		provider = NewOpenAIProvider("groq", cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.Timeout)
	default:
		gemini, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to initialize AI client", zap.Error(err))
			return NewClient(nil, logger)
		}
		provider = gemini
	}

	logger.Info("Completion provider configured",
		zap.String("provider", provider.Name()),
		zap.String("model", provider.Model()))
	return NewClient(provider, logger)
}
