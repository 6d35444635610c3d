package llm

import (
	"context"

	"github.com/holyfit/holyfit-api/config"
	"github.com/holyfit/holyfit-api/pkg/logger"
)

// NewClientFromConfig builds the client named by cfg.ContentProvider.
// It returns nil and no error when content comes from the catalog, and
// ErrMissingCredential when a hosted backend has no API key.
func NewClientFromConfig(ctx context.Context, cfg *config.Config, log logger.Logger) (StructuredClient, error) {
	temperature := cfg.LLMTemperature

	switch cfg.ContentProvider {
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, GeminiConfig{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			Temperature: &temperature,
			MaxTokens:   cfg.LLMMaxTokens,
		}, log)
		if err != nil {
			return nil, err
		}
		return client, nil

	case config.ProviderOpenAI:
		client, err := NewOpenAIClient(Config{
			APIKey:      cfg.OpenAIAPIKey,
			Model:       cfg.OpenAIModel,
			Temperature: &temperature,
			MaxTokens:   cfg.LLMMaxTokens,
		}, log)
		if err != nil {
			return nil, err
		}
		return client, nil

	case config.ProviderOllama:
		return NewOllamaClient(OllamaConfig{
			BaseURL:     cfg.OllamaBaseURL,
			Model:       cfg.OllamaModel,
			Temperature: &temperature,
			MaxTokens:   cfg.LLMMaxTokens,
		}, log), nil
	}

	return nil, nil
}
