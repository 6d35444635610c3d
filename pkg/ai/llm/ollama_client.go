package llm

import (
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

// OllamaConfig for Ollama client
type OllamaConfig struct {
	BaseURL     string   // default: http://localhost:11434/v1
	Model       string   // default: llama3.1:8b
	Temperature *float32 // nil: DefaultTemperature
	MaxTokens   int      // default: 2000
}

// NewOllamaClient creates a client for a local Ollama server. No credential is needed.
func NewOllamaClient(cfg OllamaConfig, log logger.Logger) *OpenAIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.1:8b"
	}
	if log == nil {
		log = logger.Default()
	}

	// Create OpenAI-compatible client pointing to Ollama
	config := openai.DefaultConfig("ollama") // API key not needed for Ollama
	config.BaseURL = cfg.BaseURL

	log.Info("🦙 Ollama client initialized", "model", cfg.Model, "url", cfg.BaseURL)

	return newOpenAICompatible("ollama", config, cfg.Model, cfg.Temperature, cfg.MaxTokens, log)
}
