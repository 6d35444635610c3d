package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/holyfit/holyfit-api/pkg/logger"
	"google.golang.org/genai"
)

// GeminiClient wraps the Google GenAI client
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int
	logger      logger.Logger
}

// GeminiConfig for Gemini client
type GeminiConfig struct {
	APIKey      string
	Model       string   // default: gemini-2.5-flash
	Temperature *float32 // nil: DefaultTemperature
	MaxTokens   int      // default: 2000
	BaseURL     string   // optional endpoint override
}

// NewGeminiClient creates a new Gemini client. An empty API key yields ErrMissingCredential.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, log logger.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	if log == nil {
		log = logger.Default()
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	log.Info("✨ Gemini client initialized", "model", cfg.Model)

	return &GeminiClient{
		client:      client,
		model:       cfg.Model,
		temperature: temperatureOr(cfg.Temperature, DefaultTemperature),
		maxTokens:   cfg.MaxTokens,
		logger:      log,
	}, nil
}

// Name returns the backend name
func (c *GeminiClient) Name() string {
	return "gemini"
}

// GenerateJSON sends a prompt with a response schema and returns the raw JSON text
func (c *GeminiClient) GenerateJSON(ctx context.Context, req StructuredRequest) (string, error) {
	temperature := temperatureOr(req.Temperature, c.temperature)

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		MaxOutputTokens:  int32(maxTokens),
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema.ToGenAI(),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	c.logger.Debug("✨ Gemini request", "model", c.model, "schema", req.SchemaName)

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	duration := time.Since(start)

	if err != nil {
		c.logger.Warn("❌ Gemini request failed", "error", err, "duration", duration)
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("✅ Gemini request completed", "schema", req.SchemaName, "duration", duration)

	return text, nil
}

// Ping checks that the configured model is reachable with the current key
func (c *GeminiClient) Ping(ctx context.Context) error {
	if _, err := c.client.Models.Get(ctx, c.model, nil); err != nil {
		return fmt.Errorf("gemini ping failed: %w", err)
	}
	return nil
}
