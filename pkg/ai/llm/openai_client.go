package llm

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIClient wraps the OpenAI API client. Ollama is served by the same type
// through its OpenAI-compatible endpoint.
type OpenAIClient struct {
	client      *openai.Client
	name        string
	model       string
	temperature float32
	maxTokens   int
	logger      logger.Logger
}

// Config for OpenAI client
type Config struct {
	APIKey      string
	Model       string   // default: gpt-4o-mini
	Temperature *float32 // nil: DefaultTemperature
	MaxTokens   int      // default: 2000
	BaseURL     string   // optional endpoint override
}

// NewOpenAIClient creates a new OpenAI client. An empty API key yields ErrMissingCredential.
func NewOpenAIClient(cfg Config, log logger.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if log == nil {
		log = logger.Default()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return newOpenAICompatible("openai", config, cfg.Model, cfg.Temperature, cfg.MaxTokens, log), nil
}

func newOpenAICompatible(name string, config openai.ClientConfig, model string, temperature *float32, maxTokens int, log logger.Logger) *OpenAIClient {
	if maxTokens == 0 {
		maxTokens = 2000
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(config),
		name:        name,
		model:       model,
		temperature: temperatureOr(temperature, DefaultTemperature),
		maxTokens:   maxTokens,
		logger:      log,
	}
}

// Name returns the backend name
func (c *OpenAIClient) Name() string {
	return c.name
}

// GenerateJSON sends a chat completion constrained by a JSON schema response format
func (c *OpenAIClient) GenerateJSON(ctx context.Context, req StructuredRequest) (string, error) {
	messages := []openai.ChatCompletionMessage{}

	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	// Set defaults
	temperature := temperatureOr(req.Temperature, c.temperature)

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: wireTemperature(temperature),
		MaxTokens:   maxTokens,
	}

	if req.Schema != nil {
		name := req.SchemaName
		if name == "" {
			name = "response"
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: req.Schema.ToJSONSchema(),
				Strict: true,
			},
		}
	} else {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	c.logger.Debug("🤖 Chat request", "backend", c.name, "model", c.model, "messages", len(messages))

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	duration := time.Since(start)

	if err != nil {
		c.logger.Warn("❌ Chat request failed", "backend", c.name, "error", err, "duration", duration)
		return "", fmt.Errorf("%s chat failed: %w", c.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("✅ Chat request completed", "backend", c.name, "tokens", resp.Usage.TotalTokens, "duration", duration)

	return text, nil
}

// Ping checks that the configured model is listed by the backend
func (c *OpenAIClient) Ping(ctx context.Context) error {
	if _, err := c.client.GetModel(ctx, c.model); err != nil {
		return fmt.Errorf("%s ping failed: %w", c.name, err)
	}
	return nil
}

// wireTemperature keeps a zero temperature on the wire; the request field is
// omitempty, so a plain 0 would let the server apply its own default.
func wireTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
