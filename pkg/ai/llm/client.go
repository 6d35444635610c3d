package llm

import (
	"context"
	"errors"
)

var (
	// ErrMissingCredential is returned when a remote backend has no API key
	ErrMissingCredential = errors.New("llm: api key not configured")
	// ErrEmptyResponse is returned when the backend answered without content
	ErrEmptyResponse = errors.New("llm: empty response")
)

// DefaultTemperature applies when neither the client nor the request sets one
const DefaultTemperature float32 = 0.7

func temperatureOr(t *float32, def float32) float32 {
	if t == nil {
		return def
	}
	return *t
}

// StructuredRequest asks a model for a single JSON document matching Schema
type StructuredRequest struct {
	SystemPrompt string
	Prompt       string
	SchemaName   string
	Schema       *Schema
	Temperature  *float32 // nil uses the client default; 0 is deterministic
	MaxTokens    int      // 0 uses the client default
}

// StructuredClient is the interface for schema-constrained JSON generation (Gemini, OpenAI, Ollama)
type StructuredClient interface {
	GenerateJSON(ctx context.Context, req StructuredRequest) (string, error)
	Ping(ctx context.Context) error
	Name() string
}

// Ensure implementations satisfy the interface
var _ StructuredClient = (*GeminiClient)(nil)
var _ StructuredClient = (*OpenAIClient)(nil)
