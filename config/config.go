package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Content provider modes
const (
	ProviderMock   = "mock"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config holds all application configuration
type Config struct {
	// API Configuration
	APIPort        string
	APIHost        string
	APIEnvironment string

	// Redis
	RedisURL string

	// Secrets
	SecretsBackend  string
	SecretsPrefix   string
	AWSRegion       string
	SecretsEndpoint string

	// Sessions
	JWTSecret              string
	SessionExpirationHours int

	// CORS
	CORSAllowedOrigins []string

	// Rate Limiting
	RateLimitRequestsPerMinute int
	RateLimitBurst             int
	GenerateRateLimitPerMinute int

	// Stripe
	StripeSecretKey     string
	StripeWebhookSecret string
	StripePricePro      string
	StripePriceElite    string

	// Frontend
	FrontendURL string

	// Logging
	LogLevel  string
	LogFormat string

	// Sentry
	SentryDSN         string
	SentryEnvironment string

	// Content generation
	ContentProvider          string
	GeminiAPIKey             string
	GeminiModel              string
	OpenAIAPIKey             string
	OpenAIModel              string
	OllamaBaseURL            string
	OllamaModel              string
	LLMTemperature           float32 // 0 selects deterministic sampling
	LLMMaxTokens             int
	GenerationTimeoutSeconds int
	DailyCalorieTarget       int
	ContentLanguage          string
	ViewStateTTLHours        int
	ProbeSchedule            string
}

// Load loads configuration from an optional .env file and the environment
func Load() *Config {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	return &Config{
		// API
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		APIEnvironment: getEnv("API_ENVIRONMENT", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		// Secrets
		SecretsBackend:  getEnv("SECRETS_BACKEND", "env"),
		SecretsPrefix:   getEnv("SECRETS_PREFIX", ""),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		SecretsEndpoint: getEnv("SECRETS_ENDPOINT", ""),

		// Sessions
		JWTSecret:              getEnv("JWT_SECRET", "change-this-in-production"),
		SessionExpirationHours: getEnvAsInt("SESSION_EXPIRATION_HOURS", 720),

		// CORS
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "https://holyfit.app"}),

		// Rate Limiting
		RateLimitRequestsPerMinute: getEnvAsInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 60),
		RateLimitBurst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
		GenerateRateLimitPerMinute: getEnvAsInt("GENERATE_RATE_LIMIT_PER_MINUTE", 20),

		// Stripe
		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		StripePricePro:      getEnv("STRIPE_PRICE_PRO", ""),
		StripePriceElite:    getEnv("STRIPE_PRICE_ELITE", ""),

		// Frontend
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		// Sentry
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "development"),

		// Content generation
		ContentProvider:          strings.ToLower(getEnv("CONTENT_PROVIDER", ProviderMock)),
		GeminiAPIKey:             getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:              getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey:             getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:              getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OllamaBaseURL:            getEnv("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		OllamaModel:              getEnv("OLLAMA_MODEL", "llama3.1:8b"),
		LLMTemperature:           getEnvAsFloat32("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:             getEnvAsInt("LLM_MAX_TOKENS", 2000),
		GenerationTimeoutSeconds: getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 60),
		DailyCalorieTarget:       getEnvAsInt("DAILY_CALORIE_TARGET", 2500),
		ContentLanguage:          getEnv("CONTENT_LANGUAGE", "ko"),
		ViewStateTTLHours:        getEnvAsInt("VIEW_STATE_TTL_HOURS", 24),
		ProbeSchedule:            getEnv("PROBE_SCHEDULE", "@every 10m"),
	}
}

// RemoteProvider reports whether content comes from an external model
func (c *Config) RemoteProvider() bool {
	switch c.ContentProvider {
	case ProviderGemini, ProviderOpenAI, ProviderOllama:
		return true
	}
	return false
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 32)
	if err != nil {
		return defaultValue
	}

	return float32(value)
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
