package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/holyfit/holyfit-api/pkg/logger"
)

// ErrNotFound is returned when a backend has no value for a key
var ErrNotFound = errors.New("secret not found")

// Backends
const (
	BackendEnv = "env"
	BackendAWS = "aws"
)

// Manager defines the interface for secrets management
type Manager interface {
	// GetSecret retrieves a secret by key
	GetSecret(ctx context.Context, key string) (string, error)

	// Close closes any resources held by the manager
	Close() error
}

// Config holds secrets manager configuration
type Config struct {
	Backend       string        // "env" or "aws"
	AWSRegion     string        // AWS region for Secrets Manager
	Prefix        string        // prepended to every secret id, e.g. "holyfit/prod/"
	CacheDuration time.Duration // How long to cache secrets
	Endpoint      string        // optional Secrets Manager endpoint override
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Backend:       BackendEnv,
		AWSRegion:     "us-east-1",
		CacheDuration: 5 * time.Minute,
	}
}

// NewManager creates a new secrets manager based on configuration
func NewManager(cfg Config, log logger.Logger) (Manager, error) {
	if log == nil {
		log = logger.Default()
	}
	if cfg.CacheDuration <= 0 {
		cfg.CacheDuration = 5 * time.Minute
	}

	switch cfg.Backend {
	case BackendAWS, "aws-secrets-manager":
		log.Info("🔐 Initializing AWS Secrets Manager", "region", cfg.AWSRegion)
		return NewAWSSecretsManager(cfg, log)
	case BackendEnv, "environment", "":
		log.Info("🔐 Using environment variables for secrets")
		return NewEnvironmentManager(), nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend: %s", cfg.Backend)
	}
}

// EnvironmentManager loads secrets from environment variables
type EnvironmentManager struct{}

// NewEnvironmentManager creates a new environment-based secrets manager
func NewEnvironmentManager() *EnvironmentManager {
	return &EnvironmentManager{}
}

// GetSecret retrieves a secret from environment variables
func (m *EnvironmentManager) GetSecret(ctx context.Context, key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return value, nil
}

// Close is a no-op for environment manager
func (m *EnvironmentManager) Close() error {
	return nil
}

// AWSSecretsManager loads secrets from AWS Secrets Manager
type AWSSecretsManager struct {
	client  *secretsmanager.SecretsManager
	config  Config
	logger  logger.Logger
	cache   map[string]cachedSecret
	cacheMu sync.RWMutex
}

type cachedSecret struct {
	value     string
	expiresAt time.Time
}

// NewAWSSecretsManager creates a new AWS Secrets Manager client
func NewAWSSecretsManager(cfg Config, log logger.Logger) (*AWSSecretsManager, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		// Local endpoints (tests, localstack) accept any credentials
		if os.Getenv("AWS_ACCESS_KEY_ID") == "" {
			awsCfg.Credentials = credentials.NewStaticCredentials("local", "local", "")
		}
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &AWSSecretsManager{
		client: secretsmanager.New(sess),
		config: cfg,
		logger: log,
		cache:  make(map[string]cachedSecret),
	}, nil
}

// GetSecret retrieves a secret from AWS Secrets Manager
func (m *AWSSecretsManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.getCached(key); ok {
		return value, nil
	}

	id := m.config.Prefix + key
	result, err := m.client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == secretsmanager.ErrCodeResourceNotFoundException {
			return "", fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return "", fmt.Errorf("failed to get secret %s: %w", id, err)
	}

	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", id)
	}

	m.setCached(key, *result.SecretString)
	m.logger.Debug("Loaded secret from AWS Secrets Manager", "secret", id)

	return *result.SecretString, nil
}

// Close is a no-op; AWS SDK sessions don't need explicit cleanup
func (m *AWSSecretsManager) Close() error {
	return nil
}

func (m *AWSSecretsManager) getCached(key string) (string, bool) {
	m.cacheMu.RLock()
	defer m.cacheMu.RUnlock()

	cached, ok := m.cache[key]
	if !ok || time.Now().After(cached.expiresAt) {
		return "", false
	}
	return cached.value, true
}

func (m *AWSSecretsManager) setCached(key, value string) {
	m.cacheMu.Lock()
	defer m.cacheMu.Unlock()

	m.cache[key] = cachedSecret{
		value:     value,
		expiresAt: time.Now().Add(m.config.CacheDuration),
	}
}
