package secrets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/holyfit/holyfit-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSecretsManager answers GetSecretValue over the JSON 1.1 protocol.
func fakeSecretsManager(t *testing.T, values map[string]string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "secretsmanager.GetSecretValue", r.Header.Get("X-Amz-Target"))

		var in struct {
			SecretId string
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		value, ok := values[in.SecretId]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"__type":  "ResourceNotFoundException",
				"message": "Secrets Manager can't find the specified secret.",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"ARN":          "arn:aws:secretsmanager:us-east-1:000000000000:secret:" + in.SecretId,
			"Name":         in.SecretId,
			"SecretString": value,
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func awsManager(t *testing.T, endpoint string) Manager {
	t.Helper()
	t.Setenv("AWS_ACCESS_KEY_ID", "")

	cfg := DefaultConfig()
	cfg.Backend = BackendAWS
	cfg.Prefix = "holyfit/test/"
	cfg.Endpoint = endpoint

	m, err := NewManager(cfg, nil)
	require.NoError(t, err)
	return m
}

func TestEnvironmentManager(t *testing.T) {
	t.Setenv("HOLYFIT_TEST_SECRET", "s3cret")
	m := NewEnvironmentManager()

	value, err := m.GetSecret(context.Background(), "HOLYFIT_TEST_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", value)

	_, err = m.GetSecret(context.Background(), "HOLYFIT_TEST_MISSING")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewManager_Backends(t *testing.T) {
	m, err := NewManager(Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &EnvironmentManager{}, m)

	_, err = NewManager(Config{Backend: "vault"}, nil)
	assert.ErrorContains(t, err, "unsupported secrets backend")
}

func TestAWSSecretsManager_GetSecret(t *testing.T) {
	srv, calls := fakeSecretsManager(t, map[string]string{
		"holyfit/test/JWT_SECRET": "from-aws",
	})
	m := awsManager(t, srv.URL)

	value, err := m.GetSecret(context.Background(), "JWT_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "from-aws", value)

	// second read is served from cache
	value, err = m.GetSecret(context.Background(), "JWT_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "from-aws", value)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestAWSSecretsManager_NotFound(t *testing.T) {
	srv, _ := fakeSecretsManager(t, map[string]string{})
	m := awsManager(t, srv.URL)

	_, err := m.GetSecret(context.Background(), "STRIPE_SECRET_KEY")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApply(t *testing.T) {
	srv, _ := fakeSecretsManager(t, map[string]string{
		"holyfit/test/JWT_SECRET":        "aws-jwt",
		"holyfit/test/STRIPE_SECRET_KEY": "sk_test_aws",
	})
	m := awsManager(t, srv.URL)

	cfg := &config.Config{
		JWTSecret:    "env-jwt",
		GeminiAPIKey: "env-gemini",
	}
	loaded, err := Apply(context.Background(), m, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, loaded)
	assert.Equal(t, "aws-jwt", cfg.JWTSecret)
	assert.Equal(t, "sk_test_aws", cfg.StripeSecretKey)
	assert.Equal(t, "env-gemini", cfg.GeminiAPIKey)
}

func TestApply_PropagatesBackendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"__type":"AccessDeniedException","message":"denied"}`))
	}))
	defer srv.Close()
	m := awsManager(t, srv.URL)

	_, err := Apply(context.Background(), m, &config.Config{})
	assert.Error(t, err)
}
