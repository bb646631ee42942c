package config

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresFirebaseCredentials(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_BASE64", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_CREDENTIALS_BASE64")
}

func TestLoadRejectsMalformedCredentials(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_BASE64", "not base64 !!!")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDecodesCredentialsAndDefaults(t *testing.T) {
	credJSON := `{"type":"service_account","project_id":"demo"}`
	t.Setenv("FIREBASE_CREDENTIALS_BASE64", base64.StdEncoding.EncodeToString([]byte(credJSON)))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, credJSON, string(cfg.Firebase.CredentialsJSON))
	assert.Equal(t, "gate_pass_requests", cfg.Firebase.Collection)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.NotEmpty(t, cfg.Auth.SharedSecret)
	assert.NotEmpty(t, cfg.PDF.InstitutionName)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_BASE64", base64.StdEncoding.EncodeToString([]byte("{}")))
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_SHARED_SECRET", "watchman_token")
	t.Setenv("FIRESTORE_COLLECTION", "passes_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "watchman_token", cfg.Auth.SharedSecret)
	assert.Equal(t, "passes_test", cfg.Firebase.Collection)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,"))
}
