package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Auth     AuthConfig
	Firebase FirebaseConfig
	CORS     CORSConfig
	Log      LogConfig
	PDF      PDFConfig
}

// AuthConfig holds the shared secret watchman clients must present.
type AuthConfig struct {
	SharedSecret string
}

// FirebaseConfig carries the decoded service-account credential and
// collection addressing for the gate pass store.
type FirebaseConfig struct {
	CredentialsJSON []byte
	ProjectID       string
	Collection      string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// PDFConfig controls the rendered gate pass document.
type PDFConfig struct {
	InstitutionName string
}

// Load reads configuration from .env (optional) and the environment.
// FIREBASE_CREDENTIALS_BASE64 is mandatory: without a store credential the
// process refuses to start.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Auth = AuthConfig{SharedSecret: v.GetString("AUTH_SHARED_SECRET")}

	credsB64 := v.GetString("FIREBASE_CREDENTIALS_BASE64")
	if credsB64 == "" {
		return nil, errors.New("missing FIREBASE_CREDENTIALS_BASE64 environment variable")
	}
	credsJSON, err := base64.StdEncoding.DecodeString(credsB64)
	if err != nil {
		return nil, fmt.Errorf("decode FIREBASE_CREDENTIALS_BASE64: %w", err)
	}
	cfg.Firebase = FirebaseConfig{
		CredentialsJSON: credsJSON,
		ProjectID:       v.GetString("FIREBASE_PROJECT_ID"),
		Collection:      v.GetString("FIRESTORE_COLLECTION"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.PDF = PDFConfig{InstitutionName: v.GetString("PDF_INSTITUTION_NAME")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("AUTH_SHARED_SECRET", "default_secret_token")

	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIRESTORE_COLLECTION", "gate_pass_requests")

	v.SetDefault("ALLOWED_ORIGINS", "http://127.0.0.1:5500,http://localhost:5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("PDF_INSTITUTION_NAME", "P.V.P.I.T BUDHGAON")
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
