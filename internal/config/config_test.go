// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 168, cfg.JWT.TokenTTL)
	assert.Equal(t, "admin@boriwala.com", cfg.Admin.Email)
	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 100, cfg.Push.BatchSize)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
}

func TestValidateProductionGuards(t *testing.T) {
	cfg := &Config{Environment: "production"}
	cfg.JWT.SecretKey = "fallback-secret-change-me"
	cfg.Database.Password = "pw"
	cfg.Admin.Password = "strong-one"
	assert.Error(t, cfg.Validate(), "default JWT secret must be rejected")

	cfg.JWT.SecretKey = "real-secret"
	cfg.Database.Password = ""
	assert.Error(t, cfg.Validate(), "empty database password must be rejected")

	cfg.Database.Password = "pw"
	cfg.Admin.Password = "admin123"
	assert.Error(t, cfg.Validate(), "default admin password must be rejected")

	cfg.Admin.Password = "strong-one"
	assert.NoError(t, cfg.Validate())
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_ORIGINS", "https://a.example.com, https://b.example.com ,")
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		getEnvAsSlice("TEST_ORIGINS", nil))

	assert.Equal(t, []string{"fallback"}, getEnvAsSlice("TEST_ORIGINS_UNSET", []string{"fallback"}))
}
