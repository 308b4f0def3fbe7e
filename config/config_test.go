package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobforge-backend/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing jwt secret refuses to load", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 30, cfg.AccessTokenMinutes)
		assert.Equal(t, 7, cfg.RefreshTokenDays)
		assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
		assert.Equal(t, 100, cfg.RateLimitGlobalThreshold)
	})

	t.Run("cors origins parsed and trimmed", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("CORS_ORIGINS", "http://localhost:3000/, https://app.example.com ")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins)
	})
}
