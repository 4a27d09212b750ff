package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("LLM_MAX_TOKENS", "256")
	t.Setenv("SWAGGER_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 256, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.8, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, defaultUserAgent, cfg.Fetch.UserAgent)
	assert.Equal(t, 12000, cfg.Extract.ContentBudget)
	assert.Equal(t, 100, cfg.Extract.MinContentLength)
	assert.Equal(t, StrategySelector, cfg.Extract.Strategy)
	assert.False(t, cfg.SwaggerEnabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Gemini(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "sk-ignored")

	cfg := Load()

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
}

func TestValidate(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		err := Load().Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api key")
	})

	t.Run("unknown provider and strategy", func(t *testing.T) {
		cfg := Load()
		cfg.LLM.Provider = "bard"
		cfg.LLM.APIKey = "x"
		cfg.Extract.Strategy = "magic"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_PROVIDER")
		assert.Contains(t, err.Error(), "EXTRACT_STRATEGY")
	})

	t.Run("budget below threshold", func(t *testing.T) {
		cfg := Load()
		cfg.LLM.APIKey = "x"
		cfg.Extract.ContentBudget = 50
		assert.Error(t, cfg.Validate())
	})
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	t.Setenv(key, "0.25")
	assert.InDelta(t, 0.25, getEnvFloat(key, 1), 0.0001)

	t.Setenv(key, "nope")
	assert.InDelta(t, 1.0, getEnvFloat(key, 1), 0.0001)
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"

	t.Setenv(key, "1500ms")
	assert.Equal(t, 1500*time.Millisecond, getEnvDuration(key, time.Second))

	t.Setenv(key, "7")
	assert.Equal(t, 7*time.Second, getEnvDuration(key, time.Second))

	t.Setenv(key, "soon")
	assert.Equal(t, time.Second, getEnvDuration(key, time.Second))
}
