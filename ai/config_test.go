package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, "qwen2.5:3b", cfg.Model)
	assert.Equal(t, "none", cfg.APIKey)
	assert.InDelta(t, 0.3, cfg.Temperature, 1e-9)
	assert.Equal(t, 4, cfg.MaxTopics)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.True(t, cfg.Anonymize)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("https://api.groq.com/openai/v1"),
			WithModel("llama-3.1-8b-instant"),
			WithAPIKey("secret"),
			WithTemperature(0.1),
			WithMaxTokens(200),
			WithMaxTopics(2),
			WithMaxAttempts(1),
			WithAnonymize(false),
		)

		assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Host)
		assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.InDelta(t, 0.1, cfg.Temperature, 1e-9)
		assert.Equal(t, 200, cfg.MaxTokens)
		assert.Equal(t, 2, cfg.MaxTopics)
		assert.Equal(t, 1, cfg.MaxAttempts)
		assert.False(t, cfg.Anonymize)
	})
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{name: "already suffixed", host: "http://localhost:11434/v1", want: "http://localhost:11434/v1"},
		{name: "bare host", host: "http://localhost:11434", want: "http://localhost:11434/v1"},
		{name: "trailing slash", host: "http://localhost:11434/", want: "http://localhost:11434/v1"},
		{name: "empty stays empty", host: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
			assert.Equal(t, "none", cfg.APIKey)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	tests := []struct {
		name string
		opt  ConfigOption
	}{
		{name: "missing host", opt: WithHost("")},
		{name: "missing model", opt: WithModel("")},
		{name: "negative temperature", opt: WithTemperature(-0.1)},
		{name: "temperature too high", opt: WithTemperature(2.5)},
		{name: "zero max tokens", opt: WithMaxTokens(0)},
		{name: "zero max topics", opt: WithMaxTopics(0)},
		{name: "zero attempts", opt: WithMaxAttempts(0)},
		{name: "negative rate", opt: WithRateLimit(-1, 1)},
		{name: "rate without burst", opt: WithRateLimit(2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opt).Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
