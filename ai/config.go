// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"fmt"
	"strings"
)

// Config holds configuration for the language-model analyzer.
type Config struct {
	// Host is the base URL of an OpenAI-compatible API.
	// Example: "http://localhost:11434/v1" for a local Ollama server
	Host string

	// Model is the chat model identifier.
	// Example: "qwen2.5:3b", "llama-3.1-8b-instant"
	Model string

	// APIKey authenticates against hosted APIs. Local servers accept "none".
	APIKey string

	// Temperature for the chat completion.
	// Default: 0.3
	Temperature float64

	// MaxTokens caps the length of the model's answer.
	// Default: 500
	MaxTokens int

	// MaxTopics is the maximum number of topics kept from an answer.
	// Default: 4
	MaxTopics int

	// MaxAttempts is how often a malformed answer is retried before the
	// analyzer falls back to keywords.
	// Default: 3
	MaxAttempts int

	// Anonymize strips names, contact data and places from the text before
	// it is sent to the model.
	// Default: true
	Anonymize bool

	// RequestsPerSecond limits calls to the chat API. Zero disables the
	// limit.
	// Default: 0
	RequestsPerSecond float64

	// Burst is the number of calls allowed at once when RequestsPerSecond
	// is set.
	// Default: 1
	Burst int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the API base URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the chat model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = t
	}
}

// WithMaxTokens sets the answer length cap.
func WithMaxTokens(n int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = n
	}
}

// WithMaxTopics sets how many topics are kept from an answer.
func WithMaxTopics(n int) ConfigOption {
	return func(c *Config) {
		c.MaxTopics = n
	}
}

// WithMaxAttempts sets the number of attempts for malformed answers.
func WithMaxAttempts(n int) ConfigOption {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithAnonymize toggles anonymization of outgoing text.
func WithAnonymize(on bool) ConfigOption {
	return func(c *Config) {
		c.Anonymize = on
	}
}

// WithRateLimit limits calls to the chat API.
func WithRateLimit(rps float64, burst int) ConfigOption {
	return func(c *Config) {
		c.RequestsPerSecond = rps
		c.Burst = burst
	}
}

// DefaultConfig returns a Config for a local OpenAI-compatible server.
func DefaultConfig() *Config {
	return &Config{
		Host:        "http://localhost:11434/v1",
		Model:       "qwen2.5:3b",
		APIKey:      "none",
		Temperature: 0.3,
		MaxTokens:   500,
		MaxTopics:   4,
		MaxAttempts: 3,
		Anonymize:   true,
		Burst:       1,
	}
}

// NewConfig creates a Config with the default values and applies opts.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("https://api.groq.com/openai/v1"),
//	    WithModel("llama-3.1-8b-instant"),
//	    WithAPIKey(os.Getenv("GROQ_API_KEY")),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the configuration in canonical form: the host gets a /v1
// suffix, which OpenAI-compatible servers (Ollama, LocalAI, vLLM) expect,
// and an empty API key becomes "none".
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/") + "/v1"
	}
	if c.APIKey == "" {
		c.APIKey = "none"
	}
}

// Validate normalizes the configuration and checks that it is complete.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: Model is required", ErrInvalidConfig)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: Temperature must be between 0 and 2", ErrInvalidConfig)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("%w: MaxTokens must be positive", ErrInvalidConfig)
	}
	if c.MaxTopics < 1 {
		return fmt.Errorf("%w: MaxTopics must be positive", ErrInvalidConfig)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: RequestsPerSecond must not be negative", ErrInvalidConfig)
	}
	if c.RequestsPerSecond > 0 && c.Burst < 1 {
		return fmt.Errorf("%w: Burst must be positive", ErrInvalidConfig)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: MaxAttempts must be positive", ErrInvalidConfig)
	}
	return nil
}
