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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/importer"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "THERAPYMATCH_"

// Storage drivers accepted in database.driver.
const (
	DriverBadger = "badger"
	DriverSQLite = "sqlite"
)

// Config is the file and environment configuration of the command.
type Config struct {
	Database struct {
		Driver   string `yaml:"driver" toml:"driver"`
		Path     string `yaml:"path" toml:"path"`
		InMemory bool   `yaml:"in_memory" toml:"in_memory"`
	} `yaml:"database" toml:"database"`

	Log struct {
		Level string `yaml:"level" toml:"level"`
	} `yaml:"log" toml:"log"`

	Ranking struct {
		PoolSize int `yaml:"pool_size" toml:"pool_size"`
	} `yaml:"ranking" toml:"ranking"`

	Import struct {
		BatchSize   int      `yaml:"batch_size" toml:"batch_size"`
		MaxRetries  int      `yaml:"max_retries" toml:"max_retries"`
		RetryDelay  Duration `yaml:"retry_delay" toml:"retry_delay"`
		SkipInvalid bool     `yaml:"skip_invalid" toml:"skip_invalid"`
	} `yaml:"import" toml:"import"`

	AI struct {
		Enabled           bool    `yaml:"enabled" toml:"enabled"`
		Host              string  `yaml:"host" toml:"host"`
		Model             string  `yaml:"model" toml:"model"`
		APIKey            string  `yaml:"api_key" toml:"api_key"`
		Temperature       float64 `yaml:"temperature" toml:"temperature"`
		MaxTopics         int     `yaml:"max_topics" toml:"max_topics"`
		Anonymize         bool    `yaml:"anonymize" toml:"anonymize"`
		RequestsPerSecond float64 `yaml:"requests_per_second" toml:"requests_per_second"`
		Burst             int     `yaml:"burst" toml:"burst"`
	} `yaml:"ai" toml:"ai"`
}

// Duration is a time.Duration written as "250ms" or "2s" in config files.
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText writes the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	cfg.Database.Driver = DriverBadger
	cfg.Database.Path = "therapymatch.db"
	cfg.Log.Level = "warn"

	imp := importer.DefaultConfig()
	cfg.Import.BatchSize = imp.BatchSize
	cfg.Import.MaxRetries = imp.MaxRetries
	cfg.Import.RetryDelay = Duration(imp.RetryDelay)

	llm := ai.DefaultConfig()
	cfg.AI.Host = llm.Host
	cfg.AI.Model = llm.Model
	cfg.AI.Temperature = llm.Temperature
	cfg.AI.MaxTopics = llm.MaxTopics
	cfg.AI.Anonymize = llm.Anonymize
	cfg.AI.Burst = llm.Burst
	return &cfg
}

// Load builds a configuration from the defaults, the file at path and the
// environment. Files ending in .toml are read as TOML, anything else as YAML. An empty path skips the file. The .env file at envFile
// is loaded first when it exists; variables already set in the process
// environment take precedence over it.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, envFile, err)
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		if err := cfg.decode(data, FormatFromPath(path)); err != nil {
			return nil, err
		}
		slog.Debug("loaded configuration file", "path", path)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// File formats understood by Load and Encode.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatFromPath picks the file format from the extension of path.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

func (c *Config) decode(data []byte, format string) error {
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(c)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(c); errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Encode writes c to w in the given format.
func (c *Config) Encode(w io.Writer, format string) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, format)
	}
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	integer := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrInvalidConfig, EnvPrefix, name, err)
		}
		*dst = n
		return nil
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrInvalidConfig, EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}

	str("DB_DRIVER", &c.Database.Driver)
	str("DB_PATH", &c.Database.Path)
	str("LOG_LEVEL", &c.Log.Level)
	str("AI_HOST", &c.AI.Host)
	str("AI_MODEL", &c.AI.Model)
	str("AI_API_KEY", &c.AI.APIKey)

	return errors.Join(
		boolean("DB_IN_MEMORY", &c.Database.InMemory),
		integer("POOL_SIZE", &c.Ranking.PoolSize),
		integer("IMPORT_BATCH_SIZE", &c.Import.BatchSize),
		boolean("AI_ENABLED", &c.AI.Enabled),
		boolean("AI_ANONYMIZE", &c.AI.Anonymize),
	)
}

// Validate checks the configuration for values no component accepts.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverBadger, DriverSQLite:
	default:
		return fmt.Errorf("%w: database.driver must be %q or %q", ErrInvalidConfig, DriverBadger, DriverSQLite)
	}
	if !c.Database.InMemory && strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("%w: database.path is required unless in_memory is set", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Ranking.PoolSize < 0 {
		return fmt.Errorf("%w: ranking.pool_size must not be negative", ErrInvalidConfig)
	}
	if c.Import.BatchSize < 1 {
		return fmt.Errorf("%w: import.batch_size must be positive", ErrInvalidConfig)
	}
	if c.Import.MaxRetries < 1 {
		return fmt.Errorf("%w: import.max_retries must be positive", ErrInvalidConfig)
	}
	if c.AI.Enabled {
		if err := c.AIConfig().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// AIConfig converts the ai section into an analyzer configuration.
func (c *Config) AIConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.AI.Host),
		ai.WithModel(c.AI.Model),
		ai.WithAPIKey(c.AI.APIKey),
		ai.WithTemperature(c.AI.Temperature),
		ai.WithMaxTopics(c.AI.MaxTopics),
		ai.WithAnonymize(c.AI.Anonymize),
		ai.WithRateLimit(c.AI.RequestsPerSecond, c.AI.Burst),
	)
}

// ImporterConfig converts the import section into an importer configuration.
func (c *Config) ImporterConfig() *importer.Config {
	cfg := importer.DefaultConfig()
	cfg.BatchSize = c.Import.BatchSize
	cfg.MaxRetries = c.Import.MaxRetries
	cfg.RetryDelay = c.Import.RetryDelay.Std()
	cfg.SkipInvalid = c.Import.SkipInvalid
	return cfg
}

// ParseLevel maps a level name to a slog level. Names are case-insensitive.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, name)
	}
	return level, nil
}
