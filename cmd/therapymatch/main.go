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

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/config"
	"github.com/urfave/cli/v2"
)

const configKey = "config"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "therapymatch",
		Usage:   "Match people looking for therapy with therapist profiles",
		Version: therapymatch.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error), overrides the configuration",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML or TOML configuration file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file loaded before the environment is read",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the profile database, overrides the configuration",
			},
			&cli.StringFlag{
				Name:  "driver",
				Usage: "Profile store driver (badger, sqlite), overrides the configuration",
			},
			&cli.BoolFlag{
				Name:  "ai",
				Usage: "Analyze free text with the configured language model",
			},
		},
		Before: loadConfig,
		Commands: []*cli.Command{
			matchCmd(),
			classifyCmd(),
			intensityCmd(),
			taxonomyCmd(),
			importCmd(),
			profilesCmd(),
			configCmd(),
			mcpCmd(),
		},
	}
}

// loadConfig reads the configuration, applies the global flag overrides
// and installs the logger. The result is kept in the app metadata.
func loadConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), c.String("env-file"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("db") {
		cfg.Database.Path = c.String("db")
		cfg.Database.InMemory = false
	}
	if c.IsSet("driver") {
		cfg.Database.Driver = c.String("driver")
	}
	if c.Bool("ai") {
		cfg.AI.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[configKey] = cfg
	return setupLogger(cfg.Log.Level)
}

func configFrom(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func setupLogger(levelStr string) error {
	level, err := config.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
