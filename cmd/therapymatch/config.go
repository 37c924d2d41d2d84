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
	"io"
	"os"

	"github.com/poiesic/therapymatch/config"
	"github.com/urfave/cli/v2"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Work with configuration files",
		Subcommands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Write the default configuration (to stdout without a file)",
				ArgsUsage: "[file]",
				Action:    configInitCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "File format (yaml, toml); defaults to the file extension",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: configShowCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (yaml, toml)",
						Value: config.FormatYAML,
					},
				},
			},
		},
	}
}

func configInitCommand(c *cli.Context) error {
	path := c.Args().First()
	format := c.String("format")
	if format == "" {
		format = config.FormatFromPath(path)
	}

	if path == "" || path == "-" {
		return config.Default().Encode(c.App.Writer, format)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if c.Bool("force") {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	if err := writeConfig(f, config.Default(), format); err != nil {
		return err
	}
	fmt.Fprintf(c.App.ErrWriter, "Wrote %s\n", path)
	return nil
}

func writeConfig(wc io.WriteCloser, cfg *config.Config, format string) error {
	if err := cfg.Encode(wc, format); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func configShowCommand(c *cli.Context) error {
	cfg := *configFrom(c)
	if cfg.AI.APIKey != "" {
		cfg.AI.APIKey = "********"
	}
	return cfg.Encode(c.App.Writer, c.String("format"))
}
