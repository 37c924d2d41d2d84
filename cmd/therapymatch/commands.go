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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/importer"
	"github.com/poiesic/therapymatch/mcpserver"
	"github.com/poiesic/therapymatch/storage"
	"github.com/urfave/cli/v2"
)

func importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import therapist profiles from a YAML document (.yaml, .yaml.gz, .yaml.zst)",
		ArgsUsage: "<file>",
		Action:    importCommand,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Keep running and import the file again whenever it changes",
			},
			&cli.BoolFlag{
				Name:  "skip-invalid",
				Usage: "Skip profiles that fail validation instead of aborting",
			},
		},
	}
}

func importCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("file path is required")
	}

	cfg := configFrom(c)
	importConfig := cfg.ImporterConfig()
	if c.Bool("skip-invalid") {
		importConfig.SkipInvalid = true
	}

	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	im := importer.NewImporter(engine.Profiles(), importConfig, c.App.ErrWriter, importer.WithLogger(slog.Default()))

	if !c.Bool("watch") {
		summary, err := im.ImportFile(c.Context, path)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		printSummary(c, summary)
		return nil
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return im.Watch(ctx, path, func(summary *importer.Summary, err error) {
		if err != nil {
			fmt.Fprintf(c.App.ErrWriter, "import failed: %v\n", err)
			return
		}
		printSummary(c, summary)
	})
}

func printSummary(c *cli.Context, s *importer.Summary) {
	fmt.Fprintf(c.App.Writer, "Imported %d of %d profiles (%d skipped) in %s\n",
		s.Imported, s.Total, s.Skipped, s.Elapsed.Round(time.Millisecond))
}

func profilesCmd() *cli.Command {
	return &cli.Command{
		Name:  "profiles",
		Usage: "Inspect and manage stored therapist profiles",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List stored profiles",
				Action: profilesListCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "specialty",
						Aliases: []string{"s"},
						Usage:   "Only list profiles holding this specialty",
					},
					formatFlag(),
				},
			},
			{
				Name:      "get",
				Usage:     "Show one profile",
				ArgsUsage: "<slug>",
				Action:    profilesGetCommand,
			},
			{
				Name:      "delete",
				Usage:     "Delete profiles",
				ArgsUsage: "<slug>...",
				Action:    profilesDeleteCommand,
			},
			{
				Name:   "count",
				Usage:  "Print the number of stored profiles",
				Action: profilesCountCommand,
			},
			{
				Name:      "export",
				Usage:     "Write every stored profile as an import document (to stdout without a file)",
				ArgsUsage: "[file]",
				Action:    profilesExportCommand,
			},
		},
	}
}

func profilesListCommand(c *cli.Context) error {
	format := c.String("format")
	if err := checkFormat(format); err != nil {
		return err
	}

	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	profiles, err := listProfiles(c.Context, engine.Profiles(), core.Specialty(c.String("specialty")))
	if err != nil {
		return fmt.Errorf("listing profiles: %w", err)
	}
	if format == formatJSON {
		return writeJSON(c.App.Writer, profiles)
	}
	writeProfilesTable(c.App.Writer, profiles)
	return nil
}

// listProfiles returns every stored profile, or with a specialty only the
// profiles its index points to.
func listProfiles(ctx context.Context, repo storage.ProfileRepository, specialty core.Specialty) ([]*core.Profile, error) {
	if specialty == "" {
		return repo.ListProfiles(ctx)
	}
	if !specialty.IsValid() {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownSpecialty, specialty)
	}
	ids, err := repo.GetProfileIDsBySpecialty(ctx, specialty)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*core.Profile{}, nil
	}
	return repo.GetProfiles(ctx, ids...)
}

func profilesGetCommand(c *cli.Context) error {
	slug := c.Args().First()
	if slug == "" {
		return fmt.Errorf("slug is required")
	}

	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	profile, err := engine.Profiles().GetProfileBySlug(c.Context, slug)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no profile with slug %q", slug)
	}
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}
	return writeJSON(c.App.Writer, profile)
}

func profilesDeleteCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one slug is required")
	}

	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	repo := engine.Profiles()
	for _, slug := range c.Args().Slice() {
		profile, err := repo.GetProfileBySlug(c.Context, slug)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no profile with slug %q", slug)
		}
		if err != nil {
			return fmt.Errorf("getting profile: %w", err)
		}
		if err := repo.DeleteProfiles(c.Context, profile.Id); err != nil {
			return fmt.Errorf("deleting %s: %w", slug, err)
		}
		fmt.Fprintf(c.App.Writer, "Deleted %s\n", slug)
	}
	return nil
}

func profilesCountCommand(c *cli.Context) error {
	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	n, err := engine.Profiles().CountProfiles(c.Context)
	if err != nil {
		return fmt.Errorf("counting profiles: %w", err)
	}
	fmt.Fprintln(c.App.Writer, n)
	return nil
}

func profilesExportCommand(c *cli.Context) error {
	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	path := c.Args().First()
	if path == "" || path == "-" {
		_, err := importer.WriteDocument(c.Context, engine.Profiles(), c.App.Writer)
		return err
	}

	n, err := importer.ExportFile(c.Context, engine.Profiles(), path)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Fprintf(c.App.ErrWriter, "Exported %d profiles to %s\n", n, path)
	return nil
}

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:   "mcp",
		Usage:  "Serve the matching engine to AI assistants over the Model Context Protocol",
		Action: mcpCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "http",
				Usage: "Serve streamable HTTP on this address instead of stdio (e.g. localhost:8080)",
			},
		},
	}
}

func mcpCommand(c *cli.Context) error {
	engine, closeEngine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer closeEngine()

	server, err := mcpserver.NewServer(engine, mcpserver.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr := c.String("http"); addr != "" {
		return server.RunHTTP(ctx, addr)
	}
	return server.Run(ctx)
}
