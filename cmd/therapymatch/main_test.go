package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testDocument = `profiles:
  - slug: anna-berg
    name: Anna Berg
    specialties: [anxiety, depression]
    gender: female
    session_mode: online
    insurance: [public]
    location: {city: Berlin, postal_code: "10115"}
  - slug: ben-kraus
    name: Ben Kraus
    specialties: [addiction]
    gender: male
    session_mode: in_person
    insurance: [private]
    location: {city: Hamburg, postal_code: "20095"}
`

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"therapymatch", "--env-file", ""}, args...))
	return out.String(), err
}

func findCommand(t *testing.T, app *cli.App, name string) *cli.Command {
	t.Helper()
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func findFlag[T cli.Flag](t *testing.T, flags []cli.Flag, name string) T {
	t.Helper()
	for _, flag := range flags {
		if f, ok := flag.(T); ok && flag.Names()[0] == name {
			return f
		}
	}
	t.Fatalf("flag %q not found", name)
	var zero T
	return zero
}

func TestAppFlags(t *testing.T) {
	app := newApp()

	t.Run("log-level has alias -l and no default", func(t *testing.T) {
		f := findFlag[*cli.StringFlag](t, app.Flags, "log-level")
		assert.Equal(t, []string{"l"}, f.Aliases)
		assert.Empty(t, f.Value)
	})

	t.Run("env-file defaults to .env", func(t *testing.T) {
		f := findFlag[*cli.StringFlag](t, app.Flags, "env-file")
		assert.Equal(t, ".env", f.Value)
	})

	t.Run("match limit defaults to 10", func(t *testing.T) {
		f := findFlag[*cli.IntFlag](t, findCommand(t, app, "match").Flags, "limit")
		assert.Equal(t, 10, f.Value)
	})

	t.Run("format defaults to table", func(t *testing.T) {
		for _, name := range []string{"match", "classify", "intensity", "taxonomy"} {
			f := findFlag[*cli.StringFlag](t, findCommand(t, app, name).Flags, "format")
			assert.Equal(t, formatTable, f.Value, name)
		}
	})

	t.Run("intensity topic is required", func(t *testing.T) {
		f := findFlag[*cli.StringSliceFlag](t, findCommand(t, app, "intensity").Flags, "topic")
		assert.True(t, f.Required)
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			assert.NoError(t, setupLogger(level), level)
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := setupLogger("invalid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("flag overrides configuration", func(t *testing.T) {
		_, err := runApp(t, "--log-level", "loud", "config", "show")
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "therapymatch.toml")

	_, err := runApp(t, "config", "init", path)
	require.NoError(t, err)

	_, err = runApp(t, "config", "init", path)
	assert.Error(t, err, "existing file is kept without --force")
	_, err = runApp(t, "config", "init", "--force", path)
	require.NoError(t, err)

	out, err := runApp(t, "--config", path, "--driver", "sqlite", "--db", filepath.Join(dir, "p.db"), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "driver: sqlite")
	assert.Contains(t, out, "p.db")

	out, err = runApp(t, "--config", path, "config", "show", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[database]")

	_, err = runApp(t, "--driver", "postgres", "config", "show")
	assert.Error(t, err)
}

func TestWorkflow(t *testing.T) {
	for _, driver := range []string{"sqlite", "badger"} {
		t.Run(driver, func(t *testing.T) {
			dir := t.TempDir()
			doc := filepath.Join(dir, "profiles.yaml")
			require.NoError(t, os.WriteFile(doc, []byte(testDocument), 0o644))

			db := []string{"--driver", driver, "--db", filepath.Join(dir, "profiles.db")}
			run := func(args ...string) string {
				t.Helper()
				out, err := runApp(t, append(db, args...)...)
				require.NoError(t, err, strings.Join(args, " "))
				return out
			}

			assert.Contains(t, run("import", doc), "Imported 2 of 2 profiles")
			assert.Equal(t, "2\n", run("profiles", "count"))

			var res therapymatch.MatchResult
			require.NoError(t, json.Unmarshal([]byte(run("match", "--topic", "anxiety", "--format", "json")), &res))
			require.Len(t, res.Results, 2)
			assert.Equal(t, "anna-berg", res.Results[0].Profile.Slug)
			assert.NotEmpty(t, res.RequestID)

			table := run("match", "--topic", "addiction", "--location", "hamburg")
			assert.Contains(t, table, "SCORE")
			assert.Less(t, strings.Index(table, "Ben Kraus"), strings.Index(table, "Anna Berg"))

			assert.Contains(t, run("profiles", "list"), "ben-kraus")
			filtered := run("profiles", "list", "--specialty", "addiction")
			assert.Contains(t, filtered, "ben-kraus")
			assert.NotContains(t, filtered, "anna-berg")
			_, err := runApp(t, append(db, "profiles", "list", "--specialty", "astrology")...)
			assert.Error(t, err)
			assert.Contains(t, run("profiles", "get", "ben-kraus"), `"name": "Ben Kraus"`)

			archive := filepath.Join(dir, "backup.yaml.zst")
			run("profiles", "export", archive)
			assert.Contains(t, run("profiles", "export"), "slug: anna-berg")

			assert.Contains(t, run("profiles", "delete", "ben-kraus"), "Deleted ben-kraus")
			assert.Equal(t, "1\n", run("profiles", "count"))

			_, err = runApp(t, append(db, "profiles", "get", "ben-kraus")...)
			assert.Error(t, err)

			assert.Contains(t, run("import", archive), "Imported 2 of 2 profiles")
			assert.Equal(t, "2\n", run("profiles", "count"))
		})
	}
}

func TestMatchCommand(t *testing.T) {
	memory := []string{"--driver", "sqlite", "--db", filepath.Join(t.TempDir(), "m.db")}

	t.Run("crisis text shows resources", func(t *testing.T) {
		out, err := runApp(t, append(memory, "match", "--text", "I want to die, I can't do this")...)
		require.NoError(t, err)
		assert.Contains(t, out, "Telefonseelsorge")
		assert.NotContains(t, out, "SCORE")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runApp(t, append(memory, "match", "--format", "xml")...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("invalid criteria", func(t *testing.T) {
		_, err := runApp(t, append(memory, "match", "--gender", "robot")...)
		assert.Error(t, err)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := runApp(t, append(memory, "match", "--limit", "-1")...)
		assert.Error(t, err)
	})
}

func TestClassifyCommand(t *testing.T) {
	memory := []string{"--driver", "sqlite", "--db", filepath.Join(t.TempDir(), "c.db")}

	out, err := runApp(t, append(memory, "classify", "I have panic attacks and I worry constantly, my heart is racing")...)
	require.NoError(t, err)
	assert.Contains(t, out, "anxiety")
	assert.Contains(t, out, "Language:   en")

	_, err = runApp(t, append(memory, "classify")...)
	assert.Error(t, err)
}

func TestIntensityCommand(t *testing.T) {
	memory := []string{"--driver", "sqlite", "--db", filepath.Join(t.TempDir(), "i.db")}

	out, err := runApp(t, append(memory, "intensity", "--topic", "anxiety")...)
	require.NoError(t, err)
	assert.Contains(t, out, "anx_panic")

	out, err = runApp(t, append(memory, "intensity", "--topic", "anxiety", "--statement", "anx_panic")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 30")
	assert.Contains(t, out, "Level: medium")

	_, err = runApp(t, append(memory, "intensity")...)
	assert.Error(t, err)
}

func TestTaxonomyCommand(t *testing.T) {
	memory := []string{"--driver", "sqlite", "--db", filepath.Join(t.TempDir(), "t.db")}

	out, err := runApp(t, append(memory, "taxonomy", "--format", "json")...)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "anxiety"`)

	out, err = runApp(t, append(memory, "taxonomy")...)
	require.NoError(t, err)
	assert.Contains(t, out, "SPECIALTIES")
}

func TestListProfiles(t *testing.T) {
	repo, backend, err := badger.NewMemoryProfileRepository()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	ctx := context.Background()
	_, err = repo.AddProfiles(ctx,
		&core.Profile{Slug: "a", Name: "A", Specialties: []core.Specialty{core.SpecialtyAnxiety, core.SpecialtyTrauma}},
		&core.Profile{Slug: "b", Name: "B", Specialties: []core.Specialty{core.SpecialtyTrauma}},
		&core.Profile{Slug: "c", Name: "C", Specialties: []core.Specialty{core.SpecialtyADHD}},
	)
	require.NoError(t, err)

	slugsOf := func(profiles []*core.Profile) []string {
		out := make([]string, len(profiles))
		for i, p := range profiles {
			out[i] = p.Slug
		}
		return out
	}

	all, err := listProfiles(ctx, repo, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	trauma, err := listProfiles(ctx, repo, core.SpecialtyTrauma)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, slugsOf(trauma))

	burnout, err := listProfiles(ctx, repo, core.SpecialtyBurnout)
	require.NoError(t, err)
	assert.Empty(t, burnout)

	_, err = listProfiles(ctx, repo, "astrology")
	assert.ErrorIs(t, err, core.ErrUnknownSpecialty)
}
