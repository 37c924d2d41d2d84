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
	"bytes"
	"context"
	_ "embed"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/importer"
)

//go:embed demo.yaml
var demoProfiles []byte

var (
	dbPath         = flag.String("db", "./therapymatch_db", "badger profile database to seed")
	seedFileName   = flag.String("src", "", "profile document to import instead of the demo profiles")
	skipInvalidArg = flag.Bool("skip-invalid", false, "skip profiles that fail validation")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	flag.Parse()

	engine, err := therapymatch.OpenEngine(*dbPath)
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	config := importer.DefaultConfig()
	config.SkipInvalid = *skipInvalidArg
	im := importer.NewImporter(engine.Profiles(), config, os.Stdout)

	ctx := context.Background()

	var summary *importer.Summary
	if *seedFileName != "" {
		summary, err = im.ImportFile(ctx, *seedFileName)
	} else {
		profiles, perr := importer.ParseDocument(bytes.NewReader(demoProfiles))
		if perr != nil {
			panic(perr)
		}
		summary, err = im.Import(ctx, profiles)
	}
	if err != nil {
		panic(err)
	}

	slog.Info("seeded profiles", "db", *dbPath, "imported", summary.Imported, "skipped", summary.Skipped)
}
