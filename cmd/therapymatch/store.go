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
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/config"
	"github.com/poiesic/therapymatch/storage/sqlite"
	"github.com/urfave/cli/v2"
)

// openEngine builds an engine over the configured profile store. The
// returned close func releases the engine and the store it runs on.
func openEngine(c *cli.Context) (*therapymatch.Engine, func() error, error) {
	return openEngineWith(configFrom(c))
}

func openEngineWith(cfg *config.Config) (*therapymatch.Engine, func() error, error) {
	opts := []therapymatch.Option{therapymatch.WithLogger(slog.Default())}
	if cfg.Ranking.PoolSize > 0 {
		opts = append(opts, therapymatch.WithPoolSize(cfg.Ranking.PoolSize))
	}
	if cfg.AI.Enabled {
		opts = append(opts, therapymatch.WithAIConfig(cfg.AIConfig()))
	}

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		path := cfg.Database.Path
		if cfg.Database.InMemory {
			path = sqlite.MemoryPath
		}
		store, err := sqlite.Open(path, sqlite.WithLogger(slog.Default()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		opts = append(opts,
			therapymatch.WithProfileRepository(store.Profiles()),
			therapymatch.WithMetadataRepository(store.Metadata()),
		)
		engine, err := therapymatch.NewEngine(opts...)
		if err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("failed to create engine: %w", err)
		}
		return engine, func() error {
			return errors.Join(engine.Close(), store.Close())
		}, nil

	default:
		var (
			engine *therapymatch.Engine
			err    error
		)
		if cfg.Database.InMemory {
			engine, err = therapymatch.NewEngine(opts...)
		} else {
			engine, err = therapymatch.OpenEngine(cfg.Database.Path, opts...)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		return engine, engine.Close, nil
	}
}
