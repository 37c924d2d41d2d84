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

package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/storage"
)

// Config holds configuration for an import run.
type Config struct {
	// BatchSize is the number of profiles stored per transaction.
	BatchSize int

	// ReportInterval is how often to report progress (number of profiles).
	ReportInterval int

	// MaxRetries is the maximum number of attempts per batch.
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff.
	RetryDelay time.Duration

	// SkipInvalid skips profiles that fail validation instead of aborting.
	SkipInvalid bool

	// WatchDebounce is how long Watch waits for a file to settle before
	// importing it again.
	WatchDebounce time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     100 * time.Millisecond,
		WatchDebounce:  200 * time.Millisecond,
	}
}

// Summary describes a finished import.
type Summary struct {
	Total    int
	Imported int
	Skipped  int
	Elapsed  time.Duration
}

// Importer writes profiles into a repository.
type Importer struct {
	repo     storage.ProfileRepository
	config   *Config
	progress io.Writer
	logger   *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
	}
}

// NewImporter creates an importer.
// progress: where to write progress output (typically os.Stderr); nil disables it.
func NewImporter(repo storage.ProfileRepository, config *Config, progress io.Writer, opts ...Option) *Importer {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BatchSize < 1 {
		config.BatchSize = 1
	}
	if progress == nil {
		progress = io.Discard
	}
	im := &Importer{
		repo:     repo,
		config:   config,
		progress: progress,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// ImportFile parses the YAML document at path and imports its profiles.
// Files ending in .gz or .zst are decompressed first.
func (im *Importer) ImportFile(ctx context.Context, path string) (*Summary, error) {
	f, err := openDocument(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	profiles, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return im.Import(ctx, profiles)
}

// Import validates profiles and stores them in batches.
func (im *Importer) Import(ctx context.Context, profiles []*core.Profile) (*Summary, error) {
	summary := &Summary{Total: len(profiles)}
	if len(profiles) == 0 {
		fmt.Fprintf(im.progress, "No profiles to import\n")
		return summary, nil
	}

	tracker := NewProgressTracker(im.progress, len(profiles), im.config.ReportInterval)
	tracker.Start()

	valid := make([]*core.Profile, 0, len(profiles))
	for i, p := range profiles {
		if err := core.ValidateProfile(p); err != nil {
			if !im.config.SkipInvalid {
				return summary, fmt.Errorf("profile %d: %w", i, err)
			}
			im.logger.Warn("skipping invalid profile", "index", i, "err", err)
			summary.Skipped++
			tracker.Skip(1)
			continue
		}
		valid = append(valid, p)
	}

	for start := 0; start < len(valid); start += im.config.BatchSize {
		end := min(start+im.config.BatchSize, len(valid))
		batch := valid[start:end]

		err := RetryWithBackoff(ctx, func() error {
			_, err := im.repo.SaveProfiles(ctx, batch...)
			if err != nil && !retryable(err) {
				return Permanent(err)
			}
			return err
		}, im.config.MaxRetries, im.config.RetryDelay)
		if err != nil {
			return summary, fmt.Errorf("%w %d-%d: %w", ErrBatchFailed, start, end-1, err)
		}

		summary.Imported += len(batch)
		tracker.Increment(len(batch))
	}

	tracker.Finish()
	summary.Elapsed = tracker.Elapsed()
	im.logger.Info("import complete", "imported", summary.Imported, "skipped", summary.Skipped, "elapsed", summary.Elapsed)
	return summary, nil
}

// retryable reports whether a store error may succeed on a later attempt.
func retryable(err error) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, core.ErrInvalidProfile):
		return false
	case errors.Is(err, storage.ErrDuplicateKey), errors.Is(err, storage.ErrStorageClosed):
		return false
	}
	return true
}
