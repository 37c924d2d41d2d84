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

package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/therapymatch/core"
)

// Scorer produces a score breakdown for one profile.
// *scoring.Calculator implements it.
type Scorer interface {
	ScoreWithBreakdown(profile *core.Profile, criteria core.Criteria) core.ScoreBreakdown
}

// Ranker scores candidate profiles concurrently and returns them in
// ranking order.
type Ranker struct {
	scorer Scorer
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithPoolSize sets the number of scoring workers.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if r.pool != nil {
			r.pool.Release()
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a ranker backed by its own worker pool.
// Call Release when done.
func NewRanker(scorer Scorer, opts ...Option) (*Ranker, error) {
	if scorer == nil {
		return nil, ErrScorerRequired
	}

	poolSize := max(runtime.NumCPU()/2, 1)
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Ranker{
		scorer: scorer,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	return r, nil
}

// Rank scores every non-nil profile against criteria and returns them
// sorted with Sort. Nil entries are skipped.
func (r *Ranker) Rank(ctx context.Context, profiles []*core.Profile, criteria core.Criteria) ([]core.RankedProfile, error) {
	return r.RankWithMonitor(ctx, profiles, criteria, nil)
}

// RankWithMonitor is Rank with observation hooks.
func (r *Ranker) RankWithMonitor(ctx context.Context, profiles []*core.Profile, criteria core.Criteria, monitor RankMonitor) ([]core.RankedProfile, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(criteria, len(profiles))

	// One slot per input; each task writes only its own slot.
	slots := make([]core.ScoreBreakdown, len(profiles))

	var wg sync.WaitGroup
	var submitErr error
	for i, profile := range profiles {
		if profile == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			submitErr = err
			break
		}
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			slots[i] = r.scorer.ScoreWithBreakdown(profile, criteria)
		})
		if err != nil {
			wg.Done()
			submitErr = fmt.Errorf("%w: %w", ErrSubmit, err)
			break
		}
	}
	wg.Wait()

	if submitErr != nil {
		r.logger.Warn("ranking aborted", "candidates", len(profiles), "err", submitErr)
		return nil, submitErr
	}

	results := make([]core.RankedProfile, 0, len(profiles))
	for i, profile := range profiles {
		if profile == nil {
			monitor.Skipped(i)
			continue
		}
		breakdown := slots[i]
		ranked := core.RankedProfile{
			Profile:   profile,
			Score:     breakdown.Total,
			Breakdown: &breakdown,
		}
		monitor.Scored(ranked)
		results = append(results, ranked)
	}

	Sort(results)
	r.logger.Debug("ranked profiles", "candidates", len(profiles), "ranked", len(results))
	monitor.Finish(results)

	return results, nil
}

// Release frees the worker pool. The ranker must not be used afterwards.
func (r *Ranker) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
