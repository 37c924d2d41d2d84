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

package therapymatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/ai/openai"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/ranking"
	"github.com/poiesic/therapymatch/scoring"
	"github.com/poiesic/therapymatch/semantic"
	"github.com/poiesic/therapymatch/situation"
	"github.com/poiesic/therapymatch/storage"
	"github.com/poiesic/therapymatch/storage/badger"
	"github.com/poiesic/therapymatch/taxonomy"
	"golang.org/x/sync/errgroup"
)

// Version is the release of the matching engine reported by the command
// line tool and the MCP server.
const Version = "0.4.0"

// TaxonomyFingerprintKey is the metadata key holding the fingerprint of the
// taxonomy the stored profiles were last matched against.
const TaxonomyFingerprintKey = "taxonomy_fingerprint"

// Engine is the matching facade. It is safe for concurrent use.
type Engine struct {
	taxonomy   *taxonomy.Taxonomy
	calculator *scoring.Calculator
	quantifier *intensity.Quantifier
	classifier *semantic.Classifier
	analyzer   ai.SituationAnalyzer
	ranker     *ranking.Ranker
	backend    *badger.Backend
	profiles   storage.ProfileRepository
	metadata   storage.MetadataRepository
	provider   ai.Provider
	logger     *slog.Logger
	closed     atomic.Bool
}

// Option configures an Engine.
type Option func(*engineOptions) error

type engineOptions struct {
	taxonomy *taxonomy.Taxonomy
	aiConfig *ai.Config
	provider ai.Provider
	profiles storage.ProfileRepository
	metadata storage.MetadataRepository
	poolSize int
	logger   *slog.Logger
}

// WithTaxonomy replaces the bundled taxonomy.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(o *engineOptions) error {
		if t == nil {
			return fmt.Errorf("%w: taxonomy is nil", ErrInvalidOption)
		}
		o.taxonomy = t
		return nil
	}
}

// WithAIConfig enables the language-model situation analyzer. Without it
// free text is read by the keyword detector alone.
func WithAIConfig(config *ai.Config) Option {
	return func(o *engineOptions) error {
		if config == nil {
			return fmt.Errorf("%w: ai config is nil", ErrInvalidOption)
		}
		o.aiConfig = config
		return nil
	}
}

// WithProvider sets a ready-made situation analyzer provider. The engine
// takes ownership and closes it. It wins over WithAIConfig.
func WithProvider(p ai.Provider) Option {
	return func(o *engineOptions) error {
		if p == nil {
			return fmt.Errorf("%w: provider is nil", ErrInvalidOption)
		}
		o.provider = p
		return nil
	}
}

// WithProfileRepository makes NewEngine use repo instead of an in-memory
// store. The engine takes ownership and closes it.
func WithProfileRepository(repo storage.ProfileRepository) Option {
	return func(o *engineOptions) error {
		if repo == nil {
			return fmt.Errorf("%w: profile repository is nil", ErrInvalidOption)
		}
		o.profiles = repo
		return nil
	}
}

// WithMetadataRepository sets where the taxonomy fingerprint is kept when
// the profiles come from WithProfileRepository.
func WithMetadataRepository(repo storage.MetadataRepository) Option {
	return func(o *engineOptions) error {
		if repo == nil {
			return fmt.Errorf("%w: metadata repository is nil", ErrInvalidOption)
		}
		o.metadata = repo
		return nil
	}
}

// WithPoolSize sets the number of scoring workers used by Match.
func WithPoolSize(size int) Option {
	return func(o *engineOptions) error {
		if size < 0 {
			return fmt.Errorf("%w: pool size must not be negative", ErrInvalidOption)
		}
		o.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// NewEngine creates an engine over an in-memory profile store, or over the
// repository given with WithProfileRepository.
func NewEngine(opts ...Option) (*Engine, error) {
	return newEngine("", true, opts...)
}

// OpenEngine creates an engine over the badger profile store at dbPath.
func OpenEngine(dbPath string, opts ...Option) (*Engine, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("%w: database path is empty", ErrInvalidOption)
	}
	return newEngine(dbPath, false, opts...)
}

func newEngine(dbPath string, inMemory bool, opts ...Option) (*Engine, error) {
	options := &engineOptions{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if options.taxonomy == nil {
		options.taxonomy = taxonomy.Default()
	}

	e := &Engine{
		taxonomy:   options.taxonomy,
		calculator: scoring.NewCalculator(options.taxonomy),
		logger:     options.logger,
	}

	var err error
	if e.quantifier, err = intensity.NewQuantifier(e.taxonomy); err != nil {
		return nil, err
	}
	if e.classifier, err = semantic.NewClassifier(); err != nil {
		return nil, err
	}
	detector, err := situation.NewDetector(e.taxonomy)
	if err != nil {
		return nil, err
	}

	rankOpts := []ranking.Option{ranking.WithLogger(e.logger)}
	if options.poolSize > 0 {
		rankOpts = append(rankOpts, ranking.WithPoolSize(options.poolSize))
	}
	if e.ranker, err = ranking.NewRanker(e.calculator, rankOpts...); err != nil {
		return nil, err
	}

	if err := e.openStore(dbPath, inMemory, options.profiles, options.metadata); err != nil {
		e.ranker.Release()
		return nil, err
	}

	switch {
	case options.provider != nil:
		e.provider = options.provider
	case options.aiConfig != nil:
		if e.provider, err = openai.NewProvider(options.aiConfig, e.taxonomy, detector); err != nil {
			e.closeStore()
			e.ranker.Release()
			return nil, err
		}
	}
	if e.provider != nil {
		e.analyzer = e.provider.SituationAnalyzer()
	} else {
		// NewKeywordAnalyzer only fails on a nil detector.
		e.analyzer, _ = ai.NewKeywordAnalyzer(detector)
	}

	e.checkTaxonomy(context.Background())
	return e, nil
}

func (e *Engine) openStore(dbPath string, inMemory bool, repo storage.ProfileRepository, metadata storage.MetadataRepository) error {
	if repo != nil {
		e.profiles = repo
		e.metadata = metadata
		return nil
	}

	backend, err := badger.OpenBackend(dbPath, inMemory, badger.WithLogger(e.logger))
	if err != nil {
		return err
	}
	profiles, err := badger.NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return err
	}
	e.backend = backend
	e.profiles = profiles
	e.metadata = badger.NewMetadataRepository(backend)
	return nil
}

func (e *Engine) closeStore() error {
	if err := e.profiles.Close(); err != nil {
		e.logger.Error("error closing profile repository", "err", err)
		return err
	}
	if e.backend != nil {
		if err := e.backend.Close(); err != nil {
			e.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

// checkTaxonomy warns when the stored profiles were last used with a
// different taxonomy, then records the current fingerprint.
func (e *Engine) checkTaxonomy(ctx context.Context) {
	if e.metadata == nil {
		return
	}
	current := e.taxonomy.Fingerprint()
	stored, found, err := e.metadata.GetMetadata(ctx, TaxonomyFingerprintKey)
	if err != nil {
		e.logger.Warn("failed to read taxonomy fingerprint", "err", err)
		return
	}
	if found && stored == current {
		return
	}
	if found {
		e.logger.Warn("taxonomy changed since profiles were last matched",
			"stored", stored,
			"current", current)
	}
	if err := e.metadata.SetMetadata(ctx, TaxonomyFingerprintKey, current); err != nil {
		e.logger.Warn("failed to store taxonomy fingerprint", "err", err)
	}
}

// Close releases the analyzer provider, the scoring pool and the store.
// Closing twice is a no-op.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	if e.provider != nil {
		if err := e.provider.Close(); err != nil {
			e.logger.Error("error closing AI provider", "err", err)
		}
	}
	e.ranker.Release()
	return e.closeStore()
}

// Taxonomy returns the taxonomy the engine scores against.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy {
	return e.taxonomy
}

// Profiles returns the profile repository.
func (e *Engine) Profiles() storage.ProfileRepository {
	return e.profiles
}

// Request is one matching request.
type Request struct {
	Criteria core.Criteria `json:"criteria"`

	// Text is an optional free-text description of the person's situation.
	Text string `json:"text,omitempty"`

	// Limit caps the number of results. Zero returns every profile.
	Limit int `json:"limit,omitempty"`
}

// Classification is the reading of a free-text description.
type Classification struct {
	semantic.Result
	Situation *ai.SituationAnalysis `json:"situation,omitempty"`
}

// MatchResult is the outcome of Match.
type MatchResult struct {
	// RequestID identifies the request in log output.
	RequestID string `json:"request_id"`

	// Results are the ranked profiles, best first.
	Results []core.RankedProfile `json:"results"`

	// Criteria are the criteria that were scored, including specialties
	// derived from free text.
	Criteria core.Criteria `json:"criteria"`

	// Classification is set when free text was classified.
	Classification *Classification `json:"classification,omitempty"`

	// Crisis is set when the free text contained a crisis indicator. No
	// profiles are ranked in that case.
	Crisis *situation.Crisis `json:"crisis,omitempty"`

	// CrisisResources lists crisis services in the language of the text.
	// Set together with Crisis.
	CrisisResources []situation.Resource `json:"crisis_resources,omitempty"`
}

// Match ranks the stored profiles against req.
//
// When req carries free text but no selected topics, the text is classified
// and the candidate specialties are scored as if they had been selected.
// The situation analyzer's reading acts as the keyword signal of the
// classifier's override rule. Loading the profiles and classifying the text
// run concurrently.
func (e *Engine) Match(ctx context.Context, req Request) (*MatchResult, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	criteria := req.Criteria
	if err := core.ValidateCriteria(&criteria); err != nil {
		return nil, err
	}

	result := &MatchResult{RequestID: uuid.NewString()}
	logger := e.logger.With("request_id", result.RequestID)

	var profiles []*core.Profile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = e.profiles.ListProfiles(gctx)
		return err
	})
	if strings.TrimSpace(req.Text) != "" && len(criteria.Topics) == 0 {
		g.Go(func() error {
			var err error
			result.Classification, err = e.Classify(gctx, req.Text)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if c := result.Classification; c != nil {
		if c.Situation.CrisisDetected() {
			logger.Warn("crisis indicator in free text, not ranking profiles",
				"type", c.Situation.Crisis.Type)
			result.Crisis = c.Situation.Crisis
			result.CrisisResources = situation.CrisisResources(c.Language)
			result.Criteria = criteria
			result.Results = []core.RankedProfile{}
			return result, nil
		}
		criteria = criteria.WithSpecialties(c.Specialties()...)
	}
	result.Criteria = criteria

	ranked, err := e.ranker.Rank(ctx, profiles, criteria)
	if err != nil {
		return nil, err
	}
	result.Results = ranking.Top(ranked, req.Limit)

	logger.Debug("matched profiles",
		"candidates", len(profiles),
		"returned", len(result.Results))
	return result, nil
}

// Classify reads free text with the situation analyzer and the semantic
// fallback classifier.
func (e *Engine) Classify(ctx context.Context, text string) (*Classification, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	analysis, err := e.analyzer.AnalyzeSituation(ctx, text)
	if err != nil {
		return nil, err
	}

	var signal *semantic.Signal
	if !analysis.CrisisDetected() {
		signal = analysis.Signal()
	}
	return &Classification{
		Result:    e.classifier.ClassifyWithSignal(text, signal),
		Situation: analysis,
	}, nil
}

// Score scores one profile without touching the store.
func (e *Engine) Score(profile *core.Profile, criteria core.Criteria) core.ScoreBreakdown {
	return e.calculator.ScoreWithBreakdown(profile, criteria)
}

// IntensityStatements returns the statements offered for the given topics.
func (e *Engine) IntensityStatements(topicIDs []string) []intensity.Statement {
	return e.quantifier.StatementsForTopics(topicIDs)
}

// Intensity scores the selected statements against the pool of the given
// topics.
func (e *Engine) Intensity(selectedIDs []string, topicIDs []string) intensity.Reading {
	return e.quantifier.Score(selectedIDs, topicIDs)
}

// IntensityByTopic scores each topic's selection separately and combines
// the readings in topic priority order.
func (e *Engine) IntensityByTopic(selected map[string][]string, priority []string) intensity.Reading {
	readings := make(map[string]intensity.Reading, len(selected))
	for topicID, ids := range selected {
		readings[topicID] = e.quantifier.Score(ids, []string{topicID})
	}
	return intensity.Combine(readings, priority)
}
