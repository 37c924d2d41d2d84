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

package openai

import (
	"log/slog"

	"github.com/poiesic/therapymatch/ai"
)

// Provider implements ai.Provider using an OpenAI-compatible service.
type Provider struct {
	config   *ai.Config
	analyzer *SituationAnalyzer
	logger   *slog.Logger
}

// NewProvider creates a provider backed by an OpenAI-compatible chat API.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to keep callers decoupled
// from the OpenAI-specific implementation.
func NewProvider(config *ai.Config, catalog TopicCatalog, detector ai.KeywordDetector) (ai.Provider, error) {
	analyzer, err := newSituationAnalyzer(nil, config, catalog, detector)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:   config,
		analyzer: analyzer,
		logger:   slog.Default().With("component", "openai-provider"),
	}, nil
}

// SituationAnalyzer returns the situation analyzer.
func (p *Provider) SituationAnalyzer() ai.SituationAnalyzer {
	return p.analyzer
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying client doesn't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider", "model", p.config.Model)
	return nil
}
