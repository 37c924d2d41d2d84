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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/situation"
	"github.com/poiesic/therapymatch/taxonomy"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrNoChoices is returned when the model answers without any choice.
var ErrNoChoices = errors.New("no choices returned from model")

// TopicCatalog is the part of the taxonomy the analyzer needs.
// *taxonomy.Taxonomy implements it.
type TopicCatalog interface {
	Topic(id string) (taxonomy.Topic, bool)
	Topics() []taxonomy.Topic
	SubTopicOwner(id string) (string, bool)
	SpecialtiesForTopics(ids []string) []core.Specialty
}

// SituationAnalyzer implements ai.SituationAnalyzer using an
// OpenAI-compatible chat API, with the keyword analyzer as fallback.
type SituationAnalyzer struct {
	client   llms.Model
	catalog  TopicCatalog
	detector ai.KeywordDetector
	fallback *ai.KeywordAnalyzer
	config   *ai.Config
	limiter  *requestLimiter
	logger   *slog.Logger
}

var _ ai.SituationAnalyzer = (*SituationAnalyzer)(nil)

// answer is the JSON object the model is asked to produce.
type answer struct {
	Topics     []string `json:"topics"`
	SubTopics  []string `json:"subTopics"`
	Intensity  string   `json:"intensity"`
	Summary    string   `json:"summary"`
	Reasoning  string   `json:"reasoning"`
	Crisis     bool     `json:"crisis"`
	CrisisType *string  `json:"crisisType"`
}

// newSituationAnalyzer is an internal constructor that returns the concrete
// type. Tests use it with a fake model.
func newSituationAnalyzer(client llms.Model, config *ai.Config, catalog TopicCatalog, detector ai.KeywordDetector) (*SituationAnalyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, fmt.Errorf("%w: topic catalog is required", ai.ErrInvalidConfig)
	}
	fallback, err := ai.NewKeywordAnalyzer(detector)
	if err != nil {
		return nil, err
	}

	if client == nil {
		client, err = openai.New(
			openai.WithBaseURL(config.Host),
			openai.WithToken(config.APIKey),
			openai.WithModel(config.Model),
		)
		if err != nil {
			return nil, err
		}
	}

	return &SituationAnalyzer{
		client:   client,
		catalog:  catalog,
		detector: detector,
		fallback: fallback,
		config:   config,
		limiter:  newRequestLimiter(config.RequestsPerSecond, config.Burst),
		logger:   slog.Default().With("component", "openai-analyzer"),
	}, nil
}

// NewSituationAnalyzer creates an analyzer using the provided configuration.
//
// Returns ai.SituationAnalyzer interface to enforce abstraction.
func NewSituationAnalyzer(config *ai.Config, catalog TopicCatalog, detector ai.KeywordDetector) (ai.SituationAnalyzer, error) {
	return newSituationAnalyzer(nil, config, catalog, detector)
}

// AnalyzeSituation reads text with the chat model. Crisis keywords are
// checked locally first. When the model fails or keeps answering with
// malformed JSON, the keyword reading is returned instead; only context
// errors are reported to the caller.
func (s *SituationAnalyzer) AnalyzeSituation(ctx context.Context, text string) (*ai.SituationAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ai.IsTooShort(text) {
		return ai.EmptyAnalysis(text, ai.SourceKeywords), nil
	}
	if crisis := s.detector.DetectCrisis(text); crisis != nil {
		s.logger.Warn("crisis keyword detected, skipping model", "type", crisis.Type)
		return ai.CrisisAnalysis(text, crisis, ai.SourceKeywords), nil
	}

	lang := situation.DetectLanguage(text)
	reply, err := s.ask(ctx, text, lang)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.Warn("model analysis failed, falling back to keywords", "err", err)
		return s.fallback.AnalyzeSituation(ctx, text)
	}

	return s.convert(text, lang, reply), nil
}

func (s *SituationAnalyzer) ask(ctx context.Context, text string, lang core.Language) (*answer, error) {
	if s.config.Anonymize {
		text = Anonymize(text)
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt(s.catalog, s.config.MaxTopics, lang)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	var (
		lastErr error
		loose   *answer
	)
	for attempt := 0; attempt < s.config.MaxAttempts; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		response, err := s.client.GenerateContent(ctx, content,
			llms.WithTemperature(s.config.Temperature),
			llms.WithMaxTokens(s.config.MaxTokens),
			llms.WithJSONMode())
		if err != nil {
			s.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}
		if len(response.Choices) < 1 {
			return nil, ErrNoChoices
		}

		reply, err := parseAnswer(response.Choices[0].Content)
		if err != nil {
			lastErr = err
			if reply != nil {
				loose = reply
			}
			s.logger.Warn("error parsing analyzer response",
				"attempt", attempt+1,
				"response", response.Choices[0].Content,
				"err", err)
			continue
		}
		return reply, nil
	}

	if loose != nil {
		s.logger.Warn("no answer matched the response schema, using the last decodable one",
			"attempts", s.config.MaxAttempts,
			"err", lastErr)
		return loose, nil
	}
	return nil, fmt.Errorf("parse model response after %d attempts: %w", s.config.MaxAttempts, lastErr)
}

// parseAnswer decodes the model's reply, repairing common JSON mistakes
// when the plain text does not decode. A decodable reply that violates the
// schema is returned along with the violation.
func parseAnswer(raw string) (*answer, error) {
	cleaned := cleanResponse(raw)

	reply, err := decodeAnswer(cleaned)
	if reply == nil {
		reply, err = decodeAnswer(repairJSON(cleaned))
	}
	return reply, err
}

// convert keeps only catalog ids from the model's answer and maps them to
// specialties.
func (s *SituationAnalyzer) convert(text string, lang core.Language, reply *answer) *ai.SituationAnalysis {
	if reply.Crisis {
		kind := situation.CrisisAcuteDanger
		if reply.CrisisType != nil {
			switch t := situation.CrisisType(*reply.CrisisType); t {
			case situation.CrisisSuicidal, situation.CrisisSelfHarm, situation.CrisisAcuteDanger:
				kind = t
			}
		}
		s.logger.Warn("model reported crisis", "type", kind)
		return ai.CrisisAnalysis(text, &situation.Crisis{Type: kind}, ai.SourceLLM)
	}

	topics := make([]string, 0, s.config.MaxTopics)
	for _, id := range reply.Topics {
		if len(topics) == s.config.MaxTopics {
			break
		}
		if _, ok := s.catalog.Topic(id); !ok {
			s.logger.Debug("dropping unknown topic from model", "topic", id)
			continue
		}
		if !slices.Contains(topics, id) {
			topics = append(topics, id)
		}
	}

	subTopics := make([]string, 0, situation.MaxSubTopics)
	for _, id := range reply.SubTopics {
		if len(subTopics) == situation.MaxSubTopics {
			break
		}
		owner, ok := s.catalog.SubTopicOwner(id)
		if !ok || !slices.Contains(topics, owner) || slices.Contains(subTopics, id) {
			continue
		}
		subTopics = append(subTopics, id)
	}

	level := intensity.Level(reply.Intensity)
	switch level {
	case intensity.LevelLow, intensity.LevelMedium, intensity.LevelHigh:
	default:
		level = intensity.LevelMedium
	}

	confidence := core.ConfidenceLow
	if len(topics) > 0 {
		confidence = core.ConfidenceHigh
	}

	summary := reply.Summary
	if summary == "" {
		summary = ai.Summarize(topics, level, lang)
	}

	return &ai.SituationAnalysis{
		Analysis: situation.Analysis{
			Language:    lang,
			Topics:      topics,
			SubTopics:   subTopics,
			Specialties: s.catalog.SpecialtiesForTopics(topics),
			Intensity:   level,
			Confidence:  confidence,
		},
		Summary:   summary,
		Reasoning: reply.Reasoning,
		Source:    ai.SourceLLM,
	}
}
