package openai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/situation"
	"github.com/poiesic/therapymatch/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel replays canned answers and records the text it was sent.
type fakeModel struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	for _, part := range messages[len(messages)-1].Parts {
		if text, ok := part.(llms.TextContent); ok {
			f.prompts = append(f.prompts, text.Text)
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return &llms.ContentResponse{}, nil
	}
	next := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: next}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func newTestAnalyzer(t *testing.T, model *fakeModel, opts ...ai.ConfigOption) *SituationAnalyzer {
	t.Helper()
	tax := taxonomy.Default()
	d, err := situation.NewDetector(tax)
	require.NoError(t, err)
	a, err := newSituationAnalyzer(model, ai.NewConfig(opts...), tax, d)
	require.NoError(t, err)
	return a
}

const anxietyText = "I have panic attacks and I worry constantly, my heart is racing"

func TestNewSituationAnalyzer(t *testing.T) {
	tax := taxonomy.Default()
	d, err := situation.NewDetector(tax)
	require.NoError(t, err)

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewSituationAnalyzer(ai.NewConfig(ai.WithModel("")), tax, d)
		assert.ErrorIs(t, err, ai.ErrInvalidConfig)
	})

	t.Run("missing catalog", func(t *testing.T) {
		_, err := NewSituationAnalyzer(ai.NewConfig(), nil, d)
		assert.ErrorIs(t, err, ai.ErrInvalidConfig)
	})

	t.Run("missing detector", func(t *testing.T) {
		_, err := NewSituationAnalyzer(ai.NewConfig(), tax, nil)
		assert.ErrorIs(t, err, ai.ErrDetectorRequired)
	})

	t.Run("real client", func(t *testing.T) {
		a, err := NewSituationAnalyzer(ai.NewConfig(ai.WithHost("http://localhost:1")), tax, d)
		require.NoError(t, err)
		assert.NotNil(t, a)
	})
}

func TestSituationAnalyzer_ModelAnswer(t *testing.T) {
	model := &fakeModel{responses: []string{
		`{"topics":["anxiety","sleep","made_up","anxiety"],"subTopics":["panic_attacks","insomnia","divorce"],"intensity":"high","summary":"That sounds exhausting.","reasoning":"Panic and sleeplessness.","crisis":false,"crisisType":null}`,
	}}
	a := newTestAnalyzer(t, model)

	got, err := a.AnalyzeSituation(context.Background(), anxietyText)
	require.NoError(t, err)

	assert.Equal(t, ai.SourceLLM, got.Source)
	assert.Equal(t, core.LanguageEnglish, got.Language)
	assert.Equal(t, []string{"anxiety", "sleep"}, got.Topics)
	assert.Equal(t, []string{"panic_attacks", "insomnia"}, got.SubTopics)
	assert.Contains(t, got.Specialties, core.SpecialtyAnxiety)
	assert.Equal(t, intensity.LevelHigh, got.Intensity)
	assert.Equal(t, core.ConfidenceHigh, got.Confidence)
	assert.Equal(t, "That sounds exhausting.", got.Summary)
	assert.Equal(t, "Panic and sleeplessness.", got.Reasoning)
	assert.Equal(t, 1, model.calls)
}

func TestSituationAnalyzer_TopicCap(t *testing.T) {
	model := &fakeModel{responses: []string{
		`{"topics":["anxiety","sleep","stress","family","burnout"],"intensity":"medium","summary":"","reasoning":"","crisis":false}`,
	}}
	a := newTestAnalyzer(t, model, ai.WithMaxTopics(2))

	got, err := a.AnalyzeSituation(context.Background(), anxietyText)
	require.NoError(t, err)
	assert.Equal(t, []string{"anxiety", "sleep"}, got.Topics)
	assert.Equal(t, ai.Summarize(got.Topics, intensity.LevelMedium, core.LanguageEnglish), got.Summary)
}

func TestSituationAnalyzer_UnknownIntensity(t *testing.T) {
	model := &fakeModel{responses: []string{
		`{"topics":[],"intensity":"extreme","summary":"ok","reasoning":"","crisis":false}`,
	}}
	a := newTestAnalyzer(t, model)

	got, err := a.AnalyzeSituation(context.Background(), anxietyText)
	require.NoError(t, err)
	assert.Equal(t, intensity.LevelMedium, got.Intensity)
	assert.Equal(t, core.ConfidenceLow, got.Confidence)
	assert.Empty(t, got.Topics)
	assert.Equal(t, ai.SourceLLM, got.Source)
	assert.Equal(t, 3, model.calls, "off-schema answers are retried before use")
}

func TestSituationAnalyzer_PrefersSchemaValidAnswer(t *testing.T) {
	model := &fakeModel{responses: []string{
		`{"topics":["sleep"],"intensity":"extreme","summary":"","reasoning":"","crisis":false}`,
		`{"topics":["anxiety"],"intensity":"high","summary":"ok","reasoning":"","crisis":false}`,
	}}
	a := newTestAnalyzer(t, model)

	got, err := a.AnalyzeSituation(context.Background(), anxietyText)
	require.NoError(t, err)
	assert.Equal(t, []string{"anxiety"}, got.Topics)
	assert.Equal(t, intensity.LevelHigh, got.Intensity)
	assert.Equal(t, 2, model.calls)
}

func TestSituationAnalyzer_RepairsMalformedJSON(t *testing.T) {
	model := &fakeModel{responses: []string{
		"Sure! ```json\n{topics\": [\"anxiety\",], intensity: \"low\", \"summary\": \"ok\", \"reasoning\": \"\", \"crisis\": false,}\n```",
	}}
	a := newTestAnalyzer(t, model)

	got, err := a.AnalyzeSituation(context.Background(), anxietyText)
	require.NoError(t, err)
	assert.Equal(t, ai.SourceLLM, got.Source)
	assert.Equal(t, []string{"anxiety"}, got.Topics)
	assert.Equal(t, intensity.LevelLow, got.Intensity)
}

func TestSituationAnalyzer_RetriesThenSucceeds(t *testing.T) {
	model := &fakeModel{responses: []string{
		"not json at all",
		`{"topics":["anxiety"],"intensity":"medium","summary":"ok","reasoning":"","crisis":false}`,
	}}
	a := newTestAnalyzer(t, model)

	got, err := a.AnalyzeSituation(context.Background(), anxietyText)
	require.NoError(t, err)
	assert.Equal(t, ai.SourceLLM, got.Source)
	assert.Equal(t, 2, model.calls)
}

func TestSituationAnalyzer_FallsBackToKeywords(t *testing.T) {
	t.Run("persistent garbage", func(t *testing.T) {
		model := &fakeModel{responses: []string{"garbage"}}
		a := newTestAnalyzer(t, model)

		got, err := a.AnalyzeSituation(context.Background(), anxietyText)
		require.NoError(t, err)
		assert.Equal(t, ai.SourceKeywords, got.Source)
		assert.Equal(t, []string{"anxiety"}, got.Topics)
		assert.Equal(t, 3, model.calls)
	})

	t.Run("transport error", func(t *testing.T) {
		model := &fakeModel{err: errors.New("connection refused")}
		a := newTestAnalyzer(t, model)

		got, err := a.AnalyzeSituation(context.Background(), anxietyText)
		require.NoError(t, err)
		assert.Equal(t, ai.SourceKeywords, got.Source)
		assert.Equal(t, 1, model.calls)
	})

	t.Run("no choices", func(t *testing.T) {
		model := &fakeModel{}
		a := newTestAnalyzer(t, model)

		got, err := a.AnalyzeSituation(context.Background(), anxietyText)
		require.NoError(t, err)
		assert.Equal(t, ai.SourceKeywords, got.Source)
	})
}

func TestSituationAnalyzer_Crisis(t *testing.T) {
	t.Run("keyword crisis never reaches the model", func(t *testing.T) {
		model := &fakeModel{}
		a := newTestAnalyzer(t, model)

		got, err := a.AnalyzeSituation(context.Background(), "I want to die, I can't do this")
		require.NoError(t, err)
		require.True(t, got.CrisisDetected())
		assert.Equal(t, situation.CrisisSuicidal, got.Crisis.Type)
		assert.Equal(t, 0, model.calls)
	})

	t.Run("model crisis", func(t *testing.T) {
		model := &fakeModel{responses: []string{
			`{"topics":["depression"],"intensity":"high","summary":"","reasoning":"","crisis":true,"crisisType":"self_harm"}`,
		}}
		a := newTestAnalyzer(t, model)

		got, err := a.AnalyzeSituation(context.Background(), anxietyText)
		require.NoError(t, err)
		require.True(t, got.CrisisDetected())
		assert.Equal(t, situation.CrisisSelfHarm, got.Crisis.Type)
		assert.Empty(t, got.Topics)
		assert.Equal(t, ai.SourceLLM, got.Source)
	})

	t.Run("model crisis with unknown type", func(t *testing.T) {
		model := &fakeModel{responses: []string{
			`{"topics":[],"intensity":"high","summary":"","reasoning":"","crisis":true,"crisisType":"other"}`,
		}}
		a := newTestAnalyzer(t, model)

		got, err := a.AnalyzeSituation(context.Background(), anxietyText)
		require.NoError(t, err)
		require.True(t, got.CrisisDetected())
		assert.Equal(t, situation.CrisisAcuteDanger, got.Crisis.Type)
	})
}

func TestSituationAnalyzer_Anonymizes(t *testing.T) {
	text := "My partner Thomas left me, you can reach me at anna@example.com"

	t.Run("enabled", func(t *testing.T) {
		model := &fakeModel{responses: []string{`{"topics":[],"intensity":"low","summary":"","reasoning":"","crisis":false}`}}
		a := newTestAnalyzer(t, model)

		_, err := a.AnalyzeSituation(context.Background(), text)
		require.NoError(t, err)
		require.Len(t, model.prompts, 1)
		assert.NotContains(t, model.prompts[0], "Thomas")
		assert.NotContains(t, model.prompts[0], "anna@example.com")
	})

	t.Run("disabled", func(t *testing.T) {
		model := &fakeModel{responses: []string{`{"topics":[],"intensity":"low","summary":"","reasoning":"","crisis":false}`}}
		a := newTestAnalyzer(t, model, ai.WithAnonymize(false))

		_, err := a.AnalyzeSituation(context.Background(), text)
		require.NoError(t, err)
		require.Len(t, model.prompts, 1)
		assert.True(t, strings.Contains(model.prompts[0], "Thomas"))
	})
}

func TestSituationAnalyzer_ShortTextAndContext(t *testing.T) {
	model := &fakeModel{}
	a := newTestAnalyzer(t, model)

	got, err := a.AnalyzeSituation(context.Background(), "sad")
	require.NoError(t, err)
	assert.Empty(t, got.Topics)
	assert.Equal(t, 0, model.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.AnalyzeSituation(ctx, anxietyText)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProvider(t *testing.T) {
	tax := taxonomy.Default()
	d, err := situation.NewDetector(tax)
	require.NoError(t, err)

	p, err := NewProvider(ai.NewConfig(), tax, d)
	require.NoError(t, err)
	assert.NotNil(t, p.SituationAnalyzer())
	assert.NoError(t, p.Close())

	_, err = NewProvider(ai.NewConfig(ai.WithHost("")), tax, d)
	assert.ErrorIs(t, err, ai.ErrInvalidConfig)
}
