package ai

import (
	"context"
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/situation"
	"github.com/poiesic/therapymatch/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeywordAnalyzer(t *testing.T) *KeywordAnalyzer {
	t.Helper()
	d, err := situation.NewDetector(taxonomy.Default())
	require.NoError(t, err)
	k, err := NewKeywordAnalyzer(d)
	require.NoError(t, err)
	return k
}

func TestNewKeywordAnalyzer(t *testing.T) {
	_, err := NewKeywordAnalyzer(nil)
	assert.ErrorIs(t, err, ErrDetectorRequired)
}

func TestKeywordAnalyzer_AnalyzeSituation(t *testing.T) {
	k := newTestKeywordAnalyzer(t)
	ctx := context.Background()

	t.Run("topics and summary", func(t *testing.T) {
		a, err := k.AnalyzeSituation(ctx, "I have panic attacks and I worry constantly, my heart is racing")
		require.NoError(t, err)

		assert.Equal(t, SourceKeywords, a.Source)
		assert.Equal(t, core.LanguageEnglish, a.Language)
		assert.Equal(t, []string{"anxiety"}, a.Topics)
		assert.Equal(t, []core.Specialty{core.SpecialtyAnxiety}, a.Specialties)
		assert.Equal(t, "Based on keywords in your description.", a.Reasoning)
		assert.Contains(t, a.Summary, "Anxiety & Panic")
		assert.False(t, a.CrisisDetected())
	})

	t.Run("german text", func(t *testing.T) {
		a, err := k.AnalyzeSituation(ctx, "Ich bin so traurig und müde, ich weine jeden Tag")
		require.NoError(t, err)

		assert.Equal(t, core.LanguageGerman, a.Language)
		assert.Equal(t, []string{"depression"}, a.Topics)
		assert.Equal(t, "Basierend auf Schlüsselwörtern in deiner Beschreibung.", a.Reasoning)
		assert.Contains(t, a.Summary, "schwierige Zeit")
	})

	t.Run("too short", func(t *testing.T) {
		a, err := k.AnalyzeSituation(ctx, "  sad   ")
		require.NoError(t, err)

		assert.Empty(t, a.Topics)
		assert.Equal(t, intensity.LevelNone, a.Intensity)
		assert.Equal(t, core.ConfidenceLow, a.Confidence)
		assert.Empty(t, a.Summary)
	})

	t.Run("crisis withholds topics", func(t *testing.T) {
		a, err := k.AnalyzeSituation(ctx, "I want to die, I can't do this")
		require.NoError(t, err)

		require.True(t, a.CrisisDetected())
		assert.Equal(t, situation.CrisisSuicidal, a.Crisis.Type)
		assert.Empty(t, a.Topics)
		assert.Empty(t, a.Specialties)
		assert.Equal(t, intensity.LevelHigh, a.Intensity)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := k.AnalyzeSituation(cctx, "I have panic attacks")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsTooShort(t *testing.T) {
	assert.True(t, IsTooShort(""))
	assert.True(t, IsTooShort("   müde    "))
	assert.False(t, IsTooShort("ich bin müde"))
}

func TestSituationAnalysis_CrisisDetected(t *testing.T) {
	var nilAnalysis *SituationAnalysis
	assert.False(t, nilAnalysis.CrisisDetected())
}
