package mock

import (
	"context"
	"testing"

	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSituationAnalyzer(t *testing.T) {
	m := NewMockSituationAnalyzer("anxiety", "sleep")

	a, err := m.AnalyzeSituation(context.Background(), "Mostly anxiety, and some stress")
	require.NoError(t, err)
	assert.Equal(t, []string{"anxiety"}, a.Topics)
	assert.Equal(t, []core.Specialty{core.SpecialtyAnxiety}, a.Specialties)
	assert.Equal(t, ai.SourceMock, a.Source)
	assert.Equal(t, 1, m.CallCount())

	m.AnalyzeSituationFunc = func(ctx context.Context, text string) (*ai.SituationAnalysis, error) {
		return nil, context.DeadlineExceeded
	}
	_, err = m.AnalyzeSituation(context.Background(), "anything")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, m.CallCount())

	m.Reset()
	assert.Equal(t, 0, m.CallCount())
}

func TestMockSituationAnalyzer_Signal(t *testing.T) {
	m := NewMockSituationAnalyzer("sleep", "trauma")

	a, err := m.AnalyzeSituation(context.Background(), "I have had no sleep since the trauma")
	require.NoError(t, err)
	sig := a.Signal()
	assert.Equal(t, core.ConfidenceHigh, sig.Confidence)
	assert.Equal(t, []core.Specialty{core.SpecialtyDepression, core.SpecialtyAnxiety, core.SpecialtyTrauma}, sig.Specialties)

	none, err := m.AnalyzeSituation(context.Background(), "nothing relevant")
	require.NoError(t, err)
	assert.Empty(t, none.Signal().Specialties)
	assert.Equal(t, core.ConfidenceLow, none.Confidence)

	m.Resolver = nil
	bare, err := m.AnalyzeSituation(context.Background(), "trauma")
	require.NoError(t, err)
	assert.Equal(t, []string{"trauma"}, bare.Topics)
	assert.Empty(t, bare.Specialties)
}

func TestMockProvider(t *testing.T) {
	p := NewMockProvider()
	mp, ok := p.(*MockProvider)
	require.True(t, ok)

	assert.Same(t, mp.GetMockAnalyzer(), p.SituationAnalyzer())
	assert.False(t, mp.Closed())
	require.NoError(t, p.Close())
	assert.True(t, mp.Closed())
}
