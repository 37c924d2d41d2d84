package scoring

import (
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator() *Calculator {
	return NewCalculator(taxonomy.Default())
}

func anna() *core.Profile {
	return &core.Profile{
		Id:           1,
		Slug:         "anna-berg",
		Name:         "Anna Berg",
		Specialties:  []core.Specialty{core.SpecialtyAnxiety, core.SpecialtyDepression},
		Gender:       core.GenderFemale,
		SessionMode:  core.SessionModeOnline,
		Insurance:    []core.Insurance{core.InsurancePublic},
		Location:     core.Location{City: "Berlin", PostalCode: "10115"},
		Availability: core.AvailabilityImmediately,
	}
}

func TestScore_NoPreferenceIsFullScore(t *testing.T) {
	calc := newTestCalculator()

	for _, p := range []*core.Profile{anna(), {}, nil} {
		b := calc.ScoreWithBreakdown(p, core.Criteria{})
		assert.Equal(t, 100, b.Total)
		for _, sub := range []core.SubScore{b.Topic, b.Criteria, b.Refinement} {
			assert.False(t, sub.Supplied)
			assert.Equal(t, sub.Max, sub.Points)
			assert.Zero(t, sub.RawMax)
		}
	}
}

func TestScore_TopicScenario(t *testing.T) {
	calc := newTestCalculator()
	criteria := core.Criteria{Topics: []string{"anxiety"}}

	a := &core.Profile{Slug: "a", Specialties: []core.Specialty{core.SpecialtyAnxiety}}
	b := &core.Profile{Slug: "b"}

	assert.Equal(t, 100, calc.Score(a, criteria))
	assert.Equal(t, 50, calc.Score(b, criteria))

	bd := calc.ScoreWithBreakdown(b, criteria)
	assert.Equal(t, core.SubScore{Points: 0, Max: 50, Raw: 0, RawMax: 1, Supplied: true}, bd.Topic)
	assert.Equal(t, 35, bd.Criteria.Points)
	assert.Equal(t, 15, bd.Refinement.Points)
}

func TestScore_TopicSubScore(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name     string
		profile  *core.Profile
		criteria core.Criteria
		want     core.SubScore
	}{
		{
			name:     "all mapped specialties present",
			profile:  anna(),
			criteria: core.Criteria{Topics: []string{"sleep"}},
			want:     core.SubScore{Points: 50, Max: 50, Raw: 2, RawMax: 2, Supplied: true},
		},
		{
			name:     "one of three",
			profile:  &core.Profile{Specialties: []core.Specialty{core.SpecialtyBurnout}},
			criteria: core.Criteria{Topics: []string{"self_care", "sleep"}},
			want:     core.SubScore{Points: 17, Max: 50, Raw: 1, RawMax: 3, Supplied: true},
		},
		{
			name:     "only unknown topics",
			profile:  &core.Profile{},
			criteria: core.Criteria{Topics: []string{"astrology"}},
			want:     core.SubScore{Points: 50, Max: 50},
		},
		{
			name:     "injected specialties without topics",
			profile:  &core.Profile{Specialties: []core.Specialty{core.SpecialtyTrauma}},
			criteria: core.Criteria{Specialties: []core.Specialty{core.SpecialtyTrauma}},
			want:     core.SubScore{Points: 50, Max: 50, Raw: 1, RawMax: 1, Supplied: true},
		},
		{
			name:     "injected specialties are unioned",
			profile:  &core.Profile{Specialties: []core.Specialty{core.SpecialtyAnxiety}},
			criteria: core.Criteria{Topics: []string{"anxiety"}, Specialties: []core.Specialty{core.SpecialtyAnxiety, core.SpecialtyTrauma}},
			want:     core.SubScore{Points: 25, Max: 50, Raw: 1, RawMax: 2, Supplied: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.ScoreWithBreakdown(tt.profile, tt.criteria).Topic)
		})
	}
}

func TestScore_CriteriaSubScore(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name     string
		criteria core.Criteria
		want     core.SubScore
	}{
		{
			name:     "single satisfied filter rescales to 35",
			criteria: core.Criteria{Location: "Berlin"},
			want:     core.SubScore{Points: 35, Max: 35, Raw: 10, RawMax: 10, Supplied: true},
		},
		{
			name:     "single unsatisfied filter",
			criteria: core.Criteria{Gender: core.GenderMale},
			want:     core.SubScore{Points: 0, Max: 35, Raw: 0, RawMax: 8, Supplied: true},
		},
		{
			name:     "location matched, gender not",
			criteria: core.Criteria{Location: "berl", Gender: core.GenderMale},
			want:     core.SubScore{Points: 19, Max: 35, Raw: 10, RawMax: 18, Supplied: true},
		},
		{
			name: "all four, session mode mismatched",
			criteria: core.Criteria{
				Location:    "10115",
				Gender:      core.GenderFemale,
				SessionMode: core.SessionModeInPerson,
				Insurance:   []core.Insurance{core.InsurancePrivate, core.InsurancePublic},
			},
			want: core.SubScore{Points: 26, Max: 35, Raw: 26, RawMax: 35, Supplied: true},
		},
		{
			name:     "blank location is not a filter",
			criteria: core.Criteria{Location: "   "},
			want:     core.SubScore{Points: 35, Max: 35},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.ScoreWithBreakdown(anna(), tt.criteria).Criteria)
		})
	}
}

func TestScore_RefinementSubScore(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name      string
		subTopics []string
		want      core.SubScore
	}{
		{
			name:      "half weight matched rounds half up",
			subTopics: []string{"panic_attacks", "couple_conflicts"},
			want:      core.SubScore{Points: 8, Max: 15, Raw: 1, RawMax: 2, Supplied: true},
		},
		{
			name:      "all matched",
			subTopics: []string{"insomnia", "grief"},
			want:      core.SubScore{Points: 15, Max: 15, Raw: 1.9, RawMax: 1.9, Supplied: true},
		},
		{
			name:      "unknown subtopics are skipped",
			subTopics: []string{"nope", "couple_conflicts"},
			want:      core.SubScore{Points: 0, Max: 15, Raw: 0, RawMax: 1, Supplied: true},
		},
		{
			name:      "only unknown subtopics",
			subTopics: []string{"nope"},
			want:      core.SubScore{Points: 15, Max: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ScoreWithBreakdown(anna(), core.Criteria{SubTopics: tt.subTopics}).Refinement
			assert.Equal(t, tt.want.Points, got.Points)
			assert.Equal(t, tt.want.Max, got.Max)
			assert.Equal(t, tt.want.Supplied, got.Supplied)
			assert.InDelta(t, tt.want.Raw, got.Raw, 1e-9)
			assert.InDelta(t, tt.want.RawMax, got.RawMax, 1e-9)
		})
	}
}

func TestScore_RefinementAtParentGranularity(t *testing.T) {
	tax, err := taxonomy.New([]taxonomy.Topic{
		{
			ID:          "t",
			Specialties: []core.Specialty{core.SpecialtyTrauma},
			SubTopics: []taxonomy.SubTopic{
				{ID: "x", Weight: 2},
				{ID: "y", Weight: 1},
			},
		},
	}, nil)
	require.NoError(t, err)

	calc := NewCalculator(tax)
	p := &core.Profile{Specialties: []core.Specialty{core.SpecialtyTrauma}}

	b := calc.ScoreWithBreakdown(p, core.Criteria{SubTopics: []string{"x", "y"}})
	assert.Equal(t, 15, b.Refinement.Points)
	assert.InDelta(t, 3.0, b.Refinement.RawMax, 1e-9)
}

func TestScore_SumOfRoundedSubScores(t *testing.T) {
	calc := newTestCalculator()
	p := &core.Profile{
		Specialties: []core.Specialty{core.SpecialtyBurnout},
		Gender:      core.GenderMale,
		SessionMode: core.SessionModeInPerson,
	}
	criteria := core.Criteria{
		Topics:      []string{"self_care", "sleep"},
		Gender:      core.GenderMale,
		SessionMode: core.SessionModeOnline,
		SubTopics:   []string{"panic_attacks", "work_stress"},
	}

	b := calc.ScoreWithBreakdown(p, criteria)
	// 50/3 -> 17, 8/17*35 -> 16, 7.5 -> 8
	assert.Equal(t, 17, b.Topic.Points)
	assert.Equal(t, 16, b.Criteria.Points)
	assert.Equal(t, 8, b.Refinement.Points)
	assert.Equal(t, 41, b.Total)
}

func TestScore_Bounds(t *testing.T) {
	calc := newTestCalculator()

	profiles := []*core.Profile{
		nil,
		{},
		anna(),
		{Specialties: core.Specialties, SessionMode: core.SessionModeBoth, Insurance: []core.Insurance{core.InsurancePrivate}},
	}
	criteria := []core.Criteria{
		{},
		{Topics: []string{"anxiety", "trauma", "nope"}},
		{SubTopics: []string{"ptsd", "nope", "alcohol"}},
		{Location: "Köln", Gender: core.GenderDiverse, SessionMode: core.SessionModeBoth, Insurance: []core.Insurance{core.InsurancePublic}},
		{Topics: []string{"family"}, SubTopics: []string{"divorce"}, Location: "1", Specialties: []core.Specialty{core.SpecialtyADHD}},
	}

	for _, p := range profiles {
		for _, c := range criteria {
			b := calc.ScoreWithBreakdown(p, c)
			assert.GreaterOrEqual(t, b.Total, 0)
			assert.LessOrEqual(t, b.Total, 100)
			assert.Equal(t, b.Topic.Points+b.Criteria.Points+b.Refinement.Points, b.Total)
			assert.Equal(t, 100, b.Topic.Max+b.Criteria.Max+b.Refinement.Max)
			assert.Equal(t, b.Total, calc.Score(p, c))
		}
	}
}

func TestMatchesLocation(t *testing.T) {
	loc := core.Location{City: "Berlin", PostalCode: "10115"}
	assert.True(t, MatchesLocation(loc, "berlin"))
	assert.True(t, MatchesLocation(loc, " BERL "))
	assert.True(t, MatchesLocation(loc, "101"))
	assert.True(t, MatchesLocation(loc, ""))
	assert.False(t, MatchesLocation(loc, "Hamburg"))
}

func TestMatchesSessionMode(t *testing.T) {
	assert.True(t, MatchesSessionMode(core.SessionModeBoth, core.SessionModeOnline))
	assert.True(t, MatchesSessionMode(core.SessionModeOnline, core.SessionModeBoth))
	assert.True(t, MatchesSessionMode(core.SessionModeInPerson, core.SessionModeInPerson))
	assert.False(t, MatchesSessionMode(core.SessionModeInPerson, core.SessionModeOnline))
	assert.False(t, MatchesSessionMode("", core.SessionModeOnline))
}

func TestMatchesInsurance(t *testing.T) {
	assert.True(t, MatchesInsurance([]core.Insurance{core.InsurancePublic, core.InsurancePrivate}, []core.Insurance{core.InsurancePrivate}))
	assert.False(t, MatchesInsurance([]core.Insurance{core.InsurancePublic}, []core.Insurance{core.InsurancePrivate}))
	assert.False(t, MatchesInsurance(nil, []core.Insurance{core.InsurancePrivate}))
}

// stubCatalog answers subtopic lookups from fixed tables.
type stubCatalog struct {
	subTopics   map[string]taxonomy.SubTopic
	specialties map[string][]core.Specialty
}

func (s stubCatalog) SpecialtiesForTopics([]string) []core.Specialty { return nil }

func (s stubCatalog) SubTopic(id string) (taxonomy.SubTopic, string, bool) {
	sub, ok := s.subTopics[id]
	return sub, "owner", ok
}

func (s stubCatalog) SpecialtiesForSubTopic(id string) []core.Specialty {
	return s.specialties[id]
}

func TestScore_RefinementUsesSubTopicSpecialties(t *testing.T) {
	calc := NewCalculator(stubCatalog{
		subTopics: map[string]taxonomy.SubTopic{
			"x": {ID: "x", Weight: 1},
			"y": {ID: "y", Weight: 3},
		},
		specialties: map[string][]core.Specialty{
			"x": {core.SpecialtyADHD},
			"y": {core.SpecialtyBurnout},
		},
	})
	p := &core.Profile{Specialties: []core.Specialty{core.SpecialtyBurnout}}

	b := calc.ScoreWithBreakdown(p, core.Criteria{SubTopics: []string{"x", "y"}})
	assert.InDelta(t, 4.0, b.Refinement.RawMax, 1e-9)
	assert.InDelta(t, 3.0, b.Refinement.Raw, 1e-9)
	assert.Equal(t, 11, b.Refinement.Points)
}
