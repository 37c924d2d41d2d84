package scoring

import (
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/stretchr/testify/assert"
)

func TestMatchReasons(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name     string
		profile  *core.Profile
		criteria core.Criteria
		want     []string
	}{
		{
			name:    "all reasons",
			profile: anna(),
			criteria: core.Criteria{
				Topics:      []string{"sleep"},
				Location:    "Berlin",
				SessionMode: core.SessionModeOnline,
			},
			want: []string{"expert_in:depression,anxiety", "offers_online", "available_now", "near_location"},
		},
		{
			name:     "no expert reason below threshold",
			profile:  &core.Profile{Specialties: []core.Specialty{core.SpecialtyBurnout}},
			criteria: core.Criteria{Topics: []string{"self_care", "sleep"}},
			want:     []string{},
		},
		{
			name:     "no expert reason without topic preference",
			profile:  anna(),
			criteria: core.Criteria{},
			want:     []string{"available_now"},
		},
		{
			name:     "in person",
			profile:  &core.Profile{SessionMode: core.SessionModeBoth},
			criteria: core.Criteria{SessionMode: core.SessionModeInPerson},
			want:     []string{"offers_in_person"},
		},
		{
			name:     "both on both sides names no mode",
			profile:  &core.Profile{SessionMode: core.SessionModeBoth},
			criteria: core.Criteria{SessionMode: core.SessionModeBoth},
			want:     []string{},
		},
		{
			name:     "unmatched location",
			profile:  anna(),
			criteria: core.Criteria{Location: "Hamburg"},
			want:     []string{"available_now"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ScoreWithBreakdown(tt.profile, tt.criteria).Reasons
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), MaxReasons)
		})
	}
}
