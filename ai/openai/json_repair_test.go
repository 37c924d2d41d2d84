package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "preamble", in: `Here you go: {"a":1} hope it helps`, want: `{"a":1}`},
		{name: "no object", in: "nothing", want: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanResponse(tt.in))
		})
	}
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "missing opening quote", in: `{topics": []}`, want: `{"topics": []}`},
		{name: "missing both quotes", in: `{"a": 1, intensity: "low"}`, want: `{"a": 1, "intensity": "low"}`},
		{name: "trailing comma in array", in: `{"a": [1, 2, ]}`, want: `{"a": [1, 2]}`},
		{name: "trailing comma in object", in: `{"a": 1,
}`, want: `{"a": 1}`},
		{name: "valid json untouched", in: `{"a": "b"}`, want: `{"a": "b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repairJSON(tt.in)
			assert.Equal(t, tt.want, got)
			require.True(t, json.Valid([]byte(got)))
		})
	}
}

func TestParseAnswer_Repair(t *testing.T) {
	t.Run("valid answer skips repair", func(t *testing.T) {
		a, err := parseAnswer(`{"topics":["anxiety"],"reasoning":"a, b: c","intensity":"low","summary":"","crisis":false}`)
		require.NoError(t, err)
		assert.Equal(t, "a, b: c", a.Reasoning)
	})

	t.Run("unrepairable", func(t *testing.T) {
		_, err := parseAnswer("[[[")
		assert.Error(t, err)
	})
}
