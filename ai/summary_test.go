package ai

import (
	"testing"

	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/stretchr/testify/assert"
)

func TestTopicLabel(t *testing.T) {
	assert.Equal(t, "Angst & Panik", TopicLabel("anxiety", core.LanguageGerman))
	assert.Equal(t, "Anxiety & Panic", TopicLabel("anxiety", core.LanguageEnglish))
	assert.Equal(t, "Grief & Loss", TopicLabel("bereavement", core.LanguageEnglish))
	assert.Equal(t, "unknown_topic", TopicLabel("unknown_topic", core.LanguageGerman))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		topics []string
		level  intensity.Level
		lang   core.Language
		want   string
	}{
		{
			name: "no topics english",
			lang: core.LanguageEnglish,
			want: "Thank you for sharing. We'll help you find the right therapist.",
		},
		{
			name: "no topics german",
			lang: core.LanguageGerman,
			want: "Danke für deine Offenheit. Wir helfen dir, den passenden Therapeuten zu finden.",
		},
		{
			name:   "high intensity english",
			topics: []string{"anxiety", "sleep"},
			level:  intensity.LevelHigh,
			lang:   core.LanguageEnglish,
			want:   "We understand you're going through a difficult time. Based on your description, we'll focus on: Anxiety & Panic and Sleep Issues.",
		},
		{
			name:   "low intensity german",
			topics: []string{"stress"},
			level:  intensity.LevelLow,
			lang:   core.LanguageGerman,
			want:   "Es ist gut, dass du frühzeitig Unterstützung suchst. Basierend auf deiner Beschreibung konzentrieren wir uns auf: Stress & Überlastung.",
		},
		{
			name:   "only three topics named",
			topics: []string{"anxiety", "sleep", "stress", "family"},
			level:  intensity.LevelMedium,
			lang:   core.LanguageEnglish,
			want:   "We understand your situation. Based on your description, we'll focus on: Anxiety & Panic and Sleep Issues and Stress & Overwhelm.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.topics, tt.level, tt.lang))
		})
	}
}
