//go:build unit
// +build unit

package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopicFor(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"Fertilizer in English", "Which urea dose for paddy?", TopicFertilizer},
		{"Fertilizer in Hindi", "उर्वरक कितना डालें?", TopicFertilizer},
		{"Pest question", "There are insects on my crop", TopicPest},
		{"Weather question", "Will it rain tomorrow?", TopicWeather},
		{"Anything else", "Tell me about farming", TopicGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TopicFor(tt.message))
		})
	}
}

func TestCatalog_Respond(t *testing.T) {
	catalog := NewCatalog(1)

	reply := catalog.Respond("Which fertilizer for wheat?", "en")
	require.Contains(t, cannedResponses["en"][TopicFertilizer], reply)

	reply = catalog.Respond("मौसम कैसा है?", "hi")
	require.Contains(t, cannedResponses["hi"][TopicWeather], reply)
}

func TestCatalog_Respond_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	catalog := NewCatalog(1)

	reply := catalog.Respond("anything", "fr")
	require.Contains(t, cannedResponses["en"][TopicGeneral], reply)
}

func TestFallbackResponse(t *testing.T) {
	require.Contains(t, FallbackResponse("en"), "apologize")
	require.NotEmpty(t, FallbackResponse("hi"))
	require.Equal(t, FallbackResponse("en"), FallbackResponse("de"))
}
