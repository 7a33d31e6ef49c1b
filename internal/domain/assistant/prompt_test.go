//go:build unit
// +build unit

package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrompt_NoContext(t *testing.T) {
	prompt := FormatPrompt("What is the best fertilizer for paddy?", nil)
	require.Equal(t, "<s>[INST] What is the best fertilizer for paddy? [/INST]", prompt)
}

func TestFormatPrompt_WithContext(t *testing.T) {
	prompt := FormatPrompt("And for wheat?", []string{"Farmer grows paddy", "Soil is loamy"})

	require.Equal(t,
		"<s>[INST] Context information:\nContext: Farmer grows paddy\nContext: Soil is loamy\n\nQuestion: And for wheat? [/INST]",
		prompt)
}

func TestFormatPrompt_KeepsLastThreeContextLines(t *testing.T) {
	prompt := FormatPrompt("q", []string{"one", "two", "three", "four"})

	assert.NotContains(t, prompt, "Context: one")
	assert.Contains(t, prompt, "Context: two")
	assert.Contains(t, prompt, "Context: three")
	assert.Contains(t, prompt, "Context: four")
}

func TestDefaultGenerationParams(t *testing.T) {
	params := DefaultGenerationParams()

	require.Equal(t, 512, params.MaxNewTokens)
	require.InDelta(t, 0.7, params.Temperature, 0.001)
	require.InDelta(t, 0.9, params.TopP, 0.001)
	require.Equal(t, 50, params.TopK)
}

func TestGenerationParams_Merge(t *testing.T) {
	base := DefaultGenerationParams()

	merged := base.Merge(GenerationParams{MaxNewTokens: 64, Temperature: 0.1})
	require.Equal(t, 64, merged.MaxNewTokens)
	require.InDelta(t, 0.1, merged.Temperature, 0.001)
	// Unset fields keep base values.
	require.InDelta(t, 0.9, merged.TopP, 0.001)
	require.Equal(t, 50, merged.TopK)
}

func TestSystemPrompt_Bilingual(t *testing.T) {
	require.Contains(t, SystemPrompt("en"), "Jharkhand")
	require.Contains(t, SystemPrompt("hi"), "झारखंड")
}
