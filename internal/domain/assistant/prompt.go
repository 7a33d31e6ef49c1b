package assistant

import (
	"fmt"
	"strings"
)

// maxContextLines limits how much prior conversation is carried into a prompt.
const maxContextLines = 3

// GenerationParams holds sampling settings for the inference backend.
type GenerationParams struct {
	MaxNewTokens int
	Temperature  float32
	TopP         float32
	TopK         int
}

// DefaultGenerationParams returns the sampling settings the fine-tuned model
// was evaluated with.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		MaxNewTokens: 512,
		Temperature:  0.7,
		TopP:         0.9,
		TopK:         50,
	}
}

// Merge overlays non-zero fields of other onto p and returns the result.
func (p GenerationParams) Merge(other GenerationParams) GenerationParams {
	if other.MaxNewTokens > 0 {
		p.MaxNewTokens = other.MaxNewTokens
	}
	if other.Temperature > 0 {
		p.Temperature = other.Temperature
	}
	if other.TopP > 0 {
		p.TopP = other.TopP
	}
	if other.TopK > 0 {
		p.TopK = other.TopK
	}
	return p
}

// FormatPrompt renders a farmer message into the Llama-2 chat template. When
// contextLines are present the most recent maxContextLines of them are
// prefixed as context information.
func FormatPrompt(message string, contextLines []string) string {
	if len(contextLines) == 0 {
		return fmt.Sprintf("<s>[INST] %s [/INST]", message)
	}

	if len(contextLines) > maxContextLines {
		contextLines = contextLines[len(contextLines)-maxContextLines:]
	}

	var b strings.Builder
	for _, line := range contextLines {
		fmt.Fprintf(&b, "Context: %s\n", line)
	}

	return fmt.Sprintf("<s>[INST] Context information:\n%s\n\nQuestion: %s [/INST]", strings.TrimRight(b.String(), "\n"), message)
}

// SystemPrompt returns the assistant persona instruction in the requested
// language.
func SystemPrompt(language string) string {
	if language == LanguageHindi {
		return "आप झारखंड के किसानों के लिए एक कृषि सहायक हैं। फसलों, मौसम, कीट नियंत्रण, मंडी भाव और सरकारी योजनाओं के बारे में सरल हिंदी में व्यावहारिक सलाह दें।"
	}
	return "You are an agricultural assistant for farmers in Jharkhand. Give practical advice in simple English about crops, weather, pest control, market prices and government schemes."
}
