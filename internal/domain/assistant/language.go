package assistant

// Language codes understood by the assistant.
const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

// devanagariShare is the fraction of Devanagari runes above which a message
// is treated as Hindi.
const devanagariShare = 0.3

// DetectLanguage classifies text as Hindi or English by the share of
// Devanagari codepoints (U+0900 to U+097F). Empty text defaults to English.
func DetectLanguage(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return LanguageEnglish
	}

	devanagari := 0
	for _, r := range runes {
		if r >= 0x0900 && r < 0x0980 {
			devanagari++
		}
	}

	if float64(devanagari)/float64(len(runes)) > devanagariShare {
		return LanguageHindi
	}
	return LanguageEnglish
}

// IsSupportedLanguage reports whether code is a language the assistant speaks.
func IsSupportedLanguage(code string) bool {
	return code == LanguageEnglish || code == LanguageHindi
}
