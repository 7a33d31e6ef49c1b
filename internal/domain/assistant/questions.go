package assistant

// QuickQuestion is a curated suggestion shown to farmers before they type.
type QuickQuestion struct {
	Category string
	Text     string
}

var quickQuestions = map[string][]QuickQuestion{
	LanguageEnglish: {
		{Category: "prices", Text: "What is the price of potato in Ranchi today?"},
		{Category: "prices", Text: "Where can I sell my paddy at the best rate?"},
		{Category: "weather", Text: "Will it rain this week?"},
		{Category: "weather", Text: "Is the weather good for spraying pesticides?"},
		{Category: "fertilizer", Text: "Which fertilizer should I use for wheat?"},
		{Category: "pest", Text: "How do I control stem borer in paddy?"},
		{Category: "schemes", Text: "Am I eligible for PM-KISAN?"},
		{Category: "schemes", Text: "Which crop insurance schemes are available?"},
	},
	LanguageHindi: {
		{Category: "prices", Text: "आज रांची में आलू का भाव क्या है?"},
		{Category: "prices", Text: "मैं अपना धान सबसे अच्छे दाम पर कहां बेच सकता हूं?"},
		{Category: "weather", Text: "क्या इस सप्ताह बारिश होगी?"},
		{Category: "weather", Text: "क्या कीटनाशक छिड़काव के लिए मौसम अच्छा है?"},
		{Category: "fertilizer", Text: "गेहूं के लिए कौन सा उर्वरक उपयोग करना चाहिए?"},
		{Category: "pest", Text: "धान में तना छेदक को कैसे नियंत्रित करूं?"},
		{Category: "schemes", Text: "क्या मैं पीएम-किसान के लिए पात्र हूं?"},
		{Category: "schemes", Text: "कौन सी फसल बीमा योजनाएं उपलब्ध हैं?"},
	},
}

// QuickQuestions returns the curated suggestion list for a language. Unknown
// languages fall back to English.
func QuickQuestions(language string) []QuickQuestion {
	if questions, ok := quickQuestions[language]; ok {
		return questions
	}
	return quickQuestions[LanguageEnglish]
}
