package assistant

import (
	"math/rand"
	"strings"
	"sync"
)

// Catalog topics.
const (
	TopicFertilizer = "fertilizer"
	TopicPest       = "pest"
	TopicWeather    = "weather"
	TopicGeneral    = "general"
)

// topicKeywords routes a farmer message to a catalog topic.
var topicKeywords = map[string][]string{
	TopicFertilizer: {"fertilizer", "उर्वरक", "urea", "dap", "nutrient", "पोषक"},
	TopicPest:       {"pest", "कीट", "कीड़ा", "insect", "disease", "बीमारी", "नियंत्रण"},
	TopicWeather:    {"weather", "मौसम", "rain", "वर्षा", "temperature", "तापमान"},
}

var cannedResponses = map[string]map[string][]string{
	LanguageEnglish: {
		TopicFertilizer: {
			"For paddy crop, I recommend using 50-60 kg/acre of urea, 25-30 kg/acre of DAP, and 20-25 kg/acre of Muriate of Potash. Apply in split doses for better results.",
			"For wheat, use 60-70 kg/acre of urea, 30-35 kg/acre of DAP, and 15-20 kg/acre of potash. Apply half dose at sowing and half after 25-30 days.",
			"For maize, apply 80-100 kg/acre of urea, 40-50 kg/acre of DAP, and 30-40 kg/acre of potash. Apply in 3 split doses.",
		},
		TopicPest: {
			"For pest control in paddy, use neem oil spray (5%) or install pheromone traps. Chemical options include chlorantraniliprole or flubendiamide.",
			"For wheat pests like aphids, use imidacloprid or thiamethoxam as seed treatment. For foliar application, use lambda-cyhalothrin.",
			"For maize pests, apply appropriate insecticides based on the specific pest. Always follow recommended dosage and safety guidelines.",
		},
		TopicWeather: {
			"Today's weather is good for farming activities. Temperature is around 28°C with moderate humidity. No rainfall expected.",
			"Current weather conditions are favorable for most crops. Adequate sunshine and moderate temperatures will help in crop growth.",
			"Weather conditions are normal for this season. Plan your irrigation and farming activities accordingly.",
		},
		TopicGeneral: {
			"I'm here to help you with farming advice. Feel free to ask about crops, weather, pest control, or government schemes.",
			"Thank you for your question. Based on current agricultural practices, I recommend following proper farming methods.",
			"That's a good question about farming. Always consult with local agricultural experts for specific advice.",
		},
	},
	LanguageHindi: {
		TopicFertilizer: {
			"धान की फसल के लिए, मैं 50-60 किग्रा/एकड़ यूरिया, 25-30 किग्रा/एकड़ डीएपी, और 20-25 किग्रा/एकड़ म्यूरिएट ऑफ पोटाश की सिफारिश करता हूं। बेहतर परिणामों के लिए विभाजित खुराक में लागू करें।",
			"गेहूं के लिए, 60-70 किग्रा/एकड़ यूरिया, 30-35 किग्रा/एकड़ डीएपी, और 15-20 किग्रा/एकड़ पोटाश का उपयोग करें। बोने पर आधा खुराक और 25-30 दिनों के बाद आधा लगाएं।",
			"मक्का के लिए, 80-100 किग्रा/एकड़ यूरिया, 40-50 किग्रा/एकड़ डीएपी, और 30-40 किग्रा/एकड़ पोटाश लागू करें। 3 विभाजित खुराक में लागू करें।",
		},
		TopicPest: {
			"धान में कीट नियंत्रण के लिए, नीम तेल का छिड़काव (5%) लगाएं या फेरोमोन जाल लगाएं। रासायनिक विकल्पों में क्लोरान्ट्रानिलिप्रोल या फ्लुबेंडियामाइड शामिल हैं।",
			"गेहूं के कीटों जैसे एफिड्स के लिए, बीज उपचार के रूप में इमिडाक्लोप्रिड या थियामेथॉक्सैम का उपयोग करें। पत्ते पर लगाने के लिए, लैम्डा-साइहलोथ्रिन का उपयोग करें।",
			"मक्का के कीटों के लिए, विशिष्ट कीट के आधार पर उपयुक्त कीटनाशक लागू करें। हमेशा अनुशंसित खुराक और सुरक्षा दिशानिर्देशों का पालन करें।",
		},
		TopicWeather: {
			"आज का मौसम खेती गतिविधियों के लिए अच्छा है। तापमान लगभग 28°C है और मध्यम आर्द्रता है। वर्षा की उम्मीद नहीं है।",
			"वर्तमान मौसम की स्थितियां अधिकांश फसलों के लिए अनुकूल हैं। पर्याप्त धूप और मध्यम तापमान फसल वृद्धि में मदद करेंगे।",
			"मौसम की स्थितियां इस मौसम के लिए सामान्य हैं। अपनी सिंचाई और खेती गतिविधियों की तदनुसार योजना बनाएं।",
		},
		TopicGeneral: {
			"मैं आपको खेती सलाह में मदद करने के लिए यहां हूं। फसलों, मौसम, कीट नियंत्रण, या सरकारी योजनाओं के बारे में पूछने के लिए स्वतंत्र महसूस करें।",
			"आपके प्रश्न के लिए धन्यवाद। वर्तमान कृषि प्रथाओं के आधार पर, मैं उचित खेती तरीकों का पालन करने की सलाह देता हूं।",
			"खेती के बारे में यह एक अच्छा प्रश्न है। विशिष्ट सलाह के लिए हमेशा स्थानीय कृषि विशेषज्ञों से परामर्श करें।",
		},
	},
}

// fallbackResponses are returned when generation fails mid-request.
var fallbackResponses = map[string]string{
	LanguageEnglish: "I apologize, but I encountered an error while processing your request. Please try again.",
	LanguageHindi:   "क्षमा करें, आपके अनुरोध को संसाधित करते समय एक त्रुटि हुई। कृपया पुनः प्रयास करें।",
}

// Catalog serves canned bilingual replies keyed by topic. It stands in for the
// inference backend during development and whenever generation fails.
type Catalog struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCatalog creates a catalog seeded with seed. Use a fixed seed in tests.
func NewCatalog(seed int64) *Catalog {
	return &Catalog{rng: rand.New(rand.NewSource(seed))}
}

// TopicFor routes a message to a catalog topic by keyword lookup.
func TopicFor(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range []string{TopicFertilizer, TopicPest, TopicWeather} {
		for _, keyword := range topicKeywords[topic] {
			if strings.Contains(lower, keyword) {
				return topic
			}
		}
	}
	return TopicGeneral
}

// Respond returns a canned reply for message in the requested language.
// Unsupported languages fall back to English.
func (c *Catalog) Respond(message, language string) string {
	if !IsSupportedLanguage(language) {
		language = LanguageEnglish
	}

	variants := cannedResponses[language][TopicFor(message)]

	c.mu.Lock()
	defer c.mu.Unlock()
	return variants[c.rng.Intn(len(variants))]
}

// FallbackResponse returns the generation failure message for a language.
func FallbackResponse(language string) string {
	if msg, ok := fallbackResponses[language]; ok {
		return msg
	}
	return fallbackResponses[LanguageEnglish]
}
