package assistant

import "strings"

// MaxContextTags caps the number of tags attached to a conversation.
const MaxContextTags = 5

// Context tag identifiers.
const (
	TagCropDisease      = "crop_disease"
	TagPestManagement   = "pest_management"
	TagFertilizer       = "fertilizer"
	TagIrrigation       = "irrigation"
	TagSoilHealth       = "soil_health"
	TagWeather          = "weather"
	TagGovernmentScheme = "government_schemes"
	TagMarketPrices     = "market_prices"
	TagHarvesting       = "harvesting"
	TagSeeds            = "seeds"
	TagFarmingEquipment = "farming_equipment"
)

// tagOrder fixes the evaluation order so extracted tags are deterministic.
var tagOrder = []string{
	TagCropDisease,
	TagPestManagement,
	TagFertilizer,
	TagIrrigation,
	TagSoilHealth,
	TagWeather,
	TagGovernmentScheme,
	TagMarketPrices,
	TagHarvesting,
	TagSeeds,
	TagFarmingEquipment,
}

// contextKeywords maps a tag to the English and Hindi keywords that imply it.
var contextKeywords = map[string][]string{
	TagCropDisease:      {"disease", "पीड़ित", "बीमार", "infection", "fungus", "virus", "bacterial"},
	TagPestManagement:   {"pest", "कीड़ा", "कीट", "insect", "pesticide", "दवा", "control", "नियंत्रण"},
	TagFertilizer:       {"fertilizer", "उर्वरक", "nutrient", "पोषक", "npk", "urea", "dap"},
	TagIrrigation:       {"water", "पानी", "irrigation", "सिंचाई", "drought", "सूखा", "rainfall"},
	TagSoilHealth:       {"soil", "मिट्टी", "ph", "organic", "carbon", "testing", "जांच"},
	TagWeather:          {"weather", "मौसम", "climate", "temperature", "rain", "humidity", "वर्षा"},
	TagGovernmentScheme: {"scheme", "योजना", "government", "सरकार", "subsidy", "benefit", "लाभ"},
	TagMarketPrices:     {"price", "दाम", "market", "मंडी", "rate", "cost", "बेच"},
	TagHarvesting:       {"harvest", "फसल", "cutting", "yield", "उपज", "production"},
	TagSeeds:            {"seed", "बीज", "variety", "किस्म", "germination", "अंकुरण"},
	TagFarmingEquipment: {"tractor", "ट्रैक्टर", "machine", "equipment", "उपकरण", "tool"},
}

// ExtractContextTags scans the given texts (typically the farmer message and
// the assistant reply) for agricultural keywords and returns up to
// MaxContextTags tags in a stable order.
func ExtractContextTags(texts ...string) []string {
	combined := strings.ToLower(strings.Join(texts, " "))

	var found []string
	for _, tag := range tagOrder {
		for _, keyword := range contextKeywords[tag] {
			if strings.Contains(combined, keyword) {
				found = append(found, tag)
				break
			}
		}
		if len(found) == MaxContextTags {
			break
		}
	}

	return found
}
