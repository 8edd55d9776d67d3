package advice

import (
	"fmt"
	"strings"
)

// Static lookup tables. Everything in this package is a pure function of
// its inputs; there is no persistence behind any of it.

const (
	LanguageEnglish = "English"
	LanguageHindi   = "Hindi"
)

var occasionSuggestions = map[string]string{
	"Wedding": "Go for formal black or tan leather shoes.",
	"Office":  "Oxford or Loafers in brown or black.",
	"Party":   "Trendy sneakers with color splash.",
	"Gym":     "Lightweight breathable sports shoes.",
}

var occasionSuggestionsHindi = map[string]string{
	"Wedding": "शादी के लिए ब्लैक या टैन रंग के लेदर जूते पहनें।",
	"Office":  "ऑफिस के लिए ब्राउन या ब्लैक ऑक्सफोर्ड जूते उपयुक्त हैं।",
	"Party":   "पार्टी के लिए ट्रेंडी रंग-बिरंगे स्नीकर्स आज़माएँ।",
	"Gym":     "जिम के लिए हल्के और आरामदायक स्पोर्ट्स शूज़ चुनें।",
}

var outfitSuggestions = map[string]string{
	"casual": "Try pairing it with clean sneakers or loafers.",
	"formal": "Oxfords or polished leather shoes would elevate your outfit.",
	"sporty": "Sport shoes or trainers with good grip and ventilation are ideal.",
	"ethnic": "Go for embellished juttis or traditional mojaris.",
}

const outfitFallback = "Choose versatile shoes that blend with your outfit!"

// ForOccasion returns the canned suggestion for a known occasion, or a
// templated sentence interpolating occasion, size and color. An empty or
// unknown language falls back to English; only "Hindi" switches tables.
func ForOccasion(occasion, language, size, color string) string {
	if language == LanguageHindi {
		if msg, ok := occasionSuggestionsHindi[occasion]; ok {
			return msg
		}
		return fmt.Sprintf("%s के लिए हम %s रंग के साइज %s के जूते सुझाव देते हैं।", occasion, color, size)
	}

	if msg, ok := occasionSuggestions[occasion]; ok {
		return msg
	}
	return fmt.Sprintf("For a %s event, we recommend size %s shoes in %s color.", strings.ToLower(occasion), size, color)
}

// PersonalityResult buckets the summed quiz answers. Boundaries are
// inclusive: 5 is still a Sneaker Lover, 8 still a Loafer Vibe.
func PersonalityResult(answers []int) string {
	var score int
	for _, a := range answers {
		score += a
	}

	switch {
	case score <= 5:
		return "Sneaker Lover 🧢 – You’re casual and sporty!"
	case score <= 8:
		return "Loafer Vibe 👞 – You like a balance of class and comfort!"
	default:
		return "Boots Bold 👢 – You’re all about making a statement!"
	}
}

// StyleMatch looks up the outfit type case-insensitively.
func StyleMatch(outfitType string) string {
	if msg, ok := outfitSuggestions[strings.ToLower(outfitType)]; ok {
		return msg
	}
	return outfitFallback
}
