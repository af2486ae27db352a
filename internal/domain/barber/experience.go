package barber

import "strings"

// Canonical display labels for the experience bands shown in the app.
var experienceLabels = map[string]string{
	"0-1 years":  "0-1 Years",
	"2-3 years":  "2-3 Years",
	"4-6 years":  "4-6 years",
	"7-10 years": "7-10 Years",
	"10+":        "10+",
}

// NormalizeExperience maps a free-text experience label to its canonical
// form. Unrecognized input passes through unchanged rather than being
// rejected.
func NormalizeExperience(raw string) string {
	if canonical, ok := experienceLabels[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}
