package job

import "strings"

// Canonical display labels for the posting types offered in the app.
var typeLabels = map[string]string{
	"full time":    "Full-time",
	"part time":    "Part-time",
	"rent a chair": "Rent a Chair",
	"temporary":    "Temporary",
	"contract":     "Contract",
}

// NormalizeType maps a free-text job type to its canonical form.
// Unrecognized input passes through unchanged.
func NormalizeType(raw string) string {
	if canonical, ok := typeLabels[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}
