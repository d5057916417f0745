package team

import "strings"

// codes maps IIHF three-letter codes to canonical display names for the
// national teams that can appear in an Olympic ice hockey schedule.
var codes = map[string]string{
	"AUT": "Austria",
	"BLR": "Belarus",
	"CAN": "Canada",
	"CHN": "China",
	"CZE": "Czechia",
	"DEN": "Denmark",
	"FIN": "Finland",
	"FRA": "France",
	"GBR": "Great Britain",
	"GER": "Germany",
	"HUN": "Hungary",
	"ITA": "Italy",
	"JPN": "Japan",
	"KAZ": "Kazakhstan",
	"KOR": "South Korea",
	"LAT": "Latvia",
	"NOR": "Norway",
	"POL": "Poland",
	"SLO": "Slovenia",
	"SUI": "Switzerland",
	"SVK": "Slovakia",
	"SWE": "Sweden",
	"USA": "United States",
}

// aliases maps lowercase alternate spellings to the canonical display name.
var aliases = map[string]string{
	"czech republic":           "Czechia",
	"the czech republic":       "Czechia",
	"usa":                      "United States",
	"us":                       "United States",
	"u.s.":                     "United States",
	"u.s.a.":                   "United States",
	"america":                  "United States",
	"united states of america": "United States",
	"korea":                    "South Korea",
	"republic of korea":        "South Korea",
	"korea republic":           "South Korea",
	"russia":                   "ROC",
	"roc":                      "ROC",
	"uk":                       "Great Britain",
	"united kingdom":           "Great Britain",
}

// byName maps lowercase canonical names back to themselves, built once from
// the codes table so Normalize can recognize already-canonical input.
var byName = func() map[string]string {
	m := make(map[string]string, len(codes))
	for _, name := range codes {
		m[strings.ToLower(name)] = name
	}
	return m
}()

// Expand returns the display name for a known three-letter team code.
// Unknown codes are returned unchanged.
func Expand(code string) string {
	if name, ok := codes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return name
	}
	return code
}

// IsCode reports whether s is a recognized three-letter team code.
func IsCode(s string) bool {
	_, ok := codes[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// Known reports whether s resolves to a recognized team: a code, a
// canonical name, or a listed alternate spelling.
func Known(s string) bool {
	trimmed := strings.TrimSpace(s)
	if IsCode(trimmed) {
		return true
	}
	lower := strings.ToLower(trimmed)
	if _, ok := aliases[lower]; ok {
		return true
	}
	_, ok := byName[lower]
	return ok
}

// Normalize maps a free-text team name to its canonical display string.
// It accepts any casing, common alternate spellings ("Czech Republic" for
// "Czechia", "USA" for "United States"), and bare three-letter codes, which
// are routed through Expand. Unrecognized input is returned trimmed but
// otherwise unchanged.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return trimmed
	}
	if len(trimmed) == 3 && IsCode(trimmed) {
		return Expand(trimmed)
	}
	lower := strings.ToLower(trimmed)
	if canonical, ok := aliases[lower]; ok {
		return canonical
	}
	if canonical, ok := byName[lower]; ok {
		return canonical
	}
	return trimmed
}
