package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Match is a successful extraction: the normalized value plus the name of
// the pattern that produced it.
type Match struct {
	Value   string
	Pattern string
}

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var (
	// "February 6", "Feb 6, 2026", "Feb. 6th"
	monthNameRe = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	// "2026/02/06", "2026-02-06"
	ymdRe = regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`)
	// "06/02/2026", "6-2-2026"
	dmyRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
)

// Date extracts a calendar date from a text span, normalized to
// DD/MM/YYYY. Recognized shapes: "Month Day[, Year]" with full or
// abbreviated month name, "YYYY/MM/DD", and "DD/MM/YYYY" (slash or hyphen
// separators). A two-part numeric date where both components could be a
// month is read day-first: that is the convention of the tournament host
// country, kept as stated policy even though a genuinely month-first
// source would be mis-read. When the year is absent, year is the
// tournament year passed by the caller.
func Date(text string, year int) (Match, bool) {
	if m := monthNameRe.FindStringSubmatch(text); m != nil {
		month := monthNumbers[strings.ToLower(m[1])[:3]]
		day, _ := strconv.Atoi(m[2])
		y := year
		if m[3] != "" {
			y, _ = strconv.Atoi(m[3])
		}
		if validDate(day, month) {
			return Match{Value: formatDate(day, month, y), Pattern: "month-name"}, true
		}
	}

	if m := ymdRe.FindStringSubmatch(text); m != nil {
		y, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if validDate(day, month) {
			return Match{Value: formatDate(day, month, y), Pattern: "year-first"}, true
		}
	}

	if m := dmyRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		// A second component above 12 can only be the day, so the source
		// wrote month-first. Otherwise day-first applies, including the
		// ambiguous both-below-13 case.
		if month > 12 && day <= 12 {
			day, month = month, day
		}
		if validDate(day, month) {
			return Match{Value: formatDate(day, month, y), Pattern: "day-first"}, true
		}
	}

	return Match{}, false
}

func validDate(day, month int) bool {
	return day >= 1 && day <= 31 && month >= 1 && month <= 12
}

func formatDate(day, month, year int) string {
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}

var clockRe = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})(?:\s*([ap])\.?m\.?)?\b`)

// Clock extracts a kickoff time from a text span, normalized to 24-hour
// HH:MM. Accepts "H:MM" and "HH:MM" with an optional am/pm suffix;
// 12-hour input follows the standard noon/midnight rules (12am is 00,
// 12pm is 12).
func Clock(text string) (Match, bool) {
	for _, m := range clockRe.FindAllStringSubmatch(text, -1) {
		hour, minute, err := clockParts(m)
		if err != nil {
			continue
		}
		pattern := "24-hour"
		if m[3] != "" {
			pattern = "12-hour"
		}
		return Match{Value: fmt.Sprintf("%02d:%02d", hour, minute), Pattern: pattern}, true
	}
	return Match{}, false
}

// ParseClock parses a stored time string ("HH:MM" or "HH:MM AM/PM") into
// 24-hour components, rejecting anything out of range.
func ParseClock(s string) (hour, minute int, err error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || m[0] != strings.TrimSpace(s) {
		return 0, 0, fmt.Errorf("unrecognized time %q", s)
	}
	return clockParts(m)
}

func clockParts(m []string) (int, int, error) {
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return 0, 0, fmt.Errorf("minute out of range: %d", minute)
	}
	if m[3] == "" {
		if hour > 23 {
			return 0, 0, fmt.Errorf("hour out of range: %d", hour)
		}
		return hour, minute, nil
	}
	if hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("12-hour clock hour out of range: %d", hour)
	}
	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "p") {
		hour += 12
	}
	return hour, minute, nil
}
