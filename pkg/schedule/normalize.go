package schedule

import (
	"regexp"
	"strings"
)

// Shared day vocabulary: English and French, full and abbreviated forms,
// mapped to the canonical English day name. All adapters go through this
// single table.
var dayNames = map[string]string{
	// English full names
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",
	"sunday":    "Sunday",
	// English abbreviations
	"mon": "Monday",
	"tue": "Tuesday",
	"wed": "Wednesday",
	"thu": "Thursday",
	"fri": "Friday",
	"sat": "Saturday",
	"sun": "Sunday",
	// French full names
	"lundi":    "Monday",
	"mardi":    "Tuesday",
	"mercredi": "Wednesday",
	"jeudi":    "Thursday",
	"vendredi": "Friday",
	"samedi":   "Saturday",
	"dimanche": "Sunday",
	// French abbreviations
	"lun": "Monday",
	"mar": "Tuesday",
	"mer": "Wednesday",
	"jeu": "Thursday",
	"ven": "Friday",
	"sam": "Saturday",
	"dim": "Sunday",
}

var dayToEnum = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

var (
	dayTokenRe    = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche|mon|tue|wed|thu|fri|sat|sun|lun|mar|mer|jeu|ven|sam|dim)\b`)
	dayLineRe     = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday|lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche|mon|tue|wed|thu|fri|sat|sun|lun|mar|mer|jeu|ven|sam|dim)$`)
	groupMarkerRe = regexp.MustCompile(`G\d+:`)
)

// IsDayToken reports whether the trimmed token is a recognized day name
func IsDayToken(token string) bool {
	return dayLineRe.MatchString(strings.TrimSpace(token))
}

// NormalizeDayName maps a day token to its canonical English name.
// Unrecognized tokens are upper-cased and passed through rather than
// defaulted, so ambiguous input stays visible downstream.
func NormalizeDayName(token string) string {
	clean := strings.ToLower(strings.TrimSpace(token))
	if name, ok := dayNames[clean]; ok {
		return name
	}
	return strings.ToUpper(strings.TrimSpace(token))
}

// ConvertDayToEnum converts a canonical day name to its persistence enum.
// Unknown values fall back to Monday.
func ConvertDayToEnum(day string) Weekday {
	if wd, ok := dayToEnum[strings.ToLower(strings.TrimSpace(day))]; ok {
		return wd
	}
	return Monday
}

// NormalizeText cleans raw extracted text into trimmed, non-empty lines.
// Tabs become spaces, stray '$' artifacts from some extractors are
// dropped, and a newline is injected before every day token and group
// marker so one physical line holding several logical entries splits
// apart before further processing.
func NormalizeText(raw string) []string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.ReplaceAll(text, "$", "")

	text = dayTokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		return "\n" + tok
	})
	text = groupMarkerRe.ReplaceAllStringFunc(text, func(tok string) string {
		return "\n" + tok
	})

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
