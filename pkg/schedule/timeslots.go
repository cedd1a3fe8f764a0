package schedule

import "regexp"

// DefaultTimeSlots is the fixed fallback grid used whenever no time-range
// header row can be located. Every adapter shares this sequence.
var DefaultTimeSlots = []string{
	"08:00-09:30",
	"09:40-11:10",
	"11:20-12:50",
	"13:00-14:30",
	"14:40-16:10",
	"16:20-17:50",
}

var (
	timeRangeRe  = regexp.MustCompile(`\d{1,2}:\d{2}\s*-\s*\d{1,2}:\d{2}`)
	timeSplitRe  = regexp.MustCompile(`(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// canonicalTimeSlot strips inner whitespace: "08:00 - 09:30" -> "08:00-09:30"
func canonicalTimeSlot(raw string) string {
	return whitespaceRe.ReplaceAllString(raw, "")
}

// ExtractTimeSlots returns every time range found in one line, in
// left-to-right order, canonicalized.
func ExtractTimeSlots(line string) []string {
	var slots []string
	for _, m := range timeRangeRe.FindAllString(line, -1) {
		slots = append(slots, canonicalTimeSlot(m))
	}
	return slots
}

// DetectTimeSlots locates the header row enumerating time ranges. The
// first line holding at least one range defines the column grid and is
// consumed from the stream. When no such line exists the default grid is
// used and found reports false.
func DetectTimeSlots(lines []string) (slots []string, remaining []string, found bool) {
	for i, line := range lines {
		if extracted := ExtractTimeSlots(line); len(extracted) > 0 {
			remaining = append(remaining, lines[:i]...)
			remaining = append(remaining, lines[i+1:]...)
			return extracted, remaining, true
		}
	}
	return DefaultTimeSlots, lines, false
}

// ExtractTimeRange splits a canonical slot into its start and end times,
// defaulting both to 00:00 when the slot is unparsable.
func ExtractTimeRange(timeSlot string) (string, string) {
	m := timeSplitRe.FindStringSubmatch(timeSlot)
	if m == nil {
		return "00:00", "00:00"
	}
	return m[1], m[2]
}
