package schedule

import (
	"regexp"
	"strings"
)

var (
	groupStartRe    = regexp.MustCompile(`^G\d+:`)
	groupBoundaryRe = regexp.MustCompile(`,\s*G\d+:`)
	courseTokenRe   = regexp.MustCompile(`(?i)\bcourse\b`)
)

// isSlotBoundary reports whether a line opens a new time-slot column:
// group markers and the "course" keyword are the only boundary signals
// that hold up across source documents.
func isSlotBoundary(line string) bool {
	return groupStartRe.MatchString(line) || courseTokenRe.MatchString(line)
}

// SplitDayContent divides one day's accumulated lines across the time-slot
// columns. Columns left without content become available entries with
// empty Content; columns with content are further split on multi-group
// boundaries and run through the field extractor, one entry per segment.
func SplitDayContent(day string, lines []string, timeSlots []string) []Entry {
	columns := make([]string, len(timeSlots))
	idx := 0

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSlotBoundary(line) && columns[idx] != "" && idx < len(timeSlots)-1 {
			idx++
		}
		if columns[idx] == "" {
			columns[idx] = line
		} else {
			columns[idx] += " " + line
		}
	}

	var entries []Entry
	for i, content := range columns {
		content = strings.TrimSpace(content)
		if content == "" {
			entries = append(entries, Entry{Day: day, TimeSlot: timeSlots[i], Content: "", Type: SessionCourse})
			continue
		}
		for _, segment := range SplitGroupSegments(content) {
			entries = append(entries, ExtractFields(day, timeSlots[i], segment))
		}
	}
	return entries
}

// SplitGroupSegments separates simultaneous group assignments sharing one
// cell: the text is cut at every "comma followed by a group marker".
// Plain content comes back as a single segment.
func SplitGroupSegments(content string) []string {
	locs := groupBoundaryRe.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return []string{content}
	}

	var segments []string
	start := 0
	for _, loc := range locs {
		if seg := strings.TrimSpace(content[start:loc[0]]); seg != "" {
			segments = append(segments, seg)
		}
		// resume at the group marker, past the comma
		start = loc[0] + strings.Index(content[loc[0]:loc[1]], "G")
	}
	if seg := strings.TrimSpace(content[start:]); seg != "" {
		segments = append(segments, seg)
	}
	return segments
}
