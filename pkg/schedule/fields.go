package schedule

import (
	"regexp"
	"strings"
)

var (
	groupRoomRe  = regexp.MustCompile(`G(\d+):(\S+)`)
	sessionRe    = regexp.MustCompile(`(?i)\b(DW|TD|PW|TP|SE|SC)\b`)
	tdContentRe  = regexp.MustCompile(`--\s*(?i:DW|TD)\b`)
	tpContentRe  = regexp.MustCompile(`--\s*(?i:PW|TP)\b`)
	afterMarkRe  = regexp.MustCompile(`--\s*(?:DW|PW|TD|TP)\b\s*,?\s*([A-Za-z-]{2,})`)
	preMarkerRe  = regexp.MustCompile(`^/?\s*(.*?)\s*--\s*(?:DW|PW|TD|TP)\b`)
	courseLineRe = regexp.MustCompile(`(?i)^(.*?)\s*\bcourse\b`)

	bareGroupRe   = regexp.MustCompile(`^G\d+$`)
	bareRoomRe    = regexp.MustCompile(`^\d{3,4}[TD]?$`)
	bareNumberRe  = regexp.MustCompile(`^\d+[A-Z]?$`)
	tpRoomRe      = regexp.MustCompile(`^TP\.[A-Z]\d+$`)
	roomScanRe    = regexp.MustCompile(`\b(\d{3,4}[TD]?)\b`)
	tpRoomScanRe  = regexp.MustCompile(`\bTP\.[A-Z]\d+\b`)
	sessionOnlyRe = regexp.MustCompile(`(?i)^(DW|PW|TD|TP|SE|SC|COURS|COURSE)$`)

	allCapsNameRe   = regexp.MustCompile(`^[A-Z][A-Z-]{2,23}[A-Z]$`)
	hyphenCapNameRe = regexp.MustCompile(`^[A-Z][a-z]+(?:-[A-Z][A-Za-z]*)+$`)
	nameCharsRe     = regexp.MustCompile(`^[A-Za-z-]+$`)
)

// lineKind is the verdict of the line classifier pipeline
type lineKind int

const (
	kindUnknown lineKind = iota
	kindGroupRoom
	kindBareRoom
	kindSessionMarker
	kindProfessor
)

// classifierRules is the ordered rule list for classifying one cell line.
// Each rule either matches or passes; the first match wins. Keeping the
// rules in one explicit list is what stops room numbers, TP.<X><n> tokens
// and group labels from ever being read as professor or module names.
var classifierRules = []struct {
	name  string
	kind  lineKind
	match func(string) bool
}{
	{"group-marker", kindGroupRoom, func(s string) bool {
		return groupStartRe.MatchString(s) || bareGroupRe.MatchString(s)
	}},
	{"room-token", kindBareRoom, func(s string) bool {
		return bareRoomRe.MatchString(s) || bareNumberRe.MatchString(s) || tpRoomRe.MatchString(s)
	}},
	{"session-keyword", kindSessionMarker, func(s string) bool {
		return sessionOnlyRe.MatchString(s)
	}},
	{"professor-name", kindProfessor, func(s string) bool {
		return IsLikelyProfessorName(s)
	}},
}

func classifyLine(line string) lineKind {
	line = strings.TrimSpace(line)
	for _, rule := range classifierRules {
		if rule.match(line) {
			return rule.kind
		}
	}
	return kindUnknown
}

// IsLikelyProfessorName reports whether a token looks like a professor
// name: 4-25 characters, letters and hyphens only, all-uppercase or
// hyphenated-capitalized, and not a session keyword or room/group token.
func IsLikelyProfessorName(token string) bool {
	clean := strings.TrimSpace(token)
	if len(clean) < 4 || len(clean) > 25 {
		return false
	}
	if sessionOnlyRe.MatchString(clean) {
		return false
	}
	if groupStartRe.MatchString(clean) || bareGroupRe.MatchString(clean) ||
		bareNumberRe.MatchString(clean) || tpRoomRe.MatchString(clean) {
		return false
	}
	if !nameCharsRe.MatchString(clean) {
		return false
	}
	return allCapsNameRe.MatchString(clean) || hyphenCapNameRe.MatchString(clean)
}

// ExtractFields runs the field heuristics over one cell segment and
// builds the entry for it. Every heuristic is independent: a missing
// signal never blocks the others, and every extracted list may stay
// empty.
func ExtractFields(day, timeSlot, content string) Entry {
	entry := Entry{
		Day:      day,
		TimeSlot: timeSlot,
		Content:  strings.TrimSpace(content),
		Type:     SessionCourse,
	}
	if entry.Content == "" {
		return entry
	}

	// groups and their co-located rooms
	seenGroups := map[string]bool{}
	for _, m := range groupRoomRe.FindAllStringSubmatch(entry.Content, -1) {
		group := "G" + m[1]
		if !seenGroups[group] {
			seenGroups[group] = true
			entry.Groups = append(entry.Groups, group)
		}
		entry.Rooms = append(entry.Rooms, roomFromToken(m[2], entry.Content))
	}

	// session type is detected with group markers blanked out so a
	// TP.<X><n> room token cannot masquerade as a lab marker
	stripped := groupRoomRe.ReplaceAllString(entry.Content, " ")
	entry.Type = detectSessionType(stripped)

	lines := cellLines(entry.Content)

	if prof := extractProfessor(entry.Content, lines); prof != "" {
		entry.Professors = append(entry.Professors, prof)
	}
	if module := extractModule(lines); module != "" {
		entry.Modules = append(entry.Modules, module)
	}

	// fallback room scan when no group marker carried one
	if len(entry.Rooms) == 0 {
		if tok := tpRoomScanRe.FindString(stripped); tok != "" {
			entry.Rooms = append(entry.Rooms, roomFromToken(tok, entry.Content))
		} else if tok := roomScanRe.FindString(stripped); tok != "" {
			entry.Rooms = append(entry.Rooms, roomFromToken(tok, entry.Content))
		}
	}

	return entry
}

func cellLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// detectSessionType maps the first session marker to its type:
// DW/TD -> tutorial, PW/TP -> lab, SE/SC and the "course" keyword ->
// course. Course is also the default.
func detectSessionType(text string) SessionType {
	switch strings.ToUpper(sessionRe.FindString(text)) {
	case "DW", "TD":
		return SessionTutorial
	case "PW", "TP":
		return SessionLab
	case "SE", "SC":
		return SessionCourse
	}
	return SessionCourse
}

// contentRoomType is the cell-level room-type default: a -- DW / -- TD
// marker makes rooms TD rooms, -- PW / -- TP makes them TP rooms.
func contentRoomType(content string) RoomType {
	if tdContentRe.MatchString(content) {
		return RoomTD
	}
	if tpContentRe.MatchString(content) {
		return RoomTP
	}
	return RoomLectureHall
}

// roomFromToken builds a Room from a raw room token, refining the type
// from the token shape first and the cell content second.
func roomFromToken(token, content string) Room {
	token = strings.TrimSpace(token)
	upper := strings.ToUpper(token)

	if strings.HasPrefix(upper, "TP") {
		number := strings.TrimPrefix(token, "TP.")
		number = strings.TrimPrefix(number, "TP")
		return Room{Number: number, Type: RoomTP}
	}
	if strings.HasSuffix(upper, "T") && bareRoomRe.MatchString(token) {
		return Room{Number: token, Type: RoomTP}
	}
	if strings.HasSuffix(upper, "D") && bareRoomRe.MatchString(token) {
		return Room{Number: token, Type: RoomTD}
	}
	return Room{Number: token, Type: contentRoomType(content)}
}

// extractProfessor prefers the text immediately after a --DW/--PW style
// marker; failing that it takes the last cell line (or trailing token of
// a room+name line) that passes the name heuristic.
func extractProfessor(content string, lines []string) string {
	if m := afterMarkRe.FindStringSubmatch(content); m != nil && IsLikelyProfessorName(m[1]) {
		return m[1]
	}

	candidate := ""
	for _, line := range lines {
		if classifyLine(line) == kindProfessor {
			candidate = line
			continue
		}
		// professor trailing other tokens, e.g. "204 MANSOURI"
		fields := strings.Fields(line)
		if len(fields) >= 2 && IsLikelyProfessorName(fields[len(fields)-1]) {
			candidate = fields[len(fields)-1]
		}
	}
	return candidate
}

// extractModule picks the module name: a slash-prefixed fragment first,
// then the text preceding a -- DW/PW/TD/TP marker, then the longest line
// the classifier left unclaimed.
func extractModule(lines []string) string {
	for _, line := range lines {
		if idx := strings.Index(line, "/"); idx >= 0 {
			cand := line[idx+1:]
			if cut := strings.Index(cand, "--"); cut >= 0 {
				cand = cand[:cut]
			}
			if cand = strings.TrimSpace(cand); isModuleName(cand) {
				return cand
			}
		}
	}

	for _, line := range lines {
		if m := preMarkerRe.FindStringSubmatch(line); m != nil {
			if cand := strings.TrimSpace(m[1]); isModuleName(cand) {
				return cand
			}
		}
	}

	best := ""
	for _, line := range lines {
		if classifyLine(line) != kindUnknown {
			continue
		}
		cand := line
		if m := courseLineRe.FindStringSubmatch(line); m != nil {
			cand = strings.TrimSpace(m[1])
		}
		if isModuleName(cand) && len(cand) > len(best) {
			best = cand
		}
	}
	return best
}

func isModuleName(s string) bool {
	if len(s) <= 3 {
		return false
	}
	return !groupStartRe.MatchString(s) && !bareGroupRe.MatchString(s) &&
		!bareNumberRe.MatchString(s) && !tpRoomRe.MatchString(s)
}
