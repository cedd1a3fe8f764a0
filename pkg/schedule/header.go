package schedule

import "regexp"

// One pattern per header field; the first matching line wins. Fields with
// no match stay empty, which downstream treats as a warning, never an
// error.
var headerPatterns = []struct {
	field   string
	pattern *regexp.Regexp
	// whole reports the full line as the value when the pattern has no
	// capture group
	whole bool
}{
	{"university", regexp.MustCompile(`(?i)university|universit\x{e9}`), true},
	{"speciality", regexp.MustCompile(`(?i)Schedules of\s*:?\s*(.+?)\s*--\s*Section:`), false},
	{"section", regexp.MustCompile(`(?i)Section:\s*([A-Z])`), false},
	{"academicYear", regexp.MustCompile(`(?i)College year:\s*(\d{4}/\d{4})`), false},
	{"semester", regexp.MustCompile(`(?i)Semester:\s*(\d)`), false},
	{"date", regexp.MustCompile(`(?i)Date:\s*(\d{1,2}/\d{1,2}/\d{4})`), false},
}

// ExtractHeader scans the lines for the six known header fields and
// returns whatever was found plus one warning per missing field.
func ExtractHeader(lines []string) (HeaderInfo, []string) {
	values := map[string]string{}

	for _, line := range lines {
		for _, hp := range headerPatterns {
			if values[hp.field] != "" {
				continue
			}
			m := hp.pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if hp.whole || len(m) < 2 {
				values[hp.field] = line
			} else {
				values[hp.field] = m[1]
			}
		}
	}

	var warnings []string
	for _, hp := range headerPatterns {
		if values[hp.field] == "" {
			warnings = append(warnings, "missing header field: "+hp.field)
		}
	}

	return HeaderInfo{
		University:   values["university"],
		Speciality:   values["speciality"],
		Section:      values["section"],
		AcademicYear: values["academicYear"],
		Semester:     values["semester"],
		Date:         values["date"],
	}, warnings
}
