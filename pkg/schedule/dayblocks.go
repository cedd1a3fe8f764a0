package schedule

import (
	"regexp"
	"strings"
)

// DayBlock is the run of raw lines between one day token and the next,
// one calendar day's full row of the schedule grid.
type DayBlock struct {
	Day   string
	Lines []string
}

var dayPrefixRe = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday|lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche|mon|tue|wed|thu|fri|sat|sun|lun|mar|mer|jeu|ven|sam|dim)\b[\s.:,-]*(.*)$`)

// SegmentDays walks the line stream and groups content lines under the
// day token that precedes them. Lines before the first day token are
// pre-table noise and are discarded. The final accumulator is flushed at
// end of stream.
func SegmentDays(lines []string) []DayBlock {
	var blocks []DayBlock
	var current *DayBlock

	for _, line := range lines {
		if m := dayPrefixRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				blocks = append(blocks, *current)
			}
			current = &DayBlock{Day: NormalizeDayName(m[1])}
			if rest := strings.TrimSpace(m[2]); rest != "" {
				current.Lines = append(current.Lines, rest)
			}
			continue
		}
		if current == nil {
			// pre-table noise
			continue
		}
		current.Lines = append(current.Lines, line)
	}

	if current != nil {
		blocks = append(blocks, *current)
	}
	return blocks
}
