package schedule

import "fmt"

// ParseText runs the full line-oriented pipeline over raw extracted text
// (PDF extraction output, OCR output, or any plain text): normalize,
// header, time slots, day blocks, slot splitting, field extraction,
// validation.
func ParseText(text string) *Result {
	lines := NormalizeText(text)
	if len(lines) == 0 {
		return failure("document contains no text", &FailureDetails{LineCount: 0})
	}

	header, warnings := ExtractHeader(lines)

	timeSlots, remaining, found := DetectTimeSlots(lines)
	if !found {
		warnings = append(warnings, "no time slot header found, using default slots")
	}

	blocks := SegmentDays(remaining)
	if len(blocks) == 0 {
		return failure("no schedule table structure detected", &FailureDetails{
			LineCount:      len(lines),
			ContentPreview: preview(lines),
		})
	}

	doc := &Document{HeaderInfo: header, TimeSlots: timeSlots}
	for _, block := range blocks {
		doc.Entries = append(doc.Entries, SplitDayContent(block.Day, block.Lines, timeSlots)...)
	}

	if errs := Validate(doc); len(errs) > 0 {
		return failure(fmt.Sprintf("invalid schedule data: %v", errs), &FailureDetails{
			LineCount:      len(lines),
			ContentPreview: preview(lines),
		})
	}

	return &Result{Success: true, Data: doc, Warnings: warnings}
}

// preview joins the first few lines for failure diagnostics
func preview(lines []string) string {
	const maxLines = 5
	const maxChars = 300
	joined := ""
	for i, line := range lines {
		if i >= maxLines {
			break
		}
		if joined != "" {
			joined += " | "
		}
		joined += line
	}
	if len(joined) > maxChars {
		joined = joined[:maxChars] + "..."
	}
	return joined
}
