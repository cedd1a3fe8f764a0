package schedule

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// parseGrid turns a spreadsheet grid into a Document. The time slot
// header is looked for in the first three rows; rows whose first cell
// is not a day name are skipped as data but still scanned for header
// metadata. An unrecognized day never becomes a schedule entry.
func parseGrid(rows [][]string) *Result {
	if len(rows) == 0 {
		return failure("spreadsheet contains no rows", nil)
	}

	var warnings []string
	slotRow := -1
	var timeSlots []string
	for i := 0; i < len(rows) && i < 3; i++ {
		var found []string
		for _, cell := range rows[i] {
			if slots := ExtractTimeSlots(cell); len(slots) > 0 {
				found = append(found, slots...)
			}
		}
		if len(found) > 0 {
			slotRow = i
			timeSlots = found
			break
		}
	}
	if slotRow == -1 {
		timeSlots = DefaultTimeSlots
		warnings = append(warnings, "no time slot row found, using default slots")
	}

	doc := &Document{TimeSlots: timeSlots}
	var headerLines []string

	for i, row := range rows {
		if i == slotRow {
			continue
		}
		rowText := strings.TrimSpace(strings.Join(row, " "))
		if rowText == "" {
			continue
		}

		var m []string
		if len(row) > 0 {
			m = dayPrefixRe.FindStringSubmatch(strings.TrimSpace(row[0]))
		}
		if m == nil {
			headerLines = append(headerLines, rowText)
			continue
		}
		day := NormalizeDayName(m[1])

		for col, cell := range row[1:] {
			if col >= len(timeSlots) {
				break
			}
			timeSlot := timeSlots[col]
			cell = strings.TrimSpace(cell)
			if cell == "" {
				doc.Entries = append(doc.Entries, Entry{Day: day, TimeSlot: timeSlot, Type: SessionCourse})
				continue
			}
			for _, segment := range SplitGroupSegments(cell) {
				doc.Entries = append(doc.Entries, ExtractFields(day, timeSlot, segment))
			}
		}
	}

	header, headerWarnings := ExtractHeader(headerLines)
	doc.HeaderInfo = header
	warnings = append(warnings, headerWarnings...)

	if errs := Validate(doc); len(errs) > 0 {
		return failure(fmt.Sprintf("invalid schedule data: %v", errs), &FailureDetails{
			RowCount:       len(rows),
			ContentPreview: preview(headerLines),
		})
	}

	return &Result{Success: true, Data: doc, Warnings: warnings}
}

// ParseXlsx parses a modern Excel workbook. The first sheet that has
// any rows wins.
func ParseXlsx(data []byte) *Result {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return failure(fmt.Sprintf("Excel processing failed: %v", err), nil)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return failure(fmt.Sprintf("read sheet %q: %v", sheet, err), nil)
		}
		if len(rows) > 0 {
			return parseGrid(rows)
		}
	}
	return failure("workbook contains no non-empty sheets", nil)
}

// ParseXls parses a legacy binary Excel workbook.
func ParseXls(data []byte) *Result {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return failure(fmt.Sprintf("XLS processing failed: %v", err), nil)
	}

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil || sheet.MaxRow == 0 {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			var cells []string
			for c := 0; c <= row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			rows = append(rows, cells)
		}
		if len(rows) > 0 {
			return parseGrid(rows)
		}
	}
	return failure("workbook contains no non-empty sheets", nil)
}
