package schedule

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxContent is what the Word adapter pulls out of word/document.xml:
// the tables cell by cell, the loose body text, and how many embedded
// drawings were seen.
type docxContent struct {
	tables     [][][]string
	bodyText   string
	imageCount int
}

// extractDocx opens the DOCX zip archive and walks word/document.xml
func extractDocx(data []byte) (*docxContent, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open document.xml: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, fmt.Errorf("read document.xml: %w", err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return nil, fmt.Errorf("document.xml not found in archive")
	}

	dec := xml.NewDecoder(bytes.NewReader(docXML))
	content := &docxContent{}
	var (
		tblDepth int
		curTable [][]string
		curRow   []string
		cellBuf  strings.Builder
		bodyBuf  strings.Builder
		inCell   bool
		inText   bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
				if tblDepth == 1 {
					curTable = nil
				}
			case "tr":
				if tblDepth == 1 {
					curRow = nil
				}
			case "tc":
				if tblDepth == 1 {
					inCell = true
					cellBuf.Reset()
				}
			case "t":
				inText = true
			case "drawing", "pict":
				content.imageCount++
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tblDepth == 1 && len(curTable) > 0 {
					content.tables = append(content.tables, curTable)
				}
				tblDepth--
			case "tr":
				if tblDepth == 1 {
					curTable = append(curTable, curRow)
				}
			case "tc":
				if tblDepth == 1 {
					curRow = append(curRow, strings.TrimSpace(cellBuf.String()))
					inCell = false
				}
			case "t":
				inText = false
			case "p":
				if inCell {
					cellBuf.WriteString("\n")
				} else if tblDepth == 0 {
					bodyBuf.WriteString("\n")
				}
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if inCell {
				cellBuf.Write(t)
			} else if tblDepth == 0 {
				bodyBuf.Write(t)
			}
		}
	}

	content.bodyText = bodyBuf.String()
	return content, nil
}

// scoreScheduleTable rates how likely a table is to be the schedule
// grid: a time-like header row weighs most, then every data row whose
// first cell is a day name, then a capped size bonus.
func scoreScheduleTable(table [][]string) int {
	if len(table) < 2 {
		return 0
	}
	score := 0

	firstRow := strings.ToLower(strings.Join(table[0], " "))
	if strings.Contains(firstRow, "time") || len(ExtractTimeSlots(firstRow)) > 0 {
		score += 10
	}

	for _, row := range table[1:] {
		if len(row) > 0 && dayPrefixRe.MatchString(strings.TrimSpace(row[0])) {
			score += 5
		}
	}

	score += capInt(len(table)*2, 20)
	score += capInt(len(table[0])*3, 15)
	return score
}

func capInt(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

// findScheduleTable picks the highest-scoring table
func findScheduleTable(tables [][][]string) ([][]string, int) {
	var best [][]string
	bestScore := 0
	for _, table := range tables {
		if score := scoreScheduleTable(table); score > bestScore {
			bestScore = score
			best = table
		}
	}
	return best, bestScore
}

// ParseDocx parses a Word document. Documents whose only content is
// embedded images are reported as a distinguished not-parseable outcome
// unless ignoreImages forces a heuristic text parse of whatever body
// text exists.
func ParseDocx(data []byte, ignoreImages bool) *Result {
	content, err := extractDocx(data)
	if err != nil {
		return failure(fmt.Sprintf("DOCX processing failed: %v", err), nil)
	}

	if content.imageCount > 0 && len(content.tables) == 0 {
		if !ignoreImages {
			return failure("document contains images instead of text tables", &FailureDetails{
				ContainsImages: true,
				ImageCount:     content.imageCount,
				Suggestions: []string{
					"Convert images to text-based tables in Word",
					"Use OCR software to extract text from images",
					"Manually recreate the schedule in text format",
				},
			})
		}
		return ParseText(content.bodyText)
	}

	if len(content.tables) == 0 {
		return failure("no tables found in document", &FailureDetails{
			ContentPreview: preview(NormalizeText(content.bodyText)),
		})
	}

	table, score := findScheduleTable(content.tables)
	if score == 0 {
		return failure("no valid schedule table found", nil)
	}

	header, warnings := ExtractHeader(NormalizeText(content.bodyText))

	doc := &Document{HeaderInfo: header}
	for _, cell := range table[0][1:] {
		if slots := ExtractTimeSlots(cell); len(slots) > 0 {
			doc.TimeSlots = append(doc.TimeSlots, slots[0])
		} else if trimmed := strings.TrimSpace(cell); trimmed != "" {
			doc.TimeSlots = append(doc.TimeSlots, trimmed)
		}
	}
	if len(doc.TimeSlots) == 0 {
		doc.TimeSlots = DefaultTimeSlots
		warnings = append(warnings, "no time slots in table header, using default slots")
	}

	for _, row := range table[1:] {
		if len(row) == 0 {
			continue
		}
		m := dayPrefixRe.FindStringSubmatch(strings.TrimSpace(row[0]))
		if m == nil {
			continue
		}
		day := NormalizeDayName(m[1])

		for col, cell := range row[1:] {
			if col >= len(doc.TimeSlots) {
				break
			}
			timeSlot := doc.TimeSlots[col]
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

	if errs := Validate(doc); len(errs) > 0 {
		return failure(fmt.Sprintf("invalid schedule data: %v", errs), &FailureDetails{
			RowCount: len(table),
		})
	}

	return &Result{Success: true, Data: doc, Warnings: warnings}
}
