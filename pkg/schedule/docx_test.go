package schedule

import (
	"archive/zip"
	"bytes"
	"reflect"
	"testing"
)

func makeDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func cell(text string) string {
	return "<w:tc><w:p><w:r><w:t>" + text + "</w:t></w:r></w:p></w:tc>"
}

const docxHeader = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
const docxFooter = `</w:body></w:document>`

func TestParseDocxTable(t *testing.T) {
	xml := docxHeader +
		`<w:p><w:r><w:t>College year: 2024/2025</w:t></w:r></w:p>` +
		`<w:tbl>` +
		`<w:tr>` + cell("Time") + cell("08:00-09:30") + cell("09:40-11:10") + `</w:tr>` +
		`<w:tr>` + cell("Monday") + cell("G1:354 /Algorithms -- DW, BENALI") + cell("") + `</w:tr>` +
		`<w:tr>` + cell("Tuesday") + cell("") + cell("Linear Algebra course 204 MANSOURI") + `</w:tr>` +
		`</w:tbl>` +
		docxFooter

	res := ParseDocx(makeDocx(t, xml), false)
	if !res.Success {
		t.Fatalf("ParseDocx failed: %s", res.Err)
	}

	doc := res.Data
	if doc.HeaderInfo.AcademicYear != "2024/2025" {
		t.Errorf("AcademicYear = %q, want 2024/2025", doc.HeaderInfo.AcademicYear)
	}
	if want := []string{"08:00-09:30", "09:40-11:10"}; !reflect.DeepEqual(doc.TimeSlots, want) {
		t.Errorf("TimeSlots = %v, want %v", doc.TimeSlots, want)
	}
	if len(doc.Entries) != 4 {
		t.Fatalf("got %d entries, want 4: %+v", len(doc.Entries), doc.Entries)
	}

	first := doc.Entries[0]
	if first.Day != "Monday" || first.Type != SessionTutorial {
		t.Errorf("first entry = %+v", first)
	}
	if len(first.Professors) != 1 || first.Professors[0] != "BENALI" {
		t.Errorf("Professors = %v, want [BENALI]", first.Professors)
	}
	if !doc.Entries[1].IsAvailable() {
		t.Error("Monday second slot should be available")
	}
}

func TestParseDocxImageOnly(t *testing.T) {
	xml := docxHeader +
		`<w:p><w:r><w:drawing></w:drawing></w:r></w:p>` +
		docxFooter
	data := makeDocx(t, xml)

	res := ParseDocx(data, false)
	if res.Success {
		t.Fatal("image-only document parsed successfully")
	}
	if res.Details == nil || !res.Details.ContainsImages {
		t.Fatalf("Details = %+v, want ContainsImages", res.Details)
	}
	if res.Details.ImageCount != 1 {
		t.Errorf("ImageCount = %d, want 1", res.Details.ImageCount)
	}
	if len(res.Details.Suggestions) == 0 {
		t.Error("no suggestions on image-only failure")
	}

	// ignoreImages falls through to the text pipeline instead
	res = ParseDocx(data, true)
	if res.Success {
		t.Fatal("image-only document has no text to fall back to")
	}
	if res.Details != nil && res.Details.ContainsImages {
		t.Error("ignoreImages still reported the image outcome")
	}
}

func TestParseDocxNoTables(t *testing.T) {
	xml := docxHeader +
		`<w:p><w:r><w:t>just a paragraph</w:t></w:r></w:p>` +
		docxFooter

	res := ParseDocx(makeDocx(t, xml), false)
	if res.Success {
		t.Fatal("tableless document parsed successfully")
	}
}

func TestParseDocxNotAnArchive(t *testing.T) {
	if res := ParseDocx([]byte("not a zip"), false); res.Success {
		t.Fatal("garbage bytes parsed successfully")
	}
}

func TestScoreScheduleTable(t *testing.T) {
	scheduleTable := [][]string{
		{"Time", "08:00-09:30"},
		{"Monday", "Algorithms"},
		{"Tuesday", ""},
	}
	plainTable := [][]string{
		{"Name", "Value"},
		{"foo", "bar"},
	}

	if s, p := scoreScheduleTable(scheduleTable), scoreScheduleTable(plainTable); s <= p {
		t.Errorf("schedule table scored %d, plain table %d", s, p)
	}
	if scoreScheduleTable([][]string{{"only one row"}}) != 0 {
		t.Error("single-row table should score zero")
	}

	best, score := findScheduleTable([][][]string{plainTable, scheduleTable})
	if score == 0 || !reflect.DeepEqual(best, scheduleTable) {
		t.Errorf("findScheduleTable picked %v (score %d)", best, score)
	}
}
