package schedule

import (
	"reflect"
	"strings"
	"testing"
)

const sampleText = `University of Science and Technology
Schedules of : Computer Science -- Section: A
College year: 2024/2025
Semester: 1
08:00-09:30 09:40-11:10 11:20-12:50
Monday
G1:354 /Algorithms -- DW, BENALI
Linear Algebra course 204 MANSOURI
Tuesday
G3:TP.B2 /Networks -- PW, SAIDI
`

func TestParseText(t *testing.T) {
	res := ParseText(sampleText)
	if !res.Success {
		t.Fatalf("ParseText failed: %s", res.Err)
	}

	doc := res.Data
	if doc.HeaderInfo.Speciality != "Computer Science" {
		t.Errorf("Speciality = %q", doc.HeaderInfo.Speciality)
	}
	if doc.HeaderInfo.AcademicYear != "2024/2025" {
		t.Errorf("AcademicYear = %q", doc.HeaderInfo.AcademicYear)
	}

	if want := []string{"08:00-09:30", "09:40-11:10", "11:20-12:50"}; !reflect.DeepEqual(doc.TimeSlots, want) {
		t.Errorf("TimeSlots = %v, want %v", doc.TimeSlots, want)
	}

	// every entry sits on the detected grid
	grid := map[string]bool{}
	for _, ts := range doc.TimeSlots {
		grid[ts] = true
	}
	for i, e := range doc.Entries {
		if e.Day == "" {
			t.Errorf("entry %d missing day", i)
		}
		if !grid[e.TimeSlot] {
			t.Errorf("entry %d time slot %q not on grid", i, e.TimeSlot)
		}
	}

	days := map[string]bool{}
	for _, e := range doc.Entries {
		days[e.Day] = true
	}
	if !days["Monday"] || !days["Tuesday"] {
		t.Errorf("days = %v, want Monday and Tuesday", days)
	}
}

func TestParseTextDeterministic(t *testing.T) {
	a := ParseText(sampleText)
	b := ParseText(sampleText)
	if !a.Success || !b.Success {
		t.Fatal("parse failed")
	}
	if !reflect.DeepEqual(a.Data, b.Data) {
		t.Error("parsing the same text twice produced different documents")
	}
}

func TestParseTextDefaultSlots(t *testing.T) {
	res := ParseText("Monday\nG1:354 /Algorithms -- DW, BENALI\n")
	if !res.Success {
		t.Fatalf("ParseText failed: %s", res.Err)
	}
	if !reflect.DeepEqual(res.Data.TimeSlots, DefaultTimeSlots) {
		t.Errorf("TimeSlots = %v, want default grid", res.Data.TimeSlots)
	}

	warned := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "default slots") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("warnings = %v, want a default-slots warning", res.Warnings)
	}
}

func TestParseTextEmpty(t *testing.T) {
	res := ParseText("   \n\n ")
	if res.Success {
		t.Fatal("empty input parsed successfully")
	}
	if res.Err == "" {
		t.Error("failure carries no message")
	}
}

func TestParseTextNoTable(t *testing.T) {
	res := ParseText("just some prose\nwith no schedule at all\n08:00-09:30")
	if res.Success {
		t.Fatal("tableless input parsed successfully")
	}
	if res.Details == nil || res.Details.ContentPreview == "" {
		t.Error("failure carries no content preview")
	}
}
