package schedule

import (
	"reflect"
	"testing"
)

func TestSplitGroupSegments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "two groups sharing one cell",
			content: "G1:354 /Algorithms -- DW, BENALI, G2:355 /Algorithms -- DW, KHELIFI",
			want: []string{
				"G1:354 /Algorithms -- DW, BENALI",
				"G2:355 /Algorithms -- DW, KHELIFI",
			},
		},
		{
			name:    "plain content stays whole",
			content: "Linear Algebra course 204 MANSOURI",
			want:    []string{"Linear Algebra course 204 MANSOURI"},
		},
		{
			name:    "comma without group marker is not a boundary",
			content: "Algorithms -- DW, BENALI",
			want:    []string{"Algorithms -- DW, BENALI"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitGroupSegments(tt.content); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitGroupSegments(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestSplitDayContent(t *testing.T) {
	timeSlots := DefaultTimeSlots
	lines := []string{
		"G1:354 /Algorithms -- DW, BENALI",
		"Linear Algebra course 204 MANSOURI",
		"G3:TP.B2 /Networks -- PW, SAIDI",
	}

	entries := SplitDayContent("Monday", lines, timeSlots)

	// one entry per time slot column, empty columns included
	if len(entries) != len(timeSlots) {
		t.Fatalf("got %d entries, want %d", len(entries), len(timeSlots))
	}

	if entries[0].TimeSlot != "08:00-09:30" || entries[0].Type != SessionTutorial {
		t.Errorf("entries[0] = %+v, want tutorial in first slot", entries[0])
	}
	if entries[1].Type != SessionCourse {
		t.Errorf("entries[1].Type = %q, want COURSE", entries[1].Type)
	}
	if entries[2].Type != SessionLab {
		t.Errorf("entries[2].Type = %q, want LAB", entries[2].Type)
	}

	for i := 3; i < len(entries); i++ {
		if !entries[i].IsAvailable() {
			t.Errorf("entries[%d] should be available, got content %q", i, entries[i].Content)
		}
		if entries[i].Day != "Monday" || entries[i].TimeSlot != timeSlots[i] {
			t.Errorf("entries[%d] day/slot = %q/%q", i, entries[i].Day, entries[i].TimeSlot)
		}
	}
}

func TestSplitDayContentMultiGroupCell(t *testing.T) {
	entries := SplitDayContent("Tuesday",
		[]string{"G1:354 /Algorithms -- DW, BENALI, G2:355 /Algorithms -- DW, KHELIFI"},
		DefaultTimeSlots)

	// both group segments land in the same column as separate entries
	if len(entries) != len(DefaultTimeSlots)+1 {
		t.Fatalf("got %d entries, want %d", len(entries), len(DefaultTimeSlots)+1)
	}
	if entries[0].TimeSlot != entries[1].TimeSlot {
		t.Errorf("segments split across slots: %q vs %q", entries[0].TimeSlot, entries[1].TimeSlot)
	}
	if len(entries[0].Groups) != 1 || entries[0].Groups[0] != "G1" {
		t.Errorf("entries[0].Groups = %v, want [G1]", entries[0].Groups)
	}
	if len(entries[1].Groups) != 1 || entries[1].Groups[0] != "G2" {
		t.Errorf("entries[1].Groups = %v, want [G2]", entries[1].Groups)
	}
}
