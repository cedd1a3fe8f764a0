package schedule

import "testing"

func TestExtractHeader(t *testing.T) {
	lines := []string{
		"University of Science and Technology",
		"Schedules of : Computer Science -- Section: A",
		"College year: 2024/2025",
		"Semester: 1",
		"Date: 15/9/2024",
	}

	header, warnings := ExtractHeader(lines)

	if header.University != "University of Science and Technology" {
		t.Errorf("University = %q", header.University)
	}
	if header.Speciality != "Computer Science" {
		t.Errorf("Speciality = %q, want Computer Science", header.Speciality)
	}
	if header.Section != "A" {
		t.Errorf("Section = %q, want A", header.Section)
	}
	if header.AcademicYear != "2024/2025" {
		t.Errorf("AcademicYear = %q, want 2024/2025", header.AcademicYear)
	}
	if header.Semester != "1" {
		t.Errorf("Semester = %q, want 1", header.Semester)
	}
	if header.Date != "15/9/2024" {
		t.Errorf("Date = %q, want 15/9/2024", header.Date)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestExtractHeaderMissingFields(t *testing.T) {
	header, warnings := ExtractHeader([]string{"Monday", "08:00-09:30"})

	if header.University != "" || header.Speciality != "" || header.AcademicYear != "" {
		t.Errorf("header = %+v, want empty", header)
	}
	// one warning per missing field, never an error
	if len(warnings) != 6 {
		t.Errorf("got %d warnings, want 6: %v", len(warnings), warnings)
	}
}

func TestExtractHeaderFirstMatchWins(t *testing.T) {
	lines := []string{
		"College year: 2024/2025",
		"College year: 2025/2026",
	}
	header, _ := ExtractHeader(lines)
	if header.AcademicYear != "2024/2025" {
		t.Errorf("AcademicYear = %q, want first match 2024/2025", header.AcademicYear)
	}
}
