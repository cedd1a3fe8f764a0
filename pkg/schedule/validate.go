package schedule

import (
	"fmt"
	"strings"
)

// Validate applies the hard structural checks: at least one time slot, at
// least one entry, and a day plus time slot on every entry. Content may
// be empty (an available slot). Header gaps are warnings, never errors.
func Validate(doc *Document) []string {
	var errs []string
	if doc == nil {
		return []string{"no document produced"}
	}
	if len(doc.TimeSlots) == 0 {
		errs = append(errs, "no time slots found")
	}
	if len(doc.Entries) == 0 {
		errs = append(errs, "no schedule entries found")
	}
	slots := map[string]bool{}
	for _, ts := range doc.TimeSlots {
		slots[ts] = true
	}
	for i, entry := range doc.Entries {
		if entry.Day == "" {
			errs = append(errs, fmt.Sprintf("entry %d: missing day", i+1))
		}
		if entry.TimeSlot == "" {
			errs = append(errs, fmt.Sprintf("entry %d: missing time slot", i+1))
		} else if !slots[entry.TimeSlot] {
			errs = append(errs, fmt.Sprintf("entry %d: time slot %q not in grid", i+1, entry.TimeSlot))
		}
	}
	return errs
}

// FormatOutput renders one "<DAY> <timeSlot> <content>" line per entry
func FormatOutput(doc *Document) []string {
	lines := make([]string, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("%s %s %s", entry.Day, entry.TimeSlot, entry.Content)))
	}
	return lines
}

// FormatForDatabase flattens the document for persistence: days become
// weekday enums, time slots split into start/end pairs, and the first
// candidate of each extracted list becomes the authoritative value.
func FormatForDatabase(doc *Document) *FlatDocument {
	flat := &FlatDocument{
		HeaderInfo: doc.HeaderInfo,
		TimeSlots:  doc.TimeSlots,
		Entries:    make([]FlatEntry, 0, len(doc.Entries)),
	}
	for _, entry := range doc.Entries {
		start, end := ExtractTimeRange(entry.TimeSlot)
		fe := FlatEntry{
			DayOfWeek:   ConvertDayToEnum(entry.Day),
			StartTime:   start,
			EndTime:     end,
			IsAvailable: entry.IsAvailable(),
			SectionName: strings.Join(entry.Groups, ","),
			RoomType:    RoomLectureHall,
			CourseType:  entry.Type,
		}
		if len(entry.Modules) > 0 {
			fe.ModuleName = entry.Modules[0]
		}
		if len(entry.Professors) > 0 {
			fe.ProfessorName = entry.Professors[0]
		}
		if len(entry.Rooms) > 0 {
			fe.RoomNumber = entry.Rooms[0].Number
			fe.RoomType = entry.Rooms[0].Type
		}
		flat.Entries = append(flat.Entries, fe)
	}
	return flat
}
