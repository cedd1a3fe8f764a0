package schedule

// SessionType is the pedagogical format of a scheduled session
type SessionType string

const (
	SessionCourse   SessionType = "COURSE"
	SessionTutorial SessionType = "TUTORIAL"
	SessionLab      SessionType = "LAB"
)

// RoomType classifies a teaching room
type RoomType string

const (
	RoomLectureHall RoomType = "LECTURE_HALL"
	RoomTD          RoomType = "TD_ROOM"
	RoomTP          RoomType = "TP_ROOM"
)

// Weekday is a canonical day-of-week value suitable for persistence
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// Room is a room reference extracted from a schedule cell
type Room struct {
	Number string
	Type   RoomType
}

// HeaderInfo carries the document header fields; all are optional
type HeaderInfo struct {
	University   string
	Speciality   string
	Section      string
	AcademicYear string
	Semester     string
	Date         string
}

// Entry is one parsed schedule cell segment. An empty Content means the
// slot is free; in that case all the extracted lists stay empty.
type Entry struct {
	Day        string
	TimeSlot   string
	Content    string
	Type       SessionType
	Modules    []string
	Professors []string
	Groups     []string
	Rooms      []Room
}

// IsAvailable reports whether the slot carries no session
func (e Entry) IsAvailable() bool {
	return e.Content == ""
}

// Document is the normalized parse product for one schedule file
type Document struct {
	HeaderInfo HeaderInfo
	TimeSlots  []string
	Entries    []Entry
}

// FlatEntry is a database-ready entry: day and time canonicalized, the
// candidate lists flattened to single authoritative values.
type FlatEntry struct {
	DayOfWeek     Weekday
	StartTime     string
	EndTime       string
	IsAvailable   bool
	ModuleName    string
	ProfessorName string
	SectionName   string
	RoomNumber    string
	RoomType      RoomType
	CourseType    SessionType
}

// FlatDocument is the database-ready projection of a Document
type FlatDocument struct {
	HeaderInfo HeaderInfo
	TimeSlots  []string
	Entries    []FlatEntry
}

// FailureDetails carries diagnostic context for a failed parse
type FailureDetails struct {
	ContainsImages bool
	ImageCount     int
	LineCount      int
	RowCount       int
	ContentPreview string
	Suggestions    []string
}

// Result is the outcome of one parse call. Exactly one of the two shapes
// is populated: Success carries Data/FormattedOutput/DatabaseReady,
// failure carries Err and optional Details.
type Result struct {
	Success         bool
	Data            *Document
	FormattedOutput []string
	DatabaseReady   *FlatDocument
	Warnings        []string
	Err             string
	Details         *FailureDetails
}

func failure(msg string, details *FailureDetails) *Result {
	return &Result{Success: false, Err: msg, Details: details}
}
