package entity

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleSlot represents one weekly session of a module for a section.
// The (ModuleID, SectionID, DayOfWeek, StartTime) tuple identifies the
// slot across re-imports.
type ScheduleSlot struct {
	ID          uint
	ModuleID    uint
	SectionID   uint
	OwnerID     *uint
	RoomID      *uint
	DayOfWeek   string
	StartTime   string
	EndTime     string
	CourseType  string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}
