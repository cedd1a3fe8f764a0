package entity

import (
	"time"

	"gorm.io/gorm"
)

// Section represents a student group taking a module
type Section struct {
	ID           uint
	Name         string
	ModuleID     uint
	AcademicYear string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
}
