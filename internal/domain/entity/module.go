package entity

import (
	"time"

	"gorm.io/gorm"
)

// Module represents a taught course module, unique per academic year
type Module struct {
	ID           uint
	Code         string
	Name         string
	AcademicYear string
	Semester     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
}
