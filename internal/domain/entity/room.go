package entity

import (
	"time"

	"gorm.io/gorm"
)

// Room represents a teaching room
type Room struct {
	ID        uint
	Name      string
	Type      string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
