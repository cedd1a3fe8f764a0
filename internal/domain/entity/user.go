package entity

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleProfessor = "PROFESSOR"
	RoleAdmin     = "ADMIN"
)

// User represents a platform account
type User struct {
	ID        uint
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
