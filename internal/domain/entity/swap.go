package entity

import (
	"time"

	"gorm.io/gorm"
)

// Swap Request Status
const (
	SwapPending  = "PENDING"
	SwapAccepted = "ACCEPTED"
	SwapDeclined = "DECLINED"
)

// SwapRequest represents a request to exchange the owners of two
// schedule slots
type SwapRequest struct {
	ID          uint
	FromSlotID  uint
	ToSlotID    uint
	RequesterID uint
	IsAnonymous bool
	Status      string
	Reason      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}

// SurveillanceAssignment represents an exam monitoring duty
type SurveillanceAssignment struct {
	ID        uint
	UserID    uint
	ModuleID  *uint
	RoomID    *uint
	ExamDate  time.Time
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

// SurveillanceSwapRequest represents a request to exchange two
// surveillance duties
type SurveillanceSwapRequest struct {
	ID               uint
	FromAssignmentID uint
	ToAssignmentID   uint
	RequesterID      uint
	IsAnonymous      bool
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt
}
