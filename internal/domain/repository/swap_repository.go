package repository

import (
	"context"

	"campusops-service/internal/domain/entity"
)

// SwapRepository defines the interface for slot swap requests
type SwapRepository interface {
	Save(ctx context.Context, req *entity.SwapRequest) error
	FindByID(ctx context.Context, id uint) (*entity.SwapRequest, error)
	FindPendingForSlotOwner(ctx context.Context, ownerID uint) ([]*entity.SwapRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// SurveillanceRepository defines the interface for surveillance duties
// and their swap requests
type SurveillanceRepository interface {
	SaveAssignment(ctx context.Context, a *entity.SurveillanceAssignment) error
	FindAssignmentByID(ctx context.Context, id uint) (*entity.SurveillanceAssignment, error)
	FindAssignmentsForUser(ctx context.Context, userID uint) ([]*entity.SurveillanceAssignment, error)
	UpdateAssignmentUser(ctx context.Context, assignmentID, userID uint) error
	SaveSwap(ctx context.Context, req *entity.SurveillanceSwapRequest) error
	FindSwapByID(ctx context.Context, id uint) (*entity.SurveillanceSwapRequest, error)
	UpdateSwapStatus(ctx context.Context, id uint, status string) error
	InTransaction(ctx context.Context, fn func(repo SurveillanceRepository) error) error
}
