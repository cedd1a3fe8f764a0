package repository

import (
	"context"
	"time"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormSwapRepository implements the SwapRepository interface
type GormSwapRepository struct {
	db *gorm.DB
}

// NewGormSwapRepository creates a new GORM swap repository
func NewGormSwapRepository(db *gorm.DB) repository.SwapRepository {
	return &GormSwapRepository{
		db: db,
	}
}

// SwapRequests GORM model for database mapping
type SwapRequests struct {
	ID          uint           `gorm:"primaryKey"`
	FromSlotID  uint           `gorm:"column:from_slot_id"`
	ToSlotID    uint           `gorm:"column:to_slot_id"`
	RequesterID uint           `gorm:"column:requester_id"`
	IsAnonymous bool           `gorm:"column:is_anonymous"`
	Status      string         `gorm:"column:status;index"`
	Reason      string         `gorm:"column:reason"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (SwapRequests) TableName() string {
	return "swap_requests"
}

// Save stores a new swap request
func (r *GormSwapRepository) Save(ctx context.Context, req *entity.SwapRequest) error {
	row := SwapRequests{
		FromSlotID:  req.FromSlotID,
		ToSlotID:    req.ToSlotID,
		RequesterID: req.RequesterID,
		IsAnonymous: req.IsAnonymous,
		Status:      req.Status,
		Reason:      req.Reason,
	}
	if row.Status == "" {
		row.Status = entity.SwapPending
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	req.ID = row.ID
	req.Status = row.Status
	return nil
}

// FindByID loads a swap request by its primary key
func (r *GormSwapRepository) FindByID(ctx context.Context, id uint) (*entity.SwapRequest, error) {
	var row SwapRequests
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return swapEntity(&row), nil
}

// FindPendingForSlotOwner lists pending requests whose target slot is
// owned by the given professor
func (r *GormSwapRepository) FindPendingForSlotOwner(ctx context.Context, ownerID uint) ([]*entity.SwapRequest, error) {
	var rows []SwapRequests
	err := r.db.WithContext(ctx).
		Joins("JOIN schedule_slots ON schedule_slots.id = swap_requests.to_slot_id").
		Where("swap_requests.status = ? AND schedule_slots.owner_id = ?", entity.SwapPending, ownerID).
		Order("swap_requests.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*entity.SwapRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, swapEntity(&rows[i]))
	}
	return requests, nil
}

// UpdateStatus moves a request to a terminal status
func (r *GormSwapRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&SwapRequests{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func swapEntity(row *SwapRequests) *entity.SwapRequest {
	return &entity.SwapRequest{
		ID:          row.ID,
		FromSlotID:  row.FromSlotID,
		ToSlotID:    row.ToSlotID,
		RequesterID: row.RequesterID,
		IsAnonymous: row.IsAnonymous,
		Status:      row.Status,
		Reason:      row.Reason,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
