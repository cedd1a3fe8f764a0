package repository

import (
	"context"
	"time"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormSurveillanceRepository implements the SurveillanceRepository
// interface
type GormSurveillanceRepository struct {
	db *gorm.DB
}

// NewGormSurveillanceRepository creates a new GORM surveillance repository
func NewGormSurveillanceRepository(db *gorm.DB) repository.SurveillanceRepository {
	return &GormSurveillanceRepository{
		db: db,
	}
}

// SurveillanceAssignments GORM model for database mapping
type SurveillanceAssignments struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"column:user_id;index"`
	ModuleID  *uint          `gorm:"column:module_id"`
	RoomID    *uint          `gorm:"column:room_id"`
	ExamDate  time.Time      `gorm:"column:exam_date"`
	StartTime string         `gorm:"column:start_time"`
	EndTime   string         `gorm:"column:end_time"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (SurveillanceAssignments) TableName() string {
	return "surveillance_assignments"
}

// SurveillanceSwapRequests GORM model for database mapping
type SurveillanceSwapRequests struct {
	ID               uint           `gorm:"primaryKey"`
	FromAssignmentID uint           `gorm:"column:from_assignment_id"`
	ToAssignmentID   uint           `gorm:"column:to_assignment_id"`
	RequesterID      uint           `gorm:"column:requester_id"`
	IsAnonymous      bool           `gorm:"column:is_anonymous"`
	Status           string         `gorm:"column:status;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (SurveillanceSwapRequests) TableName() string {
	return "surveillance_swap_requests"
}

// SaveAssignment stores a new surveillance duty
func (r *GormSurveillanceRepository) SaveAssignment(ctx context.Context, a *entity.SurveillanceAssignment) error {
	row := SurveillanceAssignments{
		UserID:    a.UserID,
		ModuleID:  a.ModuleID,
		RoomID:    a.RoomID,
		ExamDate:  a.ExamDate,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	a.ID = row.ID
	return nil
}

// FindAssignmentByID loads a duty by its primary key
func (r *GormSurveillanceRepository) FindAssignmentByID(ctx context.Context, id uint) (*entity.SurveillanceAssignment, error) {
	var row SurveillanceAssignments
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return assignmentEntity(&row), nil
}

// FindAssignmentsForUser lists the duties of one professor, soonest
// exam first
func (r *GormSurveillanceRepository) FindAssignmentsForUser(ctx context.Context, userID uint) ([]*entity.SurveillanceAssignment, error) {
	var rows []SurveillanceAssignments
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("exam_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*entity.SurveillanceAssignment, 0, len(rows))
	for i := range rows {
		assignments = append(assignments, assignmentEntity(&rows[i]))
	}
	return assignments, nil
}

// UpdateAssignmentUser reassigns a duty to another professor
func (r *GormSurveillanceRepository) UpdateAssignmentUser(ctx context.Context, assignmentID, userID uint) error {
	result := r.db.WithContext(ctx).
		Model(&SurveillanceAssignments{}).
		Where("id = ?", assignmentID).
		Update("user_id", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveSwap stores a new surveillance swap request
func (r *GormSurveillanceRepository) SaveSwap(ctx context.Context, req *entity.SurveillanceSwapRequest) error {
	row := SurveillanceSwapRequests{
		FromAssignmentID: req.FromAssignmentID,
		ToAssignmentID:   req.ToAssignmentID,
		RequesterID:      req.RequesterID,
		IsAnonymous:      req.IsAnonymous,
		Status:           req.Status,
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

// FindSwapByID loads a surveillance swap request by its primary key
func (r *GormSurveillanceRepository) FindSwapByID(ctx context.Context, id uint) (*entity.SurveillanceSwapRequest, error) {
	var row SurveillanceSwapRequests
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &entity.SurveillanceSwapRequest{
		ID:               row.ID,
		FromAssignmentID: row.FromAssignmentID,
		ToAssignmentID:   row.ToAssignmentID,
		RequesterID:      row.RequesterID,
		IsAnonymous:      row.IsAnonymous,
		Status:           row.Status,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

// UpdateSwapStatus moves a surveillance swap request to a terminal
// status
func (r *GormSurveillanceRepository) UpdateSwapStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&SurveillanceSwapRequests{}).
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

// InTransaction runs fn against a repository bound to one transaction
func (r *GormSurveillanceRepository) InTransaction(ctx context.Context, fn func(repo repository.SurveillanceRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormSurveillanceRepository{db: tx})
	})
}

func assignmentEntity(row *SurveillanceAssignments) *entity.SurveillanceAssignment {
	return &entity.SurveillanceAssignment{
		ID:        row.ID,
		UserID:    row.UserID,
		ModuleID:  row.ModuleID,
		RoomID:    row.RoomID,
		ExamDate:  row.ExamDate,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
