package repository

import (
	"context"
	"time"

	"campusops-service/internal/domain/entity"
)

// ImportJobRepository defines the interface for import job storage
type ImportJobRepository interface {
	Save(ctx context.Context, job *entity.ImportJob) error
	FindByJobID(ctx context.Context, jobID string) (*entity.ImportJob, error)
	FindPending(ctx context.Context, limit int) ([]*entity.ImportJob, error)
	UpdateStatus(ctx context.Context, jobID string, status string, startedAt time.Time) error
	MarkProcessed(ctx context.Context, jobID, status, errorDetail string, summary map[string]interface{}) error
	ResetProcessingJobs(ctx context.Context) error
}
