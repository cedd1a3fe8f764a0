package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/domain/repository"
	"campusops-service/pkg/logger"
	"campusops-service/pkg/metrics"
	"campusops-service/pkg/schedule"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".docx": true,
	".xlsx": true,
	".xls":  true,
	".pdf":  true,
}

// ImportProcessor manages schedule import jobs from admission to
// completion
type ImportProcessor struct {
	jobs      repository.ImportJobRepository
	router    FormatRouter
	projector *ScheduleProjector
	logger    logger.Logger
	metrics   *metrics.Metrics
	uploadDir string
	maxBytes  int64
}

// NewImportProcessor creates a new import processor
func NewImportProcessor(
	jobs repository.ImportJobRepository,
	router FormatRouter,
	projector *ScheduleProjector,
	logger logger.Logger,
	metrics *metrics.Metrics,
	uploadDir string,
	maxBytes int64,
) *ImportProcessor {
	return &ImportProcessor{
		jobs:      jobs,
		router:    router,
		projector: projector,
		logger:    logger,
		metrics:   metrics,
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
	}
}

// Submit validates an uploaded document and enqueues it as a pending
// import job
func (p *ImportProcessor) Submit(ctx context.Context, filename string, payload []byte, opts entity.ImportOptions) (*entity.ImportJob, error) {
	if int64(len(payload)) > p.maxBytes {
		return nil, fmt.Errorf("file exceeds size limit of %d bytes", p.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}
	format, _ := schedule.FormatFromFilename(filename)

	job := &entity.ImportJob{
		JobID:      uuid.New().String(),
		Filename:   filename,
		Format:     string(format),
		Payload:    payload,
		Options:    opts,
		Status:     entity.StatusPending,
		ReceivedAt: time.Now(),
	}

	if err := p.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save import job: %w", err)
	}

	p.logger.Info("Import job queued",
		"jobID", job.JobID,
		"filename", filename,
		"format", job.Format)
	return job, nil
}

// ProcessJob processes a single import job
func (p *ImportProcessor) ProcessJob(ctx context.Context, job *entity.ImportJob) error {
	handler := p.router.GetHandler(job.Format)
	if handler == nil {
		p.logger.Debug("No handler found for job",
			"jobID", job.JobID,
			"format", job.Format)

		// Not an error, just no handler for this format
		return p.jobs.MarkProcessed(
			ctx,
			job.JobID,
			entity.StatusSkipped,
			"No matching format handler found",
			map[string]interface{}{
				"format": job.Format,
				"reason": "no_matching_handler",
			},
		)
	}

	handlerType := fmt.Sprintf("%T", handler)
	p.logger.Info("Processing import job",
		"jobID", job.JobID,
		"handler", handlerType,
		"filename", job.Filename)

	if err := p.jobs.UpdateStatus(ctx, job.JobID, entity.StatusProcessing, time.Now()); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	start := time.Now()

	path, err := p.writeTempFile(job)
	if err != nil {
		p.metrics.ErrorsCount.WithLabelValues("temp_file").Inc()
		if markErr := p.jobs.MarkProcessed(ctx, job.JobID, entity.StatusFailed, err.Error(), nil); markErr != nil {
			p.logger.Error("Failed to mark job as failed",
				"jobID", job.JobID,
				"error", markErr)
		}
		return nil
	}
	defer os.Remove(path)

	res := handler.Parse(ctx, path, schedule.Options{
		IgnoreImages:   job.Options.IgnoreImages,
		SpecialityName: job.Options.SpecialityName,
		AcademicYear:   job.Options.AcademicYear,
		Semester:       job.Options.Semester,
		SectionName:    job.Options.SectionName,
	})

	p.metrics.DocumentsParsed.Inc()
	p.metrics.ProcessingTime.Observe(time.Since(start).Seconds())

	if !res.Success {
		p.logger.Error("Handler failed to parse document",
			"jobID", job.JobID,
			"handler", handlerType,
			"error", res.Err)
		p.metrics.ErrorsCount.WithLabelValues("parse").Inc()

		summary := map[string]interface{}{}
		if res.Details != nil {
			summary["containsImages"] = res.Details.ContainsImages
			summary["imageCount"] = res.Details.ImageCount
			if len(res.Details.Suggestions) > 0 {
				summary["suggestions"] = res.Details.Suggestions
			}
		}

		// Mark as failed but don't return error - let other jobs continue
		if markErr := p.jobs.MarkProcessed(ctx, job.JobID, entity.StatusFailed, res.Err, summary); markErr != nil {
			p.logger.Error("Failed to mark job as failed",
				"jobID", job.JobID,
				"error", markErr)
		}
		return nil
	}

	summary := map[string]interface{}{
		"entries":   len(res.Data.Entries),
		"timeSlots": len(res.Data.TimeSlots),
	}
	if len(res.Warnings) > 0 {
		summary["warnings"] = res.Warnings
	}

	if job.Options.SaveToDatabase {
		projection, err := p.projector.Project(ctx, res.DatabaseReady)
		if err != nil {
			p.logger.Error("Failed to project schedule",
				"jobID", job.JobID,
				"error", err)
			if markErr := p.jobs.MarkProcessed(ctx, job.JobID, entity.StatusFailed, err.Error(), summary); markErr != nil {
				p.logger.Error("Failed to mark job as failed",
					"jobID", job.JobID,
					"error", markErr)
			}
			return nil
		}
		for k, v := range projection {
			summary[k] = v
		}
	}

	p.logger.Info("Import job processed successfully",
		"jobID", job.JobID,
		"handler", handlerType)

	return p.jobs.MarkProcessed(ctx, job.JobID, entity.StatusCompleted, "", summary)
}

// ProcessPendingJobs processes any jobs that were missed or failed over
func (p *ImportProcessor) ProcessPendingJobs(ctx context.Context) error {
	// Reset stale processing jobs
	if err := p.jobs.ResetProcessingJobs(ctx); err != nil {
		p.logger.Error("Failed to reset stale jobs", "error", err)
	}

	jobs, err := p.jobs.FindPending(ctx, 100)
	if err != nil {
		return fmt.Errorf("failed to find pending jobs: %w", err)
	}

	if len(jobs) == 0 {
		return nil
	}

	p.logger.Info("Processing pending import jobs", "count", len(jobs))

	for _, job := range jobs {
		if err := p.ProcessJob(ctx, job); err != nil {
			p.logger.Error("Failed to process pending job",
				"jobID", job.JobID,
				"error", err)
		}
	}

	return nil
}

// writeTempFile stages the job payload on disk for the handler,
// keeping the original extension so format detection by suffix works
func (p *ImportProcessor) writeTempFile(job *entity.ImportJob) (string, error) {
	f, err := os.CreateTemp(p.uploadDir, "import-*"+strings.ToLower(filepath.Ext(job.Filename)))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(job.Payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return f.Name(), nil
}
