package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/usecase"
	"campusops-service/pkg/logger"
	"campusops-service/pkg/metrics"
)

type memJobRepo struct {
	jobs map[string]*entity.ImportJob
}

func (r *memJobRepo) Save(ctx context.Context, job *entity.ImportJob) error {
	r.jobs[job.JobID] = job
	return nil
}

func (r *memJobRepo) FindByJobID(ctx context.Context, jobID string) (*entity.ImportJob, error) {
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %s not found", jobID)
	}
	return job, nil
}

func (r *memJobRepo) FindPending(ctx context.Context, limit int) ([]*entity.ImportJob, error) {
	return nil, nil
}

func (r *memJobRepo) UpdateStatus(ctx context.Context, jobID string, status string, startedAt time.Time) error {
	return nil
}

func (r *memJobRepo) MarkProcessed(ctx context.Context, jobID, status, errorDetail string, summary map[string]interface{}) error {
	return nil
}

func (r *memJobRepo) ResetProcessingJobs(ctx context.Context) error { return nil }

func TestSweep(t *testing.T) {
	repo := &memJobRepo{jobs: map[string]*entity.ImportJob{}}
	log := logger.NewNop()
	m := metrics.NewMetrics("campusops_ingest_test")
	processor := usecase.NewImportProcessor(repo, nil, nil, log, m, t.TempDir(), 1024)

	inbox := t.TempDir()
	if err := os.WriteFile(filepath.Join(inbox, "monday.txt"), []byte("Monday"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inbox, "malware.exe"), []byte("MZ"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewInboxWatcher(processor, log, inbox, time.Second, entity.ImportOptions{})
	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(repo.jobs) != 1 {
		t.Fatalf("got %d queued jobs, want 1", len(repo.jobs))
	}
	for _, job := range repo.jobs {
		if job.Filename != "monday.txt" {
			t.Errorf("queued %q, want monday.txt", job.Filename)
		}
	}

	if _, err := os.Stat(filepath.Join(inbox, "monday.txt")); !os.IsNotExist(err) {
		t.Error("consumed file left in inbox")
	}
	if _, err := os.Stat(filepath.Join(inbox, "rejected", "malware.exe")); err != nil {
		t.Errorf("rejected file not set aside: %v", err)
	}
}

func TestSweepIgnoresSubdirectories(t *testing.T) {
	repo := &memJobRepo{jobs: map[string]*entity.ImportJob{}}
	log := logger.NewNop()
	m := metrics.NewMetrics("campusops_ingest_sub_test")
	processor := usecase.NewImportProcessor(repo, nil, nil, log, m, t.TempDir(), 1024)

	inbox := t.TempDir()
	if err := os.MkdirAll(filepath.Join(inbox, "rejected"), 0o755); err != nil {
		t.Fatal(err)
	}

	w := NewInboxWatcher(processor, log, inbox, time.Second, entity.ImportOptions{})
	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Errorf("got %d queued jobs, want 0", len(repo.jobs))
	}
}
