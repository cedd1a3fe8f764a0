package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"campusops-service/internal/domain/entity"
	"campusops-service/pkg/schedule"
)

type fakeJobRepo struct {
	jobs map[string]*entity.ImportJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.ImportJob{}}
}

func (r *fakeJobRepo) Save(ctx context.Context, job *entity.ImportJob) error {
	if _, ok := r.jobs[job.JobID]; ok {
		return fmt.Errorf("duplicate job id %s", job.JobID)
	}
	r.jobs[job.JobID] = job
	return nil
}

func (r *fakeJobRepo) FindByJobID(ctx context.Context, jobID string) (*entity.ImportJob, error) {
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %s not found", jobID)
	}
	return job, nil
}

func (r *fakeJobRepo) FindPending(ctx context.Context, limit int) ([]*entity.ImportJob, error) {
	var pending []*entity.ImportJob
	for _, job := range r.jobs {
		if job.Status == entity.StatusPending || job.Status == "" {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (r *fakeJobRepo) UpdateStatus(ctx context.Context, jobID string, status string, startedAt time.Time) error {
	job, err := r.FindByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	job.Status = status
	job.StartedAt = startedAt
	return nil
}

func (r *fakeJobRepo) MarkProcessed(ctx context.Context, jobID, status, errorDetail string, summary map[string]interface{}) error {
	job, err := r.FindByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	job.Status = status
	job.ErrorDetail = errorDetail
	job.Summary = summary
	job.ProcessedAt = time.Now()
	return nil
}

func (r *fakeJobRepo) ResetProcessingJobs(ctx context.Context) error {
	for _, job := range r.jobs {
		if job.Status == entity.StatusProcessing {
			job.Status = entity.StatusPending
		}
	}
	return nil
}

// textOnlyRouter routes every text job to the real text pipeline
type textOnlyRouter struct {
	handler FormatHandler
}

func (r *textOnlyRouter) Register(handler FormatHandler) { r.handler = handler }

func (r *textOnlyRouter) GetHandler(format string) FormatHandler {
	if r.handler != nil && r.handler.CanHandle(format) {
		return r.handler
	}
	return nil
}

type textHandler struct{}

func (textHandler) CanHandle(format string) bool { return format == string(schedule.FormatText) }

func (textHandler) Parse(ctx context.Context, path string, opts schedule.Options) *schedule.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return &schedule.Result{Err: err.Error()}
	}
	return schedule.Finalize(schedule.ParseText(string(data)), opts)
}

const sampleSchedule = `08:00-09:30 09:40-11:10
Monday
G1:354 /Algorithms -- DW, BENALI
`

func newTestProcessor(t *testing.T, repo *fakeJobRepo, store *fakeStore) *ImportProcessor {
	t.Helper()
	router := &textOnlyRouter{}
	router.Register(textHandler{})
	projector := NewScheduleProjector(store, testLogger, testMetrics)
	return NewImportProcessor(repo, router, projector, testLogger, testMetrics, t.TempDir(), 1024)
}

func TestSubmit(t *testing.T) {
	repo := newFakeJobRepo()
	p := newTestProcessor(t, repo, newFakeStore())

	job, err := p.Submit(context.Background(), "schedule.txt", []byte(sampleSchedule), entity.ImportOptions{})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if job.JobID == "" || job.Status != entity.StatusPending {
		t.Errorf("job = %+v", job)
	}
	if job.Format != string(schedule.FormatText) {
		t.Errorf("Format = %q, want text", job.Format)
	}

	if _, err := p.Submit(context.Background(), "schedule.exe", []byte("x"), entity.ImportOptions{}); err == nil {
		t.Error("disallowed extension accepted")
	}
	if _, err := p.Submit(context.Background(), "big.txt", make([]byte, 2048), entity.ImportOptions{}); err == nil {
		t.Error("oversized payload accepted")
	}
}

func TestProcessJobCompletes(t *testing.T) {
	repo := newFakeJobRepo()
	store := newFakeStore()
	p := newTestProcessor(t, repo, store)

	job, err := p.Submit(context.Background(), "schedule.txt", []byte(sampleSchedule), entity.ImportOptions{SaveToDatabase: true})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := p.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob failed: %v", err)
	}

	stored, _ := repo.FindByJobID(context.Background(), job.JobID)
	if stored.Status != entity.StatusCompleted {
		t.Fatalf("status = %q (%s), want COMPLETED", stored.Status, stored.ErrorDetail)
	}
	if stored.Summary["slotsProjected"] != 1 {
		t.Errorf("summary = %v, want one projected slot", stored.Summary)
	}
	if len(store.slots) != 1 {
		t.Errorf("got %d slots in store, want 1", len(store.slots))
	}
}

func TestProcessJobFailsOnGarbage(t *testing.T) {
	repo := newFakeJobRepo()
	p := newTestProcessor(t, repo, newFakeStore())

	job, err := p.Submit(context.Background(), "junk.txt", []byte("no schedule in here"), entity.ImportOptions{})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := p.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob returned error: %v", err)
	}

	stored, _ := repo.FindByJobID(context.Background(), job.JobID)
	if stored.Status != entity.StatusFailed {
		t.Errorf("status = %q, want FAILED", stored.Status)
	}
	if stored.ErrorDetail == "" {
		t.Error("failed job carries no error detail")
	}
}

type failingMarkRepo struct {
	*fakeJobRepo
	markErr error
}

func (r *failingMarkRepo) MarkProcessed(ctx context.Context, jobID, status, errorDetail string, summary map[string]interface{}) error {
	return r.markErr
}

func TestProcessJobSurvivesMarkFailure(t *testing.T) {
	repo := &failingMarkRepo{fakeJobRepo: newFakeJobRepo(), markErr: fmt.Errorf("mongo down")}
	router := &textOnlyRouter{}
	router.Register(textHandler{})
	projector := NewScheduleProjector(newFakeStore(), testLogger, testMetrics)
	p := NewImportProcessor(repo, router, projector, testLogger, testMetrics, t.TempDir(), 1024)

	job, err := p.Submit(context.Background(), "junk.txt", []byte("no schedule in here"), entity.ImportOptions{})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := p.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob returned error on mark failure: %v", err)
	}
}

func TestProcessJobSkipsUnhandledFormat(t *testing.T) {
	repo := newFakeJobRepo()
	p := newTestProcessor(t, repo, newFakeStore())

	job, err := p.Submit(context.Background(), "schedule.pdf", []byte("%PDF-"), entity.ImportOptions{})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := p.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob returned error: %v", err)
	}

	stored, _ := repo.FindByJobID(context.Background(), job.JobID)
	if stored.Status != entity.StatusSkipped {
		t.Errorf("status = %q, want SKIPPED", stored.Status)
	}
}

func TestProcessJobCleansTempFiles(t *testing.T) {
	repo := newFakeJobRepo()
	router := &textOnlyRouter{}
	router.Register(textHandler{})
	projector := NewScheduleProjector(newFakeStore(), testLogger, testMetrics)
	uploadDir := t.TempDir()
	p := NewImportProcessor(repo, router, projector, testLogger, testMetrics, uploadDir, 1024)

	job, _ := p.Submit(context.Background(), "schedule.txt", []byte(sampleSchedule), entity.ImportOptions{})
	if err := p.ProcessJob(context.Background(), job); err != nil {
		t.Fatalf("ProcessJob failed: %v", err)
	}

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		t.Fatalf("read upload dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "import-") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestProcessPendingJobs(t *testing.T) {
	repo := newFakeJobRepo()
	p := newTestProcessor(t, repo, newFakeStore())

	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("schedule-%d.txt", i)
		if _, err := p.Submit(context.Background(), name, []byte(sampleSchedule), entity.ImportOptions{}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	if err := p.ProcessPendingJobs(context.Background()); err != nil {
		t.Fatalf("ProcessPendingJobs failed: %v", err)
	}

	for _, job := range repo.jobs {
		if job.Status != entity.StatusCompleted {
			t.Errorf("job %s status = %q, want COMPLETED", job.Filename, job.Status)
		}
	}
}
