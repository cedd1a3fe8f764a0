package ingest

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"campusops-service/internal/domain/entity"
	"campusops-service/internal/usecase"
	"campusops-service/pkg/logger"
)

// InboxWatcher picks up schedule documents dropped into an inbox
// directory and submits them as import jobs. Consumed files are
// removed; files the processor rejects are moved aside so they are not
// retried forever.
type InboxWatcher struct {
	processor    *usecase.ImportProcessor
	logger       logger.Logger
	inboxDir     string
	pollInterval time.Duration
	options      entity.ImportOptions
}

// NewInboxWatcher creates a new inbox watcher
func NewInboxWatcher(
	processor *usecase.ImportProcessor,
	logger logger.Logger,
	inboxDir string,
	pollInterval time.Duration,
	options entity.ImportOptions,
) *InboxWatcher {
	return &InboxWatcher{
		processor:    processor,
		logger:       logger,
		inboxDir:     inboxDir,
		pollInterval: pollInterval,
		options:      options,
	}
}

// StartPolling watches the inbox directory until the context is done
func (w *InboxWatcher) StartPolling(ctx context.Context) {
	if err := os.MkdirAll(w.inboxDir, 0o755); err != nil {
		w.logger.Error("Failed to create inbox directory", "dir", w.inboxDir, "error", err)
		return
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Inbox polling stopped")
			return
		case <-ticker.C:
			if err := w.Sweep(ctx); err != nil {
				w.logger.Error("Error sweeping inbox", "error", err)
			}
		}
	}
}

// Sweep submits every regular file currently in the inbox
func (w *InboxWatcher) Sweep(ctx context.Context) error {
	entries, err := os.ReadDir(w.inboxDir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.inboxDir, e.Name())

		payload, err := os.ReadFile(path)
		if err != nil {
			w.logger.Error("Failed to read inbox file", "path", path, "error", err)
			continue
		}

		job, err := w.processor.Submit(ctx, e.Name(), payload, w.options)
		if err != nil {
			w.logger.Warn("Rejected inbox file", "path", path, "error", err)
			w.setAside(path)
			continue
		}

		w.logger.Info("Inbox file queued", "path", path, "jobID", job.JobID)
		if err := os.Remove(path); err != nil {
			w.logger.Error("Failed to remove consumed inbox file", "path", path, "error", err)
		}
	}

	return nil
}

func (w *InboxWatcher) setAside(path string) {
	rejected := filepath.Join(w.inboxDir, "rejected")
	if err := os.MkdirAll(rejected, 0o755); err != nil {
		w.logger.Error("Failed to create rejected directory", "error", err)
		return
	}
	if err := os.Rename(path, filepath.Join(rejected, filepath.Base(path))); err != nil {
		w.logger.Error("Failed to move rejected file", "path", path, "error", err)
	}
}
