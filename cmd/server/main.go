package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusops-service/formats"
	"campusops-service/internal/domain/entity"
	"campusops-service/internal/infrastructure/config"
	"campusops-service/internal/infrastructure/persistence"
	"campusops-service/internal/infrastructure/router"
	"campusops-service/internal/interface/ingest"
	storeRepo "campusops-service/internal/interface/repository"
	"campusops-service/internal/usecase"
	"campusops-service/pkg/logger"
	"campusops-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting CampusOps Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := persistence.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	if err := gormDB.AutoMigrate(
		&storeRepo.Modules{},
		&storeRepo.Sections{},
		&storeRepo.Users{},
		&storeRepo.Rooms{},
		&storeRepo.ScheduleSlots{},
		&storeRepo.SwapRequests{},
		&storeRepo.SurveillanceAssignments{},
		&storeRepo.SurveillanceSwapRequests{},
	); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	m := metrics.NewMetrics("campusops")

	// Set up repositories
	scheduleStore := storeRepo.NewGormScheduleStore(gormDB)
	jobRepo := storeRepo.NewMongoImportJobRepository(db)

	// Set up format routing
	formatRouter := router.NewFormatRouter(log)
	formatRouter.Register(formats.NewWordHandler(log))
	formatRouter.Register(formats.NewExcelHandler(log))
	formatRouter.Register(formats.NewPdfHandler(log))
	formatRouter.Register(formats.NewTextHandler(log))

	projector := usecase.NewScheduleProjector(scheduleStore, log, m)
	processor := usecase.NewImportProcessor(jobRepo, formatRouter, projector, log, m, cfg.UploadDir, cfg.MaxUploadBytes)

	// Watch the inbox directory for dropped schedule documents
	watcher := ingest.NewInboxWatcher(processor, log, cfg.InboxDir, cfg.InboxPollInterval, entity.ImportOptions{
		SaveToDatabase: cfg.SaveToDatabase,
	})
	go watcher.StartPolling(ctx)

	// Start import processor in a goroutine
	go func() {
		processTicker := time.NewTicker(cfg.ImportPollInterval)
		defer processTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Import processor stopped")
				return
			case <-processTicker.C:
				log.Info("Processing pending import jobs")
				if err := processor.ProcessPendingJobs(ctx); err != nil {
					log.Error("Error processing import jobs", "error", err)
				}
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("CampusOps Service stopped")
}
