package main

import (
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"

	httpapi "boardcamp-backend/internal/api/http"
	"boardcamp-backend/internal/config"
	"boardcamp-backend/internal/dependencies/clock"
	"boardcamp-backend/internal/jobs"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/repository/postgres"
	"boardcamp-backend/internal/scheduler"
	"boardcamp-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Boardcamp backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)
	clk := clock.New()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	gameSvc := service.NewGameService(store.GameRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.CustomerRepository, store.GameRepository, clk)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(store.RentalRepository, emailSvc, cfg, clk)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Serve
	router := httpapi.NewRouter(customerSvc, gameSvc, rentalSvc)
	srv := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}
	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed", "error", err)
		log.Fatalf("Server failed: %v", err)
	}
}
