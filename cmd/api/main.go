package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-interview-scheduler/config"
	_ "go-interview-scheduler/docs" // Important for Swagger
	v1 "go-interview-scheduler/internal/delivery/http/v1"
	"go-interview-scheduler/internal/repository/postgres"
	"go-interview-scheduler/internal/usecase"
	"go-interview-scheduler/pkg/database"
	"go-interview-scheduler/pkg/logger"
	"go-interview-scheduler/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Interview Scheduling API
// @version         1.0
// @description     CRUD service for HR interview scheduling: specialists, skills and interview bookings with availability, overlap and skill-match validation.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting interview scheduler", "port", cfg.Port)

	// 3. Setup Database
	if cfg.MigrateOnStart {
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	skillRepo := postgres.NewSkillRepository(dbPool)
	specialistRepo := postgres.NewSpecialistRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	skillUC := usecase.NewSkillUsecase(skillRepo)
	specialistUC := usecase.NewSpecialistUsecase(specialistRepo, validate)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, skillRepo, validate, cfg.DefaultDurationMinutes)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SkillUC:      skillUC,
		SpecialistUC: specialistUC,
		InterviewUC:  interviewUC,
		Config:       cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
