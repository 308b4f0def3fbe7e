package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobforge-backend/config"
	v1 "jobforge-backend/internal/delivery/http/v1"
	"jobforge-backend/internal/llm"
	"jobforge-backend/internal/llm/openai"
	"jobforge-backend/internal/repository/postgres"
	"jobforge-backend/internal/usecase"
	"jobforge-backend/pkg/database"
	"jobforge-backend/pkg/logger"
	"jobforge-backend/pkg/redis"
	"jobforge-backend/pkg/storage"
	"jobforge-backend/pkg/token"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Environment)
	logger.Log.Info("Starting jobforge backend", "port", cfg.Port, "environment", cfg.Environment)

	// 3. Run Migrations
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 60*time.Second)
	if err := database.RunMigrations(migrateCtx, cfg.DBUrl); err != nil {
		cancelMigrate()
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	cancelMigrate()

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Redis (optional; rate limiting degrades to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 6. Setup File Storage
	fileStore, err := storage.NewFileStore(cfg.UploadDir, cfg.ResumeUploadSubdir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 7. Setup Token Issuer
	issuer := token.NewIssuer(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenMinutes)*time.Minute,
		time.Duration(cfg.RefreshTokenDays)*24*time.Hour,
	)

	// 8. Setup LLM Client
	var llmClient llm.Client
	oaClient, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, time.Duration(cfg.OpenAITimeoutSeconds)*time.Second)
	if err != nil {
		logger.Log.Warn("LLM provider not configured, AI endpoints will return errors", "error", err)
		llmClient = llm.Disabled()
	} else {
		llmClient = oaClient
	}

	// 9. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)

	// 10. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, issuer)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, fileStore, llmClient)
	jobUC := usecase.NewJobUsecase(jobRepo, llmClient)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, applicationRepo)
	aiUC := usecase.NewAIUsecase(resumeRepo, jobRepo, llmClient)

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ResumeUC:      resumeUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		InterviewUC:   interviewUC,
		AIUC:          aiUC,
		TokenIssuer:   issuer,
		Config:        cfg,
	})

	// 12. Start Server
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

	logger.Log.Info("Server exited")
}
