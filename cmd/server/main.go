package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"billboard/internal/auth"
	"billboard/internal/config"
	"billboard/internal/handler"
	"billboard/internal/infrastructure/database"
	"billboard/internal/logger"
	"billboard/internal/metrics"
	"billboard/internal/middleware"
	"billboard/internal/repository"
	"billboard/internal/service"
	"billboard/internal/storage"
	"billboard/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	ctx := context.Background()

	// Connect to database
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
	pool, err := database.NewPostgres(ctx, poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	applied, err := database.RunMigrations(cfg.MigrationsDir, poolCfg.URL())
	if err != nil {
		logger.Fatal("Failed to run migrations",
			slog.String("dir", cfg.MigrationsDir),
			slog.String("error", err.Error()))
	}
	logger.Info("Database schema ready", slog.Bool("migrated", applied))

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Start image store
	imageStore := storage.FromConfig(cfg)
	if err := imageStore.Start(ctx); err != nil {
		logger.Fatal("Failed to start image store",
			slog.String("store", cfg.ImageStore),
			slog.String("error", err.Error()))
	}
	defer imageStore.Close()

	// Initialize repositories
	submissionRepo := repository.NewPostgresSubmissionRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	voteRepo := repository.NewPostgresVoteRepository(pool)

	// Initialize validator
	v := validator.NewValidator(validator.Limits{
		SubmissionMaxLength:  cfg.SubmissionMaxLength,
		CommentMaxLength:     cfg.CommentMaxLength,
		DisplayNameMaxLength: cfg.DisplayNameMaxLength,
	})

	// Initialize services
	submissionService := service.NewSubmissionService(submissionRepo, commentRepo, voteRepo, v, service.SubmissionConfig{
		FeedLimit:       cfg.FeedLimit,
		LeaderboardSize: cfg.LeaderboardSize,
		Timeout:         cfg.StoreTimeout,
	})
	voteService := service.NewVoteService(voteRepo, cfg.StoreTimeout)
	commentService := service.NewCommentService(commentRepo, v, cfg.StoreTimeout)
	imageService := service.NewImageService(imageStore, cfg.ImageMaxBytes, cfg.StoreTimeout)

	if cfg.AuthJWTSecret == "" {
		logger.Warn("AUTH_JWT_SECRET is not set, every caller is anonymous")
	}
	verifier := auth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)

	// Initialize handlers
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	voteHandler := handler.NewVoteHandler(voteService, submissionService)
	commentHandler := handler.NewCommentHandler(commentService)
	imageHandler := handler.NewImageHandler(imageService, imageService.MaxBytes())
	healthHandler := handler.NewHealthHandler(pool, metrics.PgxPoolStats(pool), cfg.ImageStore)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Auth(verifier))
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if local, ok := imageStore.(*storage.LocalStore); ok {
		router.Static("/uploads", local.Dir())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		submissions := v1.Group("/submissions")
		{
			submissions.GET("", submissionHandler.List)
			submissions.POST("", submissionHandler.Create)
			submissions.GET("/:id", submissionHandler.Get)
			submissions.POST("/:id/votes", voteHandler.CastVote)
			submissions.POST("/:id/comments", commentHandler.Add)
		}

		v1.GET("/leaderboard", submissionHandler.Leaderboard)
		v1.POST("/images", imageHandler.Upload)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("image_store", cfg.ImageStore))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

