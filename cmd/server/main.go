package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"problem_app/internal/api"
	"problem_app/internal/api/handler"
	"problem_app/internal/app/presence"
	"problem_app/internal/app/service"
	"problem_app/internal/app/worker"
	"problem_app/internal/common/security"
	"problem_app/internal/domain/repository"
	"problem_app/internal/logger"
	"problem_app/internal/platform/cache"
	"problem_app/internal/platform/config"
	"problem_app/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New("", 0).Fatal("failed to load config", "error", err)
	}
	log := logger.New(cfg.Env, cfg.LogLevel)
	log.Info("configuration loaded", "env", cfg.Env, "port", cfg.APIPort)
	if cfg.UsesDevSecret() {
		log.Warn("JWT_SECRET is not set, signing tokens with the built-in development key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Database
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}
	log.Info("database connected and migrated")

	healthChecks := map[string]handler.Pinger{"postgres": db}

	// 3. Initialize Redis (optional)
	var (
		tracker presence.Tracker = presence.NopTracker{}
		locker  worker.Locker    = worker.LocalLocker{}
	)
	if cfg.Redis.Enabled {
		rdb, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("failed to connect to redis", "error", err)
		}
		defer rdb.Close()
		tracker = presence.NewRedisTracker(rdb, cfg.Presence.Key)
		locker = worker.NewRedisLocker(rdb)
		healthChecks["redis"] = cache.Pinger{Client: rdb}
		log.Info("redis connected", "addr", cfg.Redis.Addr)
	} else {
		log.Info("redis disabled, online presence is not tracked")
	}

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(db)
	problemRepo := repository.NewPgProblemRepository(db)
	sequenceRepo := repository.NewPgSequenceRepository(db)
	categoryRepo := repository.NewPgCategoryRepository(db)
	commentRepo := repository.NewPgCommentRepository(db)

	// 5. Initialize Services
	issuer := security.NewTokenIssuer(cfg.JWT)
	renderer := service.NewRenderer()
	userService := service.NewUserService(userRepo, tracker, cfg.Presence.Window, log)
	authService := service.NewAuthService(userService, issuer, log)
	problemService := service.NewProblemService(db, problemRepo, sequenceRepo, categoryRepo, renderer, log)
	commentService := service.NewCommentService(commentRepo, renderer)

	if cfg.SeedData {
		seeder := service.NewSeedService(db, problemRepo, categoryRepo, userService, log)
		if err := seeder.Seed(ctx); err != nil {
			log.Warn("seeding finished with errors", "error", err)
		}
	}

	// 6. Start the presence sweeper
	workerCtx, workerCancel := context.WithCancel(ctx)
	defer workerCancel()
	sweeper := worker.NewPresenceSweeper(tracker, locker, cfg.Presence.Window, cfg.Presence.SweepInterval, log)
	go sweeper.Start(workerCtx)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(api.RouterDeps{
		Config:         cfg,
		Log:            log,
		Issuer:         issuer,
		AuthService:    authService,
		UserService:    userService,
		ProblemService: problemService,
		CommentService: commentService,
		HealthChecks:   healthChecks,
	})

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("could not listen", "addr", server.Addr, "error", err)
		}
	}()

	// 8. Graceful Shutdown
	<-ctx.Done()
	log.Info("shutting down server")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
		return
	}
	log.Info("server and worker stopped gracefully")
}
