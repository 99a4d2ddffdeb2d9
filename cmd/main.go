package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/summitlabs/ascent-backend/internal/cache"
	"github.com/summitlabs/ascent-backend/internal/db"
	"github.com/summitlabs/ascent-backend/internal/handlers"
	"github.com/summitlabs/ascent-backend/internal/logger"
	"github.com/summitlabs/ascent-backend/internal/middleware"
	"github.com/summitlabs/ascent-backend/internal/observability"
	"github.com/summitlabs/ascent-backend/internal/repos"
	"github.com/summitlabs/ascent-backend/internal/scoring"
	"github.com/summitlabs/ascent-backend/internal/server"
	"github.com/summitlabs/ascent-backend/internal/services"
	"github.com/summitlabs/ascent-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: os.Getenv("OTEL_SERVICE_NAME"),
		Environment: logMode,
		Version:     os.Getenv("APP_VERSION"),
	})

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	corpusPath := utils.GetEnv("ADVICE_CORPUS_PATH", "data/pillar_advice.json", log)
	narrativeDelayMs := utils.GetEnvAsInt("NARRATIVE_DELAY_MS", 2000, log)
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)

	// Database
	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	gdb := dbService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(gdb, log)
	userTokenRepo := repos.NewUserTokenRepo(gdb, log)
	userProfileRepo := repos.NewUserProfileRepo(gdb, log)
	scoreRecordRepo := repos.NewScoreRecordRepo(gdb, log)

	// Advice corpus
	corpus, err := scoring.LoadCorpus(corpusPath)
	if err != nil {
		log.Error("Failed to load advice corpus", "path", corpusPath, "error", err)
		os.Exit(1)
	}
	resolver := scoring.NewAdviceResolver(corpus, nil)

	// Cache (optional)
	scoreCache, err := cache.NewScoreCache(log)
	if err != nil {
		log.Warn("Score cache disabled", "error", err)
		scoreCache = nil
	}

	// Services
	log.Info("Setting up services from main...")
	authService := services.NewAuthService(gdb, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(gdb, log, userRepo)
	profileService := services.NewProfileService(gdb, log, userProfileRepo)
	assessmentService := services.NewAssessmentService(log, scoreRecordRepo, resolver, scoreCache)
	adviceService := services.NewAdviceService(log, time.Duration(narrativeDelayMs)*time.Millisecond)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	adviceHandler := handlers.NewAdviceHandler(adviceService, assessmentService)
	adminHandler := handlers.NewAdminHandler(userService, assessmentService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		ServiceName:       "ascent-backend",
		AuthHandler:       authHandler,
		AuthMiddleware:    authMiddleware,
		UserHandler:       userHandler,
		ProfileHandler:    profileHandler,
		AssessmentHandler: assessmentHandler,
		AdviceHandler:     adviceHandler,
		AdminHandler:      adminHandler,
	})

	srv := &http.Server{
		Addr:    httpAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("HTTP server listening", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if otelShutdown != nil {
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Warn("otel shutdown failed", "error", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}
