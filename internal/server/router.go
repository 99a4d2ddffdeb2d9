package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/summitlabs/ascent-backend/internal/handlers"
	"github.com/summitlabs/ascent-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName       string
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	ProfileHandler    *handlers.ProfileHandler
	AssessmentHandler *handlers.AssessmentHandler
	AdviceHandler     *handlers.AdviceHandler
	AdminHandler      *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "ascent-backend"
	}
	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.AttachTraceContext())

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/auth/register", cfg.AuthHandler.Register)
		api.POST("/auth/login", cfg.AuthHandler.Login)
	}

	identified := api.Group("/")
	identified.Use(cfg.AuthMiddleware.RequireIdentity())
	// Auth
	identified.POST("/auth/logout", cfg.AuthHandler.Logout)
	identified.GET("/auth/verify", cfg.AuthHandler.Verify)
	// User + profile
	identified.GET("/user", cfg.UserHandler.GetMe)
	identified.GET("/profile", cfg.ProfileHandler.GetMine)
	identified.PUT("/profile", cfg.ProfileHandler.UpsertMine)
	// Assessment
	identified.POST("/assessment/complete", cfg.AssessmentHandler.Complete)
	identified.GET("/assessment/history", cfg.AssessmentHandler.History)
	identified.GET("/assessment/latest", cfg.AssessmentHandler.Latest)
	// Advice
	identified.POST("/advice/narrative", cfg.AdviceHandler.Narrative)
	// Admin data viewer
	identified.GET("/admin/users", cfg.AdminHandler.ListUsers)
	identified.GET("/admin/scores", cfg.AdminHandler.ListScores)

	return router
}
