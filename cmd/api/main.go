package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/melodybakes/inquiry-api/api/swagger"
	"github.com/melodybakes/inquiry-api/internal/handler"
	"github.com/melodybakes/inquiry-api/internal/middleware"
	"github.com/melodybakes/inquiry-api/internal/repository"
	"github.com/melodybakes/inquiry-api/internal/service"
	"github.com/melodybakes/inquiry-api/pkg/cache"
	"github.com/melodybakes/inquiry-api/pkg/config"
	"github.com/melodybakes/inquiry-api/pkg/database"
	"github.com/melodybakes/inquiry-api/pkg/logger"
	corsmiddleware "github.com/melodybakes/inquiry-api/pkg/middleware/cors"
	reqidmiddleware "github.com/melodybakes/inquiry-api/pkg/middleware/requestid"
)

// @title Melody Bakes Inquiry API
// @version 1.0.0
// @description Order-inquiry intake and moderation API for the Melody Bakes site
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	// The dashboard works without Redis, just slower; don't refuse to start.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, moderation cache disabled", "error", err)
		redisClient = nil
	}

	inquiryRepo := repository.NewInquiryRepository(db)
	rateLimitRepo := repository.NewRateLimitRepository(db)
	userRepo := repository.NewUserRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	rateLimitSvc := service.NewRateLimitService(rateLimitRepo, logr, cfg.RateLimit)
	intakeSvc := service.NewIntakeService(inquiryRepo, rateLimitSvc, cacheRepo, metricsSvc, logr)
	inquirySvc := service.NewInquiryService(inquiryRepo, cacheRepo, logr, cfg.Dashboard.CacheTTL)
	surveySvc := service.NewSurveyService(intakeSvc, cfg.WhatsApp.PhoneNumber, logr)
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "melodybakes-inquiry-api",
	})

	intakeHandler := handler.NewIntakeHandler(intakeSvc)
	surveyHandler := handler.NewSurveyHandler(surveySvc)
	inquiryHandler := handler.NewInquiryHandler(inquirySvc)
	authHandler := handler.NewAuthHandler(authSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	// Public marketing-site routes carry wildcard CORS; the site is served
	// from a different origin and submits anonymously.
	r.Any("/submit-order-inquiry", corsmiddleware.Public(), intakeHandler.Submit)

	api := r.Group(cfg.APIPrefix)
	api.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	surveyRoutes := api.Group("/survey", corsmiddleware.Public())
	surveyRoutes.POST("/quote", surveyHandler.Submit)
	surveyRoutes.OPTIONS("/quote", func(c *gin.Context) {})

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)

	inquiries := api.Group("/inquiries")
	inquiries.Use(middleware.JWT(authSvc))
	inquiries.GET("", inquiryHandler.List)
	inquiries.GET("/export", inquiryHandler.Export)
	inquiries.GET("/:id", inquiryHandler.Get)
	inquiries.PATCH("/:id/status", inquiryHandler.UpdateStatus)
	inquiries.GET("/:id/sheet", inquiryHandler.OrderSheet)
	inquiries.GET("/:id/whatsapp", inquiryHandler.WhatsAppLink)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
