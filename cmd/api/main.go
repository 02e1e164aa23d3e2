package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kamaru-dev/gpcal-api/api/swagger"
	"github.com/kamaru-dev/gpcal-api/internal/handler"
	"github.com/kamaru-dev/gpcal-api/internal/insight"
	"github.com/kamaru-dev/gpcal-api/internal/middleware"
	"github.com/kamaru-dev/gpcal-api/internal/repository"
	"github.com/kamaru-dev/gpcal-api/internal/service"
	"github.com/kamaru-dev/gpcal-api/pkg/cache"
	"github.com/kamaru-dev/gpcal-api/pkg/config"
	"github.com/kamaru-dev/gpcal-api/pkg/database"
	"github.com/kamaru-dev/gpcal-api/pkg/logger"
	corsmiddleware "github.com/kamaru-dev/gpcal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/kamaru-dev/gpcal-api/pkg/middleware/requestid"
)

// @title GPCal API
// @version 1.0.0
// @description Personal academic tracking: semesters, courses, GPA/CGPA analytics, and AI insights.
// @BasePath /api/v1
// @schemes http

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

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Analytics.CacheTTL, logr, cacheRepo != nil)

	semesterRepo := repository.NewSemesterRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	settingsSvc := service.NewSettingsService(settingsRepo, nil, logr)
	semesterSvc := service.NewSemesterService(semesterRepo, courseRepo, settingsSvc, cacheSvc, nil, logr)
	courseSvc := service.NewCourseService(courseRepo, semesterRepo, cacheSvc, nil, logr)
	analyticsSvc := service.NewAnalyticsService(semesterRepo, courseRepo, cacheSvc, cfg.Analytics.CacheTTL, logr)

	var generator *insight.GeminiClient
	if cfg.Insight.Enabled {
		generator, err = insight.NewGeminiClient(context.Background(), cfg.Insight.APIKey, cfg.Insight.Model)
		if err != nil {
			logr.Sugar().Warnw("gemini unavailable, insights disabled", "error", err)
		} else {
			defer generator.Close() //nolint:errcheck
		}
	}
	var insightSvc *service.InsightService
	if generator != nil {
		insightSvc = service.NewInsightService(generator, semesterRepo, courseRepo, cacheSvc, cfg.Insight.Timeout, cfg.Insight.CacheTTL, nil, logr)
	} else {
		insightSvc = service.NewInsightService(nil, semesterRepo, courseRepo, cacheSvc, cfg.Insight.Timeout, cfg.Insight.CacheTTL, nil, logr)
	}

	semesterHandler := handler.NewSemesterHandler(semesterSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, metricsSvc)
	insightHandler := handler.NewInsightHandler(insightSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/semesters", semesterHandler.List)
		api.POST("/semesters", semesterHandler.Create)
		api.GET("/semesters/:id", semesterHandler.Get)
		api.PUT("/semesters/:id", semesterHandler.Update)
		api.DELETE("/semesters/:id", semesterHandler.Delete)

		api.GET("/semesters/:id/links", semesterHandler.ListLinks)
		api.POST("/semesters/:id/links", semesterHandler.Link)
		api.DELETE("/semesters/:id/links/:linkedId", semesterHandler.Unlink)

		api.GET("/semesters/:id/courses", courseHandler.List)
		api.POST("/semesters/:id/courses", courseHandler.Create)
		api.DELETE("/courses/:id", courseHandler.Delete)

		api.GET("/semesters/:id/analytics", analyticsHandler.SemesterAnalytics)
		api.GET("/analytics/system", analyticsHandler.System)

		api.POST("/semesters/:id/insight", insightHandler.Generate)

		api.GET("/settings/grading-scheme", settingsHandler.GetGradingScheme)
		api.PUT("/settings/grading-scheme", settingsHandler.UpdateGradingScheme)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
