package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/curriculum-api/api/swagger"
	"github.com/noah-isme/curriculum-api/internal/handler"
	internalMiddleware "github.com/noah-isme/curriculum-api/internal/middleware"
	"github.com/noah-isme/curriculum-api/internal/repository"
	"github.com/noah-isme/curriculum-api/internal/router"
	"github.com/noah-isme/curriculum-api/internal/service"
	"github.com/noah-isme/curriculum-api/pkg/cache"
	"github.com/noah-isme/curriculum-api/pkg/config"
	"github.com/noah-isme/curriculum-api/pkg/database"
	"github.com/noah-isme/curriculum-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/curriculum-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/curriculum-api/pkg/middleware/requestid"
)

// @title Curriculum API
// @version 1.0.0
// @description Curriculum, learning outcome, indicator and course management
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, cocktail cache disabled", "error", err)
			redisClient = nil
		}
	}

	validate := validator.New()

	curriculumRepo := repository.NewCurriculumRepository(db)
	cplRepo := repository.NewCPLRepository(db)
	indicatorRepo := repository.NewIndicatorRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	authService := service.NewAuthService(userRepo, tokenRepo, validate, logr, service.AuthConfig{Secret: cfg.JWT.Secret})
	curriculumService := service.NewCurriculumService(curriculumRepo, validate, logr)
	cplService := service.NewCPLService(cplRepo, curriculumRepo, indicatorRepo, validate, logr)
	indicatorService := service.NewIndicatorService(indicatorRepo, cplRepo, validate, logr)
	courseService := service.NewCourseService(courseRepo, cplRepo, indicatorRepo, validate, logr)
	userService := service.NewUserService(userRepo, logr)
	cocktailService := service.NewCocktailService(redisClient, cfg.Cocktail, logr)
	exportService := service.NewExportService(curriculumRepo, cplRepo, indicatorRepo, logr)
	metricsService := service.NewMetricsService()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalMiddleware.Metrics(metricsService))

	r.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	})

	r.GET("/metrics", gin.WrapH(metricsService.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.Register(r, router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Curriculum: handler.NewCurriculumHandler(curriculumService, exportService),
		CPL:        handler.NewCPLHandler(cplService),
		Indicator:  handler.NewIndicatorHandler(indicatorService),
		Course:     handler.NewCourseHandler(courseService),
		User:       handler.NewUserHandler(userService),
		Cocktail:   handler.NewCocktailHandler(cocktailService),
	}, authService)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
