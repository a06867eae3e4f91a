package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/student-control/api/swagger"
	"github.com/noah-isme/student-control/internal/handler"
	internalmiddleware "github.com/noah-isme/student-control/internal/middleware"
	"github.com/noah-isme/student-control/internal/repository"
	"github.com/noah-isme/student-control/internal/service"
	"github.com/noah-isme/student-control/pkg/config"
	"github.com/noah-isme/student-control/pkg/database"
	"github.com/noah-isme/student-control/pkg/logger"
	corsmiddleware "github.com/noah-isme/student-control/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/student-control/pkg/middleware/requestid"
	"github.com/noah-isme/student-control/pkg/storage"
)

// @title Student Control API
// @version 1.0.0
// @description Student records: students, courses, classes and roster exports
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg, "api")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()
	logr.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db.DB); err != nil {
			logr.Fatal("database migration failed", zap.Error(err))
		}
		version, _ := database.Version(ctx, db.DB)
		logr.Info("database schema ready", zap.Int64("version", version))
	}

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Fatal("failed to prepare uploads directory", zap.String("dir", cfg.Uploads.Dir), zap.Error(err))
	}
	logr.Info("uploads directory ready", zap.String("dir", uploads.Dir()))

	metrics := service.NewMetricsService()
	validate, err := service.NewValidator()
	if err != nil {
		logr.Fatal("failed to set up request validation", zap.Error(err))
	}

	studentRepo := repository.NewStudentRepository(db, metrics)
	courseRepo := repository.NewCourseRepository(db, metrics)
	classRepo := repository.NewClassRepository(db, metrics)
	systemRepo := repository.NewSystemRepository(db, metrics)

	studentSvc := service.NewStudentService(studentRepo, uploads, cfg.Uploads, metrics, validate, logr.Named("students"))
	courseSvc := service.NewCourseService(courseRepo)
	classSvc := service.NewClassService(classRepo, courseRepo, validate, logr.Named("classes"))
	healthSvc := service.NewHealthService(systemRepo, 0, logr.Named("health"))

	handlers := handler.Handlers{
		Students: handler.NewStudentHandler(studentSvc),
		Courses:  handler.NewCourseHandler(courseSvc),
		Classes:  handler.NewClassHandler(classSvc),
		System:   handler.NewSystemHandler(healthSvc),
		Metrics:  handler.NewMetricsHandler(metrics.Handler()),
		Uploads:  handler.NewUploadHandler(uploads),
	}
	if cfg.Reports.Enabled {
		handlers.Reports = handler.NewReportHandler(service.NewReportService(studentSvc))
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.Uploads.MaxFileSizeBytes
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	handler.RegisterRoutes(r, handlers, handler.RouteOptions{APIPrefix: cfg.APIPrefix})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "reports", cfg.Reports.Enabled)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
