package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/student-control/internal/web"
	"github.com/noah-isme/student-control/pkg/config"
	"github.com/noah-isme/student-control/pkg/logger"
	reqidmiddleware "github.com/noah-isme/student-control/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg, "web")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	client := web.NewClient(cfg.Web.APIBaseURL, cfg.APIPrefix, cfg.Web.APITimeout)
	server := web.NewServer(client, logr.Named("web"))

	r := gin.New()
	r.MaxMultipartMemory = cfg.Uploads.MaxFileSizeBytes
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	if err := server.Register(r); err != nil {
		logr.Fatal("failed to load templates", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Web.Port)
	logr.Sugar().Infow("web server starting", "addr", addr, "api", cfg.Web.APIBaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("web server failed", "error", err)
	}
}
