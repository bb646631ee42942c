package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/pvpit/gatepass-api/api/swagger"
	"github.com/pvpit/gatepass-api/internal/handler"
	"github.com/pvpit/gatepass-api/internal/middleware"
	"github.com/pvpit/gatepass-api/internal/repository"
	"github.com/pvpit/gatepass-api/internal/service"
	"github.com/pvpit/gatepass-api/pkg/config"
	"github.com/pvpit/gatepass-api/pkg/database"
	"github.com/pvpit/gatepass-api/pkg/export"
	"github.com/pvpit/gatepass-api/pkg/logger"
	corsmiddleware "github.com/pvpit/gatepass-api/pkg/middleware/cors"
	reqidmiddleware "github.com/pvpit/gatepass-api/pkg/middleware/requestid"
)

// @title Gate Pass API
// @version 1.0.0
// @description Student gate pass submission and watchman review backend
// @BasePath /
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

	ctx := context.Background()
	store, err := database.NewFirestore(ctx, cfg.Firebase)
	if err != nil {
		logr.Sugar().Fatalw("failed to init firestore", "error", err)
	}
	defer store.Close() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	repo := repository.NewGatePassRepository(store, cfg.Firebase.Collection, metricsSvc)

	validate := validator.New()
	passSvc := service.NewGatePassService(repo, validate, logr)
	statsSvc := service.NewStatsService(repo, logr)
	exportSvc := service.NewExportService(export.NewPDFExporter(cfg.PDF.InstitutionName), export.NewCSVExporter())

	guard := middleware.SharedSecret(cfg.Auth.SharedSecret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	handler.NewHealthHandler(metricsSvc).RegisterRoutes(r)
	handler.NewGatePassHandler(passSvc, exportSvc).RegisterRoutes(r, guard)
	handler.NewStatsHandler(statsSvc).RegisterRoutes(r, guard)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "collection", cfg.Firebase.Collection)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
