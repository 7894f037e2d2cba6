package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	_ "github.com/davg505/portal-estagio-api/api/swagger"
	"github.com/davg505/portal-estagio-api/internal/handler"
	"github.com/davg505/portal-estagio-api/internal/repository"
	"github.com/davg505/portal-estagio-api/internal/service"
	"github.com/davg505/portal-estagio-api/pkg/cache"
	"github.com/davg505/portal-estagio-api/pkg/config"
	"github.com/davg505/portal-estagio-api/pkg/database"
	"github.com/davg505/portal-estagio-api/pkg/logger"
	"github.com/davg505/portal-estagio-api/pkg/storage"
)

// @title Portal Estágio API
// @version 1.0.0
// @description Backend do portal de estágios da Fatec
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare upload dir", "error", err, "dir", cfg.Uploads.Dir)
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	var cacheSvc *service.CacheService
	if cfg.Listings.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, listings served uncached", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewRedisCacheRepository(redisClient, "portal-estagio")
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Listings.CacheTTL, logr, true)
		}
	}

	validate := validator.New()
	timeout := cfg.Database.StatementTimeout

	alunoRepo := repository.NewAlunoRepository(db)
	professorRepo := repository.NewProfessorRepository(db)
	listingRepo := repository.NewListingRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	estagioRepo := repository.NewEstagioRepository(db)
	modalidadeRepo := repository.NewModalidadeRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db)

	authSvc := service.NewAuthService(alunoRepo, professorRepo, validate, logr, service.AuthConfig{
		Secret:           cfg.JWT.Secret,
		Expiration:       cfg.JWT.Expiration,
		StatementTimeout: timeout,
	})
	alunoSvc := service.NewAlunoService(alunoRepo, validate, logr, timeout)
	listingSvc := service.NewListingService(listingRepo, cacheSvc, logr, timeout)
	empresaSvc := service.NewEmpresaService(empresaRepo, validate, logr, timeout)
	estagioSvc := service.NewEstagioService(estagioRepo, alunoRepo, validate, logr, timeout)
	modalidadeSvc := service.NewModalidadeService(modalidadeRepo, alunoRepo, validate, logr, timeout)
	uploadSvc := service.NewUploadService(relatorioRepo, uploads, logr, cfg.Uploads.MaxFileSizeBytes, timeout)

	deps := handler.Deps{
		Config:  cfg,
		Logger:  logr,
		Metrics: metrics,

		Auth:       handler.NewAuthHandler(authSvc),
		Listings:   handler.NewListingHandler(listingSvc, cfg.Listings.MaxAge),
		Aluno:      handler.NewAlunoHandler(alunoSvc),
		Empresa:    handler.NewEmpresaHandler(empresaSvc),
		Estagio:    handler.NewEstagioHandler(estagioSvc),
		Modalidade: handler.NewModalidadeHandler(modalidadeSvc),
		Upload:     handler.NewUploadHandler(uploadSvc, metrics, logr),

		TokenValidator: authSvc,
	}

	if cfg.Exports.Enabled {
		exportSvc := service.NewExportService(estagioRepo, logr, timeout)
		deps.Export = handler.NewExportHandler(exportSvc)
	}

	r := handler.NewRouter(deps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
