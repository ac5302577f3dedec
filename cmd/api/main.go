package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-scheduler/internal/db"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/studio-scheduler/internal/logger"
	"github.com/BruksfildServices01/studio-scheduler/internal/routes"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

const (
	studioConfigCacheTTL = 10 * time.Minute
	shutdownTimeout      = 10 * time.Second
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ======================================================
	// DATABASE
	// ======================================================
	db := dbpkg.NewDB(cfg, log)

	bootCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if err := dbpkg.Migrate(bootCtx, db, log); err != nil {
		cancel()
		log.Fatal("migration failed", zap.Error(err))
	}
	if err := dbpkg.Seed(bootCtx, db, cfg, log); err != nil {
		cancel()
		log.Fatal("seed failed", zap.Error(err))
	}
	cancel()

	// ======================================================
	// INFRA
	// ======================================================
	store := newStore(cfg, log)
	configCache := newConfigCache(cfg, log)

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Store:  store,
		Cache:  configCache,
		Audit:  dispatcher,
		Clock:  timezone.NewClock(cfg.Timezone),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	// auditoria pendente é gravada antes de fechar o banco
	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newStore: S3 quando há bucket configurado, senão disco local.
func newStore(cfg *config.Config, log *zap.Logger) storage.Store {
	if cfg.S3Bucket != "" {
		log.Info("intake forms stored on s3", zap.String("bucket", cfg.S3Bucket))
		return storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.AWSAccessKeyID,
			SecretKey: cfg.AWSSecretAccessKey,
		})
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("failed to prepare upload dir", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}
	return store
}

// newConfigCache: redis é opcional; sem endereço ou fora do ar, segue sem cache.
func newConfigCache(cfg *config.Config, log *zap.Logger) cache.StudioConfigCache {
	if cfg.RedisAddr == "" {
		return cache.NoopStudioConfigCache{}
	}

	client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, studio config cache disabled", zap.Error(err))
		_ = client.Close()
		return cache.NoopStudioConfigCache{}
	}

	return cache.NewRedisStudioConfigCache(client, studioConfigCacheTTL, log)
}
