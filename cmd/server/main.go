// Command server runs the study guide HTTP API.
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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tsawler/vlier/internal/api/handler"
	"github.com/tsawler/vlier/internal/api/router"
	"github.com/tsawler/vlier/internal/config"
	"github.com/tsawler/vlier/internal/logger"
	"github.com/tsawler/vlier/internal/pending"
	"github.com/tsawler/vlier/internal/service"
	"github.com/tsawler/vlier/internal/store"
	"github.com/tsawler/vlier/keywords"
)

func main() {
	// A missing .env is fine; the environment may be set already.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("VLIER_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	kw, err := loadKeywords(cfg.Parser.KeywordsFile)
	if err != nil {
		log.Fatal("keyword configuration", zap.Error(err))
	}

	db, err := store.Open(cfg.Database, log)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("database handle", zap.Error(err))
	}
	if err := store.Migrate(sqlDB, log); err != nil {
		log.Fatal("migrations", zap.Error(err))
	}

	var ps pending.Store = pending.NewMemoryStore(cfg.Pending.TTL)
	var closeRedis func() error
	if cfg.Redis.Enabled {
		rdb, err := pending.NewRedisClient(cfg.Redis, log)
		if err != nil {
			log.Warn("redis unavailable, keeping uploads in memory", zap.Error(err))
		} else {
			ps = pending.NewRedisStore(rdb, cfg.Pending.TTL)
			closeRedis = rdb.Close
		}
	}

	svc := service.New(store.NewRepository(db), ps, log, service.Options{
		ParseTimeout: cfg.Server.ParseTimeout,
		Keywords:     kw,
		OCR:          cfg.Parser.OCR,
	})

	gin.SetMode(gin.ReleaseMode)
	engine := router.Setup(handler.New(svc, log), log, cfg.Server.MaxUploadBytes())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Server.ParseTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}

	_ = sqlDB.Close()
	if closeRedis != nil {
		_ = closeRedis()
	}
	log.Info("server stopped")
}

func loadKeywords(path string) (*keywords.Config, error) {
	if path != "" {
		return keywords.Load(path)
	}
	return keywords.FromEnv()
}
