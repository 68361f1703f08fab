package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"campus-board/api/router"
	"campus-board/config"
	"campus-board/db"
	"campus-board/internal/logger"
)

// @title           Campus Board API
// @version         1.0
// @description     API for browsing posts, links, classes, comments and ratings
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Configure(logger.Options{Level: cfg.Logging.Level, Service: cfg.Logging.Service})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           corsHandler(cfg.Server).Handler(router.New(db.Database(), cfg)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.InfoWithFields("api listening", logger.Fields{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		logger.Log.Errorf("mongo disconnect failed: %v", err)
	}
}

// corsHandler 는 설정된 origin 만 허용한다. 비어 있으면 전체 허용.
func corsHandler(cfg config.ServerConfig) *cors.Cors {
	if len(cfg.AllowedOrigins) == 0 {
		return cors.AllowAll()
	}
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
}
