package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bloghub/internal/config"
	"bloghub/internal/db"
	"bloghub/internal/logging"
	"bloghub/internal/router"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logging.Log.Info("no .env file found, reading env vars from system")
	}

	cfg := config.Load()

	if err := db.Init(cfg); err != nil {
		logging.Log.WithError(err).Fatal("database init failed")
	}

	r := gin.Default()
	router.RegisterRoutes(r, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Log.Infof("bloghub server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logging.Log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.WithError(err).Error("server shutdown error")
	}
	logging.Log.Info("server stopped")
}
