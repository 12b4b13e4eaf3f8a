package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"citykitch/db"
	"citykitch/db/migrations"
	"citykitch/internal/auth"
	"citykitch/internal/blobstore"
	"citykitch/internal/chat"
	"citykitch/internal/config"
	"citykitch/internal/handlers"
	"citykitch/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init()

	if cfg.PostgresConn == "" {
		log.Fatal().Msg("POSTGRES_CONN env variable is not set")
	}

	dbConn, err := sqlx.Connect("postgres", cfg.PostgresConn)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot connect to DB")
	}
	defer dbConn.Close()

	migrations.Run()

	blobs, err := blobstore.NewDiskStore(cfg.MediaDir, "/media")
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot init media store")
	}

	store := db.NewStorage(dbConn)
	authSvc := auth.NewService(cfg.JWTSecret, log)
	hub := chat.NewHub()
	h := handlers.NewHandler(store, authSvc, hub, blobs, log, cfg.AdminEmail)

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h.Router(cfg.MediaDir),
	}

	go func() {
		log.Info().Str("addr", cfg.ServerAddr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
