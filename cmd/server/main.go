// cmd/server/main.go
// Entry point for the cricket tournament scheduler backend server.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/config"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/database"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := log.New(os.Stdout, "[cricket-scheduler] ", log.LstdFlags|log.Lshortfile)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	conns, err := database.Connect(ctx, database.Config{
		MySQL: database.MySQLConfig{
			DSN:             cfg.Database.MySQL.DSN,
			MaxOpenConns:    cfg.Database.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.MySQL.ConnMaxLifetime,
		},
		MongoDB: database.MongoConfig{
			URI:      cfg.Database.MongoDB.URI,
			Database: cfg.Database.MongoDB.Database,
		},
		Redis: database.RedisConfig{
			Addr:     cfg.Database.Redis.Addr,
			Password: cfg.Database.Redis.Password,
			DB:       cfg.Database.Redis.DB,
		},
	}, logger)
	cancel()
	if err != nil {
		logger.Fatalf("failed to initialize databases: %v", err)
	}
	defer conns.Close()

	srv := server.New(cfg, conns, logger)

	go func() {
		logger.Printf("starting server on port %s in %s mode", cfg.Server.Port, cfg.Environment)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	gracefulShutdown(srv, logger)
}

// gracefulShutdown waits for an interrupt and drains outstanding requests
func gracefulShutdown(srv *server.Server, logger *log.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("server forced to shutdown: %v", err)
	}

	logger.Println("server exited")
}
