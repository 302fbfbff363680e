package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"chatbotService/internal/config"
	"chatbotService/internal/db"
	"chatbotService/internal/openai"
	"chatbotService/internal/server"
	"chatbotService/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadWithDefaults()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	logger.Info("configuration loaded", zap.String("config", cfg.String()))

	// Open DB; this applies the schema migrations.
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Error("close db", zap.Error(err))
		}
	}()

	// Seed the bootstrap account. Idempotent; an existing account wins.
	users := repository.NewUserRepository(d)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := users.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		cancel()
		logger.Fatal("seed admin user", zap.Error(err))
	}
	cancel()
	logger.Info("admin account ensured", zap.String("username", cfg.Auth.AdminUsername))

	if cfg.OpenAI.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set; chat requests will fail with an application error")
	}
	ai := openai.NewClient(cfg.OpenAI.APIKey, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.New(cfg, users, ai, logger).Router(),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
