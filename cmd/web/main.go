package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"meridastore.com/app/internal/api"
	"meridastore.com/app/internal/config"
	apphttp "meridastore.com/app/internal/http"
	"meridastore.com/app/internal/mailer"
	"meridastore.com/app/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)

	storeRes, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}
	logger.Info("storage_ready", "driver", storeRes.Driver)

	var mail mailer.Service
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
		logger.Info("mailer_ready", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
	} else {
		logger.Info("mailer_disabled")
	}

	r := apphttp.NewRouter(logger, cfg, apiClient, storeRes.Storage, mail)

	logger.Info("server_starting", "addr", cfg.Addr, "api_base_url", cfg.APIBaseURL)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
