package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/tsc11539/redis-status/internal/config"
	httpx "github.com/tsc11539/redis-status/internal/http"
	"github.com/tsc11539/redis-status/internal/logger"
	"github.com/tsc11539/redis-status/internal/probe"
	"github.com/tsc11539/redis-status/internal/secret"
	"github.com/tsc11539/redis-status/internal/status"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))
	slog.SetDefault(log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serviceCfg := config.LoadService(os.Getenv)
	redisCheckCfg := config.LoadRedisCheck(os.Getenv)

	var store secret.Store
	if serviceCfg.SecretConfigured() {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			log.Error("load aws config", slog.Any("error", err))
			os.Exit(1)
		}
		store = secret.NewSecretsManagerStoreFromConfig(awsCfg)
	}

	prober := probe.New()
	router := httpx.NewRouter(
		status.NewService(serviceCfg, store, prober, log),
		status.NewService(redisCheckCfg, nil, prober, log),
	)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     router,
		ReadTimeout: 5 * time.Second,
	}

	log.Info("starting server", slog.String("port", port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("server ended")
}
