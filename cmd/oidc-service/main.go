// Command oidc-service is the Lambda entrypoint for the secret-backed Redis
// status page behind an API Gateway REST API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/tsc11539/redis-status/internal/config"
	lambdax "github.com/tsc11539/redis-status/internal/lambda"
	"github.com/tsc11539/redis-status/internal/logger"
	"github.com/tsc11539/redis-status/internal/secret"
	"github.com/tsc11539/redis-status/internal/status"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Error("load aws config", slog.Any("error", err))
		os.Exit(1)
	}

	svc := status.NewService(
		config.LoadService(os.Getenv),
		secret.NewSecretsManagerStoreFromConfig(awsCfg),
		nil,
		log,
	)
	lambda.Start(lambdax.ProxyHandler(svc))
}
