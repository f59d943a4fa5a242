// Command redis-check is the Lambda entrypoint for the plain Redis status page
// behind an API Gateway HTTP API.
package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/tsc11539/redis-status/internal/config"
	lambdax "github.com/tsc11539/redis-status/internal/lambda"
	"github.com/tsc11539/redis-status/internal/logger"
	"github.com/tsc11539/redis-status/internal/status"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))
	svc := status.NewService(config.LoadRedisCheck(os.Getenv), nil, nil, log)
	lambda.Start(lambdax.HTTPHandler(svc))
}
