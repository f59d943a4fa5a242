// Package lambda adapts the status service to API Gateway Lambda events.
// Request contents are ignored; every invocation renders the same page.
package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/tsc11539/redis-status/internal/logger"
	"github.com/tsc11539/redis-status/internal/status"
)

// Responder is implemented by status.Service.
type Responder interface {
	Respond(ctx context.Context) status.Response
}

// ProxyHandler serves API Gateway REST (v1 proxy) events.
func ProxyHandler(svc Responder) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		ctx = withRequestID(ctx, req.RequestContext.RequestID)
		resp := svc.Respond(ctx)
		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	}
}

// HTTPHandler serves API Gateway HTTP API (v2) events.
func HTTPHandler(svc Responder) func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		ctx = withRequestID(ctx, req.RequestContext.RequestID)
		resp := svc.Respond(ctx)
		return events.APIGatewayV2HTTPResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	}
}

func withRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return logger.WithRequestID(ctx, id)
}
