// Package status runs the Redis status pipeline: read config, resolve
// credentials, probe, render.
package status

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tsc11539/redis-status/internal/config"
	"github.com/tsc11539/redis-status/internal/logger"
	"github.com/tsc11539/redis-status/internal/probe"
	"github.com/tsc11539/redis-status/internal/render"
	"github.com/tsc11539/redis-status/internal/secret"
)

const redacted = "[redacted]"

// Response is a transport-neutral HTTP response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// Service produces the status page for one configuration.
type Service struct {
	cfg      config.Config
	resolver *secret.Resolver
	prober   *probe.Prober
	log      *slog.Logger
}

// NewService creates a Service. store may be nil when cfg has no secret reference.
func NewService(cfg config.Config, store secret.Store, prober *probe.Prober, log *slog.Logger) *Service {
	if prober == nil {
		prober = probe.New()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		cfg:      cfg,
		resolver: secret.NewResolver(store),
		prober:   prober,
		log:      log,
	}
}

// Check runs one probe and returns what the page should show.
//
// A secret store failure is rendered as a failed check rather than failing
// the request; no connection is attempted in that case.
func (s *Service) Check(ctx context.Context) render.Report {
	log := logger.FromContext(ctx, s.log).With(
		slog.String("host", s.cfg.Host),
		slog.Int("port", s.cfg.Port),
		slog.Bool("secret_configured", s.cfg.SecretConfigured()),
	)

	report := render.Report{
		ServiceName:      s.cfg.ServiceName,
		Host:             s.cfg.Host,
		Port:             s.cfg.Port,
		PortValid:        s.cfg.PortValid,
		SecretConfigured: s.cfg.SecretConfigured(),
	}

	if !s.cfg.Configured() {
		report.Result = s.prober.Probe(ctx, s.cfg, nil)
		log.Warn("redis not configured")
		return report
	}

	creds, sensitive, err := s.credentials(ctx)
	if err != nil {
		log.Error("secret fetch failed", slog.Any("error", err))
		report.Result = probe.Result{Message: scrub("secret fetch failed: "+err.Error(), sensitive)}
		return report
	}

	res := s.prober.Probe(ctx, s.cfg, creds)
	res.Message = scrub(res.Message, sensitive)
	report.Result = res

	attrs := []any{
		slog.Bool("ok", res.OK),
		slog.Int64("elapsed_ms", res.ElapsedMillis()),
		slog.String("message", res.Message),
	}
	if res.OK {
		log.Info("redis check succeeded", attrs...)
	} else {
		log.Warn("redis check failed", attrs...)
	}
	return report
}

// Respond runs Check and renders the page. The status code is 200 whether or
// not Redis is reachable.
func (s *Service) Respond(ctx context.Context) Response {
	report := s.Check(ctx)
	body, err := render.Page(report)
	if err != nil {
		logger.FromContext(ctx, s.log).Error("render status page", slog.Any("error", err))
		return Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
			Body:       http.StatusText(http.StatusInternalServerError),
		}
	}
	return Response{
		StatusCode: http.StatusOK,
		Headers:    render.Headers(s.cfg.NoStore),
		Body:       body,
	}
}

// credentials returns the credentials to use and the strings that must never
// be displayed.
func (s *Service) credentials(ctx context.Context) (*secret.Credentials, []string, error) {
	if s.cfg.SecretConfigured() {
		res, err := s.resolver.Resolve(ctx, s.cfg.SecretRef)
		if err != nil {
			return nil, nil, err
		}
		sensitive := []string{res.Raw}
		if res.Credentials != nil && res.Credentials.Password != nil {
			sensitive = append(sensitive, *res.Credentials.Password)
		}
		return res.Credentials, sensitive, nil
	}
	if s.cfg.Password != "" {
		pw := s.cfg.Password
		return &secret.Credentials{Password: &pw}, []string{pw}, nil
	}
	return nil, nil, nil
}

func scrub(msg string, sensitive []string) string {
	for _, v := range sensitive {
		if v != "" {
			msg = strings.ReplaceAll(msg, v, redacted)
		}
	}
	return msg
}
