// Package probe checks Redis connectivity with a single connect, PING and close.
package probe

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tsc11539/redis-status/internal/config"
	"github.com/tsc11539/redis-status/internal/secret"
)

// NotConfiguredMessage is reported when host or port is missing.
const NotConfiguredMessage = "Redis env not configured"

const noResponseMessage = "No response"

// Result is the outcome of one probe.
type Result struct {
	OK      bool
	Message string
	Elapsed time.Duration

	// Attempted is false when the probe short-circuited before dialing.
	Attempted bool
}

// ElapsedMillis returns Elapsed in whole milliseconds.
func (r Result) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}

// Client is the part of a Redis client the prober needs.
type Client interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Dialer builds a client for the given options.
type Dialer func(opts *redis.Options) Client

func dialRedis(opts *redis.Options) Client {
	return redis.NewClient(opts)
}

// Prober runs connectivity probes. It holds no connection between calls.
type Prober struct {
	dial        Dialer
	now         func() time.Time
	dialTimeout time.Duration
}

// Option configures a Prober.
type Option func(*Prober)

// WithDialer replaces the Redis client constructor.
func WithDialer(d Dialer) Option {
	return func(p *Prober) {
		p.dial = d
	}
}

// WithClock replaces the time source used for elapsed measurement.
func WithClock(now func() time.Time) Option {
	return func(p *Prober) {
		p.now = now
	}
}

// WithDialTimeout sets the client's dial timeout.
func WithDialTimeout(d time.Duration) Option {
	return func(p *Prober) {
		p.dialTimeout = d
	}
}

// New creates a Prober.
func New(opts ...Option) *Prober {
	p := &Prober{
		dial:        dialRedis,
		now:         time.Now,
		dialTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe connects to the configured Redis, sends PING and closes the client.
// Redis errors are reported in the result, never returned.
func (p *Prober) Probe(ctx context.Context, cfg config.Config, creds *secret.Credentials) Result {
	if !cfg.Configured() {
		return Result{OK: false, Message: NotConfiguredMessage}
	}

	opts := &redis.Options{
		Addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		DialTimeout: p.dialTimeout,
		PoolSize:    1,
		MaxRetries:  -1,
	}
	if creds != nil {
		if creds.Username != nil {
			opts.Username = *creds.Username
		}
		if creds.Password != nil {
			opts.Password = *creds.Password
		}
	}

	start := p.now()
	client := p.dial(opts)
	defer func() {
		_ = client.Close()
	}()

	reply, err := client.Ping(ctx).Result()
	elapsed := p.now().Sub(start)
	if err != nil {
		return Result{OK: false, Message: err.Error(), Elapsed: elapsed, Attempted: true}
	}

	msg := reply
	if msg == "" {
		msg = noResponseMessage
	}
	return Result{
		OK:        strings.EqualFold(reply, "pong"),
		Message:   msg,
		Elapsed:   elapsed,
		Attempted: true,
	}
}
