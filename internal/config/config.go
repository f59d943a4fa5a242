// Package config reads the Redis status handlers' settings from environment variables.
package config

import (
	"strconv"
	"strings"
)

const (
	// DefaultPort is used when no port variable is set.
	DefaultPort = 6379

	// DefaultServiceName is shown in the page title when SERVICE_NAME is unset.
	DefaultServiceName = "OIDC Service"
)

// Config holds everything one status check needs. It is read once and never mutated.
type Config struct {
	// Display name for the page title and header
	ServiceName string

	// Redis hostname, empty when not configured
	Host string

	// Redis port, only meaningful when PortValid is true
	Port      int
	PortValid bool

	// Identifier of the secret holding Redis credentials (secret-backed handler only)
	SecretRef string

	// Plaintext Redis password (redis-check handler only)
	Password string

	// Send Cache-Control: no-store with the response
	NoStore bool
}

// Configured reports whether a probe can be attempted.
func (c Config) Configured() bool {
	return c.Host != "" && c.PortValid
}

// SecretConfigured reports whether a secret reference was provided.
func (c Config) SecretConfigured() bool {
	return c.SecretRef != ""
}

// LoadRedisCheck reads the settings of the plain redis-check handler.
// The port is not configurable there and always defaults.
func LoadRedisCheck(getenv func(string) string) Config {
	return Config{
		ServiceName: serviceName(getenv),
		Host:        strings.TrimSpace(getenv("REDIS_HOST")),
		Port:        DefaultPort,
		PortValid:   true,
		Password:    getenv("REDIS_PASSWORD"),
	}
}

// LoadService reads the settings of the secret-backed service handler.
func LoadService(getenv func(string) string) Config {
	port, ok := parsePort(getenv("REDIS_CLUSTER_PORT"))
	return Config{
		ServiceName: serviceName(getenv),
		Host:        strings.TrimSpace(getenv("REDIS_CLUSTER_ENDPOINT")),
		Port:        port,
		PortValid:   ok,
		SecretRef:   strings.TrimSpace(getenv("SECRET_MANAGER_NAME_USERPASS")),
		NoStore:     true,
	}
}

func serviceName(getenv func(string) string) string {
	if name := getenv("SERVICE_NAME"); name != "" {
		return name
	}
	return DefaultServiceName
}

// parsePort never fails loudly: bad input comes back as ok=false.
func parsePort(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPort, true
	}
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 || p > 65535 {
		return 0, false
	}
	return p, true
}
