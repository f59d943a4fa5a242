package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsc11539/redis-status/internal/probe"
)

func TestPage_Success(t *testing.T) {
	body, err := Page(Report{
		ServiceName: "OIDC Service",
		Host:        "redis.local",
		Port:        6379,
		PortValid:   true,
		Result:      probe.Result{OK: true, Message: "PONG", Elapsed: 12 * time.Millisecond, Attempted: true},
	})
	require.NoError(t, err)

	assert.Contains(t, body, "<title>OIDC Service</title>")
	assert.Contains(t, body, "<h1>OIDC Service</h1>")
	assert.Contains(t, body, `<span class="badge ok">OK</span>`)
	assert.NotContains(t, body, `class="badge fail"`)
	assert.Contains(t, body, "<code>redis.local</code>")
	assert.Contains(t, body, "<code>6379</code>")
	assert.Contains(t, body, "Secret: <code>n/a</code>")
	assert.Contains(t, body, "<code>PONG</code>")
	assert.Contains(t, body, "<code>12 ms</code>")
}

func TestPage_NotConfigured(t *testing.T) {
	body, err := Page(Report{
		ServiceName: "OIDC Service",
		Port:        6379,
		PortValid:   true,
		Result:      probe.Result{Message: probe.NotConfiguredMessage},
	})
	require.NoError(t, err)

	assert.Contains(t, body, `<span class="badge fail">FAIL</span>`)
	assert.Contains(t, body, "Endpoint: <code>n/a</code>")
	assert.Contains(t, body, "Redis env not configured")
	assert.NotContains(t, body, "Time:")
}

func TestPage_InvalidPort(t *testing.T) {
	body, err := Page(Report{ServiceName: "svc", Host: "h", PortValid: false})
	require.NoError(t, err)
	assert.Contains(t, body, "Port: <code>n/a</code>")
}

func TestPage_SecretConfigured(t *testing.T) {
	body, err := Page(Report{ServiceName: "svc", SecretConfigured: true})
	require.NoError(t, err)
	assert.Contains(t, body, "Secret: <code>[configured]</code>")
}

func TestPage_EscapesText(t *testing.T) {
	body, err := Page(Report{
		ServiceName: "<b>svc</b>",
		Host:        `"><script>alert(1)</script>`,
		Result:      probe.Result{Message: "<img src=x onerror=alert(1)>", Attempted: true},
	})
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.NotContains(t, body, "<img")
	assert.NotContains(t, body, "<b>svc</b>")
	assert.Contains(t, body, "&lt;b&gt;svc&lt;/b&gt;")
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, map[string]string{"Content-Type": "text/html"}, Headers(false))
	assert.Equal(t, map[string]string{
		"Content-Type":  "text/html; charset=utf-8",
		"Cache-Control": "no-store",
	}, Headers(true))
}
