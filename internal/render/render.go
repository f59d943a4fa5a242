// Package render formats a Redis probe outcome as an HTML status page.
package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/tsc11539/redis-status/internal/probe"
)

const notAvailable = "n/a"

// Report is everything the page shows. It deliberately has no credential fields.
type Report struct {
	ServiceName      string
	Host             string
	Port             int
	PortValid        bool
	SecretConfigured bool
	Result           probe.Result
}

type view struct {
	ServiceName string
	OK          bool
	Endpoint    string
	Port        string
	Secret      string
	Message     string
	Attempted   bool
	ElapsedMs   int64
}

var page = template.Must(template.New("status").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.ServiceName}}</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif;margin:2rem}
.badge{display:inline-block;padding:.25rem .5rem;border-radius:.5rem;background:#eee}
.ok{background:#d1fae5}.fail{background:#fee2e2}
code{background:#f6f6f6;padding:.1rem .25rem;border-radius:.25rem}
</style>
</head>
<body>
<h1>{{.ServiceName}}</h1>
<p>Redis connectivity: {{if .OK}}<span class="badge ok">OK</span>{{else}}<span class="badge fail">FAIL</span>{{end}}</p>
<ul>
<li>Endpoint: <code>{{.Endpoint}}</code></li>
<li>Port: <code>{{.Port}}</code></li>
<li>Secret: <code>{{.Secret}}</code></li>
</ul>
<p>Details: <code>{{.Message}}</code></p>
{{- if .Attempted}}
<p>Time: <code>{{.ElapsedMs}} ms</code></p>
{{- end}}
</body>
</html>
`))

// Page renders the full HTML document.
func Page(r Report) (string, error) {
	v := view{
		ServiceName: r.ServiceName,
		OK:          r.Result.OK,
		Endpoint:    orNA(r.Host),
		Port:        notAvailable,
		Secret:      notAvailable,
		Message:     r.Result.Message,
		Attempted:   r.Result.Attempted,
		ElapsedMs:   r.Result.ElapsedMillis(),
	}
	if r.PortValid && r.Port > 0 {
		v.Port = strconv.Itoa(r.Port)
	}
	if r.SecretConfigured {
		v.Secret = "[configured]"
	}

	var b strings.Builder
	if err := page.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Headers returns the response headers for a status page.
func Headers(noStore bool) map[string]string {
	if noStore {
		return map[string]string{
			"Content-Type":  "text/html; charset=utf-8",
			"Cache-Control": "no-store",
		}
	}
	return map[string]string{"Content-Type": "text/html"}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
