package secret

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Credentials is an optional Redis username/password pair.
// A nil field means the secret did not provide it.
type Credentials struct {
	Username *string
	Password *string
}

// Candidate keys in priority order. Secrets are provisioned by different
// tooling, so each spelling has to be accepted.
var (
	usernameKeys = []string{"username", "user"}
	passwordKeys = []string{"password", "redis_password", "authToken", "token"}
)

// ParseCredentials extracts credentials from a secret payload.
//
// A JSON object yields whichever aliased fields it has. A payload that is not
// JSON at all is taken as a bare password. An empty payload, or a JSON scalar,
// yields nil.
func ParseCredentials(payload string) *Credentials {
	data := []byte(payload)
	if !json.Valid(data) {
		if payload == "" {
			return nil
		}
		return &Credentials{Password: &payload}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}

	switch doc := v.(type) {
	case map[string]any:
		return &Credentials{
			Username: lookup(doc, usernameKeys),
			Password: lookup(doc, passwordKeys),
		}
	case []any:
		// Arrays parse as objects without any of the expected keys.
		return &Credentials{}
	default:
		return nil
	}
}

func lookup(doc map[string]any, keys []string) *string {
	for _, k := range keys {
		if s, ok := text(doc[k]); ok {
			return &s
		}
	}
	return nil
}

func text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
