// Package secret fetches Redis credentials from a secret store and parses them.
package secret

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Payload is the raw content of a secret. At most one of String and Binary is
// normally set.
type Payload struct {
	String *string
	Binary []byte
}

// Text returns the payload as text. Binary content is decoded as UTF-8 with
// invalid sequences replaced.
func (p Payload) Text() (string, bool) {
	if p.String != nil {
		return *p.String, true
	}
	if p.Binary != nil {
		s := string(p.Binary)
		if !utf8.ValidString(s) {
			s = strings.ToValidUTF8(s, string(utf8.RuneError))
		}
		return s, true
	}
	return "", false
}

// Store is a read-only secret source.
type Store interface {
	GetSecret(ctx context.Context, id string) (Payload, error)
}

// NotFoundError is returned when a secret id is unknown to the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("secret %q not found", e.ID)
}
