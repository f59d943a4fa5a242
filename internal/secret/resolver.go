package secret

import (
	"context"
	"errors"
	"fmt"
)

var errNoStore = errors.New("resolve secret: no secret store available")

// Resolution is the outcome of a credential lookup.
type Resolution struct {
	// Configured is false when no secret reference was given and the store
	// was never consulted.
	Configured bool

	// Credentials is nil when nothing usable was found.
	Credentials *Credentials

	// Raw is the fetched payload text, kept only so callers can scrub it from
	// anything they display.
	Raw string
}

// Resolver turns a secret reference into credentials. Nothing is cached;
// every call hits the store.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver. A nil store is allowed as long as Resolve
// is only called with an empty reference.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve fetches and parses the secret named by ref.
func (r *Resolver) Resolve(ctx context.Context, ref string) (Resolution, error) {
	if ref == "" {
		return Resolution{}, nil
	}
	if r.store == nil {
		return Resolution{Configured: true}, errNoStore
	}

	p, err := r.store.GetSecret(ctx, ref)
	if err != nil {
		return Resolution{Configured: true}, fmt.Errorf("resolve secret: %w", err)
	}

	res := Resolution{Configured: true}
	if raw, ok := p.Text(); ok {
		res.Raw = raw
		res.Credentials = ParseCredentials(raw)
	}
	return res, nil
}
