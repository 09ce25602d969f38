package mocks

import (
	"context"
	"sync"

	"frontdesk/infras/otel"
)

// Otel hands out recording scopes and keeps them by span name.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

// NewOtel returns a tracer for tests that exports nothing.
func NewOtel() *Otel {
	return &Otel{scopes: map[string]*Scope{}}
}

var _ otel.Otel = (*Otel)(nil)

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := NewScope()

	o.mu.Lock()
	o.scopes[spanName] = scope
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the latest scope opened under spanName.
func (o *Otel) Scope(spanName string) (*Scope, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope, ok := o.scopes[spanName]

	return scope, ok
}
