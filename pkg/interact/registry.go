package interact

import (
	"context"
	"slices"
	"sync"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
	"github.com/matzehuels/ringgraph/pkg/observability"
)

// Callback is a zero-argument click handler.
type Callback func()

// Registry maps action handles to callbacks. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Callback
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Callback)}
}

// Register binds handle to fn, replacing any previous binding.
// Empty handles and nil callbacks are ignored.
func (r *Registry) Register(handle string, fn Callback) {
	if handle == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[handle] = fn
}

// Unregister removes the binding for handle.
func (r *Registry) Unregister(handle string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, handle)
}

// Handles returns the registered handles, sorted.
func (r *Registry) Handles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for h := range r.handlers {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// Activate runs the callback bound to handle. An unknown handle yields
// ErrCodeNotFound and runs nothing. The callback runs on the caller's
// goroutine without the registry lock held.
func (r *Registry) Activate(ctx context.Context, handle string) error {
	r.mu.RLock()
	fn, ok := r.handlers[handle]
	r.mu.RUnlock()

	var err error
	if !ok {
		err = errs.New(errs.ErrCodeNotFound, "no handler registered for action %q", handle)
	}
	observability.Action().OnActivate(ctx, handle, err)
	if err != nil {
		return err
	}
	fn()
	return nil
}
