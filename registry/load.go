package registry

import (
	"context"
	"fmt"

	"github.com/vk/lazyext/internal/ctxlog"
)

// Load returns the initialized value for a package ID. The first successful
// call runs the factory; every later call returns the same value without
// re-running it. An unknown ID fails with an error wrapping ErrNotRegistered.
// A factory error is reported to every waiter and leaves nothing cached.
func (r *Registry) Load(ctx context.Context, id string) (any, error) {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	if val, ok := r.loaded[id]; ok {
		r.mu.Unlock()
		return val, nil
	}
	if c, ok := r.inflight[id]; ok {
		// Another goroutine is initializing this ID. Wait for its result.
		r.mu.Unlock()
		<-c.done
		return c.val, c.err
	}
	factory, ok := r.factories[id]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("package '%s': %w", id, ErrNotRegistered)
	}
	c := &call{done: make(chan struct{})}
	r.inflight[id] = c
	r.mu.Unlock()

	logger.Debug("Initializing extension package.", "id", id)
	val, err := factory(ctx)
	if err != nil {
		err = fmt.Errorf("package '%s' failed to initialize: %w", id, err)
	}
	c.val, c.err = val, err

	r.mu.Lock()
	delete(r.inflight, id)
	if c.err == nil {
		r.loaded[id] = c.val
	}
	r.mu.Unlock()
	close(c.done)

	return c.val, c.err
}
