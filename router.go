package pathway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Router maps (method, pattern) pairs to handlers. It has two phases:
// a build phase, during which routes, the not-found handler and shared
// state are registered, and a frozen phase, entered by Freeze or Service,
// after which the router is immutable and safe for unsynchronized
// concurrent dispatch from any number of goroutines.
type Router struct {
	tables   map[string]*table
	notFound Handler
	state    any
	frozen   atomic.Bool
	metrics  *dispatchMetrics
}

// New creates an empty router with no shared state.
func New() *Router {
	return NewWithState(nil)
}

// NewWithState creates an empty router whose state is attached to every
// dispatched request. The state is set exactly once here and never
// mutated by the router; it should be cheap to share (a pointer, or a
// small copyable value).
func NewWithState(state any) *Router {
	return &Router{
		tables:  make(map[string]*table),
		state:   state,
		metrics: newDispatchMetrics(),
	}
}

// Handle registers a handler for the given method and pattern. It returns
// a *ConfigurationError for malformed or duplicate patterns, and an error
// wrapping ErrFrozen once the router is frozen.
func (r *Router) Handle(method, pattern string, h Handler) error {
	if r.frozen.Load() {
		return fmt.Errorf("register %s %s: %w", method, pattern, ErrFrozen)
	}
	t, ok := r.tables[method]
	if !ok {
		t = newTable()
		r.tables[method] = t
	}
	if err := t.add(pattern, h); err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			cfgErr.Method = method
		}
		return err
	}
	return nil
}

// HandleFunc registers a plain function for the given method and pattern.
func (r *Router) HandleFunc(method, pattern string, f func(ctx context.Context, req *Request) (*Response, error)) error {
	return r.Handle(method, pattern, HandlerFunc(f))
}

// Get registers a handler for GET requests.
func (r *Router) Get(pattern string, h Handler) error {
	return r.Handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (r *Router) Post(pattern string, h Handler) error {
	return r.Handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (r *Router) Put(pattern string, h Handler) error {
	return r.Handle(http.MethodPut, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (r *Router) Patch(pattern string, h Handler) error {
	return r.Handle(http.MethodPatch, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (r *Router) Delete(pattern string, h Handler) error {
	return r.Handle(http.MethodDelete, pattern, h)
}

// NotFound installs the fallback handler invoked when no pattern matches
// the request's method and path. The last registration wins. Like route
// registration it is only allowed during the build phase.
func (r *Router) NotFound(h Handler) error {
	if r.frozen.Load() {
		return fmt.Errorf("register not-found handler: %w", ErrFrozen)
	}
	r.notFound = h
	return nil
}

// Freeze ends the build phase. Registration calls fail afterwards.
// Freeze is idempotent.
func (r *Router) Freeze() {
	r.frozen.Store(true)
}

// MustRegisterMetrics registers the router's dispatch collectors with reg,
// panicking on collision. Dispatch updates the collectors whether or not
// they are registered anywhere.
func (r *Router) MustRegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(r.metrics.collectors()...)
}

// Dispatch routes a request to its handler and returns the handler's
// result unchanged, including any error. Matching never crosses methods:
// a path registered under a different method is an unmatched path. When
// nothing matches, the not-found handler runs if installed; otherwise the
// default 404 response is returned and this path never produces an error.
//
// Matching and lookup are synchronous and never block; only the handler's
// own body may suspend on ctx.
func (r *Router) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()

	if t, ok := r.tables[req.Method]; ok {
		if h, params, ok := t.match(req.Path); ok {
			resp, err := h.Serve(ctx, req.withRoute(params, r.state))
			r.metrics.observe(req.Method, true, start)
			return resp, err
		}
	}

	if r.notFound != nil {
		resp, err := r.notFound.Serve(ctx, req)
		r.metrics.observe(req.Method, false, start)
		return resp, err
	}
	r.metrics.observe(req.Method, false, start)
	return NotFoundResponse(), nil
}

// Service freezes the router and wraps it in a shared RouterService
// handle for hosts and middleware.
func (r *Router) Service() *RouterService {
	return NewRouterService(r)
}
