package pathway

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Service is the generic two-phase request/response contract consumed by
// hosts and middleware: a readiness report and a call. Handler errors
// cross this boundary as plain error values; that is the single erased
// error type of the contract.
type Service interface {
	// Ready reports whether the service can accept a call.
	Ready() bool

	// Call dispatches one request. It honors ctx cancellation: an
	// abandoned call returns ctx.Err() promptly while any in-flight
	// handler work drains in the background without side effects on
	// shared routing state.
	Call(ctx context.Context, req *Request) (*Response, error)
}

// Middleware wraps a Service with additional behavior. Timeouts, retries
// and backpressure are composed around the router service this way; the
// core performs exactly one dispatch attempt per call.
type Middleware func(Service) Service

// RouterService exposes a frozen Router as a Service. The zero-cost
// handle is shared: copies and per-connection instances all reference the
// same underlying router.
type RouterService struct {
	router *Router
}

// NewRouterService freezes the router and wraps it. After this point
// registration calls on the router fail with ErrFrozen.
func NewRouterService(r *Router) *RouterService {
	r.Freeze()
	return &RouterService{router: r}
}

// Ready always reports true: the router service keeps no queue and
// applies no backpressure of its own.
func (s *RouterService) Ready() bool {
	return true
}

// callResult carries a dispatch outcome across the goroutine boundary.
type callResult struct {
	resp *Response
	err  error
}

// Call dispatches the request on its own goroutine and awaits either the
// result or ctx. The result channel is buffered so an abandoned call
// never blocks the dispatching goroutine; a panicking handler is
// recovered there and surfaced as an error rather than tearing down the
// process.
func (s *RouterService) Call(ctx context.Context, req *Request) (*Response, error) {
	done := make(chan callResult, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- callResult{err: fmt.Errorf("handler panic: %v\n%s", rec, debug.Stack())}
			}
		}()
		resp, err := s.router.Dispatch(ctx, req)
		done <- callResult{resp: resp, err: err}
	}()

	select {
	case res := <-done:
		// A nil response with a nil error would make hosts dereference
		// nil; surface the broken handler as an error instead.
		if res.err == nil && res.resp == nil {
			return nil, fmt.Errorf("handler for %s %s returned neither a response nor an error", req.Method, req.Path)
		}
		return res.resp, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// MakeRouterService is the per-connection factory phase of the service
// contract. Because the router is immutable and shared, every connection
// receives the same service handle and no per-connection state exists.
type MakeRouterService struct {
	service *RouterService
}

// NewMakeRouterService freezes the router and creates its factory.
func NewMakeRouterService(r *Router) *MakeRouterService {
	return &MakeRouterService{service: NewRouterService(r)}
}

// Ready always reports true.
func (m *MakeRouterService) Ready() bool {
	return true
}

// MakeService yields the service instance for one connection. The conn
// argument is an opaque connection-establishment signal and is not
// inspected.
func (m *MakeRouterService) MakeService(_ context.Context, _ any) (Service, error) {
	return m.service, nil
}
