// Package middleware provides composable middleware for pathway services.
//
// Every middleware wraps a pathway.Service and returns another, so layers
// compose around the router's service adapter without the core knowing
// about them. Chain applies layers outermost-first:
//
//	svc := middleware.Chain(
//		middleware.RequestID(),
//		middleware.Logging(logger),
//		middleware.Recovery(logger),
//		middleware.Timeout(5*time.Second, logger),
//	)(router.Service())
package middleware

import (
	"context"

	"github.com/go-pathway/pathway"
)

// Chain composes middleware so the first argument is the outermost layer.
func Chain(layers ...pathway.Middleware) pathway.Middleware {
	return func(svc pathway.Service) pathway.Service {
		for i := len(layers) - 1; i >= 0; i-- {
			svc = layers[i](svc)
		}
		return svc
	}
}

// wrapped is a Service whose Call is replaced and whose readiness is
// delegated to the wrapped service.
type wrapped struct {
	next pathway.Service
	call func(ctx context.Context, req *pathway.Request) (*pathway.Response, error)
}

// Ready delegates to the wrapped service.
func (w *wrapped) Ready() bool {
	return w.next.Ready()
}

// Call invokes the replacement call function.
func (w *wrapped) Call(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
	return w.call(ctx, req)
}

// wrap builds a Service around next with a replaced Call.
func wrap(next pathway.Service, call func(ctx context.Context, req *pathway.Request) (*pathway.Response, error)) pathway.Service {
	return &wrapped{next: next, call: call}
}
