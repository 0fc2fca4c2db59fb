package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/go-pathway/pathway"
)

// CircuitBreaker returns a middleware running each call through a
// gobreaker circuit. Calls that return an error count as failures; while
// the circuit is open, calls are rejected with a 503 without reaching the
// wrapped service.
func CircuitBreaker(settings gobreaker.Settings) pathway.Middleware {
	cb := gobreaker.NewCircuitBreaker(settings)

	return func(next pathway.Service) pathway.Service {
		return wrap(next, func(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
			result, err := cb.Execute(func() (interface{}, error) {
				return next.Call(ctx, req)
			})
			if err != nil {
				if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
					return circuitOpenResponse(), nil
				}
				return nil, err
			}
			return result.(*pathway.Response), nil
		})
	}
}

// circuitOpenResponse is the 503 returned while the circuit is open.
func circuitOpenResponse() *pathway.Response {
	resp := pathway.NewResponse(http.StatusServiceUnavailable, []byte(`{"error":"service unavailable"}`))
	resp.Header.Set("Content-Type", "application/json")
	return resp
}
