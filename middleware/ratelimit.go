package middleware

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/go-pathway/pathway"
)

// RateLimit returns a middleware rejecting calls beyond the limiter's
// token-bucket budget with a 429 response. The limiter is shared across
// all calls through this layer.
func RateLimit(limiter *rate.Limiter) pathway.Middleware {
	return func(next pathway.Service) pathway.Service {
		return wrap(next, func(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
			if !limiter.Allow() {
				return rateLimitedResponse(), nil
			}
			return next.Call(ctx, req)
		})
	}
}

// rateLimitedResponse is the 429 returned for rejected calls.
func rateLimitedResponse() *pathway.Response {
	resp := pathway.NewResponse(http.StatusTooManyRequests, []byte(`{"error":"rate limit exceeded"}`))
	resp.Header.Set("Content-Type", "application/json")
	return resp
}
