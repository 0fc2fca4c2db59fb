package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/observability"
)

// Timeout returns a middleware that bounds each call's duration. On
// expiry the wrapped call is abandoned (any in-flight handler drains in
// the background) and a 504 response is returned in its place.
// Cancellations originating from the caller's own context are passed
// through unchanged.
func Timeout(timeout time.Duration, logger observability.Logger) pathway.Middleware {
	return func(next pathway.Service) pathway.Service {
		return wrap(next, func(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
			tctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			resp, err := next.Call(tctx, req)

			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				logger.WithContext(ctx).Warn("request timeout",
					observability.String("method", req.Method),
					observability.String("path", req.Path),
					observability.Duration("timeout", timeout),
				)
				return timeoutResponse(), nil
			}

			return resp, err
		})
	}
}

// timeoutResponse is the 504 returned when the layer's own deadline fires.
func timeoutResponse() *pathway.Response {
	resp := pathway.NewResponse(http.StatusGatewayTimeout, []byte(`{"error":"gateway timeout"}`))
	resp.Header.Set("Content-Type", "application/json")
	return resp
}
