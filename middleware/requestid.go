package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/observability"
)

const (
	// RequestIDHeader is the header name for request ID.
	RequestIDHeader = "X-Request-ID"
)

// RequestID returns a middleware that assigns each call a request ID. An
// ID already present on the request is kept; otherwise a new UUID is
// generated. The ID is placed in the context for loggers and echoed on
// the response header.
func RequestID() pathway.Middleware {
	return RequestIDWithGenerator(func() string {
		return uuid.New().String()
	})
}

// RequestIDWithGenerator returns a request ID middleware using a custom
// ID generator.
func RequestIDWithGenerator(generator func() string) pathway.Middleware {
	return func(next pathway.Service) pathway.Service {
		return wrap(next, func(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = generator()
			}

			ctx = observability.ContextWithRequestID(ctx, requestID)

			resp, err := next.Call(ctx, req)
			if resp != nil {
				resp.Header.Set(RequestIDHeader, requestID)
			}
			return resp, err
		})
	}
}
