package middleware

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/observability"
)

// Recovery returns a middleware that recovers from panics escaping the
// wrapped service's Call and converts them into a 500 response.
func Recovery(logger observability.Logger) pathway.Middleware {
	return func(next pathway.Service) pathway.Service {
		return wrap(next, func(ctx context.Context, req *pathway.Request) (resp *pathway.Response, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := debug.Stack()

					logger.WithContext(ctx).Error("panic recovered",
						observability.String("method", req.Method),
						observability.String("path", req.Path),
						observability.Any("error", rec),
						observability.String("stack", string(stack)),
					)

					resp = internalErrorResponse()
					err = nil
				}
			}()

			return next.Call(ctx, req)
		})
	}
}

// internalErrorResponse is the opaque 500 returned for recovered panics.
func internalErrorResponse() *pathway.Response {
	resp := pathway.NewResponse(http.StatusInternalServerError, []byte(`{"error":"internal server error"}`))
	resp.Header.Set("Content-Type", "application/json")
	return resp
}
