package middleware

import (
	"context"
	"time"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/observability"
)

// Logging returns an access-log middleware. Each call is logged once on
// completion with its method, path, status and latency; failed calls are
// logged at error level with their cause.
func Logging(logger observability.Logger) pathway.Middleware {
	return func(next pathway.Service) pathway.Service {
		return wrap(next, func(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
			start := time.Now()
			resp, err := next.Call(ctx, req)
			latency := time.Since(start)

			fields := []observability.Field{
				observability.String("method", req.Method),
				observability.String("path", req.Path),
				observability.Duration("latency", latency),
			}

			l := logger.WithContext(ctx)
			switch {
			case err != nil:
				l.Error("request failed", append(fields, observability.Error(err))...)
			case resp.Status >= 500:
				l.Error("request completed", append(fields, observability.Int("status", resp.Status))...)
			case resp.Status >= 400:
				l.Warn("request completed", append(fields, observability.Int("status", resp.Status))...)
			default:
				l.Info("request completed", append(fields, observability.Int("status", resp.Status))...)
			}

			return resp, err
		})
	}
}
