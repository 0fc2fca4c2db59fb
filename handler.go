package pathway

import "context"

// Handler is the unit of application logic invoked on a route match. It
// receives the per-request context and produces a response or an error;
// a nil error must be accompanied by a non-nil response. Implementations
// must be safe for concurrent use: one handler value may serve many
// in-flight requests.
//
// Both plain functions (via HandlerFunc) and stateful types satisfy
// Handler, and a single route table may hold a mixture of the two.
type Handler interface {
	Serve(ctx context.Context, req *Request) (*Response, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Serve calls f(ctx, req).
func (f HandlerFunc) Serve(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
