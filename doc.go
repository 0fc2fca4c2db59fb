// Package pathway is a lightweight HTTP request router with a generic
// request/response service contract.
//
// A Router maps (method, pattern) pairs to handlers. Patterns are
// /-delimited and support three kinds of segments:
//
//   - literals: /users/active
//   - params:   /users/:id          (captures one segment as "id")
//   - wildcards: /files/*path or /files/*  (captures the rest of the path)
//
// A wildcard must be the final segment of its pattern. Malformed patterns
// are rejected at registration time with a *ConfigurationError; dispatch
// never sees them.
//
// Routers are built once and then frozen:
//
//	r := pathway.New()
//	r.Get("/hello/:name", pathway.HandlerFunc(hello))
//	svc := r.Service() // freezes the router
//
// After freezing, the router is immutable and safe for unsynchronized
// concurrent dispatch. The RouterService returned by Service implements
// the two-phase Service contract (Ready + Call) consumed by hosts and
// middleware; MakeRouterService hands the same shared handle to each
// connection. HTTPHandler bridges a Service to net/http.
//
// Handlers receive a request context carrying the matched path parameters
// and the router's shared state:
//
//	func hello(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
//		name := req.Params().Get("name")
//		return pathway.TextResponse(http.StatusOK, "Hello "+name+"!"), nil
//	}
//
// Unmatched requests resolve to the registered not-found handler, or to a
// default 404 response with an empty body.
package pathway
