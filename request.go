package pathway

import "net/http"

// Request is the abstract request value exchanged with the host. The core
// consumes only the already-parsed method and path; header, body and
// remote address are carried through untouched for handlers.
//
// The routing captures and shared state are explicit, closed fields set
// only by dispatch, not an open type-keyed extension bag, so handlers
// get typed access without runtime type lookups on arbitrary keys.
type Request struct {
	Method     string
	Path       string
	Header     http.Header
	Body       []byte
	RemoteAddr string

	params *Params
	state  any
}

// NewRequest creates a request for the given method and path.
func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Header: make(http.Header),
	}
}

// Params returns the path captures of the matched route. It is nil for
// requests that have not been dispatched and for the not-found path, but
// its accessors are nil-safe.
func (r *Request) Params() *Params {
	return r.params
}

// State returns the router's shared state, or nil if none was configured
// or the request was not dispatched through a router.
func (r *Request) State() any {
	return r.state
}

// StateAs returns the router's shared state as T. The second return is
// false if no state was configured or it is not a T.
func StateAs[T any](r *Request) (T, bool) {
	s, ok := r.state.(T)
	return s, ok
}

// withRoute returns a shallow copy carrying the match captures and shared
// state. Dispatch copies rather than mutates so concurrent dispatches of
// the same request value cannot observe each other.
func (r *Request) withRoute(params *Params, state any) *Request {
	r2 := *r
	r2.params = params
	r2.state = state
	return &r2
}
