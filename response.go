package pathway

import "net/http"

// Response is the abstract response value returned to the host.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// NewResponse creates a response with the given status and body.
func NewResponse(status int, body []byte) *Response {
	return &Response{
		Status: status,
		Header: make(http.Header),
		Body:   body,
	}
}

// TextResponse creates a text/plain response.
func TextResponse(status int, body string) *Response {
	resp := NewResponse(status, []byte(body))
	resp.Header.Set("Content-Type", "text/plain; charset=utf-8")
	return resp
}

// NotFoundResponse is the default response for unmatched requests when no
// not-found handler is registered: status 404, empty body, no headers.
func NotFoundResponse() *Response {
	return &Response{
		Status: http.StatusNotFound,
		Header: make(http.Header),
	}
}
