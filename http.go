package pathway

import (
	"io"
	"net/http"

	"github.com/go-pathway/pathway/observability"
)

// HTTPHandler bridges a Service to a net/http host. The host owns
// byte-level HTTP concerns (parsing, keep-alive, TLS, streaming); the
// bridge only translates between the host's request/response values and
// the abstract ones of the service contract.
//
// Service errors are mapped to a 500 response here and logged with their
// cause; what a host makes of service errors is a host decision, and this
// bridge is one such host.
func HTTPHandler(svc Service, logger observability.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("failed to read request body",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.Error(err),
			)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		req := &Request{
			Method:     r.Method,
			Path:       r.URL.Path,
			Header:     r.Header.Clone(),
			Body:       body,
			RemoteAddr: r.RemoteAddr,
		}

		resp, err := svc.Call(r.Context(), req)
		if err != nil {
			logger.WithContext(r.Context()).Error("service call failed",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.Error(err),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":"internal server error"}`)
			return
		}

		for key, values := range resp.Header {
			for _, v := range values {
				w.Header().Add(key, v)
			}
		}
		w.WriteHeader(resp.Status)
		_, _ = w.Write(resp.Body)
	})
}
