package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/config"
	"github.com/go-pathway/pathway/observability"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Routes: []config.Route{
			{
				Method:  http.MethodGet,
				Pattern: "/hello/:name",
				Response: config.StaticResponse{
					Status:  http.StatusOK,
					Body:    "hello",
					Headers: map[string]string{"X-Source": "config"},
				},
			},
			{
				Method:   http.MethodPost,
				Pattern:  "/things",
				Response: config.StaticResponse{Status: http.StatusCreated, Body: "created"},
			},
		},
		NotFound: &config.StaticResponse{Status: http.StatusNotFound, Body: "nope"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestBuildRouter(t *testing.T) {
	t.Parallel()

	router, err := buildRouter(testConfig())
	require.NoError(t, err)

	resp, err := router.Dispatch(context.Background(), pathway.NewRequest(http.MethodGet, "/hello/alice"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "hello", string(resp.Body))
	assert.Equal(t, "config", resp.Header.Get("X-Source"))

	resp, err = router.Dispatch(context.Background(), pathway.NewRequest(http.MethodPost, "/things"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)

	resp, err = router.Dispatch(context.Background(), pathway.NewRequest(http.MethodGet, "/missing"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "nope", string(resp.Body))
}

func TestBuildRouter_InvalidPattern(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Routes[0].Pattern = "/a/*rest/b"

	_, err := buildRouter(cfg)
	require.Error(t, err)

	var cfgErr *pathway.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSwappableService(t *testing.T) {
	t.Parallel()

	r1 := pathway.New()
	require.NoError(t, r1.Get("/", pathway.HandlerFunc(func(_ context.Context, _ *pathway.Request) (*pathway.Response, error) {
		return pathway.TextResponse(http.StatusOK, "one"), nil
	})))

	r2 := pathway.New()
	require.NoError(t, r2.Get("/", pathway.HandlerFunc(func(_ context.Context, _ *pathway.Request) (*pathway.Response, error) {
		return pathway.TextResponse(http.StatusOK, "two"), nil
	})))

	svc := newSwappableService(r1.Service())
	assert.True(t, svc.Ready())

	resp, err := svc.Call(context.Background(), pathway.NewRequest(http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, "one", string(resp.Body))

	svc.swap(r2.Service())

	resp, err = svc.Call(context.Background(), pathway.NewRequest(http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(resp.Body))
}

func TestApp_SwapRejectsBadConfig(t *testing.T) {
	t.Parallel()

	a, err := newApp(testConfig(), observability.NopLogger())
	require.NoError(t, err)

	bad := testConfig()
	bad.Routes[0].Pattern = "/a/*rest/b"
	a.swap(bad)

	// The previous route table keeps serving.
	resp, err := a.inner.Call(context.Background(), pathway.NewRequest(http.MethodGet, "/hello/alice"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(resp.Body))
}

func TestApp_ServesHTTP(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Metrics.Enabled = true

	a, err := newApp(cfg, observability.NopLogger())
	require.NoError(t, err)

	srv := httptest.NewServer(a.handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/hello/alice")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	metrics, err := http.Get(srv.URL + cfg.Metrics.Path)
	require.NoError(t, err)
	defer func() { _ = metrics.Body.Close() }()
	assert.Equal(t, http.StatusOK, metrics.StatusCode)
}

func TestApp_HotSwapChangesResponses(t *testing.T) {
	t.Parallel()

	a, err := newApp(testConfig(), observability.NopLogger())
	require.NoError(t, err)

	srv := httptest.NewServer(a.handler)
	defer srv.Close()

	next := testConfig()
	next.Routes[0].Response.Body = "bonjour"
	a.swap(next)

	resp, err := http.Get(srv.URL + "/hello/alice")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	buf := make([]byte, 16)
	n, _ := resp.Body.Read(buf)
	assert.Equal(t, "bonjour", string(buf[:n]))
}
