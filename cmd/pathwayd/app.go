package main

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/config"
	"github.com/go-pathway/pathway/middleware"
	"github.com/go-pathway/pathway/observability"
)

// app wires the router service, middleware chain and HTTP host together.
// The middleware chain wraps a swappable inner service, so a config
// reload replaces only the frozen router behind it.
type app struct {
	logger  observability.Logger
	inner   *swappableService
	handler http.Handler
	listen  string
}

func newApp(cfg *config.Config, logger observability.Logger) (*app, error) {
	router, err := buildRouter(cfg)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	inner := newSwappableService(router.Service())

	layers := []pathway.Middleware{
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recovery(logger),
		middleware.Metrics(middleware.NewServiceMetrics(registry)),
	}
	if cfg.Timeout > 0 {
		layers = append(layers, middleware.Timeout(cfg.Timeout.Duration(), logger))
	}
	if cfg.RateLimit != nil {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		layers = append(layers, middleware.RateLimit(limiter))
	}
	svc := middleware.Chain(layers...)(inner)

	mux := http.NewServeMux()
	if cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	mux.Handle("/", pathway.HTTPHandler(svc, logger))

	return &app{
		logger:  logger,
		inner:   inner,
		handler: mux,
		listen:  cfg.Listen,
	}, nil
}

// buildRouter builds a frozen-ready router of static-response handlers
// from the configuration.
func buildRouter(cfg *config.Config) (*pathway.Router, error) {
	r := pathway.New()
	for _, rc := range cfg.Routes {
		if err := r.Handle(rc.Method, rc.Pattern, staticHandler(rc.Response)); err != nil {
			return nil, err
		}
	}
	if cfg.NotFound != nil {
		if err := r.NotFound(staticHandler(*cfg.NotFound)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// staticHandler serves one configured response verbatim.
func staticHandler(sr config.StaticResponse) pathway.Handler {
	return pathway.HandlerFunc(func(_ context.Context, _ *pathway.Request) (*pathway.Response, error) {
		resp := pathway.NewResponse(sr.Status, []byte(sr.Body))
		for k, v := range sr.Headers {
			resp.Header.Set(k, v)
		}
		return resp, nil
	})
}

// swap rebuilds the router from a reloaded configuration and swaps it in.
// A rejected configuration keeps the current router serving.
func (a *app) swap(cfg *config.Config) {
	router, err := buildRouter(cfg)
	if err != nil {
		a.logger.Error("config reload rejected", observability.Error(err))
		return
	}
	a.inner.swap(router.Service())
	a.logger.Info("routes reloaded", observability.Int("routes", len(cfg.Routes)))
}

// serve runs the HTTP host until ctx is canceled, then shuts down
// gracefully.
func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.listen,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	a.logger.Info("pathwayd listening", observability.String("addr", a.listen))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// swappableService is a Service indirection whose target is replaced
// atomically on config reload. Each dispatch sees exactly one frozen
// router; in-flight calls keep the router they started with.
type swappableService struct {
	current atomic.Pointer[pathway.RouterService]
}

func newSwappableService(svc *pathway.RouterService) *swappableService {
	s := &swappableService{}
	s.current.Store(svc)
	return s
}

// Ready delegates to the current router service.
func (s *swappableService) Ready() bool {
	return s.current.Load().Ready()
}

// Call delegates to the current router service.
func (s *swappableService) Call(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
	return s.current.Load().Call(ctx, req)
}

// swap replaces the router service behind the indirection.
func (s *swappableService) swap(svc *pathway.RouterService) {
	s.current.Store(svc)
}
