// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the home finder service.
package api

import (
	_ "embed"
	"fmt"
	"homefinder/internal/api/handler/v1handler"
	"homefinder/internal/api/handler/webhandler"
	"homefinder/internal/collector"
	"homefinder/internal/config"
	"homefinder/internal/finder"
	"homefinder/pkg/controller"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the context of every request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigin is returned in Access-Control-Allow-Origin.
	AllowedOrigin string
	// Gatherer serves MetricsPath, prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigin:     cfg.HTTP.AllowedOrigin,
	}
}

// Deps are shared by the JSON and HTML handlers.
type Deps struct {
	Finder    finder.Finder
	Collector *collector.Collector
}

// NewHandler builds the routed and wrapped handler served by NewServer:
//   - Prometheus metrics endpoint (MetricsPath)
//   - embedded OpenAPI v1 spec and Swagger UI
//   - v1 JSON API and the HTML form
//   - pprof endpoints for profiling
//
// The mux is wrapped with CORS and logging middlewares and a request deadline.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Home Finder",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	v1handler.New(v1handler.Deps{Finder: deps.Finder, Collector: deps.Collector}).Register(mux)

	// html form
	web, err := webhandler.New(webhandler.Deps{Finder: deps.Finder, Collector: deps.Collector})
	if err != nil {
		return nil, fmt.Errorf("could not create web handler: %w", err)
	}
	web.Register(mux)

	// pprof
	mux.Handle("/debug/pprof/", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	// deadline, reported by each handler in its own format
	handler := controller.WithTimeout(opts.RequestTimeout)(mux)

	// cors
	handler = controller.WithCORS(opts.AllowedOrigin)(handler)

	// logger
	handler = controller.WithLogger(handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
