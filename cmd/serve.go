package main

import (
	"context"
	"errors"
	"fmt"
	"homefinder/internal/api"
	"homefinder/internal/config"
	"homefinder/pkg/logger"
	"homefinder/pkg/metrics"
	"homefinder/pkg/tracing"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config) (func(ctx context.Context), error) {
	mp, err := metrics.NewPrometheusProvider(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	recorder, err := metrics.New(mp.Meter(metrics.MeterName))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	tp := tracing.NewProvider(logger.Get(ctx))
	otel.SetTracerProvider(tp)

	f, err := newFinder(cfg, recorder)
	if err != nil {
		return nil, err
	}

	server, err := api.NewServer(api.Deps{
		Finder:    f,
		Collector: newCollector(cfg),
	}, api.NewOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("could not create webserver: %w", err)
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop tracer provider", zap.Error(err))
		}
	}, nil
}

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the web form and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopWebserver, err := setupServer(ctx, a.cfg)
			if err != nil {
				logger.Error(ctx, "could not start", zap.Error(err))

				return err
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			return nil
		},
	}

	return cmd
}
