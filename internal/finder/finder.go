// Package finder wires the area calculator, query builder and provider
// clients into a single linear pass per submission.
package finder

import (
	"context"
	"fmt"
	"homefinder/internal/config"
	"homefinder/pkg/area"
	"homefinder/pkg/domain"
	"homefinder/pkg/logger"
	"homefinder/pkg/metrics"
	"homefinder/pkg/query"
	"homefinder/pkg/summary"
	"homefinder/pkg/websearch"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "homefinder/internal/finder"

// Options configure the pipeline.
type Options struct {
	// Multiplier converts carpet area into super built-up area.
	Multiplier float64
	// TracerProvider creates the span around Find, the global provider when nil.
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Multiplier: cfg.Area.SuperBuiltUpMultiplier}
}

type finder struct {
	options    Options
	search     websearch.Client
	summarizer summary.Client
	recorder   *metrics.Recorder
	tracer     trace.Tracer
}

// New returns a Finder. A nil recorder disables metrics.
func New(search websearch.Client, summarizer summary.Client, recorder *metrics.Recorder, opts Options) Finder {
	if opts.Multiplier <= 0 {
		opts.Multiplier = area.DefaultSuperBuiltUpMultiplier
	}
	if recorder == nil {
		recorder = metrics.Noop()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	return &finder{
		options:    opts,
		search:     search,
		summarizer: summarizer,
		recorder:   recorder,
		tracer:     opts.TracerProvider.Tracer(tracerName),
	}
}

func (f *finder) Footprint(sub domain.Submission) (domain.DerivedFootprint, string) {
	fp := area.Compute(sub.Rooms, sub.Breakdown, f.options.Multiplier)
	r := sub.Requirement

	return fp, query.Build(string(r.PropertyType), r.Locality, r.City, fp.SuperBuiltUpArea)
}

// Find never summarizes an empty result set and never returns partial
// output: any provider error aborts the pass.
func (f *finder) Find(ctx context.Context, sub domain.Submission) (*domain.Recommendation, error) {
	ctx, span := f.tracer.Start(ctx, "finder.Find", trace.WithAttributes(
		attribute.String("city", sub.Requirement.City),
		attribute.String("locality", sub.Requirement.Locality),
		attribute.String("property_type", string(sub.Requirement.PropertyType)),
	))
	defer span.End()
	if sc := span.SpanContext(); sc.HasTraceID() {
		ctx = logger.WithFields(ctx, zap.String("trace_id", sc.TraceID().String()))
	}

	rec, err := f.find(ctx, sub)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		f.recorder.Submission(ctx, metrics.OutcomeError)

		return nil, err
	}
	span.SetAttributes(attribute.String("outcome", string(rec.Outcome)))
	f.recorder.Submission(ctx, string(rec.Outcome))

	return rec, nil
}

func (f *finder) find(ctx context.Context, sub domain.Submission) (*domain.Recommendation, error) {
	fp, q := f.Footprint(sub)
	ctx = logger.WithFields(ctx, zap.Float64("super_built_up_area", fp.SuperBuiltUpArea))
	logger.Debug(ctx, "searching", zap.String("query", q))

	start := time.Now()
	results, err := f.search.Search(ctx, q)
	f.recorder.ProviderCall(ctx, metrics.ProviderSearch, start, err)
	if err != nil {
		return nil, fmt.Errorf("could not search: %w", err)
	}
	logger.Debug(ctx, "search finished", zap.Int("results", len(results)))

	rec := &domain.Recommendation{
		Footprint: fp,
		Query:     q,
		Results:   results,
	}
	if len(results) == 0 {
		rec.Outcome = domain.OutcomeNoResults
		rec.Hint = domain.NoResultsHint

		return rec, nil
	}

	start = time.Now()
	text, err := f.summarizer.Summarize(ctx, results, sub.Requirement)
	f.recorder.ProviderCall(ctx, metrics.ProviderLLM, start, err)
	if err != nil {
		return nil, fmt.Errorf("could not summarize: %w", err)
	}
	rec.Outcome = domain.OutcomeRecommendation
	rec.Summary = text

	return rec, nil
}
