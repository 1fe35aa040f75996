package main

import (
	"fmt"
	"homefinder/internal/collector"
	"homefinder/internal/config"
	"homefinder/internal/finder"
	"homefinder/pkg/metrics"
	"homefinder/pkg/serrors"
	"homefinder/pkg/summary/langchain"
	"homefinder/pkg/websearch/bing"
	"net/http"
)

// newFinder builds the pipeline and its provider clients from cfg. Provider
// credentials must be present.
func newFinder(cfg *config.Config, recorder *metrics.Recorder) (finder.Finder, error) {
	if err := cfg.ValidateCredentials(); err != nil {
		return nil, serrors.Wrap(serrors.ErrMisconfigured, err, "set the keys in the environment or a .env file")
	}

	search := bing.New(&http.Client{Timeout: cfg.Search.Timeout}, bing.Options{
		Endpoint:       cfg.Search.Endpoint,
		APIKey:         cfg.Search.APIKey,
		Count:          cfg.Search.Count,
		ResponseFilter: cfg.Search.ResponseFilter,
	})

	summarizer, err := langchain.NewFromOptions(&http.Client{Timeout: cfg.LLM.Timeout}, langchain.Options{
		Provider: cfg.LLM.Provider,
		BaseURL:  cfg.LLM.BaseURL,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create summary client: %w", err)
	}

	return finder.New(search, summarizer, recorder, finder.NewOptions(cfg)), nil
}

func newCollector(cfg *config.Config) *collector.Collector {
	return collector.New(collector.NewBounds(cfg))
}
