// Package websearch defines the abstraction over web search providers used to
// look up property listings.
package websearch

import (
	"context"
	"fmt"
	"homefinder/pkg/domain"
)

// Client runs a single web search.
//
//go:generate mockgen -package mockwebsearch -source=interface.go -destination=mock/mockwebsearch.go *
type Client interface {
	// Search returns at most the configured number of hits for query. An
	// empty slice with a nil error means the provider found nothing.
	Search(ctx context.Context, query string) ([]domain.SearchResultItem, error)
}

// ProviderError is returned when the provider answers with a non-success
// status. Body holds the provider's raw message.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("search provider returned status %d: %s", e.StatusCode, e.Body)
}
