// Package summary asks a language model whether the search hits contain
// properties that fit a household's budget.
package summary

import (
	"context"
	"homefinder/pkg/domain"
)

// Client produces a free-text recommendation from search results.
//
//go:generate mockgen -package mocksummary -source=interface.go -destination=mock/mocksummary.go *
type Client interface {
	// Summarize returns the model's answer verbatim. Failures are classified
	// as serrors.ErrLanguageModel.
	Summarize(ctx context.Context, results []domain.SearchResultItem, req domain.HouseholdRequirement) (string, error)
}
