package finder

import (
	"context"
	"homefinder/pkg/domain"
)

// Finder runs the requirement-to-recommendation pipeline.
//
//go:generate mockgen -package mockfinder -source=interface.go -destination=mock/mockfinder.go *
type Finder interface {
	// Footprint derives the floor area and search query without calling any provider.
	Footprint(sub domain.Submission) (domain.DerivedFootprint, string)
	// Find runs one full pass: compute, build query, search, summarize.
	Find(ctx context.Context, sub domain.Submission) (*domain.Recommendation, error)
}
