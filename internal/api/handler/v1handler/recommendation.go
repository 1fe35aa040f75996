package v1handler

import (
	"homefinder/internal/collector"
	"homefinder/pkg/domain"
	"net/http"
)

// FootprintResponse is returned by POST /v1/footprint.
type FootprintResponse struct {
	Footprint domain.DerivedFootprint `json:"footprint"`
	Query     string                  `json:"query"`
}

func (h Handler) collect(w http.ResponseWriter, r *http.Request) (domain.Submission, bool) {
	var in collector.Input
	if err := decode(w, r, &in); err != nil {
		h.NewError(r.Context(), w, err)

		return domain.Submission{}, false
	}

	sub, err := h.deps.Collector.Collect(in)
	if err != nil {
		h.NewError(r.Context(), w, err)

		return domain.Submission{}, false
	}

	return sub, true
}

// CreateRecommendation runs the full pipeline. An empty search is a 200 with
// outcome NO_RESULTS.
func (h Handler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.collect(w, r)
	if !ok {
		return
	}

	rec, err := h.deps.Finder.Find(r.Context(), sub)
	if err != nil {
		h.NewError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, rec)
}

// ComputeFootprint returns the derived area and query without calling any provider.
func (h Handler) ComputeFootprint(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.collect(w, r)
	if !ok {
		return
	}

	fp, q := h.deps.Finder.Footprint(sub)
	writeJSON(r.Context(), w, http.StatusOK, FootprintResponse{Footprint: fp, Query: q})
}
