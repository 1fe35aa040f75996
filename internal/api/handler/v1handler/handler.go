// Package v1handler implements the JSON endpoints under /v1.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"homefinder/internal/collector"
	"homefinder/internal/finder"
	"homefinder/pkg/controller"
	"homefinder/pkg/logger"
	"homefinder/pkg/serrors"
	"homefinder/pkg/websearch"
	"net/http"

	"go.uber.org/zap"
)

// MaxBodyBytes limits request bodies.
const MaxBodyBytes = 64 << 10

// Deps are the services the handlers call.
type Deps struct {
	Finder    finder.Finder
	Collector *collector.Collector
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux.
func (h Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/recommendations", h.CreateRecommendation)
	mux.HandleFunc("POST /v1/footprint", h.ComputeFootprint)
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// ProviderStatus is the upstream status of a failed search call.
	ProviderStatus int `json:"providerStatus,omitempty"`
}

// NewError logs err and writes it as an Error body with the status that
// matches its kind. Internal failures are not described to the client.
func (h Handler) NewError(ctx context.Context, w http.ResponseWriter, err error) {
	status := controller.StatusFor(err)
	body := Error{
		Code:    serrors.KindOf(err).Error(),
		Message: err.Error(),
	}
	var pe *websearch.ProviderError
	if errors.As(err, &pe) {
		body.ProviderStatus = pe.StatusCode
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.String("code", body.Code))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}
	if status == http.StatusInternalServerError {
		body.Message = "internal error"
	}

	writeJSON(ctx, w, status, body)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not decode request body")
	}

	return nil
}
