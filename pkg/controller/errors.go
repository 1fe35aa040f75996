package controller

import (
	"homefinder/pkg/serrors"
	"net/http"
)

// StatusFor maps the semantic kind of err to an HTTP status code.
func StatusFor(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrSearchProvider, serrors.ErrLanguageModel:
		return http.StatusBadGateway
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrMisconfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
