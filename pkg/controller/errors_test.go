package controller_test

import (
	"context"
	"errors"
	"fmt"
	"homefinder/pkg/controller"
	"homefinder/pkg/serrors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: serrors.With(serrors.ErrBadRequest, "bad"), want: http.StatusBadRequest},
		{err: fmt.Errorf("x: %w", serrors.With(serrors.ErrSearchProvider, "search failed")), want: http.StatusBadGateway},
		{err: serrors.With(serrors.ErrLanguageModel, "no choices"), want: http.StatusBadGateway},
		{err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{err: serrors.Wrap(serrors.ErrLanguageModel, context.DeadlineExceeded, "could not generate content"), want: http.StatusGatewayTimeout},
		{err: serrors.With(serrors.ErrMisconfigured, "missing key"), want: http.StatusServiceUnavailable},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			require.Equal(t, tt.want, controller.StatusFor(tt.err))
		})
	}
}
