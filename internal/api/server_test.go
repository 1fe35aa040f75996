package api_test

import (
	"context"
	"fmt"
	"homefinder/internal/api"
	"homefinder/internal/collector"
	"homefinder/pkg/domain"
	"homefinder/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	mockfinder "homefinder/internal/finder/mock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*mockfinder.MockFinder, http.Handler) {
	t.Helper()

	return newTestHandlerWithTimeout(t, time.Minute)
}

func newTestHandlerWithTimeout(t *testing.T, timeout time.Duration) (*mockfinder.MockFinder, http.Handler) {
	t.Helper()

	f := mockfinder.NewMockFinder(gomock.NewController(t))
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	h, err := api.NewHandler(api.Deps{
		Finder:    f,
		Collector: collector.New(collector.DefaultBounds()),
	}, api.Options{
		RequestTimeout: timeout,
		MetricsPath:    "/metrics",
		AllowedOrigin:  "*",
		Gatherer:       reg,
	})
	require.NoError(t, err)

	return f, h
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHandler_Routes(t *testing.T) {
	_, h := newTestHandler(t)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{path: "/", status: http.StatusOK, contains: "Find Properties"},
		{path: "/metrics", status: http.StatusOK, contains: "go_goroutines"},
		{path: "/specs/v1.yaml", status: http.StatusOK, contains: "/v1/recommendations"},
		{path: "/v1/docs/", status: http.StatusOK, contains: "Home Finder"},
		{path: "/debug/pprof/", status: http.StatusOK, contains: "goroutine"},
		{path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(h, tt.path)
			require.Equal(t, tt.status, rec.Code)
			require.Contains(t, rec.Body.String(), tt.contains)
			require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
			require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestHandler_Footprint(t *testing.T) {
	f, h := newTestHandler(t)
	f.EXPECT().Footprint(gomock.Any()).Return(footprint(), "query")

	body := `{"familySize":2,"budget":2000000,"city":"Pune","locality":"Baner","propertyType":"apartment",
		"bedroomSizes":[150],"bathroomSizes":[60],"kitchenSize":120,"livingArea":200,"otherAreas":0}`
	req := httptest.NewRequest(http.MethodPost, "/v1/footprint", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"query":"query"`)
}

// blockUntilDeadline behaves like a provider call that outlives the request.
func blockUntilDeadline(ctx context.Context, _ domain.Submission) (*domain.Recommendation, error) {
	<-ctx.Done()

	return nil, fmt.Errorf("could not search: %w",
		serrors.Wrap(serrors.ErrSearchProvider, ctx.Err(), "could not send request"))
}

func TestHandler_Timeout(t *testing.T) {
	form := url.Values{
		"familySize":   {"4"},
		"budget":       {"7500000"},
		"city":         {"Kolkata"},
		"locality":     {"Newtown"},
		"propertyType": {"Flat"},
		"bedroomSize":  {"120", "150"},
		"bathroomSize": {"80"},
		"kitchenSize":  {"150"},
		"livingArea":   {"300"},
		"otherAreas":   {"50"},
	}
	body := `{"familySize":4,"budget":7500000,"city":"Kolkata","locality":"Newtown","propertyType":"Flat",
		"bedroomSizes":[120,150],"bathroomSizes":[80],"kitchenSize":150,"livingArea":300,"otherAreas":50}`

	t.Run("json", func(t *testing.T) {
		f, h := newTestHandlerWithTimeout(t, 20*time.Millisecond)
		f.EXPECT().Find(gomock.Any(), gomock.Any()).DoAndReturn(blockUntilDeadline)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/recommendations", strings.NewReader(body)))

		require.Equal(t, http.StatusGatewayTimeout, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		require.Contains(t, rec.Body.String(), `"code":"TIMEOUT"`)
	})

	t.Run("html", func(t *testing.T) {
		f, h := newTestHandlerWithTimeout(t, 20*time.Millisecond)
		f.EXPECT().Footprint(gomock.Any()).Return(footprint(), "query").AnyTimes()
		f.EXPECT().Find(gomock.Any(), gomock.Any()).DoAndReturn(blockUntilDeadline)

		req := httptest.NewRequest(http.MethodPost, "/find", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusGatewayTimeout, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		require.Contains(t, rec.Body.String(), "Error: could not search")
		require.NotContains(t, rec.Body.String(), `"code":"TIMEOUT"`)
	})
}

func footprint() domain.DerivedFootprint {
	return domain.DerivedFootprint{TotalCarpetArea: 530, SuperBuiltUpArea: 795, Multiplier: 1.5}
}
