package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ppmconsultants/ppmsite/internal/db"
)

var testExcludes = []string{"/static/**", "/ws/**", "/api/**", "/healthz"}

func newTracker(t *testing.T, enabled bool) *Tracker {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	tr, err := NewTracker(database, zaptest.NewLogger(t), enabled, testExcludes)
	require.NoError(t, err)
	return tr
}

func TestNewTrackerRejectsBadPattern(t *testing.T) {
	_, err := NewTracker(nil, nil, true, []string{"/static/[**"})
	assert.Error(t, err)
}

func TestExcluded(t *testing.T) {
	tr := newTracker(t, true)
	for path, want := range map[string]bool{
		"/":                    false,
		"/about":               false,
		"/static/css/site.css": true,
		"/ws/hero":             true,
		"/api/events":          true,
		"/healthz":             true,
	} {
		assert.Equal(t, want, tr.Excluded(path), path)
	}
}

func TestPageViewCounts(t *testing.T) {
	tr := newTracker(t, true)
	ctx := context.Background()

	for _, p := range []string{"/", "/about", "/", "/static/app.js", "/"} {
		require.NoError(t, tr.TrackPageView(ctx, p))
	}

	counts, err := tr.PageViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PathCount{{Path: "/", Views: 3}, {Path: "/about", Views: 1}}, counts)
}

func TestDisabledTrackerStoresNothing(t *testing.T) {
	tr := newTracker(t, false)
	ctx := context.Background()

	require.NoError(t, tr.TrackPageView(ctx, "/"))
	require.NoError(t, tr.TrackEvent(ctx, Event{Category: "hero", Action: "goto"}))

	views, err := tr.PageViews(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
	events, err := tr.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestTrackEventValidation(t *testing.T) {
	tr := newTracker(t, true)
	err := tr.TrackEvent(context.Background(), Event{Category: " ", Action: "click"})
	assert.True(t, errors.Is(err, ErrInvalidEvent))
}

func TestMiddlewareTracksSuccessfulGets(t *testing.T) {
	tr := newTracker(t, true)

	r := chi.NewRouter()
	r.Use(tr.Middleware)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("home")) })
	r.Post("/contact", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/static/site.css", func(w http.ResponseWriter, r *http.Request) {})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/", nil),
		httptest.NewRequest(http.MethodGet, "/missing", nil),
		httptest.NewRequest(http.MethodPost, "/contact", nil),
		httptest.NewRequest(http.MethodGet, "/static/site.css", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	counts, err := tr.PageViews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []PathCount{{Path: "/", Views: 1}}, counts)
}

func TestRoutes(t *testing.T) {
	tr := newTracker(t, true)
	r := chi.NewRouter()
	RegisterRoutes(r, tr)

	post := func(body string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body)))
		return w.Code
	}
	assert.Equal(t, http.StatusNoContent, post(`{"category":"hero","action":"goto","label":"2"}`))
	assert.Equal(t, http.StatusNoContent, post(`{"category":"hero","action":"goto","label":"3"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"category":"hero"}`))
	assert.Equal(t, http.StatusBadRequest, post(`not json`))

	require.NoError(t, tr.TrackPageView(context.Background(), "/services"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got stats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.True(t, got.Enabled)
	assert.Equal(t, []PathCount{{Path: "/services", Views: 1}}, got.PageViews)
	assert.Equal(t, []EventCount{{Category: "hero", Action: "goto", Count: 2}}, got.Events)
}
