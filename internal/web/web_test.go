package web

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ppmconsultants/ppmsite/internal/config"
	"github.com/ppmconsultants/ppmsite/internal/contact"
	"github.com/ppmconsultants/ppmsite/internal/content"
	"github.com/ppmconsultants/ppmsite/internal/db"
)

type fixture struct {
	handler  *Handler
	contacts *contact.Store
	router   chi.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := content.NewStore("")
	require.NoError(t, err)

	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	f := &fixture{contacts: contact.NewStore(database, zaptest.NewLogger(t))}
	f.handler = New(Options{
		Content:  store,
		Contact:  f.contacts,
		Subjects: config.DefaultSubjects,
		Logger:   zaptest.NewLogger(t),
	})
	r := chi.NewRouter()
	f.handler.RegisterStatic(r)
	f.handler.RegisterRoutes(r)
	f.router = r
	return f
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (f *fixture) post(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPageTitles(t *testing.T) {
	f := newFixture(t)
	tests := map[string]string{
		"/":         "<title>PPM Consultants | Professional Business Consulting</title>",
		"/about":    "<title>About Us | PPM Consultants</title>",
		"/services": "<title>Our Services | PPM Consultants</title>",
		"/clients":  "<title>Our Clients | PPM Consultants</title>",
		"/contact":  "<title>Contact Us | PPM Consultants</title>",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			w := f.get(t, path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			body := w.Body.String()
			assert.True(t, strings.HasPrefix(body, "<!doctype html>"), "missing doctype")
			assert.Contains(t, body, want)
			assert.Contains(t, body, `href="`+cssPath+`"`)
		})
	}
}

func TestHomeHero(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/").Body.String()

	assert.Equal(t, 3, strings.Count(body, `class="hero-slide"`))
	assert.Equal(t, 1, strings.Count(body, `class="hero-slide is-active"`))
	for i := 1; i <= 4; i++ {
		assert.Contains(t, body, `aria-label="View slide `+strconv.Itoa(i)+`"`)
	}
	assert.Contains(t, body, `<h1 class="hero-title">Professional Partners for Project Delivery</h1>`)
	assert.Contains(t, body, `data-socket="/ws/hero"`)
	assert.Contains(t, body, `data-interval="6000"`)
	assert.Contains(t, body, heroJSPath)
}

func TestHeroIntervalFromOptions(t *testing.T) {
	store, err := content.NewStore("")
	require.NoError(t, err)

	tests := []struct {
		name     string
		interval time.Duration
		want     string
	}{
		{"disabled", 0, `data-interval="0"`},
		{"custom", 5 * time.Second, `data-interval="5000"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(Options{Content: store, HeroInterval: &tt.interval})
			var buf strings.Builder
			ok, err := h.Render(&buf, "/")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestHomeTestimonialPages(t *testing.T) {
	f := newFixture(t)

	first := f.get(t, "/").Body.String()
	assert.Contains(t, first, "Rahul Sharma")
	assert.Contains(t, first, "Priya Patel")
	assert.NotContains(t, first, "Vikram Singh")
	assert.Contains(t, first, `href="/?page=1#testimonials"`)
	assert.Contains(t, first, `class="slider-btn disabled" aria-label="Previous testimonials"`)

	second := f.get(t, "/?page=1").Body.String()
	assert.Contains(t, second, "Vikram Singh")
	assert.Contains(t, second, "Ananya Desai")
	assert.NotContains(t, second, "Rahul Sharma")

	clamped := f.get(t, "/?page=99").Body.String()
	assert.Contains(t, clamped, "Ananya Desai")
}

func TestClientsPage(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/clients").Body.String()
	assert.Equal(t, 8, strings.Count(body, `class="client-logo reveal"`))
	assert.Equal(t, 3, strings.Count(body, `class="card testimonial-card"`))
	assert.Contains(t, body, "Strategic Growth Acceleration")
	assert.Contains(t, body, "1 / 2")
}

func TestServicesAnchors(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/services").Body.String()
	for _, id := range []string{"business", "strategy", "finance", "operations"} {
		assert.Contains(t, body, `id="`+id+`"`)
	}
	assert.Contains(t, body, `class="service-detail split reverse"`)
}

func TestAboutStoryRendered(t *testing.T) {
	f := newFixture(t)
	body := f.get(t, "/about").Body.String()
	assert.Contains(t, body, "<strong>2008</strong>")
	assert.Contains(t, body, "Rajiv Mehta")
	assert.Contains(t, body, `aria-current="page"`)
}

func TestNotFound(t *testing.T) {
	f := newFixture(t)
	w := f.get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found | PPM Consultants")

	api := f.get(t, "/api/nope")
	assert.Equal(t, http.StatusNotFound, api.Code)
	assert.NotContains(t, api.Body.String(), "<html")
}

func TestContactSubmit(t *testing.T) {
	f := newFixture(t)
	w := f.post(t, url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"subject": {"Strategic Planning"},
		"message": {"Let's talk."},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Thank you! Your message has been sent successfully.")
	assert.Contains(t, body, `data-autohide="5000"`)
	assert.NotContains(t, body, `value="Jane Doe"`, "form should be cleared")

	subs, err := f.contacts.List(context.Background(), contact.ListFilter{})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Strategic Planning", subs[0].Subject)
}

func TestContactInvalid(t *testing.T) {
	f := newFixture(t)
	w := f.post(t, url.Values{
		"name":    {"Jane Doe"},
		"email":   {"not-an-email"},
		"subject": {"Strategic Planning"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Please enter a valid email address.")
	assert.Contains(t, body, "Please enter a message.")
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.Contains(t, body, `<option value="Strategic Planning" selected>`)

	n, err := f.contacts.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestContactWithoutStore(t *testing.T) {
	f := newFixture(t)
	f.handler.opts.Contact = nil
	w := f.post(t, url.Values{"name": {"Jane"}, "email": {"jane@example.com"}, "message": {"hi"}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStaticAssets(t *testing.T) {
	f := newFixture(t)
	for path := range StaticFiles() {
		w := f.get(t, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		etag := w.Header().Get("ETag")
		require.NotEmpty(t, etag)

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("If-None-Match", etag)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotModified, rec.Code, path)
	}
}

func TestRender(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	ok, err := f.handler.Render(&buf, "/services")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "Expert Consulting Services")

	ok, err = f.handler.Render(&buf, "/missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
