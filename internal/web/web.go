// Package web renders the marketing site pages and serves them over HTTP.
package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/ppmconsultants/ppmsite/internal/contact"
	"github.com/ppmconsultants/ppmsite/internal/content"
	"github.com/ppmconsultants/ppmsite/internal/rotator"
)

const maxFormBytes = 64 << 10

// Pages lists the routes rendered for every site build.
var Pages = []string{"/", "/about", "/services", "/clients", "/contact"}

// Options configures the page handlers.
type Options struct {
	Content  *content.Store
	Contact  *contact.Store
	Subjects []string
	// HeroInterval is the auto-advance period advertised on the hero. Nil
	// means rotator.DefaultInterval; zero means auto-advance is off.
	HeroInterval *time.Duration
	// ImagesDir, when set, is served under /images/.
	ImagesDir string
	Logger    *zap.Logger
}

// Handler renders pages from the current site content.
type Handler struct {
	opts     Options
	interval time.Duration
	logger   *zap.Logger
}

// New creates a Handler.
func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := rotator.DefaultInterval
	if opts.HeroInterval != nil {
		interval = *opts.HeroInterval
	}
	return &Handler{opts: opts, interval: interval, logger: logger}
}

// RegisterRoutes mounts the page routes and the not-found handler.
func (h *Handler) RegisterRoutes(r chi.Router) {
	for _, path := range Pages {
		r.Get(path, h.handlePage(path))
	}
	r.Post("/contact", h.handleContact)
	r.NotFound(h.handleNotFound)
}

// RegisterStatic mounts stylesheets, scripts and images.
func (h *Handler) RegisterStatic(r chi.Router) {
	for path, asset := range staticAssets {
		r.Get(path, serveAsset(asset))
	}
	if h.opts.ImagesDir != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(h.opts.ImagesDir))))
	}
}

// Render writes the page at path, reporting false for unknown paths.
func (h *Handler) Render(w io.Writer, path string) (bool, error) {
	node, ok := h.page(path, 0)
	if !ok {
		return false, nil
	}
	return true, node.Render(w)
}

// RenderNotFound writes the 404 page.
func (h *Handler) RenderNotFound(w io.Writer) error {
	return NotFoundPage(h.opts.Content.Site()).Render(w)
}

func (h *Handler) page(path string, testimonialPage int) (g.Node, bool) {
	site := h.opts.Content.Site()
	switch path {
	case "/":
		return HomePage(site, h.interval.Milliseconds(), testimonialPage), true
	case "/about":
		return AboutPage(site), true
	case "/services":
		return ServicesPage(site), true
	case "/clients":
		return ClientsPage(site, testimonialPage), true
	case "/contact":
		return ContactPage(site, ContactFormState{Subjects: h.opts.Subjects}), true
	}
	return nil, false
}

func (h *Handler) handlePage(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		node, _ := h.page(path, page)
		h.render(w, r, http.StatusOK, node)
	}
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	site := h.opts.Content.Site()
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, ContactPage(site, ContactFormState{
			Subjects: h.opts.Subjects,
			Error:    "We could not read your message. Please try again.",
		}))
		return
	}

	form := contact.Form{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}
	st := ContactFormState{Values: form.Normalize(), Subjects: h.opts.Subjects}

	if h.opts.Contact == nil {
		st.Error = "The contact form is not available right now. Please email us instead."
		h.render(w, r, http.StatusServiceUnavailable, ContactPage(site, st))
		return
	}

	_, err := h.opts.Contact.Submit(r.Context(), form, h.opts.Subjects)
	var fieldErrs contact.FieldErrors
	switch {
	case err == nil:
		h.render(w, r, http.StatusOK, ContactPage(site, ContactFormState{Success: true, Subjects: h.opts.Subjects}))
	case errors.As(err, &fieldErrs):
		st.Errors = fieldErrs
		h.render(w, r, http.StatusUnprocessableEntity, ContactPage(site, st))
	default:
		h.logger.Error("saving contact submission", zap.Error(err))
		st.Error = "Something went wrong sending your message. Please try again."
		h.render(w, r, http.StatusInternalServerError, ContactPage(site, st))
	}
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	h.render(w, r, http.StatusNotFound, NotFoundPage(h.opts.Content.Site()))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		h.logger.Warn("rendering page", zap.String("path", r.URL.Path), zap.Error(err))
	}
}
