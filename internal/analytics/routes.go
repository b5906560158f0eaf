package analytics

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxEventBody = 4 << 10

// RegisterRoutes mounts the event intake and stats endpoints.
func RegisterRoutes(r chi.Router, t *Tracker) {
	r.Post("/api/events", handleEvent(t))
	r.Get("/api/stats", handleStats(t))
}

func handleEvent(t *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ev Event
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBody))
		if err := dec.Decode(&ev); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}
		if err := t.TrackEvent(r.Context(), ev); err != nil {
			if errors.Is(err, ErrInvalidEvent) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			t.logger.Error("tracking event", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "event not recorded"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type stats struct {
	Enabled   bool         `json:"enabled"`
	PageViews []PathCount  `json:"page_views"`
	Events    []EventCount `json:"events"`
}

func handleStats(t *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := t.PageViews(r.Context())
		if err != nil {
			t.logger.Error("loading page views", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats unavailable"})
			return
		}
		events, err := t.Events(r.Context())
		if err != nil {
			t.logger.Error("loading events", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, stats{Enabled: t.enabled, PageViews: views, Events: events})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
