package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Middleware records a page view for every successful GET it serves.
func (t *Tracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !t.enabled {
			next.ServeHTTP(w, r)
			return
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if status >= 300 {
			return
		}
		if err := t.TrackPageView(r.Context(), r.URL.Path); err != nil {
			t.logger.Warn("page view not recorded", zap.String("path", r.URL.Path), zap.Error(err))
		}
	})
}
