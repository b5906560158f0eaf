// Package analytics records anonymous page views and interaction events.
// Only the path or the event labels and a timestamp are stored.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/ppmconsultants/ppmsite/internal/db"
)

var ErrInvalidEvent = errors.New("analytics: category and action are required")

// Event is a named interaction, such as a hero indicator click.
type Event struct {
	Category string `json:"category"`
	Action   string `json:"action"`
	Label    string `json:"label,omitempty"`
}

// PathCount is the number of views recorded for one path.
type PathCount struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// EventCount is the number of times an event was recorded.
type EventCount struct {
	Category string `json:"category"`
	Action   string `json:"action"`
	Count    int    `json:"count"`
}

// Tracker writes analytics to the database. A disabled tracker accepts
// every call and stores nothing.
type Tracker struct {
	db       *db.DB
	logger   *zap.Logger
	enabled  bool
	excludes []string
}

// NewTracker creates a tracker. Paths matching any exclude glob are ignored.
func NewTracker(database *db.DB, logger *zap.Logger, enabled bool, excludes []string) (*Tracker, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid analytics exclude pattern %q", pattern)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{db: database, logger: logger, enabled: enabled, excludes: excludes}, nil
}

// Enabled reports whether the tracker stores anything.
func (t *Tracker) Enabled() bool { return t.enabled }

// Excluded reports whether path matches an exclude glob.
func (t *Tracker) Excluded(path string) bool {
	for _, pattern := range t.excludes {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// TrackPageView records a view of path unless tracking is off or the path
// is excluded.
func (t *Tracker) TrackPageView(ctx context.Context, path string) error {
	if !t.enabled || path == "" || t.Excluded(path) {
		return nil
	}
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO page_views (path, created_at) VALUES (?, ?)`,
		path, time.Now().UTC().Format(time.DateTime))
	if err != nil {
		return fmt.Errorf("recording page view: %w", err)
	}
	t.logger.Debug("page view", zap.String("path", path))
	return nil
}

// TrackEvent records an interaction event.
func (t *Tracker) TrackEvent(ctx context.Context, ev Event) error {
	ev.Category = strings.TrimSpace(ev.Category)
	ev.Action = strings.TrimSpace(ev.Action)
	ev.Label = strings.TrimSpace(ev.Label)
	if ev.Category == "" || ev.Action == "" {
		return ErrInvalidEvent
	}
	if !t.enabled {
		return nil
	}
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO analytics_events (category, action, label, created_at) VALUES (?, ?, ?, ?)`,
		ev.Category, ev.Action, ev.Label, time.Now().UTC().Format(time.DateTime))
	if err != nil {
		return fmt.Errorf("recording event: %w", err)
	}
	t.logger.Debug("event",
		zap.String("category", ev.Category),
		zap.String("action", ev.Action),
		zap.String("label", ev.Label))
	return nil
}

// PageViews returns view counts per path, most viewed first.
func (t *Tracker) PageViews(ctx context.Context) ([]PathCount, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views FROM page_views
		GROUP BY path ORDER BY views DESC, path ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying page views: %w", err)
	}
	defer rows.Close()

	counts := []PathCount{}
	for rows.Next() {
		var c PathCount
		if err := rows.Scan(&c.Path, &c.Views); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Events returns event counts grouped by category and action.
func (t *Tracker) Events(ctx context.Context) ([]EventCount, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT category, action, COUNT(*) AS n FROM analytics_events
		GROUP BY category, action ORDER BY n DESC, category ASC, action ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	counts := []EventCount{}
	for rows.Next() {
		var c EventCount
		if err := rows.Scan(&c.Category, &c.Action, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
