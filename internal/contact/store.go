package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ppmconsultants/ppmsite/internal/db"
)

// Store persists contact submissions.
type Store struct {
	db     *db.DB
	logger *zap.Logger
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: database, logger: logger}
}

// Submit validates and stores a form, returning the saved submission.
// Validation failures are returned as FieldErrors.
func (s *Store) Submit(ctx context.Context, f Form, subjects []string) (*Submission, error) {
	f = f.Normalize()
	if err := f.Validate(subjects); err != nil {
		return nil, err
	}

	sub := &Submission{
		ID:        uuid.New().String(),
		Form:      f,
		Status:    StatusNew,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, phone, subject, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, f.Name, f.Email, f.Phone, f.Subject, f.Message, string(sub.Status),
		sub.CreatedAt.Format(time.DateTime),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting contact submission: %w", err)
	}

	s.logger.Info("contact form submitted",
		zap.String("id", sub.ID),
		zap.String("subject", f.Subject),
		zap.Int("message_len", len(f.Message)))
	return sub, nil
}

// Get retrieves a single submission.
func (s *Store) Get(ctx context.Context, id string) (*Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, subject, message, status, created_at
		FROM contact_submissions WHERE id = ?`, id)
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sub, err
}

// ListFilter controls which submissions List returns.
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// List returns submissions, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Submission, error) {
	query := `SELECT id, name, email, phone, subject, message, status, created_at FROM contact_submissions`
	var args []any
	if filter.Status != "" {
		query += " WHERE status = ?"
		args = append(args, string(filter.Status))
	}
	query += " ORDER BY created_at DESC, rowid DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying contact submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

// SetStatus updates the follow-up status of a submission.
func (s *Store) SetStatus(ctx context.Context, id string, status Status) error {
	res, err := s.db.ExecContext(ctx, `UPDATE contact_submissions SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating contact submission: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of submissions with the given status, or all
// submissions when status is empty.
func (s *Store) Count(ctx context.Context, status Status) (int, error) {
	var n int
	var err error
	if status == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions WHERE status = ?`, string(status)).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("counting contact submissions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*Submission, error) {
	var (
		sub       Submission
		status    string
		createdAt string
	)
	if err := row.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Subject, &sub.Message, &status, &createdAt); err != nil {
		return nil, err
	}
	sub.Status = Status(status)
	sub.CreatedAt = parseTime(createdAt)
	return &sub, nil
}

func parseTime(s string) time.Time {
	for _, layout := range []string{time.DateTime, time.RFC3339, "2006-01-02T15:04:05Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
