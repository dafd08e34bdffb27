package store

import (
	"context"
	"strings"
	"time"

	"github.com/lorenzapy/brandsite/internal/model"
)

// CreateEventParams holds the fields for CreateEvent.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	UserID    int64 // 0 means no associated user
	IPAddress string
	Metadata  string
	CreatedAt time.Time
}

// CreateEvent inserts an event log row.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	// Audit rows must never be lost to a user id that no longer resolves
	// (deleted account, stale session); store NULL instead.
	var userID any
	if arg.UserID != 0 {
		var exists bool
		if err := q.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, arg.UserID).Scan(&exists); err != nil {
			return err
		}
		if exists {
			userID = arg.UserID
		}
	}
	metadata := arg.Metadata
	if metadata == "" {
		metadata = "{}"
	}
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO events (level, category, message, user_id, ip_address, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, userID, arg.IPAddress, metadata, arg.CreatedAt)
	return err
}

// ListRecentEvents returns the newest events, at most limit rows.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, level, category, message, user_id, ip_address, metadata, created_at
		 FROM events ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message,
			&e.UserID, &e.IPAddress, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// DeleteOldEvents removes events older than cutoff and reports how many
// rows were deleted.
func (q *Queries) DeleteOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// IsMissingTable reports whether err is SQLite's missing-table error.
// The public testimonial read tolerates it during a rolling migration,
// serving defaults instead of failing.
func IsMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
