package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ActivityRepo handles the activity journal.
type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo { return &ActivityRepo{db: db} }

// Append inserts a. Missing ids and timestamps are filled in.
func (r *ActivityRepo) Append(ctx context.Context, a Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.At.IsZero() {
		a.At = time.Now().UTC().Truncate(time.Second)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO activity(id, at, namespace, dialog_key, action, detail)
	VALUES (?, ?, ?, ?, ?, ?);
	`, a.ID, a.At.UTC(), a.Namespace, a.Key, a.Action, a.Detail)
	return err
}

// Recent returns up to limit rows, newest first.
func (r *ActivityRepo) Recent(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, at, namespace, dialog_key, action, detail
	FROM activity
	ORDER BY at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.At, &a.Namespace, &a.Key, &a.Action, &a.Detail); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CountByAction tallies rows per action.
func (r *ActivityRepo) CountByAction(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT action, COUNT(*) FROM activity GROUP BY action`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, err
		}
		out[action] = n
	}
	return out, rows.Err()
}
