package repository

import (
	"context"
	"database/sql"

	"github.com/tourops/tour-logistics/internal/model"
)

const activityColumns = `id, tour_id, show_id, action_type, description, created_by, created_at`

// ActivityRepo manages the append-only activity trail.  Inserts come
// from the queue consumer; reads back the recent slice for the UI.
type ActivityRepo struct {
	db *sql.DB
}

// NewActivityRepo constructs an ActivityRepo with the given DB handle.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Insert appends one activity entry.
func (r *ActivityRepo) Insert(ctx context.Context, a *model.ActivityLog) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_logs (tour_id, show_id, action_type, description, created_by)
		VALUES (?, ?, ?, ?, ?)`,
		a.TourID, a.ShowID, a.ActionType, a.Description, a.CreatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// ListByTour returns a tour's most recent activity, newest first.
func (r *ActivityRepo) ListByTour(ctx context.Context, tourID uint64) ([]model.ActivityLog, error) {
	return r.list(ctx,
		`SELECT `+activityColumns+` FROM activity_logs WHERE tour_id = ? ORDER BY created_at DESC, id DESC LIMIT 50`,
		tourID)
}

// ListByShow returns a show's most recent activity, newest first.
func (r *ActivityRepo) ListByShow(ctx context.Context, showID uint64) ([]model.ActivityLog, error) {
	return r.list(ctx,
		`SELECT `+activityColumns+` FROM activity_logs WHERE show_id = ? ORDER BY created_at DESC, id DESC LIMIT 20`,
		showID)
}

func (r *ActivityRepo) list(ctx context.Context, q string, arg any) ([]model.ActivityLog, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.ActivityLog
	for rows.Next() {
		var a model.ActivityLog
		if err := rows.Scan(&a.ID, &a.TourID, &a.ShowID, &a.ActionType, &a.Description,
			&a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
