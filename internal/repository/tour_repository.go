package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tourops/tour-logistics/internal/model"
)

// tourColumns is the column list shared by every tour SELECT so scans
// stay aligned with a single definition.
const tourColumns = `id, name, artist_name, start_date, end_date,
	tour_manager_name, tour_manager_phone, tour_manager_email,
	production_contact_name, production_contact_phone,
	agent_name, agent_phone, management_name, management_phone,
	notes, created_at, updated_at`

// TourRepo manages persistence for tours.
type TourRepo struct {
	db *sql.DB
}

// NewTourRepo constructs a TourRepo with the given DB handle.
func NewTourRepo(db *sql.DB) *TourRepo {
	return &TourRepo{db: db}
}

func scanTour(row interface{ Scan(...any) error }, t *model.Tour) error {
	return row.Scan(
		&t.ID, &t.Name, &t.ArtistName, &t.StartDate, &t.EndDate,
		&t.TourManagerName, &t.TourManagerPhone, &t.TourManagerEmail,
		&t.ProductionContactName, &t.ProductionContactPhone,
		&t.AgentName, &t.AgentPhone, &t.ManagementName, &t.ManagementPhone,
		&t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
}

// Create inserts a new tour and re-reads the row so DB defaults
// (timestamps) are populated on the struct.
func (r *TourRepo) Create(ctx context.Context, t *model.Tour) error {
	const q = `INSERT INTO tours (name, artist_name, start_date, end_date,
		tour_manager_name, tour_manager_phone, tour_manager_email,
		production_contact_name, production_contact_phone,
		agent_name, agent_phone, management_name, management_phone, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		t.Name, t.ArtistName, t.StartDate, t.EndDate,
		t.TourManagerName, t.TourManagerPhone, t.TourManagerEmail,
		t.ProductionContactName, t.ProductionContactPhone,
		t.AgentName, t.AgentPhone, t.ManagementName, t.ManagementPhone, t.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return scanTour(r.db.QueryRowContext(ctx, `SELECT `+tourColumns+` FROM tours WHERE id = ?`, t.ID), t)
}

// GetByID retrieves a tour by its ID.  It returns ErrTourNotFound if
// there is no matching row.
func (r *TourRepo) GetByID(ctx context.Context, id uint64) (*model.Tour, error) {
	var t model.Tour
	err := scanTour(r.db.QueryRowContext(ctx, `SELECT `+tourColumns+` FROM tours WHERE id = ?`, id), &t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns all tours ordered by start date, newest first.
func (r *TourRepo) List(ctx context.Context) ([]model.Tour, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+tourColumns+` FROM tours ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Tour
	for rows.Next() {
		var t model.Tour
		if err := scanTour(rows, &t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes all mutable tour fields.  The handler loads the
// existing row and applies partial input before calling this, so a
// full-column UPDATE is safe.  Returns ErrTourNotFound when the row
// does not exist.
func (r *TourRepo) Update(ctx context.Context, t *model.Tour) error {
	const q = `UPDATE tours SET name = ?, artist_name = ?, start_date = ?, end_date = ?,
		tour_manager_name = ?, tour_manager_phone = ?, tour_manager_email = ?,
		production_contact_name = ?, production_contact_phone = ?,
		agent_name = ?, agent_phone = ?, management_name = ?, management_phone = ?,
		notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		t.Name, t.ArtistName, t.StartDate, t.EndDate,
		t.TourManagerName, t.TourManagerPhone, t.TourManagerEmail,
		t.ProductionContactName, t.ProductionContactPhone,
		t.AgentName, t.AgentPhone, t.ManagementName, t.ManagementPhone,
		t.Notes, t.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	// RowsAffected is 0 both for a missing row and for a no-op write;
	// distinguish the two.
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM tours WHERE id = ? LIMIT 1`, t.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTourNotFound
		}
		return err
	}
	return ErrNoChange
}

// Delete removes a tour and everything hanging off it: shows with all
// their travel records and checklists, team members and the activity
// trail.  The cascade runs inside one transaction so a failure leaves
// the tour intact.
func (r *TourRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM tours WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTourNotFound
		}
		return err
	}

	for _, q := range []string{
		`DELETE FROM flights WHERE show_id IN (SELECT id FROM shows WHERE tour_id = ?)`,
		`DELETE FROM hotels WHERE show_id IN (SELECT id FROM shows WHERE tour_id = ?)`,
		`DELETE FROM ground_transports WHERE show_id IN (SELECT id FROM shows WHERE tour_id = ?)`,
		`DELETE FROM checklist_instances WHERE show_id IN (SELECT id FROM shows WHERE tour_id = ?)`,
		`DELETE FROM activity_logs WHERE tour_id = ?`,
		`DELETE FROM team_members WHERE tour_id = ?`,
		`DELETE FROM shows WHERE tour_id = ?`,
		`DELETE FROM tours WHERE id = ?`,
	} {
		if _, err = tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}
