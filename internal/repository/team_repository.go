package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tourops/tour-logistics/internal/model"
)

const teamColumns = `id, tour_id, name, role, email, phone,
	emergency_contact_name, emergency_contact_phone, notes, created_at`

// TeamRepo manages persistence for tour team members.
type TeamRepo struct {
	db *sql.DB
}

// NewTeamRepo constructs a TeamRepo with the given DB handle.
func NewTeamRepo(db *sql.DB) *TeamRepo {
	return &TeamRepo{db: db}
}

func scanTeamMember(row interface{ Scan(...any) error }, m *model.TeamMember) error {
	return row.Scan(
		&m.ID, &m.TourID, &m.Name, &m.Role, &m.Email, &m.Phone,
		&m.EmergencyContactName, &m.EmergencyContactPhone, &m.Notes, &m.CreatedAt,
	)
}

// Create inserts a team member and re-reads it to populate defaults.
func (r *TeamRepo) Create(ctx context.Context, m *model.TeamMember) error {
	const q = `INSERT INTO team_members (tour_id, name, role, email, phone,
		emergency_contact_name, emergency_contact_phone, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		m.TourID, m.Name, m.Role, m.Email, m.Phone,
		m.EmergencyContactName, m.EmergencyContactPhone, m.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return scanTeamMember(r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM team_members WHERE id = ?`, m.ID), m)
}

// ListByTour returns a tour's team members in the order they were added.
func (r *TeamRepo) ListByTour(ctx context.Context, tourID uint64) ([]model.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM team_members WHERE tour_id = ? ORDER BY id ASC`, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.TeamMember
	for rows.Next() {
		var m model.TeamMember
		if err := scanTeamMember(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes all mutable team member fields.
func (r *TeamRepo) Update(ctx context.Context, m *model.TeamMember) error {
	const q = `UPDATE team_members SET name = ?, role = ?, email = ?, phone = ?,
		emergency_contact_name = ?, emergency_contact_phone = ?, notes = ?
		WHERE id = ? AND tour_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		m.Name, m.Role, m.Email, m.Phone,
		m.EmergencyContactName, m.EmergencyContactPhone, m.Notes,
		m.ID, m.TourID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM team_members WHERE id = ? AND tour_id = ? LIMIT 1`, m.ID, m.TourID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMemberNotFound
		}
		return err
	}
	return ErrNoChange
}

// Delete removes a team member.
func (r *TeamRepo) Delete(ctx context.Context, tourID, id uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM team_members WHERE id = ? AND tour_id = ?`, id, tourID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMemberNotFound
	}
	return nil
}
