package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tourops/tour-logistics/internal/model"
)

const transportColumns = `id, show_id, transport_type, driver_name, driver_phone, driver_company,
	confirmation_number, pickup_location, pickup_datetime, vehicle_type,
	airport_to_venue_minutes, price, notes, status, created_at, updated_at`

// TransportRepo manages persistence for ground transport records.
type TransportRepo struct {
	db *sql.DB
}

// NewTransportRepo constructs a TransportRepo with the given DB handle.
func NewTransportRepo(db *sql.DB) *TransportRepo {
	return &TransportRepo{db: db}
}

func scanTransport(row interface{ Scan(...any) error }, t *model.GroundTransport) error {
	return row.Scan(
		&t.ID, &t.ShowID, &t.TransportType, &t.DriverName, &t.DriverPhone, &t.DriverCompany,
		&t.ConfirmationNumber, &t.PickupLocation, &t.PickupDatetime, &t.VehicleType,
		&t.AirportToVenueMinutes, &t.Price, &t.Notes, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
}

// Create inserts a transport record and re-reads it to populate defaults.
func (r *TransportRepo) Create(ctx context.Context, t *model.GroundTransport) error {
	const q = `INSERT INTO ground_transports (show_id, transport_type, driver_name, driver_phone, driver_company,
		confirmation_number, pickup_location, pickup_datetime, vehicle_type,
		airport_to_venue_minutes, price, notes, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		t.ShowID, t.TransportType, t.DriverName, t.DriverPhone, t.DriverCompany,
		t.ConfirmationNumber, t.PickupLocation, t.PickupDatetime, t.VehicleType,
		t.AirportToVenueMinutes, t.Price, t.Notes, t.Status,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return scanTransport(r.db.QueryRowContext(ctx,
		`SELECT `+transportColumns+` FROM ground_transports WHERE id = ?`, t.ID), t)
}

// GetByID retrieves a transport record by ID scoped to its show.
func (r *TransportRepo) GetByID(ctx context.Context, showID, id uint64) (*model.GroundTransport, error) {
	var t model.GroundTransport
	err := scanTransport(r.db.QueryRowContext(ctx,
		`SELECT `+transportColumns+` FROM ground_transports WHERE id = ? AND show_id = ?`, id, showID), &t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransportNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByShow returns a show's transport records in creation order.  The
// first row is the one the risk engine reads.
func (r *TransportRepo) ListByShow(ctx context.Context, showID uint64) ([]model.GroundTransport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transportColumns+` FROM ground_transports WHERE show_id = ? ORDER BY id ASC`, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.GroundTransport
	for rows.Next() {
		var t model.GroundTransport
		if err := scanTransport(rows, &t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes all mutable transport fields.
func (r *TransportRepo) Update(ctx context.Context, t *model.GroundTransport) error {
	const q = `UPDATE ground_transports SET transport_type = ?, driver_name = ?, driver_phone = ?,
		driver_company = ?, confirmation_number = ?, pickup_location = ?, pickup_datetime = ?,
		vehicle_type = ?, airport_to_venue_minutes = ?, price = ?, notes = ?, status = ?,
		updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND show_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		t.TransportType, t.DriverName, t.DriverPhone, t.DriverCompany,
		t.ConfirmationNumber, t.PickupLocation, t.PickupDatetime, t.VehicleType,
		t.AirportToVenueMinutes, t.Price, t.Notes, t.Status,
		t.ID, t.ShowID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM ground_transports WHERE id = ? AND show_id = ? LIMIT 1`, t.ID, t.ShowID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransportNotFound
		}
		return err
	}
	return ErrNoChange
}

// Delete removes a transport record.
func (r *TransportRepo) Delete(ctx context.Context, showID, id uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM ground_transports WHERE id = ? AND show_id = ?`, id, showID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTransportNotFound
	}
	return nil
}
