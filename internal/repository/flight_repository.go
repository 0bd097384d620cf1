package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tourops/tour-logistics/internal/model"
)

const flightColumns = `id, show_id, origin_airport, destination_airport, option_number,
	airline, flight_number, departure_datetime, arrival_datetime,
	is_primary, is_backup, confirmation_number, airline_phone,
	price, status, notes, created_at, updated_at`

// FlightRepo manages persistence for flight options.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

func scanFlight(row interface{ Scan(...any) error }, f *model.Flight) error {
	return row.Scan(
		&f.ID, &f.ShowID, &f.OriginAirport, &f.DestinationAirport, &f.OptionNumber,
		&f.Airline, &f.FlightNumber, &f.DepartureDatetime, &f.ArrivalDatetime,
		&f.IsPrimary, &f.IsBackup, &f.ConfirmationNumber, &f.AirlinePhone,
		&f.Price, &f.Status, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
}

// Create inserts a flight option and re-reads it to populate defaults.
func (r *FlightRepo) Create(ctx context.Context, f *model.Flight) error {
	const q = `INSERT INTO flights (show_id, origin_airport, destination_airport, option_number,
		airline, flight_number, departure_datetime, arrival_datetime,
		is_primary, is_backup, confirmation_number, airline_phone, price, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		f.ShowID, f.OriginAirport, f.DestinationAirport, f.OptionNumber,
		f.Airline, f.FlightNumber, f.DepartureDatetime, f.ArrivalDatetime,
		f.IsPrimary, f.IsBackup, f.ConfirmationNumber, f.AirlinePhone,
		f.Price, f.Status, f.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return scanFlight(r.db.QueryRowContext(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = ?`, f.ID), f)
}

// GetByID retrieves a flight by ID, scoped to its show so a client
// cannot address another show's flight through the nested route.
func (r *FlightRepo) GetByID(ctx context.Context, showID, id uint64) (*model.Flight, error) {
	var f model.Flight
	err := scanFlight(r.db.QueryRowContext(ctx,
		`SELECT `+flightColumns+` FROM flights WHERE id = ? AND show_id = ?`, id, showID), &f)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListByShow returns a show's flight options ordered by option number.
func (r *FlightRepo) ListByShow(ctx context.Context, showID uint64) ([]model.Flight, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+flightColumns+` FROM flights WHERE show_id = ? ORDER BY option_number ASC`, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Flight
	for rows.Next() {
		var f model.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ClearPrimary unsets the primary flag on all of a show's flights
// except the given one (pass 0 to clear every flight).  Called before
// a flight is marked primary so at most one option carries the flag.
func (r *FlightRepo) ClearPrimary(ctx context.Context, showID, exceptID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE flights SET is_primary = FALSE WHERE show_id = ? AND id <> ?`, showID, exceptID)
	return err
}

// Update writes all mutable flight fields.
func (r *FlightRepo) Update(ctx context.Context, f *model.Flight) error {
	const q = `UPDATE flights SET origin_airport = ?, destination_airport = ?, option_number = ?,
		airline = ?, flight_number = ?, departure_datetime = ?, arrival_datetime = ?,
		is_primary = ?, is_backup = ?, confirmation_number = ?, airline_phone = ?,
		price = ?, status = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND show_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		f.OriginAirport, f.DestinationAirport, f.OptionNumber,
		f.Airline, f.FlightNumber, f.DepartureDatetime, f.ArrivalDatetime,
		f.IsPrimary, f.IsBackup, f.ConfirmationNumber, f.AirlinePhone,
		f.Price, f.Status, f.Notes,
		f.ID, f.ShowID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM flights WHERE id = ? AND show_id = ? LIMIT 1`, f.ID, f.ShowID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFlightNotFound
		}
		return err
	}
	return ErrNoChange
}

// Delete removes a flight option.
func (r *FlightRepo) Delete(ctx context.Context, showID, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM flights WHERE id = ? AND show_id = ?`, id, showID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrFlightNotFound
	}
	return nil
}
