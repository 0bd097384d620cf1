package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tourops/tour-logistics/internal/model"
)

const hotelColumns = `id, show_id, hotel_name, hotel_address, hotel_phone, confirmation_number,
	check_in_date, check_in_time, check_out_date, check_out_time, room_type,
	distance_to_venue_minutes, distance_to_airport_minutes, price_per_night,
	early_checkin_available, late_checkout_available, notes, status, created_at, updated_at`

// HotelRepo manages persistence for hotel records.
type HotelRepo struct {
	db *sql.DB
}

// NewHotelRepo constructs a HotelRepo with the given DB handle.
func NewHotelRepo(db *sql.DB) *HotelRepo {
	return &HotelRepo{db: db}
}

func scanHotel(row interface{ Scan(...any) error }, h *model.Hotel) error {
	return row.Scan(
		&h.ID, &h.ShowID, &h.HotelName, &h.HotelAddress, &h.HotelPhone, &h.ConfirmationNumber,
		&h.CheckInDate, &h.CheckInTime, &h.CheckOutDate, &h.CheckOutTime, &h.RoomType,
		&h.DistanceToVenueMinutes, &h.DistanceToAirportMinutes, &h.PricePerNight,
		&h.EarlyCheckinAvailable, &h.LateCheckoutAvailable, &h.Notes, &h.Status,
		&h.CreatedAt, &h.UpdatedAt,
	)
}

// Create inserts a hotel record and re-reads it to populate defaults.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) error {
	const q = `INSERT INTO hotels (show_id, hotel_name, hotel_address, hotel_phone, confirmation_number,
		check_in_date, check_in_time, check_out_date, check_out_time, room_type,
		distance_to_venue_minutes, distance_to_airport_minutes, price_per_night,
		early_checkin_available, late_checkout_available, notes, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		h.ShowID, h.HotelName, h.HotelAddress, h.HotelPhone, h.ConfirmationNumber,
		h.CheckInDate, h.CheckInTime, h.CheckOutDate, h.CheckOutTime, h.RoomType,
		h.DistanceToVenueMinutes, h.DistanceToAirportMinutes, h.PricePerNight,
		h.EarlyCheckinAvailable, h.LateCheckoutAvailable, h.Notes, h.Status,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	return scanHotel(r.db.QueryRowContext(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = ?`, h.ID), h)
}

// GetByID retrieves a hotel by ID scoped to its show.
func (r *HotelRepo) GetByID(ctx context.Context, showID, id uint64) (*model.Hotel, error) {
	var h model.Hotel
	err := scanHotel(r.db.QueryRowContext(ctx,
		`SELECT `+hotelColumns+` FROM hotels WHERE id = ? AND show_id = ?`, id, showID), &h)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &h, nil
}

// ListByShow returns a show's hotel records.
func (r *HotelRepo) ListByShow(ctx context.Context, showID uint64) ([]model.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE show_id = ?`, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Hotel
	for rows.Next() {
		var h model.Hotel
		if err := scanHotel(rows, &h); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update writes all mutable hotel fields.
func (r *HotelRepo) Update(ctx context.Context, h *model.Hotel) error {
	const q = `UPDATE hotels SET hotel_name = ?, hotel_address = ?, hotel_phone = ?, confirmation_number = ?,
		check_in_date = ?, check_in_time = ?, check_out_date = ?, check_out_time = ?, room_type = ?,
		distance_to_venue_minutes = ?, distance_to_airport_minutes = ?, price_per_night = ?,
		early_checkin_available = ?, late_checkout_available = ?, notes = ?, status = ?,
		updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND show_id = ?`
	res, err := r.db.ExecContext(ctx, q,
		h.HotelName, h.HotelAddress, h.HotelPhone, h.ConfirmationNumber,
		h.CheckInDate, h.CheckInTime, h.CheckOutDate, h.CheckOutTime, h.RoomType,
		h.DistanceToVenueMinutes, h.DistanceToAirportMinutes, h.PricePerNight,
		h.EarlyCheckinAvailable, h.LateCheckoutAvailable, h.Notes, h.Status,
		h.ID, h.ShowID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM hotels WHERE id = ? AND show_id = ? LIMIT 1`, h.ID, h.ShowID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrHotelNotFound
		}
		return err
	}
	return ErrNoChange
}

// Delete removes a hotel record.
func (r *HotelRepo) Delete(ctx context.Context, showID, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = ? AND show_id = ?`, id, showID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHotelNotFound
	}
	return nil
}
