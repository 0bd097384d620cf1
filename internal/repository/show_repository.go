package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tourops/tour-logistics/internal/model"
)

// showColumns keeps the wide show SELECT list in one place; scanShow
// must stay aligned with it.
const showColumns = `id, tour_id, show_number, city, state_country,
	venue_name, venue_address, show_date,
	on_stage_time, set_length_minutes, doors_time, curfew_time,
	required_on_site_time, soundcheck_time, soundcheck_duration_minutes, load_in_time,
	venue_contact_name, venue_contact_email, venue_contact_phone,
	day_of_contact_name, day_of_contact_phone,
	production_contact_name, production_contact_phone,
	parking_instructions, credentials_process, green_room_info, catering_info, wifi_info,
	venue_capacity, age_restriction,
	guarantee, door_split, merch_split, settlement_time, deposit_received, deposit_amount,
	overall_status, venue_status, risk_level,
	risk_notes, backup_plan, special_notes, post_show_notes,
	created_at, updated_at`

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

func scanShow(row interface{ Scan(...any) error }, s *model.Show) error {
	return row.Scan(
		&s.ID, &s.TourID, &s.ShowNumber, &s.City, &s.StateCountry,
		&s.VenueName, &s.VenueAddress, &s.ShowDate,
		&s.OnStageTime, &s.SetLengthMinutes, &s.DoorsTime, &s.CurfewTime,
		&s.RequiredOnSiteTime, &s.SoundcheckTime, &s.SoundcheckDurationMinutes, &s.LoadInTime,
		&s.VenueContactName, &s.VenueContactEmail, &s.VenueContactPhone,
		&s.DayOfContactName, &s.DayOfContactPhone,
		&s.ProductionContactName, &s.ProductionContactPhone,
		&s.ParkingInstructions, &s.CredentialsProcess, &s.GreenRoomInfo, &s.CateringInfo, &s.WifiInfo,
		&s.VenueCapacity, &s.AgeRestriction,
		&s.Guarantee, &s.DoorSplit, &s.MerchSplit, &s.SettlementTime, &s.DepositReceived, &s.DepositAmount,
		&s.OverallStatus, &s.VenueStatus, &s.RiskLevel,
		&s.RiskNotes, &s.BackupPlan, &s.SpecialNotes, &s.PostShowNotes,
		&s.CreatedAt, &s.UpdatedAt,
	)
}

// Create inserts a new show and re-reads the row to populate DB
// defaults.  The caller assigns ShowNumber before the insert (the
// handler auto-numbers from CountByTour when the client omits it).
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (tour_id, show_number, city, state_country,
		venue_name, venue_address, show_date,
		on_stage_time, set_length_minutes, doors_time, curfew_time,
		required_on_site_time, soundcheck_time, soundcheck_duration_minutes, load_in_time,
		venue_contact_name, venue_contact_email, venue_contact_phone,
		day_of_contact_name, day_of_contact_phone,
		production_contact_name, production_contact_phone,
		parking_instructions, credentials_process, green_room_info, catering_info, wifi_info,
		venue_capacity, age_restriction,
		guarantee, door_split, merch_split, settlement_time, deposit_received, deposit_amount,
		overall_status, venue_status, risk_level,
		risk_notes, backup_plan, special_notes, post_show_notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.TourID, s.ShowNumber, s.City, s.StateCountry,
		s.VenueName, s.VenueAddress, s.ShowDate,
		s.OnStageTime, s.SetLengthMinutes, s.DoorsTime, s.CurfewTime,
		s.RequiredOnSiteTime, s.SoundcheckTime, s.SoundcheckDurationMinutes, s.LoadInTime,
		s.VenueContactName, s.VenueContactEmail, s.VenueContactPhone,
		s.DayOfContactName, s.DayOfContactPhone,
		s.ProductionContactName, s.ProductionContactPhone,
		s.ParkingInstructions, s.CredentialsProcess, s.GreenRoomInfo, s.CateringInfo, s.WifiInfo,
		s.VenueCapacity, s.AgeRestriction,
		s.Guarantee, s.DoorSplit, s.MerchSplit, s.SettlementTime, s.DepositReceived, s.DepositAmount,
		s.OverallStatus, s.VenueStatus, s.RiskLevel,
		s.RiskNotes, s.BackupPlan, s.SpecialNotes, s.PostShowNotes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return scanShow(r.db.QueryRowContext(ctx, `SELECT `+showColumns+` FROM shows WHERE id = ?`, s.ID), s)
}

// GetByID retrieves a show by its ID.  It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	var s model.Show
	err := scanShow(r.db.QueryRowContext(ctx, `SELECT `+showColumns+` FROM shows WHERE id = ?`, id), &s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByTour returns all shows for a tour ordered by show date
// ascending.  When no shows exist it returns an empty slice and nil
// error.
func (r *ShowRepo) ListByTour(ctx context.Context, tourID uint64) ([]model.Show, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+showColumns+` FROM shows WHERE tour_id = ? ORDER BY show_date ASC`, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Show
	for rows.Next() {
		var s model.Show
		if err := scanShow(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// StatusSummaries returns the slim per-show projection used by the
// tour dashboard to count statuses and risk levels.
func (r *ShowRepo) StatusSummaries(ctx context.Context, tourID uint64) ([]model.ShowStatusSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, overall_status, risk_level FROM shows WHERE tour_id = ?`, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.ShowStatusSummary
	for rows.Next() {
		var s model.ShowStatusSummary
		if err := rows.Scan(&s.ID, &s.OverallStatus, &s.RiskLevel); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountByTour returns the number of shows already on a tour.  Used to
// auto-assign show numbers.
func (r *ShowRepo) CountByTour(ctx context.Context, tourID uint64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE tour_id = ?`, tourID).Scan(&n)
	return n, err
}

// Update writes all mutable show fields.  The handler loads the row
// and applies partial input first.  Returns ErrShowNotFound for a
// missing row and ErrNoChange when every value already matches.
func (r *ShowRepo) Update(ctx context.Context, s *model.Show) error {
	const q = `UPDATE shows SET show_number = ?, city = ?, state_country = ?,
		venue_name = ?, venue_address = ?, show_date = ?,
		on_stage_time = ?, set_length_minutes = ?, doors_time = ?, curfew_time = ?,
		required_on_site_time = ?, soundcheck_time = ?, soundcheck_duration_minutes = ?, load_in_time = ?,
		venue_contact_name = ?, venue_contact_email = ?, venue_contact_phone = ?,
		day_of_contact_name = ?, day_of_contact_phone = ?,
		production_contact_name = ?, production_contact_phone = ?,
		parking_instructions = ?, credentials_process = ?, green_room_info = ?, catering_info = ?, wifi_info = ?,
		venue_capacity = ?, age_restriction = ?,
		guarantee = ?, door_split = ?, merch_split = ?, settlement_time = ?, deposit_received = ?, deposit_amount = ?,
		overall_status = ?, venue_status = ?, risk_level = ?,
		risk_notes = ?, backup_plan = ?, special_notes = ?, post_show_notes = ?,
		updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		s.ShowNumber, s.City, s.StateCountry,
		s.VenueName, s.VenueAddress, s.ShowDate,
		s.OnStageTime, s.SetLengthMinutes, s.DoorsTime, s.CurfewTime,
		s.RequiredOnSiteTime, s.SoundcheckTime, s.SoundcheckDurationMinutes, s.LoadInTime,
		s.VenueContactName, s.VenueContactEmail, s.VenueContactPhone,
		s.DayOfContactName, s.DayOfContactPhone,
		s.ProductionContactName, s.ProductionContactPhone,
		s.ParkingInstructions, s.CredentialsProcess, s.GreenRoomInfo, s.CateringInfo, s.WifiInfo,
		s.VenueCapacity, s.AgeRestriction,
		s.Guarantee, s.DoorSplit, s.MerchSplit, s.SettlementTime, s.DepositReceived, s.DepositAmount,
		s.OverallStatus, s.VenueStatus, s.RiskLevel,
		s.RiskNotes, s.BackupPlan, s.SpecialNotes, s.PostShowNotes,
		s.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM shows WHERE id = ? LIMIT 1`, s.ID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrShowNotFound
		}
		return err
	}
	return ErrNoChange
}

// UpdateRiskLevel persists a freshly computed risk level.  It is
// called after every flight/transport/show mutation when the level
// changed.
func (r *ShowRepo) UpdateRiskLevel(ctx context.Context, id uint64, level string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shows SET risk_level = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, level, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM shows WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrShowNotFound
			}
			return err
		}
	}
	return nil
}

// UpdateStatus applies a quick status patch.  Only non-nil fields are
// written, matching the PATCH /shows/:id/status contract.
func (r *ShowRepo) UpdateStatus(ctx context.Context, id uint64, overall, venue, risk *string) error {
	// Build the SET clause from whatever was provided.
	set := ""
	args := make([]any, 0, 4)
	if overall != nil {
		set += "overall_status = ?, "
		args = append(args, *overall)
	}
	if venue != nil {
		set += "venue_status = ?, "
		args = append(args, *venue)
	}
	if risk != nil {
		set += "risk_level = ?, "
		args = append(args, *risk)
	}
	if len(args) == 0 {
		return ErrNoChange
	}
	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE shows SET `+set+`updated_at = CURRENT_TIMESTAMP WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM shows WHERE id = ? LIMIT 1`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrShowNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a show and its dependent travel and checklist rows
// inside one transaction.  Activity entries are kept: the trail
// outlives the show.
func (r *ShowRepo) Delete(ctx context.Context, id uint64) (err error) {
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
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM shows WHERE id = ? LIMIT 1`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrShowNotFound
		}
		return err
	}

	for _, q := range []string{
		`DELETE FROM flights WHERE show_id = ?`,
		`DELETE FROM hotels WHERE show_id = ?`,
		`DELETE FROM ground_transports WHERE show_id = ?`,
		`DELETE FROM checklist_instances WHERE show_id = ?`,
		`DELETE FROM shows WHERE id = ?`,
	} {
		if _, err = tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}
