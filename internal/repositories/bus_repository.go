package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

// ErrPartialDelete marks a cascading delete that could not be rolled back
// cleanly. Callers surface it loudly; it should never happen inside one tx.
var ErrPartialDelete = errors.New("partial delete: seats removed but bus delete failed")

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BusRepository) List() ([]models.Bus, error) {
	rows, err := r.db().Query(`
		SELECT b.id, b.bus_number, b.bus_name, b.bus_type, b.total_seats,
		       COALESCE(b.seat_layout,''), b.operator_id, b.status,
		       COALESCE(u.name,'') AS operator_name,
		       (SELECT COUNT(*) FROM schedules s WHERE s.bus_id = b.id AND s.status = ?) AS active_schedules
		FROM buses b
		LEFT JOIN users u ON u.id = b.operator_id
		ORDER BY b.id DESC`, domain.ScheduleActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Bus{}
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(
			&b.ID,
			&b.BusNumber,
			&b.BusName,
			&b.BusType,
			&b.TotalSeats,
			&b.SeatLayout,
			&b.OperatorID,
			&b.Status,
			&b.OperatorName,
			&b.ActiveSchedules,
		); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepository) GetByID(id int64) (models.Bus, error) {
	var b models.Bus
	err := r.db().QueryRow(`
		SELECT id, bus_number, bus_name, bus_type, total_seats,
		       COALESCE(seat_layout,''), operator_id, status
		FROM buses WHERE id = ?`, id).Scan(
		&b.ID,
		&b.BusNumber,
		&b.BusName,
		&b.BusType,
		&b.TotalSeats,
		&b.SeatLayout,
		&b.OperatorID,
		&b.Status,
	)
	return b, err
}

// Create inserts the bus and its seat rows in one transaction; seats belong
// to the bus and are written together with it.
func (r BusRepository) Create(b models.Bus, seatCodes []string) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.Exec(`
		INSERT INTO buses (bus_number, bus_name, bus_type, total_seats, seat_layout, operator_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`,
		b.BusNumber, b.BusName, b.BusType, b.TotalSeats, b.SeatLayout, b.OperatorID, b.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, code := range seatCodes {
		if _, err := tx.Exec(`INSERT INTO seats (bus_id, seat_code) VALUES (?, ?)`, id, code); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return id, nil
}

func (r BusRepository) UpdateStatus(id int64, status domain.BusStatus) error {
	res, err := r.db().Exec(`UPDATE buses SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// MySQL reports 0 affected when the value is unchanged, so verify existence
		var one int
		if err := r.db().QueryRow(`SELECT 1 FROM buses WHERE id = ?`, id).Scan(&one); err != nil {
			return err
		}
	}
	return nil
}

func (r BusRepository) CountActiveSchedules(busID int64) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM schedules WHERE bus_id = ? AND status = ?`,
		busID, domain.ScheduleActive).Scan(&n)
	return n, err
}

// CountBlockingBookings counts bookings reached through any schedule of the
// bus that are still pending or confirmed.
func (r BusRepository) CountBlockingBookings(busID int64) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*)
		FROM bookings bk
		JOIN schedules s ON s.id = bk.schedule_id
		WHERE s.bus_id = ? AND bk.status IN (?, ?)`,
		busID, domain.BookingPending, domain.BookingConfirmed).Scan(&n)
	return n, err
}

// DeleteWithSeats removes the owned seats then the bus inside one
// transaction. Seats never outlive their bus.
func (r BusRepository) DeleteWithSeats(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM seats WHERE bus_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return err
	}

	res, err := tx.Exec(`DELETE FROM buses WHERE id = ?`, id)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w: %v (rollback: %v)", ErrPartialDelete, err, rbErr)
		}
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		_ = tx.Rollback()
		return sql.ErrNoRows
	}

	return tx.Commit()
}
