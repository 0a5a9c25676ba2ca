package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type ParcelRepository struct {
	DB *sql.DB
}

func (r ParcelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const parcelSelect = `
	SELECT p.id, p.tracking_number, p.sender_name, COALESCE(p.sender_phone,''),
	       p.receiver_name, COALESCE(p.receiver_phone,''), p.route_id,
	       COALESCE(p.weight_kg,0), p.delivery_cost,
	       COALESCE(DATE_FORMAT(p.travel_date,'%Y-%m-%d'),''), p.status,
	       COALESCE(DATE_FORMAT(p.created_at,'%Y-%m-%d %H:%i:%s'),''),
	       COALESCE(DATE_FORMAT(p.updated_at,'%Y-%m-%d %H:%i:%s'),''),
	       COALESCE(r.route_name,''),
	       COALESCE((
	           SELECT b.operator_id FROM schedules s
	           JOIN buses b ON b.id = s.bus_id
	           WHERE s.route_id = p.route_id
	           ORDER BY b.operator_id LIMIT 1
	       ),0) AS operator_id
	FROM parcels p
	LEFT JOIN routes r ON r.id = p.route_id
`

// Query returns parcels matching the filter. Zero page/limit disables paging.
func (r ParcelRepository) Query(f ParcelFilter, page, limit int) ([]models.Parcel, error) {
	where, args := f.Where()
	query := parcelSelect + " WHERE " + where + " ORDER BY p.id DESC"
	if page > 0 && limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, (page-1)*limit)
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Parcel{}
	for rows.Next() {
		var p models.Parcel
		var cost sql.NullFloat64
		if err := rows.Scan(
			&p.ID,
			&p.TrackingNumber,
			&p.SenderName,
			&p.SenderPhone,
			&p.ReceiverName,
			&p.ReceiverPhone,
			&p.RouteID,
			&p.WeightKG,
			&cost,
			&p.TravelDate,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.RouteName,
			&p.OperatorID,
		); err != nil {
			return out, err
		}
		p.DeliveryCost = intdb.FloatOrZero(cost)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ParcelRepository) GetByID(id int64) (models.Parcel, error) {
	return r.getOne(`p.id = ?`, id)
}

func (r ParcelRepository) GetByTracking(trackingNumber string) (models.Parcel, error) {
	return r.getOne(`p.tracking_number = ?`, trackingNumber)
}

func (r ParcelRepository) getOne(cond string, arg any) (models.Parcel, error) {
	var p models.Parcel
	var cost sql.NullFloat64
	err := r.db().QueryRow(parcelSelect+" WHERE "+cond, arg).Scan(
		&p.ID,
		&p.TrackingNumber,
		&p.SenderName,
		&p.SenderPhone,
		&p.ReceiverName,
		&p.ReceiverPhone,
		&p.RouteID,
		&p.WeightKG,
		&cost,
		&p.TravelDate,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.RouteName,
		&p.OperatorID,
	)
	p.DeliveryCost = intdb.FloatOrZero(cost)
	return p, err
}

func (r ParcelRepository) GetStatus(id int64) (domain.ParcelStatus, error) {
	var status domain.ParcelStatus
	err := r.db().QueryRow(`SELECT status FROM parcels WHERE id = ?`, id).Scan(&status)
	return status, err
}

func (r ParcelRepository) Create(p models.Parcel) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO parcels (tracking_number, sender_name, sender_phone, receiver_name, receiver_phone,
		                     route_id, weight_kg, delivery_cost, travel_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		p.TrackingNumber, p.SenderName, intdb.NullIfEmpty(p.SenderPhone),
		p.ReceiverName, intdb.NullIfEmpty(p.ReceiverPhone),
		p.RouteID, p.WeightKG, p.DeliveryCost, p.TravelDate, p.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites parcel fields except tracking_number, which is immutable
// once assigned.
func (r ParcelRepository) Update(id int64, p models.Parcel) error {
	res, err := r.db().Exec(`
		UPDATE parcels
		SET sender_name = ?, sender_phone = ?, receiver_name = ?, receiver_phone = ?,
		    route_id = ?, weight_kg = ?, delivery_cost = ?, travel_date = ?, updated_at = NOW()
		WHERE id = ?`,
		p.SenderName, intdb.NullIfEmpty(p.SenderPhone),
		p.ReceiverName, intdb.NullIfEmpty(p.ReceiverPhone),
		p.RouteID, p.WeightKG, p.DeliveryCost, p.TravelDate, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		var one int
		if err := r.db().QueryRow(`SELECT 1 FROM parcels WHERE id = ?`, id).Scan(&one); err != nil {
			return err
		}
	}
	return nil
}

func (r ParcelRepository) UpdateStatus(id int64, status domain.ParcelStatus) error {
	res, err := r.db().Exec(`UPDATE parcels SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		var one int
		if err := r.db().QueryRow(`SELECT 1 FROM parcels WHERE id = ?`, id).Scan(&one); err != nil {
			return err
		}
	}
	return nil
}

func (r ParcelRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM parcels WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
