package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RouteRepository) List() ([]models.Route, error) {
	rows, err := r.db().Query(`
		SELECT id, route_name, origin, destination, distance_km,
		       COALESCE(duration,''), COALESCE(description,''), status
		FROM routes
		ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(
			&rt.ID,
			&rt.RouteName,
			&rt.Origin,
			&rt.Destination,
			&rt.DistanceKM,
			&rt.Duration,
			&rt.Description,
			&rt.Status,
		); err != nil {
			return out, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r RouteRepository) GetByID(id int64) (models.Route, error) {
	var rt models.Route
	err := r.db().QueryRow(`
		SELECT id, route_name, origin, destination, distance_km,
		       COALESCE(duration,''), COALESCE(description,''), status
		FROM routes WHERE id = ?`, id).Scan(
		&rt.ID,
		&rt.RouteName,
		&rt.Origin,
		&rt.Destination,
		&rt.DistanceKM,
		&rt.Duration,
		&rt.Description,
		&rt.Status,
	)
	return rt, err
}

func (r RouteRepository) Create(rt models.Route) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO routes (route_name, origin, destination, distance_km, duration, description, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rt.RouteName, rt.Origin, rt.Destination, rt.DistanceKM,
		intdb.NullIfEmpty(rt.Duration), intdb.NullIfEmpty(rt.Description), rt.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RouteRepository) Update(id int64, rt models.Route) error {
	res, err := r.db().Exec(`
		UPDATE routes
		SET route_name = ?, origin = ?, destination = ?, distance_km = ?, duration = ?, description = ?, status = ?
		WHERE id = ?`,
		rt.RouteName, rt.Origin, rt.Destination, rt.DistanceKM,
		intdb.NullIfEmpty(rt.Duration), intdb.NullIfEmpty(rt.Description), rt.Status, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		var one int
		if err := r.db().QueryRow(`SELECT 1 FROM routes WHERE id = ?`, id).Scan(&one); err != nil {
			return err
		}
	}
	return nil
}

func (r RouteRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM routes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r RouteRepository) CountActiveSchedules(routeID int64) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM schedules WHERE route_id = ? AND status = ?`,
		routeID, domain.ScheduleActive).Scan(&n)
	return n, err
}
