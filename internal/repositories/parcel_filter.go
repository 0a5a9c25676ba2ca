package repositories

import (
	"strings"

	intdb "backend/internal/db"
)

// FilterAll is the sentinel meaning "no restriction" for a filter option.
const FilterAll = "all"

// ParcelFilter collects the optional slicing criteria for parcel queries.
// Empty or "all" fields contribute no predicate; everything else becomes one
// ANDed condition with its value bound, never interpolated.
type ParcelFilter struct {
	Date       string
	Status     string
	RouteID    string
	OperatorID string
	Search     string
}

func filterSet(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, FilterAll) {
		return "", false
	}
	return v, true
}

// Where renders the predicate set over the parcels alias "p".
func (f ParcelFilter) Where() (string, []any) {
	where := []string{"1=1"}
	args := []any{}

	if v, ok := filterSet(f.Date); ok {
		where = append(where, "p.travel_date = ?")
		args = append(args, v)
	}
	if v, ok := filterSet(f.Status); ok {
		where = append(where, "p.status = ?")
		args = append(args, strings.ToLower(v))
	}
	if v, ok := filterSet(f.RouteID); ok {
		where = append(where, "p.route_id = ?")
		args = append(args, v)
	}
	if v, ok := filterSet(f.OperatorID); ok {
		// parcels reach an operator through the buses scheduled on their route
		where = append(where, `EXISTS (
			SELECT 1 FROM schedules s
			JOIN buses b ON b.id = s.bus_id
			WHERE s.route_id = p.route_id AND b.operator_id = ?)`)
		args = append(args, v)
	}
	if v, ok := filterSet(f.Search); ok {
		like := "%" + intdb.EscapeLike(v) + "%"
		where = append(where, `(p.tracking_number LIKE ? OR p.sender_name LIKE ? OR p.receiver_name LIKE ? OR p.receiver_phone LIKE ?)`)
		args = append(args, like, like, like, like)
	}

	return strings.Join(where, " AND "), args
}
