package services

import (
	"strings"
	"testing"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRouteService(t *testing.T) (RouteService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := RouteService{
		Repo:  repositories.RouteRepository{DB: db},
		Guard: GuardService{RouteRepo: repositories.RouteRepository{DB: db}},
	}
	return svc, mock, func() { db.Close() }
}

func TestAddRouteNegativeDistanceWritesNothing(t *testing.T) {
	svc, mock, done := newRouteService(t)
	defer done()

	_, err := svc.Add(RouteInput{
		RouteName:   "A-B",
		Origin:      "A",
		Destination: "B",
		DistanceKM:  -5,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "distance_km") {
		t.Fatalf("message should name the offending field, got %q", err.Error())
	}

	// nothing may have reached the store
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddRouteMissingFieldsNamesThem(t *testing.T) {
	svc, _, done := newRouteService(t)
	defer done()

	_, err := svc.Add(RouteInput{Origin: " ", DistanceKM: 10})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"route_name", "origin", "destination"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("message should name %s, got %q", field, err.Error())
		}
	}
}

func TestAddRouteValidInputInserts(t *testing.T) {
	svc, mock, done := newRouteService(t)
	defer done()

	mock.ExpectExec("INSERT INTO routes").
		WithArgs("A-B", "A", "B", 120.5, "2 jam", nil, "active").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := svc.Add(RouteInput{
		RouteName:   "A-B",
		Origin:      "A",
		Destination: "B",
		DistanceKM:  120.5,
		Duration:    "2 jam",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteRouteBlockedByActiveSchedule(t *testing.T) {
	svc, mock, done := newRouteService(t)
	defer done()

	mock.ExpectQuery("FROM schedules WHERE route_id").WithArgs(int64(4), domain.ScheduleActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	err := svc.Delete(4)
	if !domain.IsIntegrity(err) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteRouteAllowedWhenNoActiveSchedule(t *testing.T) {
	svc, mock, done := newRouteService(t)
	defer done()

	mock.ExpectQuery("FROM schedules WHERE route_id").WithArgs(int64(4), domain.ScheduleActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM routes").WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Delete(4); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}
