package services

import (
	"testing"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newGuard(t *testing.T) (GuardService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	guard := GuardService{
		BusRepo:    repositories.BusRepository{DB: db},
		RouteRepo:  repositories.RouteRepository{DB: db},
		ParcelRepo: repositories.ParcelRepository{DB: db},
	}
	return guard, mock, func() { db.Close() }
}

func TestCanDeleteBusBlockedByActiveSchedule(t *testing.T) {
	guard, mock, done := newGuard(t)
	defer done()

	mock.ExpectQuery("FROM schedules WHERE bus_id").WithArgs(int64(5), domain.ScheduleActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	decision, err := guard.CanDeleteBus(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Allowed {
		t.Fatalf("expected delete to be blocked")
	}
	if decision.Reason == "" {
		t.Fatalf("blocked decision must carry a reason")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCanDeleteBusBlockedByBookings(t *testing.T) {
	guard, mock, done := newGuard(t)
	defer done()

	mock.ExpectQuery("FROM schedules WHERE bus_id").WithArgs(int64(5), domain.ScheduleActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM bookings").WithArgs(int64(5), domain.BookingPending, domain.BookingConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	decision, err := guard.CanDeleteBus(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Allowed {
		t.Fatalf("expected delete to be blocked by bookings")
	}
}

func TestCanDeleteBusAllowedWhenClear(t *testing.T) {
	guard, mock, done := newGuard(t)
	defer done()

	mock.ExpectQuery("FROM schedules WHERE bus_id").WithArgs(int64(5), domain.ScheduleActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM bookings").WithArgs(int64(5), domain.BookingPending, domain.BookingConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	decision, err := guard.CanDeleteBus(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("expected delete to be allowed, got reason %q", decision.Reason)
	}
}

func TestCanDeleteRouteBlockedByActiveSchedule(t *testing.T) {
	guard, mock, done := newGuard(t)
	defer done()

	mock.ExpectQuery("FROM schedules WHERE route_id").WithArgs(int64(9), domain.ScheduleActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	decision, err := guard.CanDeleteRoute(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Allowed {
		t.Fatalf("expected delete to be blocked")
	}
}

func TestCanDeleteParcelNotFoundIsDistinct(t *testing.T) {
	guard, mock, done := newGuard(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM parcels").WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	_, err := guard.CanDeleteParcel(11)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCanDeleteParcelOnlyWhenCancelled(t *testing.T) {
	guard, mock, done := newGuard(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM parcels").WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("in_transit"))
	mock.ExpectQuery("SELECT status FROM parcels").WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))

	decision, err := guard.CanDeleteParcel(11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Allowed {
		t.Fatalf("in_transit parcel must not be deletable")
	}

	decision, err = guard.CanDeleteParcel(12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("cancelled parcel must be deletable, got reason %q", decision.Reason)
	}
}
