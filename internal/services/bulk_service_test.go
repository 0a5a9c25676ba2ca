package services

import (
	"database/sql"
	"testing"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBulkService(t *testing.T) (BulkService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BulkService{
		Buses:   BusService{Repo: repositories.BusRepository{DB: db}},
		Routes:  RouteService{Repo: repositories.RouteRepository{DB: db}},
		Parcels: ParcelService{Repo: repositories.ParcelRepository{DB: db}},
	}
	return svc, mock, func() { db.Close() }
}

func TestBulkSetStatusEmptyIDsIsValidationError(t *testing.T) {
	svc, _, done := newBulkService(t)
	defer done()

	_, err := svc.SetStatus("parcel", nil, "delivered")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBulkSetStatusEmptyStatusIsValidationError(t *testing.T) {
	svc, _, done := newBulkService(t)
	defer done()

	_, err := svc.SetStatus("parcel", []int64{1}, "  ")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBulkSetStatusUnknownKindIsValidationError(t *testing.T) {
	svc, _, done := newBulkService(t)
	defer done()

	_, err := svc.SetStatus("schedule", []int64{1}, "active")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBulkSetStatusBadEnumRejectedBeforeAnyUpdate(t *testing.T) {
	svc, mock, done := newBulkService(t)
	defer done()

	_, err := svc.SetStatus("parcel", []int64{1, 2}, "teleported")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBulkSetStatusOneFailureDoesNotAbortBatch(t *testing.T) {
	svc, mock, done := newBulkService(t)
	defer done()

	mock.ExpectExec("UPDATE parcels SET status").WithArgs("delivered", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// id 2 does not exist: zero affected, existence check finds nothing
	mock.ExpectExec("UPDATE parcels SET status").WithArgs("delivered", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM parcels").WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	result, err := svc.SetStatus("parcel", []int64{1, 2}, "delivered")
	if err != nil {
		t.Fatalf("bulk must not fail as a whole: %v", err)
	}
	if result.UpdatedCount != 1 {
		t.Fatalf("expected 1 updated, got %d", result.UpdatedCount)
	}
	if len(result.FailedIDs) != 1 || result.FailedIDs[0] != 2 {
		t.Fatalf("expected failed ids [2], got %v", result.FailedIDs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
