package services

import (
	"regexp"
	"strings"
	"testing"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newParcelService(t *testing.T) (ParcelService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := ParcelService{
		Repo:  repositories.ParcelRepository{DB: db},
		Guard: GuardService{ParcelRepo: repositories.ParcelRepository{DB: db}},
	}
	return svc, mock, func() { db.Close() }
}

func TestSetParcelStatusRejectsUnknownValue(t *testing.T) {
	svc, mock, done := newParcelService(t)
	defer done()

	err := svc.SetStatus(1, "lost")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetParcelStatusRefreshesUpdatedAt(t *testing.T) {
	svc, mock, done := newParcelService(t)
	defer done()

	mock.ExpectExec("UPDATE parcels SET status = \\?, updated_at = NOW\\(\\)").
		WithArgs("in_transit", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.SetStatus(5, "In_Transit"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteParcelBlockedUnlessCancelled(t *testing.T) {
	svc, mock, done := newParcelService(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM parcels").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))

	err := svc.Delete(9)
	if !domain.IsIntegrity(err) {
		t.Fatalf("expected IntegrityError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteParcelCancelledSucceeds(t *testing.T) {
	svc, mock, done := newParcelService(t)
	defer done()

	mock.ExpectQuery("SELECT status FROM parcels").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))
	mock.ExpectExec("DELETE FROM parcels").WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Delete(9); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestAddParcelRejectsBadTravelDate(t *testing.T) {
	svc, mock, done := newParcelService(t)
	defer done()

	_, err := svc.Add(ParcelInput{
		SenderName:   "Budi",
		ReceiverName: "Sari",
		RouteID:      1,
		WeightKG:     2.5,
		TravelDate:   "01-03-2025",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "travel_date") {
		t.Fatalf("message should name travel_date, got %q", err.Error())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddParcelRejectsNegativeCost(t *testing.T) {
	svc, _, done := newParcelService(t)
	defer done()

	_, err := svc.Add(ParcelInput{
		SenderName:   "Budi",
		ReceiverName: "Sari",
		RouteID:      1,
		WeightKG:     2.5,
		DeliveryCost: -100,
		TravelDate:   "2025-03-01",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGenerateTrackingNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^TRK-\d{8}-\d{6}$`)
	for i := 0; i < 10; i++ {
		tn := GenerateTrackingNumber()
		if !pattern.MatchString(tn) {
			t.Fatalf("unexpected tracking number format: %s", tn)
		}
	}
}

func TestQueryRejectsUnknownStatusFilter(t *testing.T) {
	svc, mock, done := newParcelService(t)
	defer done()

	_, err := svc.Query(repositories.ParcelFilter{Status: "teleported"}, 0, 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
