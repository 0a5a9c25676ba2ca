package repositories

import (
	"testing"

	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newParcelRepo(t *testing.T) (ParcelRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return ParcelRepository{DB: db}, mock, func() { db.Close() }
}

// The SET clause is pinned column by column so tracking_number can never
// slip into it, and exactly nine values may be bound.
func TestUpdateParcelNeverTouchesTrackingNumber(t *testing.T) {
	repo, mock, done := newParcelRepo(t)
	defer done()

	mock.ExpectExec(`UPDATE parcels\s+SET sender_name = \?, sender_phone = \?, receiver_name = \?, receiver_phone = \?,\s+route_id = \?, weight_kg = \?, delivery_cost = \?, travel_date = \?, updated_at = NOW\(\)\s+WHERE id = \?`).
		WithArgs("Andi", "0811", "Budi", "0812", int64(3), 2.5, 15000.0, "2025-03-01", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(9, models.Parcel{
		TrackingNumber: "TRK-20250301-000123",
		SenderName:     "Andi",
		SenderPhone:    "0811",
		ReceiverName:   "Budi",
		ReceiverPhone:  "0812",
		RouteID:        3,
		WeightKG:       2.5,
		DeliveryCost:   15000,
		TravelDate:     "2025-03-01",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateParcelZeroAffectedFallsBackToExistenceCheck(t *testing.T) {
	repo, mock, done := newParcelRepo(t)
	defer done()

	mock.ExpectExec("UPDATE parcels").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM parcels WHERE id = \\?").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	if err := repo.Update(4, models.Parcel{SenderName: "Andi", ReceiverName: "Budi", TravelDate: "2025-03-01"}); err != nil {
		t.Fatalf("expected success when the row exists unchanged, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
