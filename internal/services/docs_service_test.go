package services

import (
	"bytes"
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"
)

func TestParcelReceiptPDF(t *testing.T) {
	svc := DocsService{
		ParcelLoader: func(trackingNumber string) (models.Parcel, error) {
			return models.Parcel{
				TrackingNumber: trackingNumber,
				SenderName:     "Budi",
				ReceiverName:   "Sari",
				RouteName:      "Jakarta - Bandung",
				TravelDate:     "2025-03-01",
				WeightKG:       2.5,
				DeliveryCost:   25000,
				Status:         domain.ParcelPending,
			}, nil
		},
	}

	data, filename, err := svc.ParcelReceipt("TRK-20250301-000123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a pdf")
	}
	if filename != "resi-TRK-20250301-000123.pdf" {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestFleetManifestPDF(t *testing.T) {
	svc := DocsService{
		FleetLoader: func() ([]models.Bus, error) {
			return []models.Bus{
				{BusNumber: "BK-01", BusName: "Harapan Jaya", TotalSeats: 40, OperatorName: "PT Maju", Status: domain.BusActive},
				{BusNumber: "BK-02", BusName: "Sentosa", TotalSeats: 28, OperatorName: "PT Maju", Status: domain.BusMaintenance},
			}, nil
		},
	}

	data, filename, err := svc.FleetManifest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a pdf")
	}
	if filename != "manifest-armada.pdf" {
		t.Fatalf("unexpected filename: %s", filename)
	}
}
