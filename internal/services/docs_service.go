package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF resi paket & manifest armada.
type DocsService struct {
	ParcelRepo repositories.ParcelRepository
	BusRepo    repositories.BusRepository
	RequestID  string

	// Loaders are swappable for tests.
	ParcelLoader func(trackingNumber string) (models.Parcel, error)
	FleetLoader  func() ([]models.Bus, error)
}

func (s DocsService) loadParcel(trackingNumber string) (models.Parcel, error) {
	if s.ParcelLoader != nil {
		return s.ParcelLoader(trackingNumber)
	}
	return s.ParcelRepo.GetByTracking(trackingNumber)
}

func (s DocsService) loadFleet() ([]models.Bus, error) {
	if s.FleetLoader != nil {
		return s.FleetLoader()
	}
	return s.BusRepo.List()
}

// ParcelReceipt renders the printable receipt for one tracking number.
func (s DocsService) ParcelReceipt(trackingNumber string) ([]byte, string, error) {
	p, err := s.loadParcel(strings.TrimSpace(trackingNumber))
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "parcel_receipt", "tracking="+p.TrackingNumber)
	return buildParcelReceiptPDF(p)
}

// FleetManifest renders the full bus list with status and seat totals.
func (s DocsService) FleetManifest() ([]byte, string, error) {
	buses, err := s.loadFleet()
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "fleet_manifest", fmt.Sprintf("buses=%d", len(buses)))
	return buildFleetManifestPDF(buses)
}

func buildParcelReceiptPDF(p models.Parcel) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Resi Paket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RESI PAKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("No Resi        : %s", safe(p.TrackingNumber, "-")),
		fmt.Sprintf("Pengirim       : %s (%s)", safe(p.SenderName, "-"), safe(p.SenderPhone, "-")),
		fmt.Sprintf("Penerima       : %s (%s)", safe(p.ReceiverName, "-"), safe(p.ReceiverPhone, "-")),
		fmt.Sprintf("Rute           : %s", safe(p.RouteName, "-")),
		fmt.Sprintf("Tanggal Kirim  : %s", safe(p.TravelDate, "-")),
		fmt.Sprintf("Berat          : %.2f kg", p.WeightKG),
		fmt.Sprintf("Biaya          : %s", utils.FormatRupiah(int64(p.DeliveryCost))),
		fmt.Sprintf("Status         : %s", safe(string(p.Status), "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Catatan: Simpan resi ini untuk pelacakan paket. Status terbaru bisa dicek dengan nomor resi.", "", "", false)
	pdf.Ln(4)
	pdf.Cell(0, 6, "Dicetak: "+utils.FormatDateTime(time.Now()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("resi-%s.pdf", safeFilenamePart(p.TrackingNumber))
	return buf.Bytes(), filename, nil
}

func buildFleetManifestPDF(buses []models.Bus) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Manifest Armada", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "MANIFEST ARMADA")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Dicetak: "+utils.FormatDateTime(time.Now()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	headers := []struct {
		label string
		width float64
	}{
		{"No Bus", 30},
		{"Nama", 60},
		{"Tipe", 35},
		{"Kursi", 20},
		{"Operator", 60},
		{"Jadwal Aktif", 28},
		{"Status", 30},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 8, h.label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, b := range buses {
		cols := []struct {
			value string
			width float64
		}{
			{safe(b.BusNumber, "-"), 30},
			{safe(b.BusName, "-"), 60},
			{safe(b.BusType, "-"), 35},
			{fmt.Sprintf("%d", b.TotalSeats), 20},
			{safe(b.OperatorName, "-"), 60},
			{fmt.Sprintf("%d", b.ActiveSchedules), 28},
			{safe(string(b.Status), "-"), 30},
		}
		for _, col := range cols {
			pdf.CellFormat(col.width, 7, col.value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "manifest-armada.pdf", nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(s))
	if out == "" {
		return "doc"
	}
	return out
}
