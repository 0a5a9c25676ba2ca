package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

type ParcelService struct {
	Repo      repositories.ParcelRepository
	Guard     GuardService
	RequestID string
}

type ParcelInput struct {
	SenderName    string  `json:"senderName" validate:"required"`
	SenderPhone   string  `json:"senderPhone"`
	ReceiverName  string  `json:"receiverName" validate:"required"`
	ReceiverPhone string  `json:"receiverPhone"`
	RouteID       int64   `json:"routeId" validate:"gt=0"`
	WeightKG      float64 `json:"weightKg" validate:"gt=0"`
	DeliveryCost  float64 `json:"deliveryCost" validate:"gte=0"`
	TravelDate    string  `json:"travelDate" validate:"required"`
}

// Query returns the filtered parcel rows. The status filter value is checked
// against the closed enum before it reaches the builder.
func (s ParcelService) Query(f repositories.ParcelFilter, page, limit int) ([]models.Parcel, error) {
	if v := strings.TrimSpace(f.Status); v != "" && !strings.EqualFold(v, repositories.FilterAll) {
		if _, ok := domain.ParseParcelStatus(v); !ok {
			return nil, domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + v}
		}
	}
	rows, err := s.Repo.Query(f, page, limit)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil data paket", Err: err}
	}
	return rows, nil
}

// Track is the customer-facing lookup by tracking number.
func (s ParcelService) Track(trackingNumber string) (models.Parcel, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return models.Parcel{}, domain.ValidationError{Field: "tracking_number", Msg: "wajib diisi"}
	}
	p, err := s.Repo.GetByTracking(trackingNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Parcel{}, domain.NotFoundError{Resource: "paket"}
		}
		return models.Parcel{}, domain.InternalError{Msg: "gagal mengambil data paket", Err: err}
	}
	return p, nil
}

func (s ParcelService) validateInput(in *ParcelInput) error {
	in.SenderName = strings.TrimSpace(in.SenderName)
	in.ReceiverName = strings.TrimSpace(in.ReceiverName)

	if fields := missingFields(map[string]string{
		"sender_name":   in.SenderName,
		"receiver_name": in.ReceiverName,
	}); len(fields) > 0 {
		return domain.ValidationError{Field: strings.Join(fields, ", "), Msg: "wajib diisi"}
	}
	if in.RouteID <= 0 {
		return domain.ValidationError{Field: "route_id", Msg: "wajib diisi"}
	}
	if in.WeightKG <= 0 {
		return domain.ValidationError{Field: "weight_kg", Msg: "harus lebih besar dari 0"}
	}
	if in.DeliveryCost < 0 {
		return domain.ValidationError{Field: "delivery_cost", Msg: "tidak boleh negatif"}
	}
	if _, err := utils.ParseDate(in.TravelDate); err != nil {
		return domain.ValidationError{Field: "travel_date", Msg: "format harus YYYY-MM-DD"}
	}
	return nil
}

// Add creates a parcel with a generated tracking number. The store enforces
// tracking uniqueness; a duplicate generation is retried.
func (s ParcelService) Add(in ParcelInput) (models.Parcel, error) {
	if err := s.validateInput(&in); err != nil {
		return models.Parcel{}, err
	}

	p := models.Parcel{
		SenderName:    in.SenderName,
		SenderPhone:   strings.TrimSpace(in.SenderPhone),
		ReceiverName:  in.ReceiverName,
		ReceiverPhone: strings.TrimSpace(in.ReceiverPhone),
		RouteID:       in.RouteID,
		WeightKG:      in.WeightKG,
		DeliveryCost:  in.DeliveryCost,
		TravelDate:    strings.TrimSpace(in.TravelDate),
		Status:        domain.ParcelPending,
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		p.TrackingNumber = GenerateTrackingNumber()
		id, err := s.Repo.Create(p)
		if err == nil {
			p.ID = id
			utils.LogEvent(s.RequestID, "parcel", "create", "tracking="+p.TrackingNumber)
			return p, nil
		}
		if !isDuplicateKey(err) {
			return models.Parcel{}, domain.InternalError{Msg: "gagal menambah paket", Err: err}
		}
		lastErr = err
	}
	return models.Parcel{}, domain.ConflictError{Resource: "paket", Msg: "tracking number bentrok", Err: lastErr}
}

// Update rewrites parcel fields; the tracking number is immutable and never
// part of the statement.
func (s ParcelService) Update(id int64, in ParcelInput) error {
	if err := s.validateInput(&in); err != nil {
		return err
	}

	err := s.Repo.Update(id, models.Parcel{
		SenderName:    in.SenderName,
		SenderPhone:   strings.TrimSpace(in.SenderPhone),
		ReceiverName:  in.ReceiverName,
		ReceiverPhone: strings.TrimSpace(in.ReceiverPhone),
		RouteID:       in.RouteID,
		WeightKG:      in.WeightKG,
		DeliveryCost:  in.DeliveryCost,
		TravelDate:    strings.TrimSpace(in.TravelDate),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "paket"}
		}
		return domain.InternalError{Msg: "gagal update paket", Err: err}
	}
	return nil
}

// SetStatus is unconditional (no guard) and refreshes updated_at.
func (s ParcelService) SetStatus(id int64, status string) error {
	parsed, ok := domain.ParseParcelStatus(status)
	if !ok {
		return domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + status}
	}
	if err := s.Repo.UpdateStatus(id, parsed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "paket"}
		}
		return domain.InternalError{Msg: "gagal update status paket", Err: err}
	}
	utils.LogEvent(s.RequestID, "parcel", "set_status", fmt.Sprintf("id=%d status=%s", id, parsed))
	return nil
}

func (s ParcelService) Delete(id int64) error {
	decision, err := s.Guard.CanDeleteParcel(id)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return domain.IntegrityError{Resource: "paket", Msg: decision.Reason}
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "paket"}
		}
		return domain.InternalError{Msg: "gagal hapus paket", Err: err}
	}

	utils.LogEvent(s.RequestID, "parcel", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}

// GenerateTrackingNumber builds an externally visible code like
// TRK-20250101-483920. Uniqueness is still the store's job.
func GenerateTrackingNumber() string {
	return fmt.Sprintf("TRK-%s-%06d", time.Now().Format("20060102"), rand.Intn(1000000))
}
