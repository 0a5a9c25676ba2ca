package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"
)

type BusService struct {
	Repo      repositories.BusRepository
	Guard     GuardService
	RequestID string
}

type BusInput struct {
	BusNumber  string `json:"busNumber" validate:"required"`
	BusName    string `json:"busName" validate:"required"`
	BusType    string `json:"busType"`
	TotalSeats int    `json:"totalSeats" validate:"gt=0"`
	SeatLayout string `json:"seatLayout"`
	OperatorID int64  `json:"operatorId" validate:"gt=0"`
	Status     string `json:"status"`
}

func (s BusService) List() ([]models.Bus, error) {
	list, err := s.Repo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil data bus", Err: err}
	}
	return list, nil
}

// Create validates the payload, generates the seat rows from the layout and
// writes bus+seats in one transaction.
func (s BusService) Create(in BusInput) (int64, error) {
	in.BusNumber = strings.TrimSpace(in.BusNumber)
	in.BusName = strings.TrimSpace(in.BusName)

	if fields := missingFields(map[string]string{
		"bus_number": in.BusNumber,
		"bus_name":   in.BusName,
	}); len(fields) > 0 {
		return 0, domain.ValidationError{Field: strings.Join(fields, ", "), Msg: "wajib diisi"}
	}
	if in.TotalSeats <= 0 {
		return 0, domain.ValidationError{Field: "total_seats", Msg: "harus lebih besar dari 0"}
	}
	if in.OperatorID <= 0 {
		return 0, domain.ValidationError{Field: "operator_id", Msg: "wajib diisi"}
	}

	status := domain.BusActive
	if strings.TrimSpace(in.Status) != "" {
		parsed, ok := domain.ParseBusStatus(in.Status)
		if !ok {
			return 0, domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + in.Status}
		}
		status = parsed
	}

	layout := strings.TrimSpace(in.SeatLayout)
	if layout == "" {
		layout = "2x2"
	}

	bus := models.Bus{
		BusNumber:  in.BusNumber,
		BusName:    in.BusName,
		BusType:    strings.TrimSpace(in.BusType),
		TotalSeats: in.TotalSeats,
		SeatLayout: layout,
		OperatorID: in.OperatorID,
		Status:     status,
	}

	id, err := s.Repo.Create(bus, GenerateSeatCodes(layout, in.TotalSeats))
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "bus", Msg: "nomor bus sudah terdaftar"}
		}
		return 0, domain.InternalError{Msg: "gagal menambah bus", Err: err}
	}

	utils.LogEvent(s.RequestID, "bus", "create", "id="+strconv.FormatInt(id, 10))
	return id, nil
}

// SetStatus is unconditional: status changes are non-destructive, no guard.
func (s BusService) SetStatus(id int64, status string) error {
	parsed, ok := domain.ParseBusStatus(status)
	if !ok {
		return domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + status}
	}
	if err := s.Repo.UpdateStatus(id, parsed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "bus"}
		}
		return domain.InternalError{Msg: "gagal update status bus", Err: err}
	}
	utils.LogEvent(s.RequestID, "bus", "set_status", fmt.Sprintf("id=%d status=%s", id, parsed))
	return nil
}

func (s BusService) Delete(id int64) error {
	decision, err := s.Guard.CanDeleteBus(id)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return domain.IntegrityError{Resource: "bus", Msg: decision.Reason}
	}

	if err := s.Repo.DeleteWithSeats(id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPartialDelete):
			return domain.InconsistencyError{Msg: "kursi terhapus tetapi bus gagal dihapus", Err: err}
		case errors.Is(err, sql.ErrNoRows):
			return domain.NotFoundError{Resource: "bus"}
		default:
			return domain.InternalError{Msg: "gagal hapus bus", Err: err}
		}
	}

	utils.LogEvent(s.RequestID, "bus", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}

// GenerateSeatCodes expands a layout like "2x2" into row-lettered codes
// (A1..A4, B1..) until total seats are produced.
func GenerateSeatCodes(layout string, total int) []string {
	perRow := 4
	parts := strings.Split(strings.ToLower(strings.TrimSpace(layout)), "x")
	if len(parts) == 2 {
		left, errL := strconv.Atoi(strings.TrimSpace(parts[0]))
		right, errR := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errL == nil && errR == nil && left+right > 0 {
			perRow = left + right
		}
	}

	codes := make([]string, 0, total)
	for i := 0; i < total; i++ {
		row := i / perRow
		seat := i%perRow + 1
		codes = append(codes, fmt.Sprintf("%s%d", rowLetter(row), seat))
	}
	return codes
}

func rowLetter(row int) string {
	if row < 26 {
		return string(rune('A' + row))
	}
	// beyond Z: AA, AB, ...
	return rowLetter(row/26-1) + rowLetter(row%26)
}

func missingFields(fields map[string]string) []string {
	out := []string{}
	for _, name := range []string{
		"bus_number", "bus_name", "route_name", "origin", "destination",
		"sender_name", "receiver_name", "name", "email", "password",
	} {
		if v, ok := fields[name]; ok && strings.TrimSpace(v) == "" {
			out = append(out, name)
		}
	}
	return out
}
