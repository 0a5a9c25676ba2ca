package services

import (
	"database/sql"
	"errors"

	"backend/internal/domain"
	"backend/internal/repositories"
	"backend/internal/utils"
)

// Decision is the read-only verdict on a destructive operation. Reason is
// filled only when the operation is blocked.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// GuardService memeriksa aturan integritas sebelum delete. Read-only; the
// check and the delete that follows are not atomic (accepted race window,
// except the bus+seats transaction handled by the repository).
type GuardService struct {
	BusRepo    repositories.BusRepository
	RouteRepo  repositories.RouteRepository
	ParcelRepo repositories.ParcelRepository
	RequestID  string
}

func (g GuardService) CanDeleteBus(id int64) (Decision, error) {
	schedules, err := g.BusRepo.CountActiveSchedules(id)
	if err != nil {
		return Decision{}, domain.InternalError{Msg: "gagal cek jadwal bus", Err: err}
	}
	if schedules > 0 {
		return Decision{Reason: "bus masih memiliki jadwal aktif"}, nil
	}

	bookings, err := g.BusRepo.CountBlockingBookings(id)
	if err != nil {
		return Decision{}, domain.InternalError{Msg: "gagal cek booking bus", Err: err}
	}
	if bookings > 0 {
		return Decision{Reason: "bus masih memiliki booking aktif (pending/confirmed)"}, nil
	}

	return Decision{Allowed: true}, nil
}

func (g GuardService) CanDeleteRoute(id int64) (Decision, error) {
	schedules, err := g.RouteRepo.CountActiveSchedules(id)
	if err != nil {
		return Decision{}, domain.InternalError{Msg: "gagal cek jadwal rute", Err: err}
	}
	if schedules > 0 {
		return Decision{Reason: "rute masih memiliki jadwal aktif"}, nil
	}
	return Decision{Allowed: true}, nil
}

// CanDeleteParcel allows deletion only for cancelled parcels. A missing
// parcel gets its own reason so callers can answer 404 instead of 409.
func (g GuardService) CanDeleteParcel(id int64) (Decision, error) {
	status, err := g.ParcelRepo.GetStatus(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Decision{}, domain.NotFoundError{Resource: "paket"}
		}
		return Decision{}, domain.InternalError{Msg: "gagal cek status paket", Err: err}
	}
	if status != domain.ParcelCancelled {
		utils.LogEvent(g.RequestID, "guard", "deny_parcel_delete", "status="+string(status))
		return Decision{Reason: "paket hanya bisa dihapus jika berstatus cancelled"}, nil
	}
	return Decision{Allowed: true}, nil
}
