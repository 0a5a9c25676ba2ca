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

type RouteService struct {
	Repo      repositories.RouteRepository
	Guard     GuardService
	RequestID string
}

type RouteInput struct {
	RouteName   string  `json:"routeName" validate:"required"`
	Origin      string  `json:"origin" validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	DistanceKM  float64 `json:"distanceKm" validate:"gt=0"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

func (s RouteService) List() ([]models.Route, error) {
	list, err := s.Repo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil data rute", Err: err}
	}
	return list, nil
}

func (s RouteService) validateInput(in *RouteInput) (domain.RouteStatus, error) {
	in.RouteName = strings.TrimSpace(in.RouteName)
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)

	if fields := missingFields(map[string]string{
		"route_name":  in.RouteName,
		"origin":      in.Origin,
		"destination": in.Destination,
	}); len(fields) > 0 {
		return "", domain.ValidationError{Field: strings.Join(fields, ", "), Msg: "wajib diisi"}
	}
	if in.DistanceKM <= 0 {
		return "", domain.ValidationError{Field: "distance_km", Msg: "harus lebih besar dari 0"}
	}

	status := domain.RouteActive
	if strings.TrimSpace(in.Status) != "" {
		parsed, ok := domain.ParseRouteStatus(in.Status)
		if !ok {
			return "", domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + in.Status}
		}
		status = parsed
	}
	return status, nil
}

// Add validates all route fields before any write happens; on validation
// failure nothing reaches the store.
func (s RouteService) Add(in RouteInput) (int64, error) {
	status, err := s.validateInput(&in)
	if err != nil {
		return 0, err
	}

	id, err := s.Repo.Create(models.Route{
		RouteName:   in.RouteName,
		Origin:      in.Origin,
		Destination: in.Destination,
		DistanceKM:  in.DistanceKM,
		Duration:    strings.TrimSpace(in.Duration),
		Description: strings.TrimSpace(in.Description),
		Status:      status,
	})
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal menambah rute", Err: err}
	}

	utils.LogEvent(s.RequestID, "route", "create", "id="+strconv.FormatInt(id, 10))
	return id, nil
}

func (s RouteService) Update(id int64, in RouteInput) error {
	status, err := s.validateInput(&in)
	if err != nil {
		return err
	}

	err = s.Repo.Update(id, models.Route{
		RouteName:   in.RouteName,
		Origin:      in.Origin,
		Destination: in.Destination,
		DistanceKM:  in.DistanceKM,
		Duration:    strings.TrimSpace(in.Duration),
		Description: strings.TrimSpace(in.Description),
		Status:      status,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "rute"}
		}
		return domain.InternalError{Msg: "gagal update rute", Err: err}
	}
	return nil
}

func (s RouteService) SetStatus(id int64, status string) error {
	parsed, ok := domain.ParseRouteStatus(status)
	if !ok {
		return domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + status}
	}

	rt, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "rute"}
		}
		return domain.InternalError{Msg: "gagal mengambil rute", Err: err}
	}

	rt.Status = parsed
	if err := s.Repo.Update(id, rt); err != nil {
		return domain.InternalError{Msg: "gagal update status rute", Err: err}
	}
	utils.LogEvent(s.RequestID, "route", "set_status", fmt.Sprintf("id=%d status=%s", id, parsed))
	return nil
}

func (s RouteService) Delete(id int64) error {
	decision, err := s.Guard.CanDeleteRoute(id)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return domain.IntegrityError{Resource: "rute", Msg: decision.Reason}
	}

	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "rute"}
		}
		return domain.InternalError{Msg: "gagal hapus rute", Err: err}
	}

	utils.LogEvent(s.RequestID, "route", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
