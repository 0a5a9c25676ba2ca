package services

import (
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
)

// ParcelStats summarizes a parcel row set: the same shape serves the
// filtered panel and the system-wide panel, only the input rows differ.
type ParcelStats struct {
	Total             int                         `json:"total"`
	ByStatus          map[domain.ParcelStatus]int `json:"byStatus"`
	TotalRevenue      float64                     `json:"totalRevenue"`
	DistinctRoutes    int                         `json:"distinctRoutes"`
	DistinctOperators int                         `json:"distinctOperators"`
}

type FleetStats struct {
	TotalBuses        int                      `json:"totalBuses"`
	ByStatus          map[domain.BusStatus]int `json:"byStatus"`
	TotalSeats        int                      `json:"totalSeats"`
	DistinctOperators int                      `json:"distinctOperators"`
}

// SummarizeParcels never fails: an empty row set yields all-zero stats and
// rows with a null cost already carry zero from the gateway.
func SummarizeParcels(rows []models.Parcel) ParcelStats {
	stats := ParcelStats{
		ByStatus: map[domain.ParcelStatus]int{},
	}
	for _, status := range domain.ParcelStatuses {
		stats.ByStatus[status] = 0
	}

	routes := map[int64]bool{}
	operators := map[int64]bool{}
	for _, p := range rows {
		stats.Total++
		stats.ByStatus[p.Status]++
		stats.TotalRevenue += p.DeliveryCost
		if p.RouteID > 0 {
			routes[p.RouteID] = true
		}
		if p.OperatorID > 0 {
			operators[p.OperatorID] = true
		}
	}
	stats.DistinctRoutes = len(routes)
	stats.DistinctOperators = len(operators)
	return stats
}

func SummarizeFleet(buses []models.Bus) FleetStats {
	stats := FleetStats{
		ByStatus: map[domain.BusStatus]int{
			domain.BusActive:      0,
			domain.BusMaintenance: 0,
			domain.BusInactive:    0,
		},
	}

	operators := map[int64]bool{}
	for _, b := range buses {
		stats.TotalBuses++
		stats.ByStatus[b.Status]++
		stats.TotalSeats += b.TotalSeats
		if b.OperatorID > 0 {
			operators[b.OperatorID] = true
		}
	}
	stats.DistinctOperators = len(operators)
	return stats
}

type ReportsService struct {
	ParcelRepo repositories.ParcelRepository
	BusRepo    repositories.BusRepository
	RequestID  string
}

// ParcelReport returns the filtered rows plus their stats panel. The panel
// always covers the whole filtered set; paging only windows the listed rows.
func (s ReportsService) ParcelReport(f repositories.ParcelFilter, page, limit int) ([]models.Parcel, ParcelStats, error) {
	all, err := s.ParcelRepo.Query(f, 0, 0)
	if err != nil {
		return nil, ParcelStats{}, domain.InternalError{Msg: "gagal mengambil data laporan paket", Err: err}
	}
	return pageWindow(all, page, limit), SummarizeParcels(all), nil
}

func pageWindow(rows []models.Parcel, page, limit int) []models.Parcel {
	if page <= 0 || limit <= 0 {
		return rows
	}
	start := (page - 1) * limit
	if start >= len(rows) {
		return []models.Parcel{}
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// SystemStats aggregates the whole dataset, no filter applied.
func (s ReportsService) SystemStats() (ParcelStats, FleetStats, error) {
	parcels, err := s.ParcelRepo.Query(repositories.ParcelFilter{}, 0, 0)
	if err != nil {
		return ParcelStats{}, FleetStats{}, domain.InternalError{Msg: "gagal mengambil data paket", Err: err}
	}
	buses, err := s.BusRepo.List()
	if err != nil {
		return ParcelStats{}, FleetStats{}, domain.InternalError{Msg: "gagal mengambil data bus", Err: err}
	}
	return SummarizeParcels(parcels), SummarizeFleet(buses), nil
}
