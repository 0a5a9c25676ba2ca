package services

import (
	"fmt"
	"strings"

	"backend/internal/domain"
	"backend/internal/utils"
)

// BulkResult reports per-item outcomes of one bulk status change. It is
// enough to render an accurate "N updated" confirmation.
type BulkResult struct {
	UpdatedCount int     `json:"updatedCount"`
	FailedIDs    []int64 `json:"failedIds"`
}

// BulkService applies one target status to many ids. Each id is attempted
// independently; one failure never aborts the batch. Items run sequentially
// in request order, so overlapping bulk requests are last-write-wins per id.
type BulkService struct {
	Buses     BusService
	Routes    RouteService
	Parcels   ParcelService
	RequestID string
}

func (s BulkService) SetStatus(kind string, ids []int64, status string) (BulkResult, error) {
	if len(ids) == 0 {
		return BulkResult{}, domain.ValidationError{Field: "ids", Msg: "tidak boleh kosong"}
	}
	if strings.TrimSpace(status) == "" {
		return BulkResult{}, domain.ValidationError{Field: "status", Msg: "wajib diisi"}
	}

	var setter func(id int64, status string) error
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "bus":
		if _, ok := domain.ParseBusStatus(status); !ok {
			return BulkResult{}, domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + status}
		}
		setter = s.Buses.SetStatus
	case "route":
		if _, ok := domain.ParseRouteStatus(status); !ok {
			return BulkResult{}, domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + status}
		}
		setter = s.Routes.SetStatus
	case "parcel":
		if _, ok := domain.ParseParcelStatus(status); !ok {
			return BulkResult{}, domain.ValidationError{Field: "status", Msg: "nilai tidak dikenal: " + status}
		}
		setter = s.Parcels.SetStatus
	default:
		return BulkResult{}, domain.ValidationError{Field: "kind", Msg: "nilai tidak dikenal: " + kind}
	}

	result := BulkResult{FailedIDs: []int64{}}
	for _, id := range ids {
		if err := setter(id, status); err != nil {
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		result.UpdatedCount++
	}

	utils.LogEvent(s.RequestID, "bulk", "set_status",
		fmt.Sprintf("kind=%s status=%s updated=%d failed=%d", kind, status, result.UpdatedCount, len(result.FailedIDs)))
	return result, nil
}
