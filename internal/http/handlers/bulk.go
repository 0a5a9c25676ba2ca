package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

type bulkStatusPayload struct {
	Kind   string  `json:"kind" binding:"required"`
	IDs    []int64 `json:"ids" binding:"required"`
	Status string  `json:"status" binding:"required"`
}

// POST /api/bulk/status
func BulkSetStatus(c *gin.Context) {
	var payload bulkStatusPayload
	if !bindJSON(c, &payload) {
		return
	}

	rid := middleware.GetRequestID(c)
	svc := services.BulkService{
		Buses:     services.BusService{Guard: services.GuardService{RequestID: rid}, RequestID: rid},
		Routes:    services.RouteService{Guard: services.GuardService{RequestID: rid}, RequestID: rid},
		Parcels:   services.ParcelService{Guard: services.GuardService{RequestID: rid}, RequestID: rid},
		RequestID: rid,
	}

	result, err := svc.SetStatus(payload.Kind, payload.IDs, payload.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
