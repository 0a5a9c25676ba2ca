package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func reportsService(c *gin.Context) services.ReportsService {
	return services.ReportsService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/reports/parcels returns the filtered rows plus their statistics panel.
func ParcelReport(c *gin.Context) {
	page, limit := pageParams(c)
	rows, stats, err := reportsService(c).ParcelReport(parcelFilterFromQuery(c), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "stats": stats})
}

// GET /api/reports/system returns unfiltered system-wide statistics.
func SystemReport(c *gin.Context) {
	parcelStats, fleetStats, err := reportsService(c).SystemStats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parcels": parcelStats, "fleet": fleetStats})
}
