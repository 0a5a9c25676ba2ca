package handlers

import (
	"net/http"
	"strings"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func parcelService(c *gin.Context) services.ParcelService {
	rid := middleware.GetRequestID(c)
	return services.ParcelService{
		Guard:     services.GuardService{RequestID: rid},
		RequestID: rid,
	}
}

func parcelFilterFromQuery(c *gin.Context) repositories.ParcelFilter {
	return repositories.ParcelFilter{
		Date:       strings.TrimSpace(c.Query("date")),
		Status:     strings.TrimSpace(c.Query("status")),
		RouteID:    strings.TrimSpace(c.Query("route")),
		OperatorID: strings.TrimSpace(c.Query("operator")),
		Search:     strings.TrimSpace(c.Query("search")),
	}
}

// GET /api/parcels?date=&status=&route=&operator=&search=&page=&limit=
func GetParcels(c *gin.Context) {
	page, limit := pageParams(c)
	rows, err := parcelService(c).Query(parcelFilterFromQuery(c), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/track/:trackingNumber (public)
func TrackParcel(c *gin.Context) {
	p, err := parcelService(c).Track(c.Param("trackingNumber"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/parcels
func CreateParcel(c *gin.Context) {
	var in services.ParcelInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := parcelService(c).Add(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "paket berhasil ditambahkan",
		"id":             p.ID,
		"trackingNumber": p.TrackingNumber,
	})
}

// PUT /api/parcels/:id
func UpdateParcel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.ParcelInput
	if !bindJSON(c, &in) {
		return
	}

	if err := parcelService(c).Update(id, in); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "paket berhasil diupdate"})
}

// PUT /api/parcels/:id/status
func SetParcelStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload statusPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := parcelService(c).SetStatus(id, payload.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status paket berhasil diupdate"})
}

// DELETE /api/parcels/:id
func DeleteParcel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := parcelService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "paket berhasil dihapus"})
}
