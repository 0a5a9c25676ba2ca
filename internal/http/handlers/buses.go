package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func busService(c *gin.Context) services.BusService {
	rid := middleware.GetRequestID(c)
	return services.BusService{
		Guard:     services.GuardService{RequestID: rid},
		RequestID: rid,
	}
}

// GET /api/buses
func GetBuses(c *gin.Context) {
	list, err := busService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/buses
func CreateBus(c *gin.Context) {
	var in services.BusInput
	if !bindJSON(c, &in) {
		return
	}

	id, err := busService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "bus berhasil ditambahkan", "id": id})
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/buses/:id/status
func SetBusStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload statusPayload
	if !bindJSON(c, &payload) {
		return
	}

	if err := busService(c).SetStatus(id, payload.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status bus berhasil diupdate"})
}

// DELETE /api/buses/:id
func DeleteBus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := busService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus dan kursinya berhasil dihapus"})
}
