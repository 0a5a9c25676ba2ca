package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func routeService(c *gin.Context) services.RouteService {
	rid := middleware.GetRequestID(c)
	return services.RouteService{
		Guard:     services.GuardService{RequestID: rid},
		RequestID: rid,
	}
}

// GET /api/routes
func GetRoutes(c *gin.Context) {
	list, err := routeService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/routes
func CreateRoute(c *gin.Context) {
	var in services.RouteInput
	if !bindJSON(c, &in) {
		return
	}

	id, err := routeService(c).Add(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "rute berhasil ditambahkan", "id": id})
}

// PUT /api/routes/:id
func UpdateRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.RouteInput
	if !bindJSON(c, &in) {
		return
	}

	if err := routeService(c).Update(id, in); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rute berhasil diupdate"})
}

// DELETE /api/routes/:id
func DeleteRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := routeService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rute berhasil dihapus"})
}
