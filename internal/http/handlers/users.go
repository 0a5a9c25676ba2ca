package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func userService(c *gin.Context) services.UserService {
	return services.UserService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/users
func GetUsers(c *gin.Context) {
	list, err := userService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var in services.UserInput
	if !bindJSON(c, &in) {
		return
	}

	id, err := userService(c).Add(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user berhasil ditambahkan", "id": id})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	actor := middleware.GetAuthContext(c)
	if err := userService(c).Delete(id, actor); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user berhasil dihapus"})
}
