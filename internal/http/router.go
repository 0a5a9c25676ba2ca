package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		api.POST("/auth/login", h.Login(secret))

		// Public parcel tracking by resi number
		api.GET("/track/:trackingNumber", h.TrackParcel)
		api.GET("/track/:trackingNumber/receipt", h.GetParcelReceiptPDF)

		// Back-office endpoints require an admin token
		admin := api.Group("")
		admin.Use(middleware.Auth(secret), middleware.RequireAdmin())

		buses := admin.Group("/buses")
		buses.GET("", h.GetBuses)
		buses.POST("", h.CreateBus)
		buses.PUT("/:id/status", h.SetBusStatus)
		buses.DELETE("/:id", h.DeleteBus)

		routes := admin.Group("/routes")
		routes.GET("", h.GetRoutes)
		routes.POST("", h.CreateRoute)
		routes.PUT("/:id", h.UpdateRoute)
		routes.DELETE("/:id", h.DeleteRoute)

		parcels := admin.Group("/parcels")
		parcels.GET("", h.GetParcels)
		parcels.POST("", h.CreateParcel)
		parcels.PUT("/:id", h.UpdateParcel)
		parcels.PUT("/:id/status", h.SetParcelStatus)
		parcels.DELETE("/:id", h.DeleteParcel)

		users := admin.Group("/users")
		users.GET("", h.GetUsers)
		users.POST("", h.CreateUser)
		users.DELETE("/:id", h.DeleteUser)

		admin.POST("/bulk/status", h.BulkSetStatus)

		reports := admin.Group("/reports")
		reports.GET("/parcels", h.ParcelReport)
		reports.GET("/system", h.SystemReport)
		reports.GET("/fleet-manifest", h.GetFleetManifestPDF)
	}

	return r
}
