package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/track/:trackingNumber/receipt
func GetParcelReceiptPDF(c *gin.Context) {
	data, filename, err := docsService(c).ParcelReceipt(c.Param("trackingNumber"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "not_found", "paket tidak ditemukan")
			return
		}
		RespondDomainError(c, err)
		return
	}
	servePDF(c, data, filename)
}

// GET /api/reports/fleet-manifest
func GetFleetManifestPDF(c *gin.Context) {
	data, filename, err := docsService(c).FleetManifest()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, data, filename)
}

func servePDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
