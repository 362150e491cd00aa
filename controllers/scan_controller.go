package controllers

import (
	"errors"
	"net/http"

	"github.com/DeltaMobileInc/menu-scanner-backend/services"

	"github.com/gin-gonic/gin"
)

type ScanController struct {
	svc *services.ScanService
}

func NewScanController(svc *services.ScanService) *ScanController {
	return &ScanController{svc: svc}
}

// POST /scan  { "image_base64": "data:image/jpeg;base64,...", "lat": 40.7, "lon": -74.0 }
func (ctl *ScanController) Scan(c *gin.Context) {
	var req struct {
		ImageBase64 string   `json:"image_base64" binding:"required"`
		Lat         *float64 `json:"lat"`
		Lon         *float64 `json:"lon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := ctl.svc.Scan(req.ImageBase64, req.Lat, req.Lon)
	if err != nil {
		if errors.Is(err, services.ErrScanUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
