package controllers

import (
	"net/http"

	"github.com/DeltaMobileInc/menu-scanner-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /auth/token  { "device_id": "..." }
// Issues the app token the mobile client sends with its requests. The body
// is optional; a device without an id yet gets a fresh one minted here.
func IssueToken(c *gin.Context) {
	var req struct {
		DeviceID string `json:"device_id"`
	}
	_ = c.ShouldBindJSON(&req)

	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	token, err := utils.GenerateJWT(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "device_id": deviceID})
}
