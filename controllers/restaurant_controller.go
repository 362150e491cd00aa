package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DeltaMobileInc/menu-scanner-backend/services"

	"github.com/gin-gonic/gin"
)

const defaultTrendingLimit = 10

type RestaurantController struct {
	svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{svc: svc}
}

// GET /restaurants/search?q=sushi&lat=40.7&lon=-74.0
func (ctl *RestaurantController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	lat := parseCoord(c.Query("lat"))
	lon := parseCoord(c.Query("lon"))

	c.JSON(http.StatusOK, gin.H{"restaurants": ctl.svc.Search(query, lat, lon)})
}

// GET /restaurants/trending?limit=10
func (ctl *RestaurantController) Trending(c *gin.Context) {
	limit := defaultTrendingLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": ctl.svc.Trending(limit)})
}

// GET /restaurants/:id
func (ctl *RestaurantController) GetByID(c *gin.Context) {
	rec := ctl.svc.GetByID(c.Param("id"))
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Malformed coordinates are treated as absent rather than rejected; only the
// query itself is mandatory.
func parseCoord(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
