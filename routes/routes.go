package routes

import (
	"net/http"

	"github.com/DeltaMobileInc/menu-scanner-backend/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rc *controllers.RestaurantController, sc *controllers.ScanController) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/token", controllers.IssueToken)
	}

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("/search", rc.Search)
		restaurants.GET("/trending", rc.Trending)
		restaurants.GET("/:id", rc.GetByID)
	}

	r.POST("/scan", sc.Scan)

	return r
}
