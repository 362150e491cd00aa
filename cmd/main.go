package main

import (
	"log"

	"github.com/DeltaMobileInc/menu-scanner-backend/config"
	"github.com/DeltaMobileInc/menu-scanner-backend/controllers"
	"github.com/DeltaMobileInc/menu-scanner-backend/repository"
	"github.com/DeltaMobileInc/menu-scanner-backend/routes"
	"github.com/DeltaMobileInc/menu-scanner-backend/services"
	"github.com/DeltaMobileInc/menu-scanner-backend/utils"
)

func main() {
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	utils.InitS3()

	store := repository.NewRestaurantRepository(db)
	restaurantSvc := services.NewRestaurantService(store, services.NewYelpService(), services.NewPlacesService())

	// A broken Rekognition setup degrades the scan endpoint only; search
	// keeps serving.
	var detector services.TextDetector
	if rek, err := services.NewRekognitionService(); err != nil {
		log.Printf("rekognition init failed, scan endpoint unavailable: %v", err)
	} else {
		detector = rek
	}
	scanSvc := services.NewScanService(detector, utils.UploadBase64ImageToS3, restaurantSvc)

	r := routes.SetupRouter(
		controllers.NewRestaurantController(restaurantSvc),
		controllers.NewScanController(scanSvc),
	)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
