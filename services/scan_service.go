package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"
)

// ErrScanUnavailable is returned when no text detector is configured, e.g.
// when the AWS client could not be initialized at startup. Search keeps
// serving; only the scan endpoint degrades.
var ErrScanUnavailable = errors.New("scan unavailable: text detection not configured")

// TextDetector extracts text lines from a base64 data-URI image, most
// prominent line first.
type TextDetector interface {
	DetectMenuText(base64Img string) ([]string, error)
}

// ImageUploader stores a scanned image and returns its public URL.
type ImageUploader func(base64Data, filenamePrefix string) (string, error)

// ScanService turns a menu/storefront photo into resolved restaurant
// records: OCR picks the most prominent text line as the restaurant name,
// then the usual search resolution runs on it. The image itself is uploaded
// best-effort so the app can re-display it; no scan record is kept.
type ScanService struct {
	detector    TextDetector
	upload      ImageUploader
	restaurants *RestaurantService
}

func NewScanService(detector TextDetector, upload ImageUploader, restaurants *RestaurantService) *ScanService {
	return &ScanService{detector: detector, upload: upload, restaurants: restaurants}
}

type ScanResult struct {
	DetectedName string              `json:"detected_name"`
	ImageURL     string              `json:"image_url,omitempty"`
	Restaurants  []models.Restaurant `json:"restaurants"`
}

func (s *ScanService) Scan(imageBase64 string, lat, lon *float64) (*ScanResult, error) {
	if s.detector == nil {
		return nil, ErrScanUnavailable
	}

	lines, err := s.detector.DetectMenuText(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("text detection failed: %w", err)
	}
	if len(lines) == 0 {
		return nil, errors.New("no text detected in image")
	}
	name := lines[0]

	imageURL, err := s.upload(imageBase64, "scan")
	if err != nil {
		log.Printf("scan: image upload failed: %v", err)
		imageURL = ""
	}

	return &ScanResult{
		DetectedName: name,
		ImageURL:     imageURL,
		Restaurants:  s.restaurants.Search(name, lat, lon),
	}, nil
}
