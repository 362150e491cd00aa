package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"
)

const (
	placesSearchURL  = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	placesPhotoURL   = "https://maps.googleapis.com/maps/api/place/photo"
	placesBiasRadius = 5000 // meters
)

// PlacesService searches the Google Places text-search API, with the same
// absorb-and-degrade contract as YelpService.
type PlacesService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewPlacesService() *PlacesService {
	return &PlacesService{
		apiKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		baseURL: placesSearchURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type placesSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Types            []string `json:"types"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

func (s *PlacesService) Search(query string, lat, lon *float64) []models.Restaurant {
	if isPlaceholderKey(s.apiKey) {
		log.Printf("places: no API key configured, skipping provider")
		return nil
	}

	params := url.Values{}
	params.Set("query", query+" restaurant")
	params.Set("key", s.apiKey)
	if lat != nil && lon != nil {
		params.Set("location", fmt.Sprintf("%f,%f", *lat, *lon))
		params.Set("radius", fmt.Sprintf("%d", placesBiasRadius))
	}

	resp, err := s.client.Get(s.baseURL + "?" + params.Encode())
	if err != nil {
		log.Printf("places: search request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("places: failed to read search response: %v", err)
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("places: search API error %d: %s", resp.StatusCode, string(body))
		return nil
	}

	var sr placesSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		log.Printf("places: failed to parse search JSON: %v", err)
		return nil
	}
	if sr.Status != "OK" && sr.Status != "ZERO_RESULTS" {
		log.Printf("places: search returned status %s", sr.Status)
		return nil
	}

	results := make([]models.Restaurant, 0, len(sr.Results))
	for _, p := range sr.Results {
		externalID := p.PlaceID
		rec := models.Restaurant{
			ID:          "places_" + p.PlaceID,
			Name:        p.Name,
			Latitude:    p.Geometry.Location.Lat,
			Longitude:   p.Geometry.Location.Lng,
			Cuisines:    p.Types,
			Rating:      p.Rating,
			ReviewCount: p.UserRatingsTotal,
			PlacesID:    &externalID,
		}
		if len(p.Photos) > 0 {
			rec.ImageURL = s.photoURL(p.Photos[0].PhotoReference)
		}
		results = append(results, rec)
	}
	return results
}

func (s *PlacesService) photoURL(photoReference string) string {
	params := url.Values{}
	params.Set("maxwidth", "400")
	params.Set("photo_reference", photoReference)
	params.Set("key", s.apiKey)
	return placesPhotoURL + "?" + params.Encode()
}
