package services

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"
)

const (
	yelpSearchURL       = "https://api.yelp.com/v3/businesses/search"
	yelpDefaultLocation = "New York"
	yelpSearchLimit     = 20
)

// YelpService searches the Yelp Fusion business API. Any failure — missing
// key, network error, bad payload — degrades to an empty result so one flaky
// provider never fails the whole search.
type YelpService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewYelpService() *YelpService {
	return &YelpService{
		apiKey:  os.Getenv("YELP_API_KEY"),
		baseURL: yelpSearchURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type yelpSearchResponse struct {
	Businesses []struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Rating      float64 `json:"rating"`
		ReviewCount int     `json:"review_count"`
		ImageURL    string  `json:"image_url"`
		Coordinates struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"coordinates"`
		Categories []struct {
			Title string `json:"title"`
		} `json:"categories"`
	} `json:"businesses"`
}

func (s *YelpService) Search(query string, lat, lon *float64) []models.Restaurant {
	if isPlaceholderKey(s.apiKey) {
		log.Printf("yelp: no API key configured, skipping provider")
		return nil
	}

	params := url.Values{}
	params.Set("term", query)
	params.Set("limit", strconv.Itoa(yelpSearchLimit))
	if lat != nil && lon != nil {
		params.Set("latitude", strconv.FormatFloat(*lat, 'f', -1, 64))
		params.Set("longitude", strconv.FormatFloat(*lon, 'f', -1, 64))
	} else {
		// Yelp requires some location; without a device fix we bias to a
		// fixed default rather than erroring out.
		params.Set("location", yelpDefaultLocation)
	}

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("yelp: failed to build search request: %v", err)
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("yelp: search request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("yelp: failed to read search response: %v", err)
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("yelp: search API error %d: %s", resp.StatusCode, string(body))
		return nil
	}

	var sr yelpSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		log.Printf("yelp: failed to parse search JSON: %v", err)
		return nil
	}

	results := make([]models.Restaurant, 0, len(sr.Businesses))
	for _, b := range sr.Businesses {
		cuisines := make([]string, 0, len(b.Categories))
		for _, c := range b.Categories {
			cuisines = append(cuisines, c.Title)
		}
		externalID := b.ID
		results = append(results, models.Restaurant{
			ID:          "yelp_" + b.ID,
			Name:        b.Name,
			Latitude:    b.Coordinates.Latitude,
			Longitude:   b.Coordinates.Longitude,
			Cuisines:    cuisines,
			Rating:      b.Rating,
			ReviewCount: b.ReviewCount,
			ImageURL:    b.ImageURL,
			YelpID:      &externalID,
		})
	}
	return results
}
