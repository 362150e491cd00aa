package models

import (
	"strings"

	"gorm.io/gorm"
)

// Restaurant is the canonical record a search resolves to. Provider-sourced
// rows carry an id namespaced by origin ("yelp_<id>" / "places_<id>") so ids
// never collide across providers, plus the raw external id for provenance.
type Restaurant struct {
	ID          string   `gorm:"type:varchar(128);primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Cuisines    []string `gorm:"-" json:"cuisines"`
	CuisineCSV  string   `gorm:"column:cuisines" json:"-"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	ImageURL    string   `json:"image_url"`
	YelpID      *string  `gorm:"type:varchar(128)" json:"yelp_id,omitempty"`
	PlacesID    *string  `gorm:"type:varchar(128)" json:"places_id,omitempty"`
	CreatedAt   int64    `json:"created_at"` // epoch millis, set once at insert
	UpdatedAt   int64    `json:"updated_at"` // epoch millis, refreshed on upsert
}

const cuisineSeparator = ","

// Cuisines live as a slice in memory and as one delimited column in the DB;
// the conversion happens at the storage boundary via GORM hooks.

func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	r.CuisineCSV = JoinCuisines(r.Cuisines)
	return nil
}

func (r *Restaurant) AfterFind(tx *gorm.DB) error {
	r.Cuisines = SplitCuisines(r.CuisineCSV)
	return nil
}

func JoinCuisines(cuisines []string) string {
	return strings.Join(cuisines, cuisineSeparator)
}

func SplitCuisines(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, cuisineSeparator)
}
