package repository

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantRepository is the durable restaurant store. Read failures degrade
// to empty results and write failures are logged per record, so a degraded
// database never fails a search outright.
type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// FindByID returns nil when the record is absent or the read fails.
func (r *RestaurantRepository) FindByID(id string) *models.Restaurant {
	var rest models.Restaurant
	err := r.db.First(&rest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("store: lookup of %s failed: %v", id, err)
		return nil
	}
	return &rest
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches the query case-insensitively against the name or any cuisine
// label, newest records first. LIKE metacharacters in the query are escaped
// so they match literally; a query of "%" must not match every row.
func (r *RestaurantRepository) Search(query string, limit int) []models.Restaurant {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(query))) + "%"
	var out []models.Restaurant
	err := r.db.
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(cuisines) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		log.Printf("store: search for %q failed: %v", query, err)
		return nil
	}
	return out
}

// Top returns the highest-rated records.
func (r *RestaurantRepository) Top(limit int) []models.Restaurant {
	var out []models.Restaurant
	err := r.db.Order("rating DESC").Limit(limit).Find(&out).Error
	if err != nil {
		log.Printf("store: trending query failed: %v", err)
		return nil
	}
	return out
}

// Upsert inserts the record if its id is unseen, otherwise updates the
// mutable columns, as one atomic INSERT ... ON CONFLICT statement so two
// concurrent first-time upserts of the same id cannot race. The image URL is
// only overwritten by a non-empty value and origin ids are only ever added,
// never cleared, so provenance from an earlier provider sync survives later
// upserts. createdAt is set exactly once; updatedAt is refreshed every time.
func (r *RestaurantRepository) Upsert(rec models.Restaurant) error {
	now := time.Now().UnixMilli()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	// created_at is deliberately absent: it survives from the first insert.
	updates := map[string]interface{}{
		"name":         rec.Name,
		"latitude":     rec.Latitude,
		"longitude":    rec.Longitude,
		"cuisines":     models.JoinCuisines(rec.Cuisines),
		"rating":       rec.Rating,
		"review_count": rec.ReviewCount,
		"updated_at":   now,
	}
	if rec.ImageURL != "" {
		updates["image_url"] = rec.ImageURL
	}
	if rec.YelpID != nil {
		updates["yelp_id"] = rec.YelpID
	}
	if rec.PlacesID != nil {
		updates["places_id"] = rec.PlacesID
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&rec).Error
}

// UpsertAll persists a merged batch best-effort: a failed record is logged
// and skipped, the rest of the batch is still attempted.
func (r *RestaurantRepository) UpsertAll(recs []models.Restaurant) {
	for _, rec := range recs {
		if err := r.Upsert(rec); err != nil {
			log.Printf("store: upsert of %s failed: %v", rec.ID, err)
		}
	}
}
