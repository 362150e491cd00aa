package services

import (
	"sync"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"
)

// How many cached records a search may answer with before we bother the
// external providers.
const cacheSearchLimit = 50

// RestaurantProvider is one external search API. Implementations absorb all
// of their own failures: an unreachable or unconfigured provider answers
// with an empty slice, never an error.
type RestaurantProvider interface {
	Search(query string, lat, lon *float64) []models.Restaurant
}

// RestaurantStore is the durable cache in front of the providers. Reads
// degrade to empty on storage trouble; UpsertAll is best-effort per record.
type RestaurantStore interface {
	FindByID(id string) *models.Restaurant
	Search(query string, limit int) []models.Restaurant
	Top(limit int) []models.Restaurant
	UpsertAll(recs []models.Restaurant)
}

// RestaurantService resolves a scanned or typed restaurant name cache-aside:
// the store answers when it can, otherwise both providers are queried
// concurrently, merged, persisted and returned.
type RestaurantService struct {
	store  RestaurantStore
	yelp   RestaurantProvider
	places RestaurantProvider
}

func NewRestaurantService(store RestaurantStore, yelp, places RestaurantProvider) *RestaurantService {
	return &RestaurantService{store: store, yelp: yelp, places: places}
}

// Search implements the cache-aside resolution. Any non-empty local match
// short-circuits the provider calls, even if stale or partial; that trust in
// the cache is deliberate. On a miss both providers run concurrently and the
// call joins on both before merging — a slow provider extends the call,
// bounded by the provider's own HTTP timeout.
func (s *RestaurantService) Search(query string, lat, lon *float64) []models.Restaurant {
	if cached := s.store.Search(query, cacheSearchLimit); len(cached) > 0 {
		return cached
	}

	var yelpHits, placesHits []models.Restaurant
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		yelpHits = s.yelp.Search(query, lat, lon)
	}()
	go func() {
		defer wg.Done()
		placesHits = s.places.Search(query, lat, lon)
	}()
	wg.Wait()

	merged := MergeAndRank(yelpHits, placesHits)
	s.store.UpsertAll(merged)
	return merged
}

// GetByID returns the cached record, or nil when unknown.
func (s *RestaurantService) GetByID(id string) *models.Restaurant {
	return s.store.FindByID(id)
}

// Trending returns the highest-rated cached records.
func (s *RestaurantService) Trending(limit int) []models.Restaurant {
	return s.store.Top(limit)
}
