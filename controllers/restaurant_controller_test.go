package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"
	"github.com/DeltaMobileInc/menu-scanner-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	searchResults []models.Restaurant
	top           []models.Restaurant
	byID          map[string]*models.Restaurant
}

func (s *fakeStore) FindByID(id string) *models.Restaurant { return s.byID[id] }

func (s *fakeStore) Search(q string, limit int) []models.Restaurant { return s.searchResults }

func (s *fakeStore) Top(limit int) []models.Restaurant { return s.top }

func (s *fakeStore) UpsertAll(recs []models.Restaurant) {}

type fakeProvider struct {
	results []models.Restaurant
}

func (p *fakeProvider) Search(q string, lat, lon *float64) []models.Restaurant {
	return p.results
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewRestaurantService(store, &fakeProvider{}, &fakeProvider{})
	ctl := NewRestaurantController(svc)

	r := gin.New()
	r.GET("/restaurants/search", ctl.Search)
	r.GET("/restaurants/trending", ctl.Trending)
	r.GET("/restaurants/:id", ctl.GetByID)
	return r
}

func TestSearchRequiresQuery(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	for _, target := range []string{"/restaurants/search", "/restaurants/search?q=%20"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestSearchReturnsEnvelope(t *testing.T) {
	store := &fakeStore{searchResults: []models.Restaurant{
		{ID: "yelp_a1", Name: "Sushi Go", Rating: 4.2},
	}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/search?q=sushi&lat=40.7&lon=-74.0", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Restaurants, 1)
	assert.Equal(t, "yelp_a1", resp.Restaurants[0].ID)
}

func TestGetByIDNotFound(t *testing.T) {
	r := newTestRouter(&fakeStore{byID: map[string]*models.Restaurant{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByIDFound(t *testing.T) {
	r := newTestRouter(&fakeStore{byID: map[string]*models.Restaurant{
		"yelp_a1": {ID: "yelp_a1", Name: "Sushi Go"},
	}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/yelp_a1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var rec models.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "Sushi Go", rec.Name)
}

func TestTrendingDefaultsLimit(t *testing.T) {
	store := &fakeStore{top: []models.Restaurant{{ID: "yelp_top", Rating: 5}}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/trending", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Restaurants, 1)
	assert.Equal(t, "yelp_top", resp.Restaurants[0].ID)
}
