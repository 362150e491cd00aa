package services

import (
	"testing"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAndRankDedupByNormalizedName(t *testing.T) {
	a := []models.Restaurant{{ID: "yelp_1", Name: "Pizza Hut", Rating: 4.0}}
	b := []models.Restaurant{{ID: "places_1", Name: "pizza hut ", Rating: 4.5}}

	merged := MergeAndRank(a, b)

	require.Len(t, merged, 1)
	// First occurrence wins: a's record survives untouched, ratings are not
	// merged or averaged.
	assert.Equal(t, "yelp_1", merged[0].ID)
	assert.Equal(t, 4.0, merged[0].Rating)
}

func TestMergeAndRankOrdersByRatingDescending(t *testing.T) {
	a := []models.Restaurant{{Name: "Low", Rating: 3}}
	b := []models.Restaurant{
		{Name: "High", Rating: 5},
		{Name: "Mid", Rating: 4},
	}

	merged := MergeAndRank(a, b)

	require.Len(t, merged, 3)
	assert.Equal(t, []float64{5, 4, 3}, []float64{merged[0].Rating, merged[1].Rating, merged[2].Rating})
}

func TestMergeAndRankStableTieBreak(t *testing.T) {
	a := []models.Restaurant{
		{ID: "a1", Name: "Alpha", Rating: 4},
		{ID: "a2", Name: "Beta", Rating: 4},
	}
	b := []models.Restaurant{
		{ID: "b1", Name: "Gamma", Rating: 4},
	}

	merged := MergeAndRank(a, b)

	require.Len(t, merged, 3)
	assert.Equal(t, "a1", merged[0].ID)
	assert.Equal(t, "a2", merged[1].ID)
	assert.Equal(t, "b1", merged[2].ID)
}

func TestMergeAndRankEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeAndRank(nil, nil))

	only := []models.Restaurant{{Name: "Solo", Rating: 2}}
	merged := MergeAndRank(nil, only)
	require.Len(t, merged, 1)
	assert.Equal(t, "Solo", merged[0].Name)
}
