package services

import (
	"sort"
	"strings"

	"github.com/DeltaMobileInc/menu-scanner-backend/models"
)

// MergeAndRank combines the two provider result sets into one ranked list.
// Duplicates are detected by normalized name; the first occurrence wins, so
// a's record takes precedence over b's when both providers return the same
// restaurant. The final order is rating descending with a stable tie-break
// (ties keep their post-dedup relative order).
func MergeAndRank(a, b []models.Restaurant) []models.Restaurant {
	merged := make([]models.Restaurant, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))

	for _, rec := range append(append([]models.Restaurant{}, a...), b...) {
		key := normalizeName(rec.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, rec)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Rating > merged[j].Rating
	})
	return merged
}

// normalizeName is the cross-provider merge key. Two distinct restaurants
// that share a name collapse into one record; that imprecision is accepted
// product behavior, not corrected here.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
