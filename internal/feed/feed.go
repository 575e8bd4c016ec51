// Package feed holds the home-feed composition rules.
package feed

import (
	"sort"

	"github.com/inkwell-app/inkwell/internal/models"
)

// RecentLimit is the number of blogs shown in the recent section of the
// home feed.
const RecentLimit = 6

// MergeRecent combines the recent public blogs with the private blogs the
// viewer is entitled to, deduplicates by blog id, orders by created_at
// descending with id descending as the tie-break, and caps the result at
// limit. Inputs are not modified.
func MergeRecent(public, private []models.Blog, limit int) []models.Blog {
	merged := make([]models.Blog, 0, len(public)+len(private))
	seen := make(map[uint]bool, len(public)+len(private))
	for _, blogs := range [][]models.Blog{public, private} {
		for _, b := range blogs {
			if seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			merged = append(merged, b)
		}
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID > merged[j].ID
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
