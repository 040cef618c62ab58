package engine

import (
	"slices"

	"github.com/leoxiewl/want-to-be/internal/models"
)

// DefaultRecommendLimit is used when a non-positive limit is requested.
const DefaultRecommendLimit = 3

// Recommend returns the persons most similar to personID by shared tags.
func Recommend(people []models.Person, personID string, limit int) []models.Person {
	scored := RecommendScored(people, personID, limit)
	out := make([]models.Person, 0, len(scored))
	for _, r := range scored {
		out = append(out, r.Person)
	}
	return out
}

// RecommendScored ranks every other person by the number of tags shared with
// personID. Equal scores keep collection order. Exactly min(limit, n-1)
// entries are returned, including zero scores. An unknown id yields none.
func RecommendScored(people []models.Person, personID string, limit int) []models.Recommendation {
	target, ok := FindByID(people, personID)
	if !ok {
		return []models.Recommendation{}
	}
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	tags := make(map[string]struct{}, len(target.Tags))
	for _, t := range target.Tags {
		tags[t] = struct{}{}
	}

	scored := make([]models.Recommendation, 0, len(people))
	for _, p := range people {
		if p.ID == personID {
			continue
		}
		scored = append(scored, models.Recommendation{Person: p, Score: sharedTags(tags, p.Tags)})
	}

	slices.SortStableFunc(scored, func(a, b models.Recommendation) int {
		return b.Score - a.Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// sharedTags counts distinct tags of other that are in set.
func sharedTags(set map[string]struct{}, other []string) int {
	counted := make(map[string]bool, len(other))
	n := 0
	for _, t := range other {
		if _, ok := set[t]; ok && !counted[t] {
			counted[t] = true
			n++
		}
	}
	return n
}
