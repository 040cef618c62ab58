package engine

import (
	"slices"

	"github.com/leoxiewl/want-to-be/internal/models"
)

// OrderedMilestones returns the person's milestones sorted by year. Milestones
// in the same year keep their declared order.
func OrderedMilestones(p models.Person) []models.Milestone {
	ms := slices.Clone(p.Milestones)
	slices.SortStableFunc(ms, func(a, b models.Milestone) int {
		return a.Year - b.Year
	})
	return ms
}

// FilterByCategory keeps milestones of the given category. CategoryAll keeps
// everything in input order.
func FilterByCategory(ms []models.Milestone, category models.Category) []models.Milestone {
	if category == models.CategoryAll {
		return slices.Clone(ms)
	}
	out := []models.Milestone{}
	for _, m := range ms {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// TimelineFilter narrows a timeline. Empty sets and nil bounds do not restrict.
type TimelineFilter struct {
	Categories []models.Category
	Importance []models.Importance
	MinAge     *int
	MaxAge     *int
}

// FilterTimeline keeps milestones that satisfy every set constraint in f.
func FilterTimeline(ms []models.Milestone, f TimelineFilter) []models.Milestone {
	out := []models.Milestone{}
	for _, m := range ms {
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, m.Category) {
			continue
		}
		if len(f.Importance) > 0 && !slices.Contains(f.Importance, m.Importance) {
			continue
		}
		if f.MinAge != nil && m.Age < *f.MinAge {
			continue
		}
		if f.MaxAge != nil && m.Age > *f.MaxAge {
			continue
		}
		out = append(out, m)
	}
	return out
}

// TimelinePosition places m on the person's lifespan as a fraction in [0, 1].
func TimelinePosition(p models.Person, m models.Milestone, refYear int) float64 {
	span := p.EndYear(refYear) - p.BirthYear()
	if span <= 0 {
		return 0
	}
	pos := float64(m.Year-p.BirthYear()) / float64(span)
	switch {
	case pos < 0:
		return 0
	case pos > 1:
		return 1
	}
	return pos
}
