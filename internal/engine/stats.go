package engine

import (
	"fmt"

	"github.com/leoxiewl/want-to-be/internal/models"
)

// ComputeStats aggregates counts for one person. refYear stands in for the
// current year when the person is living.
func ComputeStats(p models.Person, refYear int) models.Stats {
	stats := models.Stats{
		Age:                  p.EndYear(refYear) - p.BirthYear(),
		Lifespan:             Lifespan(p),
		TotalMilestones:      len(p.Milestones),
		AchievementsCount:    len(p.Achievements),
		TagsCount:            len(p.Tags),
		MilestonesByCategory: make(map[models.Category]int),
	}
	for _, m := range p.Milestones {
		stats.MilestonesByImportance.Add(m.Importance)
		stats.MilestonesByCategory[m.Category]++
	}
	return stats
}

// Lifespan renders "1955 - 2011", or "1971 - Present" for living persons.
func Lifespan(p models.Person) string {
	if p.DeathDate == nil {
		return fmt.Sprintf("%d - Present", p.BirthYear())
	}
	return fmt.Sprintf("%d - %d", p.BirthYear(), p.DeathDate.Year())
}
