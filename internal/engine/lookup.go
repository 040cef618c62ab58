// Package engine implements read-only queries over a person/milestone dataset.
//
// Every function takes the dataset explicitly and never mutates it. Functions
// that depend on "now" take a reference year instead of reading the clock.
package engine

import (
	"slices"
	"strings"

	"github.com/leoxiewl/want-to-be/internal/models"
)

// All returns the full dataset in its stable order.
func All(people []models.Person) []models.Person {
	return slices.Clone(people)
}

// FindByID returns the person with the given id.
func FindByID(people []models.Person, id string) (models.Person, bool) {
	for _, p := range people {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

// FilterByTag returns every person carrying tag, in collection order.
func FilterByTag(people []models.Person, tag string) []models.Person {
	out := []models.Person{}
	for _, p := range people {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByEra returns every person whose lifespan overlaps [startYear, endYear].
// Both bounds are inclusive. Living persons are treated as alive through
// refYear. An inverted range matches nobody.
func FilterByEra(people []models.Person, startYear, endYear, refYear int) []models.Person {
	out := []models.Person{}
	if startYear > endYear {
		return out
	}
	for _, p := range people {
		if p.BirthYear() <= endYear && p.EndYear(refYear) >= startYear {
			out = append(out, p)
		}
	}
	return out
}

// Search matches query case-insensitively against name, localized name,
// title, description and tags. An empty query matches nothing.
func Search(people []models.Person, query string) []models.Person {
	out := []models.Person{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	for _, p := range people {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Person, q string) bool {
	for _, field := range []string{p.Name, p.LocalizedName, p.Title, p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// AllTags returns the sorted union of every tag in the dataset.
func AllTags(people []models.Person) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, p := range people {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)
	return tags
}
