package models

// Person is a biographical record together with the milestones it owns.
type Person struct {
	ID            string      `json:"id" yaml:"id" validate:"required"`
	Name          string      `json:"name" yaml:"name" validate:"required"`
	LocalizedName string      `json:"localized_name" yaml:"localized_name"`
	Title         string      `json:"title" yaml:"title" validate:"required"`
	Description   string      `json:"description" yaml:"description"`
	BirthDate     Date        `json:"birth_date" yaml:"birth_date"`
	DeathDate     *Date       `json:"death_date,omitempty" yaml:"death_date,omitempty"`
	Avatar        string      `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	CoverImage    string      `json:"cover_image,omitempty" yaml:"cover_image,omitempty"`
	Tags          []string    `json:"tags" yaml:"tags" validate:"dive,required"`
	Achievements  []string    `json:"achievements" yaml:"achievements"`
	Quote         string      `json:"quote" yaml:"quote"`
	Milestones    []Milestone `json:"milestones" yaml:"milestones" validate:"dive"`
}

// BirthYear returns the calendar year of birth.
func (p Person) BirthYear() int {
	return p.BirthDate.Year()
}

// Living reports whether the person has no recorded death date.
func (p Person) Living() bool {
	return p.DeathDate == nil
}

// EndYear returns the death year, or refYear when the person is living.
func (p Person) EndYear(refYear int) int {
	if p.DeathDate != nil {
		return p.DeathDate.Year()
	}
	return refYear
}

// HasTag reports whether tag is one of the person's tags (exact match).
func (p Person) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Summary returns the short form used in listings.
func (p Person) Summary() PersonSummary {
	return PersonSummary{
		ID:            p.ID,
		Name:          p.Name,
		LocalizedName: p.LocalizedName,
		Title:         p.Title,
		Tags:          p.Tags,
	}
}

// Milestone is a dated life event. It has no identity outside its Person.
type Milestone struct {
	ID           string     `json:"id" yaml:"id"`
	Year         int        `json:"year" yaml:"year" validate:"required"`
	Age          int        `json:"age" yaml:"age" validate:"min=0"`
	Title        string     `json:"title" yaml:"title" validate:"required"`
	Description  string     `json:"description" yaml:"description"`
	Category     Category   `json:"category" yaml:"category" validate:"category"`
	Importance   Importance `json:"importance" yaml:"importance" validate:"importance"`
	Image        string     `json:"image,omitempty" yaml:"image,omitempty"`
	Achievements []string   `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	Challenges   []string   `json:"challenges,omitempty" yaml:"challenges,omitempty"`
	Insights     []string   `json:"insights,omitempty" yaml:"insights,omitempty"`
}

// PersonSummary is a compact listing entry.
type PersonSummary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	LocalizedName string   `json:"localized_name"`
	Title         string   `json:"title"`
	Tags          []string `json:"tags"`
}

// ImportanceCounts always carries every importance level, even when zero.
type ImportanceCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Add increments the bucket for level. Unknown levels are ignored.
func (c *ImportanceCounts) Add(level Importance) {
	switch level {
	case ImportanceCritical:
		c.Critical++
	case ImportanceHigh:
		c.High++
	case ImportanceMedium:
		c.Medium++
	case ImportanceLow:
		c.Low++
	}
}

// Stats are per-person aggregates derived from a Person and a reference year.
type Stats struct {
	Age                    int              `json:"age"`
	Lifespan               string           `json:"lifespan"`
	TotalMilestones        int              `json:"total_milestones"`
	AchievementsCount      int              `json:"achievements_count"`
	TagsCount              int              `json:"tags_count"`
	MilestonesByImportance ImportanceCounts `json:"milestones_by_importance"`
	// MilestonesByCategory only holds categories that occur.
	MilestonesByCategory map[Category]int `json:"milestones_by_category"`
}

// Recommendation pairs a recommended person with its tag-overlap score.
type Recommendation struct {
	Person Person `json:"person"`
	Score  int    `json:"score"`
}
