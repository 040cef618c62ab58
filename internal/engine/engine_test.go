package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoxiewl/want-to-be/internal/dataset"
	"github.com/leoxiewl/want-to-be/internal/models"
)

func person(id string, birth string, death string, tags ...string) models.Person {
	p := models.Person{
		ID:        id,
		Name:      id,
		Title:     "title of " + id,
		BirthDate: models.MustParseDate(birth),
		Tags:      tags,
	}
	if death != "" {
		d := models.MustParseDate(death)
		p.DeathDate = &d
	}
	return p
}

func ids(people []models.Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.ID)
	}
	return out
}

func milestoneIDs(ms []models.Milestone) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestAll_ReturnsStableCopy(t *testing.T) {
	people := []models.Person{person("a", "1900-01-01", ""), person("b", "1910-01-01", "")}
	all := All(people)
	require.Equal(t, []string{"a", "b"}, ids(all))

	all[0].ID = "changed"
	assert.Equal(t, "a", people[0].ID)
}

func TestFindByID(t *testing.T) {
	people := []models.Person{person("a", "1900-01-01", ""), person("b", "1910-01-01", "")}

	p, ok := FindByID(people, "b")
	require.True(t, ok)
	assert.Equal(t, "b", p.ID)

	_, ok = FindByID(people, "missing")
	assert.False(t, ok)

	_, ok = FindByID(nil, "a")
	assert.False(t, ok)
}

func TestFilterByTag(t *testing.T) {
	people := []models.Person{
		person("a", "1900-01-01", "", "innovation", "leadership"),
		person("b", "1910-01-01", "", "risk"),
		person("c", "1920-01-01", "", "leadership"),
	}
	assert.Equal(t, []string{"a", "c"}, ids(FilterByTag(people, "leadership")))
	assert.Empty(t, FilterByTag(people, "Leadership"))
	assert.NotNil(t, FilterByTag(people, "nothing"))
}

func TestFilterByEra(t *testing.T) {
	living := person("living", "1955-02-24", "")
	early := person("early", "1880-01-01", "1940-06-01")
	spanning := person("spanning", "1940-01-01", "1990-01-01")
	people := []models.Person{living, early, spanning}

	tests := []struct {
		name       string
		start, end int
		want       []string
	}{
		{"born inside window", 1950, 1960, []string{"living", "spanning"}},
		{"died before window", 1941, 1945, []string{"spanning"}},
		{"died on start bound", 1940, 1940, []string{"early", "spanning"}},
		{"living through reference year", 2024, 2024, []string{"living"}},
		{"after reference year", 2025, 2030, []string{}},
		{"inverted range", 1960, 1950, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterByEra(people, tt.start, tt.end, 2024)))
		})
	}
}

func TestFilterByEra_SpecScenario(t *testing.T) {
	born1955 := person("p", "1955-01-01", "")
	died1940 := person("q", "1870-01-01", "1940-01-01")

	assert.Equal(t, []string{"p"}, ids(FilterByEra([]models.Person{born1955}, 1950, 1960, 2024)))
	assert.Empty(t, FilterByEra([]models.Person{died1940}, 1950, 1960, 2024))
}

func TestSearch(t *testing.T) {
	a := person("a", "1955-02-24", "", "Innovation")
	a.Name = "Steve Jobs"
	a.LocalizedName = "史蒂夫·乔布斯"
	a.Description = "Co-founder of Apple"
	b := person("b", "1971-06-28", "", "space")
	b.Name = "Elon Musk"
	b.Title = "Engineer"
	people := []models.Person{a, b}

	tests := []struct {
		query string
		want  []string
	}{
		{"steve", []string{"a"}},
		{"APPLE", []string{"a"}},
		{"乔布斯", []string{"a"}},
		{"innov", []string{"a"}},
		{"SPACE", []string{"b"}},
		{"engineer", []string{"b"}},
		{"title of", []string{"a"}},
		{"s", []string{"a", "b"}},
		{"nonexistent-zzz", []string{}},
		{"", []string{}},
		{"   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Search(people, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestAllTags(t *testing.T) {
	people := []models.Person{
		person("a", "1900-01-01", "", "risk", "design"),
		person("b", "1910-01-01", "", "design", "ai"),
	}
	assert.Equal(t, []string{"ai", "design", "risk"}, AllTags(people))
	assert.Empty(t, AllTags(nil))
}

func TestComputeStats_LivingPersonUsesReferenceYear(t *testing.T) {
	p := person("p", "1955-02-24", "")
	stats := ComputeStats(p, 2024)
	assert.Equal(t, 69, stats.Age)
	assert.Equal(t, "1955 - Present", stats.Lifespan)
}

func TestComputeStats_Deceased(t *testing.T) {
	p := person("p", "1955-02-24", "2011-10-05", "design", "innovation")
	p.Achievements = []string{"Apple", "Pixar"}
	p.Milestones = []models.Milestone{
		{ID: "m1", Year: 1955, Category: models.CategoryBirth, Importance: models.ImportanceMedium},
		{ID: "m2", Year: 1976, Category: models.CategoryCareer, Importance: models.ImportanceCritical},
		{ID: "m3", Year: 1997, Category: models.CategoryCareer, Importance: models.ImportanceCritical},
	}

	stats := ComputeStats(p, 2099)
	assert.Equal(t, 56, stats.Age)
	assert.Equal(t, "1955 - 2011", stats.Lifespan)
	assert.Equal(t, 3, stats.TotalMilestones)
	assert.Equal(t, 2, stats.AchievementsCount)
	assert.Equal(t, 2, stats.TagsCount)
	assert.Equal(t, models.ImportanceCounts{Critical: 2, Medium: 1}, stats.MilestonesByImportance)
	assert.Equal(t, map[models.Category]int{
		models.CategoryBirth:  1,
		models.CategoryCareer: 2,
	}, stats.MilestonesByCategory)
}

func TestComputeStats_NoMilestones(t *testing.T) {
	stats := ComputeStats(person("p", "2000-01-01", ""), 2024)
	assert.Equal(t, models.ImportanceCounts{}, stats.MilestonesByImportance)
	assert.NotNil(t, stats.MilestonesByCategory)
	assert.Empty(t, stats.MilestonesByCategory)
}

func TestRecommend_SharedTagScenario(t *testing.T) {
	a := person("A", "1955-01-01", "", "innovation", "leadership")
	b := person("B", "1971-01-01", "", "innovation", "risk")

	got := RecommendScored([]models.Person{a, b}, "A", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Person.ID)
	assert.Equal(t, 1, got[0].Score)

	assert.Equal(t, []string{"B"}, ids(Recommend([]models.Person{a, b}, "A", 1)))
}

func TestRecommend_StableTieBreakAndZeroScores(t *testing.T) {
	people := []models.Person{
		person("target", "1950-01-01", "", "x", "y"),
		person("zero", "1950-01-01", "", "q"),
		person("tie1", "1950-01-01", "", "x"),
		person("best", "1950-01-01", "", "x", "y"),
		person("tie2", "1950-01-01", "", "y"),
	}

	got := Recommend(people, "target", 10)
	assert.Equal(t, []string{"best", "tie1", "tie2", "zero"}, ids(got))

	for i := 0; i < 20; i++ {
		assert.Equal(t, got, Recommend(people, "target", 10))
	}
}

func TestRecommend_Limits(t *testing.T) {
	people := []models.Person{
		person("a", "1950-01-01", ""),
		person("b", "1950-01-01", ""),
		person("c", "1950-01-01", ""),
		person("d", "1950-01-01", ""),
		person("e", "1950-01-01", ""),
	}

	assert.Len(t, Recommend(people, "a", 0), DefaultRecommendLimit)
	assert.Len(t, Recommend(people, "a", 2), 2)
	assert.Len(t, Recommend(people, "a", 99), 4)
	assert.Empty(t, Recommend(people, "missing", 3))
	assert.NotNil(t, Recommend(people, "missing", 3))
	assert.Empty(t, Recommend(people[:1], "a", 3))
}

func TestRecommend_NeverIncludesTarget(t *testing.T) {
	people := dataset.Seed()
	for _, p := range people {
		for _, r := range Recommend(people, p.ID, len(people)) {
			assert.NotEqual(t, p.ID, r.ID)
		}
	}
}

func TestSharedTags_IgnoresDuplicates(t *testing.T) {
	set := map[string]struct{}{"x": {}}
	assert.Equal(t, 1, sharedTags(set, []string{"x", "x"}))
}

func TestOrderedMilestones(t *testing.T) {
	p := person("p", "1950-01-01", "")
	p.Milestones = []models.Milestone{
		{ID: "c", Year: 1980},
		{ID: "a", Year: 1960},
		{ID: "b2", Year: 1970},
		{ID: "b1", Year: 1970},
	}

	ordered := OrderedMilestones(p)
	assert.Equal(t, []string{"a", "b2", "b1", "c"}, milestoneIDs(ordered))
	assert.Equal(t, "c", p.Milestones[0].ID, "input must not be reordered")

	p.Milestones = ordered
	assert.Equal(t, ordered, OrderedMilestones(p))
}

func TestFilterByCategory(t *testing.T) {
	ms := []models.Milestone{
		{ID: "1", Category: models.CategoryCareer},
		{ID: "2", Category: models.CategorySetback},
		{ID: "3", Category: models.CategoryCareer},
	}

	all := FilterByCategory(ms, models.CategoryAll)
	assert.Equal(t, ms, all)

	assert.Equal(t, []string{"1", "3"}, milestoneIDs(FilterByCategory(ms, models.CategoryCareer)))
	assert.Empty(t, FilterByCategory(ms, models.CategoryLegacy))
}

func TestFilterTimeline(t *testing.T) {
	ms := []models.Milestone{
		{ID: "1", Age: 10, Category: models.CategoryEducation, Importance: models.ImportanceLow},
		{ID: "2", Age: 25, Category: models.CategoryCareer, Importance: models.ImportanceCritical},
		{ID: "3", Age: 40, Category: models.CategoryCareer, Importance: models.ImportanceHigh},
	}
	minAge, maxAge := 20, 30

	assert.Equal(t, []string{"1", "2", "3"}, milestoneIDs(FilterTimeline(ms, TimelineFilter{})))
	assert.Equal(t, []string{"2", "3"}, milestoneIDs(FilterTimeline(ms, TimelineFilter{
		Categories: []models.Category{models.CategoryCareer},
	})))
	assert.Equal(t, []string{"3"}, milestoneIDs(FilterTimeline(ms, TimelineFilter{
		Importance: []models.Importance{models.ImportanceHigh},
	})))
	assert.Equal(t, []string{"2"}, milestoneIDs(FilterTimeline(ms, TimelineFilter{
		MinAge: &minAge,
		MaxAge: &maxAge,
	})))
}

func TestTimelinePosition(t *testing.T) {
	p := person("p", "1950-01-01", "2000-01-01")
	assert.InDelta(t, 0.0, TimelinePosition(p, models.Milestone{Year: 1950}, 2024), 1e-9)
	assert.InDelta(t, 0.5, TimelinePosition(p, models.Milestone{Year: 1975}, 2024), 1e-9)
	assert.InDelta(t, 1.0, TimelinePosition(p, models.Milestone{Year: 2000}, 2024), 1e-9)
	assert.InDelta(t, 1.0, TimelinePosition(p, models.Milestone{Year: 2010}, 2024), 1e-9)

	newborn := person("n", "2024-03-01", "")
	assert.Zero(t, TimelinePosition(newborn, models.Milestone{Year: 2024}, 2024))
}

func TestYearSource(t *testing.T) {
	assert.Equal(t, 2024, NewYearSource(2024)())
	assert.Equal(t, 1999, FixedYear(1999)())
	assert.GreaterOrEqual(t, NewYearSource(0)(), 2024)
}
