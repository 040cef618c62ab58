package models

import "fmt"

// Category classifies a milestone.
type Category string

const (
	CategoryBirth        Category = "birth"
	CategoryEducation    Category = "education"
	CategoryCareer       Category = "career"
	CategoryInnovation   Category = "innovation"
	CategoryLeadership   Category = "leadership"
	CategorySetback      Category = "setback"
	CategoryBreakthrough Category = "breakthrough"
	CategoryLegacy       Category = "legacy"
	CategoryPersonal     Category = "personal"

	// CategoryAll is the filter sentinel that selects every category.
	// It is never a valid milestone category.
	CategoryAll Category = "all"
)

// Categories lists every milestone category in display order.
var Categories = []Category{
	CategoryBirth,
	CategoryEducation,
	CategoryCareer,
	CategoryInnovation,
	CategoryLeadership,
	CategorySetback,
	CategoryBreakthrough,
	CategoryLegacy,
	CategoryPersonal,
}

// Valid reports whether c is a concrete milestone category.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// Info returns the presentation entry for c.
func (c Category) Info() CategoryInfo {
	return categoryTable[c]
}

// Importance ranks milestones: low < medium < high < critical.
type Importance string

const (
	ImportanceLow      Importance = "low"
	ImportanceMedium   Importance = "medium"
	ImportanceHigh     Importance = "high"
	ImportanceCritical Importance = "critical"
)

// ImportanceLevels lists importance levels from lowest to highest.
var ImportanceLevels = []Importance{
	ImportanceLow,
	ImportanceMedium,
	ImportanceHigh,
	ImportanceCritical,
}

// Rank returns the position of i in the ordering, or -1 when i is unknown.
func (i Importance) Rank() int {
	for n, level := range ImportanceLevels {
		if level == i {
			return n
		}
	}
	return -1
}

// Valid reports whether i is a known importance level.
func (i Importance) Valid() bool {
	return i.Rank() >= 0
}

// Info returns the presentation entry for i.
func (i Importance) Info() ImportanceInfo {
	return importanceTable[i]
}

// CategoryInfo is how the presentation layer renders a category.
type CategoryInfo struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Icon     string   `json:"icon"`
}

// ImportanceInfo is how the presentation layer renders an importance level.
type ImportanceInfo struct {
	Importance Importance `json:"importance"`
	Label      string     `json:"label"`
	Size       string     `json:"size"`
}

var categoryTable = map[Category]CategoryInfo{
	CategoryBirth:        {CategoryBirth, "出生", "bg-pink-500", "🎂"},
	CategoryEducation:    {CategoryEducation, "教育", "bg-blue-500", "🎓"},
	CategoryCareer:       {CategoryCareer, "职业", "bg-green-500", "💼"},
	CategoryInnovation:   {CategoryInnovation, "创新", "bg-purple-500", "💡"},
	CategoryLeadership:   {CategoryLeadership, "领导力", "bg-orange-500", "👑"},
	CategorySetback:      {CategorySetback, "挫折", "bg-red-500", "⚡"},
	CategoryBreakthrough: {CategoryBreakthrough, "突破", "bg-yellow-500", "🚀"},
	CategoryLegacy:       {CategoryLegacy, "传承", "bg-indigo-500", "🏆"},
	CategoryPersonal:     {CategoryPersonal, "个人", "bg-gray-500", "❤️"},
}

var importanceTable = map[Importance]ImportanceInfo{
	ImportanceLow:      {ImportanceLow, "一般", "small"},
	ImportanceMedium:   {ImportanceMedium, "重要", "medium"},
	ImportanceHigh:     {ImportanceHigh, "非常重要", "large"},
	ImportanceCritical: {ImportanceCritical, "关键转折", "xlarge"},
}

// CategoryTable returns the presentation entries in display order.
func CategoryTable() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, categoryTable[c])
	}
	return out
}

// ImportanceTable returns the presentation entries from lowest to highest.
func ImportanceTable() []ImportanceInfo {
	out := make([]ImportanceInfo, 0, len(ImportanceLevels))
	for _, i := range ImportanceLevels {
		out = append(out, importanceTable[i])
	}
	return out
}

// checkTables fails if an enumeration case has no presentation entry.
func checkTables() error {
	if len(categoryTable) != len(Categories) {
		return fmt.Errorf("category table has %d entries, want %d", len(categoryTable), len(Categories))
	}
	for _, c := range Categories {
		if info, ok := categoryTable[c]; !ok || info.Category != c {
			return fmt.Errorf("category %q has no presentation entry", c)
		}
	}
	if len(importanceTable) != len(ImportanceLevels) {
		return fmt.Errorf("importance table has %d entries, want %d", len(importanceTable), len(ImportanceLevels))
	}
	for _, i := range ImportanceLevels {
		if info, ok := importanceTable[i]; !ok || info.Importance != i {
			return fmt.Errorf("importance %q has no presentation entry", i)
		}
	}
	return nil
}

func init() {
	if err := checkTables(); err != nil {
		panic("models: " + err.Error())
	}
}
