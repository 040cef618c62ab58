package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/leoxiewl/want-to-be/internal/engine"
	"github.com/leoxiewl/want-to-be/internal/models"
	"github.com/leoxiewl/want-to-be/internal/session"
)

// TimelineTools holds references needed by the timeline and selection handlers.
type TimelineTools struct {
	People  []models.Person
	Session *session.Session
	Year    engine.YearSource
	Log     *zap.Logger
}

// --- Input types ---

type SelectPersonInput struct {
	ID string `json:"id" jsonschema:"Id of the person to select for timeline browsing"`
}

type PersonTimelineInput struct {
	ID         string   `json:"id,omitempty" jsonschema:"Person id; defaults to the selected person"`
	Category   string   `json:"category,omitempty" jsonschema:"Milestone category or all; remembered for the session"`
	Categories []string `json:"categories,omitempty" jsonschema:"Further restrict to any of these categories for this call only"`
	Importance []string `json:"importance,omitempty" jsonschema:"Keep only these importance levels (low, medium, high, critical)"`
	MinAge     *int     `json:"min_age,omitempty" jsonschema:"Keep milestones at or above this age"`
	MaxAge     *int     `json:"max_age,omitempty" jsonschema:"Keep milestones at or below this age"`
}

// --- Output types ---

// TimelineEntry is a milestone placed on the person's lifespan.
type TimelineEntry struct {
	models.Milestone
	Position float64 `json:"position"`
}

// TimelineResult is the person_timeline payload.
type TimelineResult struct {
	PersonID   string          `json:"person_id"`
	Lifespan   string          `json:"lifespan"`
	Category   models.Category `json:"category"`
	Milestones []TimelineEntry `json:"milestones"`
}

// CategoriesResult is the list_categories payload.
type CategoriesResult struct {
	Categories []models.CategoryInfo   `json:"categories"`
	Importance []models.ImportanceInfo `json:"importance"`
}

// --- Handlers ---

func (t *TimelineTools) SelectPerson(_ context.Context, _ *mcp.CallToolRequest, input SelectPersonInput) (*mcp.CallToolResult, any, error) {
	if input.ID == "" {
		return toolError("Person id is required"), nil, nil
	}
	p, err := t.Session.SelectPerson(t.People, input.ID)
	if err != nil {
		return toolError("Failed to select person: %v", err), nil, nil
	}
	t.Log.Debug("person selected", zap.String("session", t.Session.ID()), zap.String("person", p.ID))
	return toolJSON(p.Summary())
}

func (t *TimelineTools) CurrentPerson(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	id, ok := t.Session.GetCurrent()
	if !ok {
		return toolText("No person is currently selected. Use select_person to choose one."), nil, nil
	}
	p, found := engine.FindByID(t.People, id)
	if !found {
		return toolText(fmt.Sprintf("Selected person: %s (details unavailable)", id)), nil, nil
	}
	return toolJSON(p)
}

func (t *TimelineTools) ClearSelection(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	t.Session.Clear()
	t.Log.Debug("selection cleared", zap.String("session", t.Session.ID()))
	return toolText("Selection cleared. The timeline filter is back to all."), nil, nil
}

func (t *TimelineTools) PersonTimeline(_ context.Context, _ *mcp.CallToolRequest, input PersonTimelineInput) (*mcp.CallToolResult, any, error) {
	id := input.ID
	if id == "" {
		current, ok := t.Session.GetCurrent()
		if !ok {
			return toolError("No person given and none selected. Pass id or use select_person."), nil, nil
		}
		id = current
	}
	p, ok := engine.FindByID(t.People, id)
	if !ok {
		return toolError("Person %q not found", id), nil, nil
	}

	if input.Category != "" {
		if err := t.Session.SetCategory(models.Category(input.Category)); err != nil {
			return toolError("Invalid category: %v", err), nil, nil
		}
	}
	category := t.Session.Category()

	filter := engine.TimelineFilter{MinAge: input.MinAge, MaxAge: input.MaxAge}
	for _, raw := range input.Categories {
		c := models.Category(raw)
		if !c.Valid() {
			return toolError("Invalid category %q in categories", raw), nil, nil
		}
		filter.Categories = append(filter.Categories, c)
	}
	for _, raw := range input.Importance {
		level := models.Importance(raw)
		if !level.Valid() {
			return toolError("Invalid importance %q (use low, medium, high or critical)", raw), nil, nil
		}
		filter.Importance = append(filter.Importance, level)
	}

	ms := engine.FilterByCategory(engine.OrderedMilestones(p), category)
	ms = engine.FilterTimeline(ms, filter)

	refYear := t.Year()
	entries := make([]TimelineEntry, 0, len(ms))
	for _, m := range ms {
		entries = append(entries, TimelineEntry{Milestone: m, Position: engine.TimelinePosition(p, m, refYear)})
	}

	return toolJSON(TimelineResult{
		PersonID:   p.ID,
		Lifespan:   engine.Lifespan(p),
		Category:   category,
		Milestones: entries,
	})
}

func (t *TimelineTools) ListCategories(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	return toolJSON(CategoriesResult{
		Categories: models.CategoryTable(),
		Importance: models.ImportanceTable(),
	})
}
