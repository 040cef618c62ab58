package tools

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/leoxiewl/want-to-be/internal/engine"
	"github.com/leoxiewl/want-to-be/internal/models"
)

// PeopleTools holds references needed by the person query tool handlers.
type PeopleTools struct {
	People         []models.Person
	Year           engine.YearSource
	RecommendLimit int
	Log            *zap.Logger
}

// --- Input types ---

type GetPersonInput struct {
	ID string `json:"id" jsonschema:"Person id, for example steve-jobs"`
}

type FilterByTagInput struct {
	Tag string `json:"tag" jsonschema:"Exact tag to match, for example innovation"`
}

type FilterByEraInput struct {
	StartYear int `json:"start_year" jsonschema:"First year of the window (inclusive)"`
	EndYear   int `json:"end_year" jsonschema:"Last year of the window (inclusive)"`
}

type SearchPeopleInput struct {
	Query string `json:"query" jsonschema:"Case-insensitive text matched against names, title, description and tags"`
}

type ExplorePeopleInput struct {
	Query     string   `json:"query,omitempty" jsonschema:"Optional search text; blank lists everyone"`
	StartYear *int     `json:"start_year,omitempty" jsonschema:"Optional era start; applied only together with end_year"`
	EndYear   *int     `json:"end_year,omitempty" jsonschema:"Optional era end; applied only together with start_year"`
	Tags      []string `json:"tags,omitempty" jsonschema:"Optional tags; a person matches when it has any of them"`
}

type RecommendInput struct {
	ID    string `json:"id" jsonschema:"Person id to find similar people for"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of recommendations (default 3)"`
}

// --- Handlers ---

func (t *PeopleTools) ListPeople(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	return toolJSON(summaries(engine.All(t.People)))
}

func (t *PeopleTools) GetPerson(_ context.Context, _ *mcp.CallToolRequest, input GetPersonInput) (*mcp.CallToolResult, any, error) {
	if input.ID == "" {
		return toolError("Person id is required"), nil, nil
	}
	p, ok := engine.FindByID(t.People, input.ID)
	if !ok {
		return toolError("Person %q not found", input.ID), nil, nil
	}
	return toolJSON(p)
}

func (t *PeopleTools) FilterByTag(_ context.Context, _ *mcp.CallToolRequest, input FilterByTagInput) (*mcp.CallToolResult, any, error) {
	if input.Tag == "" {
		return toolError("Tag is required"), nil, nil
	}
	return toolJSON(summaries(engine.FilterByTag(t.People, input.Tag)))
}

func (t *PeopleTools) FilterByEra(_ context.Context, _ *mcp.CallToolRequest, input FilterByEraInput) (*mcp.CallToolResult, any, error) {
	people := engine.FilterByEra(t.People, input.StartYear, input.EndYear, t.Year())
	return toolJSON(summaries(people))
}

func (t *PeopleTools) SearchPeople(_ context.Context, _ *mcp.CallToolRequest, input SearchPeopleInput) (*mcp.CallToolResult, any, error) {
	people := engine.Search(t.People, input.Query)
	t.Log.Debug("search", zap.String("query", input.Query), zap.Int("matches", len(people)))
	return toolJSON(summaries(people))
}

func (t *PeopleTools) ListTags(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	return toolJSON(engine.AllTags(t.People))
}

// ExplorePeople composes search, era and tag filters the way the explore
// page does: a blank query lists everyone, the era applies only when both
// bounds are given, and tags match when any of them is present.
func (t *PeopleTools) ExplorePeople(_ context.Context, _ *mcp.CallToolRequest, input ExplorePeopleInput) (*mcp.CallToolResult, any, error) {
	people := engine.All(t.People)
	if query := strings.TrimSpace(input.Query); query != "" {
		people = engine.Search(people, query)
	}
	if input.StartYear != nil && input.EndYear != nil {
		people = engine.FilterByEra(people, *input.StartYear, *input.EndYear, t.Year())
	}
	if len(input.Tags) > 0 {
		people = slices.DeleteFunc(people, func(p models.Person) bool {
			return !slices.ContainsFunc(input.Tags, p.HasTag)
		})
	}
	return toolJSON(summaries(people))
}

func (t *PeopleTools) RecommendPeople(_ context.Context, _ *mcp.CallToolRequest, input RecommendInput) (*mcp.CallToolResult, any, error) {
	if input.ID == "" {
		return toolError("Person id is required"), nil, nil
	}
	if input.Limit < 0 {
		return toolError("Limit must not be negative"), nil, nil
	}
	limit := input.Limit
	if limit == 0 {
		limit = t.RecommendLimit
	}
	return toolJSON(engine.RecommendScored(t.People, input.ID, limit))
}

func (t *PeopleTools) PersonStats(_ context.Context, _ *mcp.CallToolRequest, input GetPersonInput) (*mcp.CallToolResult, any, error) {
	if input.ID == "" {
		return toolError("Person id is required"), nil, nil
	}
	p, ok := engine.FindByID(t.People, input.ID)
	if !ok {
		return toolError("Person %q not found", input.ID), nil, nil
	}
	return toolJSON(engine.ComputeStats(p, t.Year()))
}

// --- Helpers ---

func summaries(people []models.Person) []models.PersonSummary {
	out := make([]models.PersonSummary, 0, len(people))
	for _, p := range people {
		out = append(out, p.Summary())
	}
	return out
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
