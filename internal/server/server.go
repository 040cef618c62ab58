package server

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/leoxiewl/want-to-be/internal/engine"
	"github.com/leoxiewl/want-to-be/internal/metrics"
	"github.com/leoxiewl/want-to-be/internal/models"
	"github.com/leoxiewl/want-to-be/internal/session"
	"github.com/leoxiewl/want-to-be/internal/tools"
)

// Version is reported in the MCP implementation info.
const Version = "0.1.0"

// Options configure a server. Zero values fall back to defaults.
type Options struct {
	Year           engine.YearSource
	RecommendLimit int
	Logger         *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Year == nil {
		o.Year = engine.WallClockYear
	}
	if o.RecommendLimit <= 0 {
		o.RecommendLimit = engine.DefaultRecommendLimit
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// New creates a fully configured MCP server with all tools registered. Each
// server owns one presentation session.
func New(people []models.Person, opts Options) *mcp.Server {
	opts = opts.withDefaults()
	sess := session.New()
	log := opts.Logger.With(zap.String("session", sess.ID()))

	pt := &tools.PeopleTools{People: people, Year: opts.Year, RecommendLimit: opts.RecommendLimit, Log: log}
	tt := &tools.TimelineTools{People: people, Session: sess, Year: opts.Year, Log: log}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "want-to-be",
		Version: Version,
	}, nil)

	// Person queries
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_people",
		Description: "List every person in the dataset in stable order",
	}, instrument(log, "list_people", pt.ListPeople))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_person",
		Description: "Get the full biography and milestones of a person by id",
	}, instrument(log, "get_person", pt.GetPerson))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "filter_by_tag",
		Description: "List people carrying an exact tag",
	}, instrument(log, "filter_by_tag", pt.FilterByTag))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "filter_by_era",
		Description: "List people whose lifespan overlaps a year range (inclusive)",
	}, instrument(log, "filter_by_era", pt.FilterByEra))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_people",
		Description: "Case-insensitive substring search over names, title, description and tags; an empty query matches nobody",
	}, instrument(log, "search_people", pt.SearchPeople))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_tags",
		Description: "List every tag used in the dataset, sorted",
	}, instrument(log, "list_tags", pt.ListTags))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "explore_people",
		Description: "Combine an optional search query, era window and any-of tag filter",
	}, instrument(log, "explore_people", pt.ExplorePeople))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "recommend_people",
		Description: "Recommend people similar to a person by shared tags, with scores",
	}, instrument(log, "recommend_people", pt.RecommendPeople))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "person_stats",
		Description: "Age, lifespan and milestone counts by importance and category for a person",
	}, instrument(log, "person_stats", pt.PersonStats))

	// Timeline browsing
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "select_person",
		Description: "Select the person whose timeline this session is browsing",
	}, instrument(log, "select_person", tt.SelectPerson))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "current_person",
		Description: "Get the person selected in this session",
	}, instrument(log, "current_person", tt.CurrentPerson))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "clear_selection",
		Description: "Forget the selected person and reset the timeline category filter",
	}, instrument(log, "clear_selection", tt.ClearSelection))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "person_timeline",
		Description: "Year-ordered milestones of a person, filtered by category, importance and age",
	}, instrument(log, "person_timeline", tt.PersonTimeline))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_categories",
		Description: "Milestone categories and importance levels with their labels, colors and icons",
	}, instrument(log, "list_categories", tt.ListCategories))

	return srv
}

// instrument records metrics and logs for a tool handler.
func instrument[In any](
	log *zap.Logger,
	name string,
	h func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error),
) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		res, out, err := h(ctx, req, input)
		elapsed := time.Since(start)

		failed := err != nil || (res != nil && res.IsError)
		metrics.RecordToolCall(name, failed, elapsed)
		if failed {
			log.Warn("tool call failed", zap.String("tool", name), zap.Duration("elapsed", elapsed), zap.Error(err))
		} else {
			log.Debug("tool call", zap.String("tool", name), zap.Duration("elapsed", elapsed))
		}
		return res, out, err
	}
}
