package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

// registerTools registers all ETDAH-II MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. etdah_score
	s.AddTool(
		mcplib.NewTool("etdah_score",
			mcplib.WithDescription("Score an ETDAH-II answer set. Returns the four area scores, classifications, descriptions and the total as JSON"),
			mcplib.WithString("answers",
				mcplib.Required(),
				mcplib.Description(`JSON object mapping item number (1-46) to a choice code or label, e.g. {"1":"DT","2":"CP - Concordo Parcialmente"}`),
			),
			mcplib.WithString("obs", mcplib.Description("Comma-separated initial observation, each one of the options listed by etdah://instrument")),
			mcplib.WithBoolean("strict", mcplib.Description("Fail when the observation or any item is unanswered")),
		),
		handleScore(),
	)

	// 2. etdah_classify
	s.AddTool(
		mcplib.NewTool("etdah_classify",
			mcplib.WithDescription("Classify a raw area score against the normative cutpoints"),
			mcplib.WithString("area",
				mcplib.Required(),
				mcplib.Description("Area id: atencao, hiperatividade_impulsividade, aprendizagem or comportamento_social"),
			),
			mcplib.WithNumber("score",
				mcplib.Required(),
				mcplib.Description("Raw area score"),
			),
		),
		handleClassify(),
	)

	// 3. etdah_items
	s.AddTool(
		mcplib.NewTool("etdah_items",
			mcplib.WithDescription("List the 46 items with their area and whether they are reverse-scored"),
		),
		handleItems(),
	)
}

func handleScore() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("answers")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var answers domain.Answers
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			return errorResult(fmt.Sprintf("invalid answers: %v", err)), nil
		}

		sub := domain.Submission{Answers: answers}
		if obs, _ := request.GetArguments()["obs"].(string); obs != "" {
			for _, o := range strings.Split(obs, ",") {
				if o = strings.TrimSpace(o); o != "" {
					sub.Observations = append(sub.Observations, o)
				}
			}
		}
		strict, _ := request.GetArguments()["strict"].(bool)

		res, err := application.NewScoreService(nil).Score(sub, strict)
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleClassify() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("area")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		area, ok := domain.AreaByID(domain.AreaID(id))
		if !ok {
			return errorResult(fmt.Sprintf("unknown area %q", id)), nil
		}

		score, err := intArg(request.GetArguments()["score"])
		if err != nil {
			return errorResult(err.Error()), nil
		}

		class := domain.Classify(area.ID, score)
		return jsonResult(domain.AreaResult{
			Area:           area.ID,
			Score:          score,
			Classification: class,
			Description:    domain.DescriptionFor(class),
		})
	}
}

func handleItems() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(itemViews())
	}
}

type itemView struct {
	ID       int           `json:"id"`
	Text     string        `json:"text"`
	Area     domain.AreaID `json:"area"`
	Inverted bool          `json:"inverted"`
}

func itemViews() []itemView {
	views := make([]itemView, 0, domain.ItemCount)
	for _, it := range domain.Items() {
		area, _ := domain.AreaOf(it.ID)
		views = append(views, itemView{ID: it.ID, Text: it.Text, Area: area.ID, Inverted: it.Inverted()})
	}
	return views
}

// intArg accepts JSON numbers and numeric strings.
func intArg(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("score must be an integer, got %v", n)
		}
		return int(n), nil
	case int:
		return n, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("invalid score %q", n)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("required argument \"score\" not found")
	default:
		return 0, fmt.Errorf("invalid score %v", v)
	}
}

// jsonResult marshals v to indented JSON and returns it as a text content
// result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
