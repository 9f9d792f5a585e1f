package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

const (
	instrumentURI = "etdah://instrument"
	areaURIPrefix = "etdah://areas/"
)

// registerResources registers all ETDAH-II MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// 1. etdah://instrument - the whole questionnaire
	s.AddResource(
		mcplib.NewResource(
			instrumentURI,
			"ETDAH-II Instrument",
			mcplib.WithResourceDescription("Items, response scale, observation options and areas with cutpoints"),
			mcplib.WithMIMEType("application/json"),
		),
		handleInstrumentResource(),
	)

	// 2. etdah://areas/{id} - one area (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			areaURIPrefix+"{id}",
			"Area",
			mcplib.WithTemplateDescription("Item range, score bounds and classification cutpoints of one area"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleAreaResource(),
	)
}

type instrumentView struct {
	Code                string          `json:"code"`
	ObservationQuestion string          `json:"observation_question"`
	ObservationChoices  []string        `json:"observation_choices"`
	Choices             []domain.Choice `json:"choices"`
	Items               []itemView      `json:"items"`
	Areas               []areaView      `json:"areas"`
}

type areaView struct {
	ID        domain.AreaID           `json:"id"`
	Title     string                  `json:"title"`
	FirstItem int                     `json:"first_item"`
	LastItem  int                     `json:"last_item"`
	MinScore  int                     `json:"min_score"`
	MaxScore  int                     `json:"max_score"`
	Cutpoints [4]int                  `json:"cutpoints"`
	Labels    []domain.Classification `json:"labels"`
}

func viewOf(a domain.Area) areaView {
	return areaView{
		ID:        a.ID,
		Title:     a.Title,
		FirstItem: a.First,
		LastItem:  a.Last,
		MinScore:  a.MinScore(),
		MaxScore:  a.MaxScore(),
		Cutpoints: a.Cutpoints,
		Labels:    domain.Classifications(),
	}
}

func handleInstrumentResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		view := instrumentView{
			Code:                domain.Code,
			ObservationQuestion: domain.ObservationQuestion,
			ObservationChoices:  domain.ObservationChoices(),
			Choices:             domain.Choices(),
			Items:               itemViews(),
		}
		for _, a := range domain.Areas() {
			view.Areas = append(view.Areas, viewOf(a))
		}
		return jsonContents(instrumentURI, view)
	}
}

func handleAreaResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		id := strings.TrimPrefix(request.Params.URI, areaURIPrefix)
		if id == "" {
			return nil, fmt.Errorf("area id is required")
		}

		area, ok := domain.AreaByID(domain.AreaID(id))
		if !ok {
			return nil, fmt.Errorf("unknown area %q", id)
		}
		return jsonContents(request.Params.URI, viewOf(area))
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
