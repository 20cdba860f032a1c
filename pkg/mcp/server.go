// Package mcp adapts the path solver to the Model Context Protocol, so
// an agent can ask for research paths over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/thaumic/aspectpath/pkg/aspect"
	"github.com/thaumic/aspectpath/pkg/graph"
	"github.com/thaumic/aspectpath/pkg/solver"
)

// matchThreshold is the minimum fuzzy similarity accepted for an aspect
// name supplied by an agent. Below it we refuse and suggest instead,
// since there is no interactive confirmation on this surface.
const matchThreshold = 0.8

// Server exposes the solver over MCP.
type Server struct {
	mcpServer *server.MCPServer
	solver    *solver.Solver
	graph     *graph.Graph
	slack     int
}

// NewServer creates a new MCP server instance around a ready solver.
func NewServer(s *solver.Solver, g *graph.Graph, slack int) *Server {
	srv := &Server{
		mcpServer: server.NewMCPServer(
			"aspectpath",
			"1.0.0",
		),
		solver: s,
		graph:  g,
		slack:  slack,
	}
	srv.registerResources()
	srv.registerTools()
	srv.registerPrompts()
	return srv
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// --- Resources ---

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		"aspectpath://aspects",
		"Aspect Catalog",
		mcp.WithResourceDescription("Every known aspect and the composition rules connecting them"),
		mcp.WithMIMEType("application/json"),
	), s.handleReadAspects)
}

// --- Tools ---

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		"find_paths",
		mcp.WithDescription("Find the cheapest research paths of an exact length between two aspects, plus any cheaper slightly-longer alternatives."),
		mcp.WithString("start", mcp.Required(), mcp.Description("Name of the first aspect (e.g. 'aqua')")),
		mcp.WithString("end", mcp.Required(), mcp.Description("Name of the second aspect")),
		mcp.WithNumber("length", mcp.Required(), mcp.Description("Number of aspects in the path, endpoints included")),
		mcp.WithNumber("slack", mcp.Description("How many longer lengths to probe for cheaper results (default 3)")),
	), s.handleFindPaths)
}

// --- Prompts ---

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(mcp.NewPrompt(
		"aspectpath-aware",
		mcp.WithPromptDescription("Provides context about research path concepts (aspects, composition, prices)"),
	), s.handleGetPrompt)
}

// --- Handlers ---

func (s *Server) handleReadAspects(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	type ruleJSON struct {
		Composite string `json:"composite"`
		PrimalA   string `json:"primal_a"`
		PrimalB   string `json:"primal_b"`
	}
	catalog := struct {
		Aspects   []string            `json:"aspects"`
		Neighbors map[string][]string `json:"neighbors"`
		Rules     []ruleJSON          `json:"rules"`
	}{
		Neighbors: make(map[string][]string),
	}

	for _, a := range aspect.All() {
		catalog.Aspects = append(catalog.Aspects, a.String())
		for _, n := range s.graph.Neighbors(a) {
			catalog.Neighbors[a.String()] = append(catalog.Neighbors[a.String()], n.String())
		}
	}
	for _, r := range graph.Rules() {
		catalog.Rules = append(catalog.Rules, ruleJSON{
			Composite: r.Composite.String(),
			PrimalA:   r.PrimalA.String(),
			PrimalB:   r.PrimalB.String(),
		})
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleFindPaths(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startName := mcp.ParseString(request, "start", "")
	endName := mcp.ParseString(request, "end", "")
	length := int(mcp.ParseFloat64(request, "length", 0))
	slack := int(mcp.ParseFloat64(request, "slack", float64(s.slack)))

	start, err := resolveAspect(startName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := resolveAspect(endName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if length < 2 {
		return mcp.NewToolResultError("length must be at least 2"), nil
	}

	window, err := s.solver.FindWindow(ctx, start, end, length, slack)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	alts := solver.SelectReportable(window)
	if len(alts) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No path of length %d..%d between %s and %s.", length, length+slack-1, start, end)), nil
	}

	var b strings.Builder
	for _, alt := range alts {
		fmt.Fprintf(&b, "Paths from %s to %s with length %d:\n", start, end, length+alt.Offset)
		for _, path := range alt.Result.Paths {
			fmt.Fprintf(&b, "\tScore [%d] %s\n", alt.Result.Cost, formatPath(path))
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGetPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := request.Params.Name
	if name != "aspectpath-aware" {
		return nil, fmt.Errorf("prompt not found: %s", name)
	}

	promptText := `You are interacting with aspectpath, a Thaumcraft research path solver.

Concepts:
- Aspect: one of 65 named research essences (e.g. 'aqua', 'ignis', 'victus').
- Composition: most aspects are crafted from exactly two others; this forms an
  undirected graph where a compound links to both constituents.
- Research path: a walk through that graph of an exact number of aspects,
  connecting the two aspects on a research note. Aspects may repeat.
- Price: each hop costs more the scarcer the aspect is in the player's
  inventory; unowned aspects price at a sentinel that dominates any
  affordable route.

Use the 'find_paths' tool to get the cheapest paths of a given length. The
result may also list slightly longer lengths that are no more expensive -
those save scarce aspects and are usually the better play.
`

	return mcp.NewGetPromptResult(
		"aspectpath-aware",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(promptText)),
		},
	), nil
}

// resolveAspect accepts exact keys outright and fuzzy matches above the
// threshold; anything vaguer is an error carrying the best suggestion.
func resolveAspect(name string) (aspect.Aspect, error) {
	if a, ok := aspect.ByKey(name); ok {
		return a, nil
	}
	best, score := aspect.Match(name)
	if score >= matchThreshold {
		return best, nil
	}
	return 0, fmt.Errorf("unknown aspect %q (closest: %s)", name, best)
}

func formatPath(path []aspect.Aspect) string {
	names := make([]string, len(path))
	for i, a := range path {
		names[i] = a.String()
	}
	return strings.Join(names, " -> ")
}
