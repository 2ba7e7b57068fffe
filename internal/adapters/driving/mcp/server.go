package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/reflets-cli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// instructions tell the client what the tools are for.
const instructions = `Reflets expands investigation graphs from the Pappers company registries.
Start from a person (search_officers, search_beneficiaries, search_officers_international),
a company (company_details, search_companies) or an address (search_headquarters).
Each tool returns the linked entities, registry messages and a run report.`

// Server is the MCP server for Reflets.
type Server struct {
	ports  *Ports
	server *mcp.Server

	tools     []string
	resources []string
}

// NewServer creates a new MCP server with the given ports.
// The enrichment tools are always registered; the settings resource only
// when a settings service is provided.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "reflets",
		Title:   "Reflets registry enrichment",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerTools()
	s.registerResources()

	logger.Debug("mcp: %d tools, %d resources", len(s.tools), len(s.resources))
	return s, nil
}

// Tools returns the names of the registered tools in registration order.
func (s *Server) Tools() []string {
	return slices.Clone(s.tools)
}

// Resources returns the URIs of the registered resources.
func (s *Server) Resources() []string {
	return slices.Clone(s.resources)
}

// addTool registers a typed tool handler and records its name.
func addTool[In, Out any](s *Server, t *mcp.Tool, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(s.server, t, h)
	s.tools = append(s.tools, t.Name)
}

// addResource registers a resource handler and records its URI.
func (s *Server) addResource(r *mcp.Resource, h mcp.ResourceHandler) {
	s.server.AddResource(r, h)
	s.resources = append(s.resources, r.URI)
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over streamable HTTP on addr.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("mcp: listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
