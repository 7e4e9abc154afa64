package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"modernride.dev/ride/pkg/app"
)

// Runner coordinates MCP server startup. Only the stdio transport is served.
type Runner struct {
	Service *app.Service
	Name    string
	Version string
}

// Run starts the Model Context Protocol server using stdio transport.
func Run(ctx context.Context, svc *app.Service) error {
	r := Runner{
		Service: svc,
		Name:    "ride",
		Version: "dev",
	}
	return r.Do(ctx)
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires an app service")
	}
	name := r.Name
	if name == "" {
		name = "ride"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := NewServer(fmt.Sprintf("%s MCP", name), version, NewService(r.Service))
	return server.ServeStdio(srv)
}

// NewServer builds the MCP server with every resource and tool registered.
func NewServer(name, version string, svc *Service) *server.MCPServer {
	srv := server.NewMCPServer(
		name,
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Configure a vehicle: open a session, pick one option per group, and read back the preview updates."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}
