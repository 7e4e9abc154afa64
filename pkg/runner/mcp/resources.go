package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerCatalogResource(srv, svc)
	registerSessionsResource(srv, svc)
}

func registerCatalogResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"ride://catalog",
		"Catalog",
		mcp.WithResourceDescription("Selection groups, their options and default selections."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		c, err := svc.Catalog(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, c)
	})
}

func registerSessionsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"ride://sessions",
		"Sessions",
		mcp.WithResourceDescription("Identifiers of the open configurator sessions."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids := svc.Sessions()
		payload := map[string]any{
			"sessions": ids,
			"count":    len(ids),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
