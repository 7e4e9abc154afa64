package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerStartSessionTool(srv, svc)
	registerSelectOptionTool(srv, svc)
	registerCurrentSelectionTool(srv, svc)
	registerDescribeSessionTool(srv, svc)
	registerEndSessionTool(srv, svc)
}

func registerStartSessionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"start_session",
		mcp.WithDescription("Open a configurator session. Returns one preview update per group."),
		mcp.WithObject("defaults",
			mcp.Description("Optional map of group name to option id to start on."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Defaults map[string]string `json:"defaults"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.StartSession(ctx, args.Defaults)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSelectOptionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_option",
		mcp.WithDescription("Make an option the active choice of its group. Always returns exactly one preview update."),
		mcp.WithString("session",
			mcp.Required(),
			mcp.Description("Session identifier returned by start_session."),
		),
		mcp.WithString("group",
			mcp.Required(),
			mcp.Description("Group name such as vehicle, color, wheel or interior."),
		),
		mcp.WithString("option",
			mcp.Required(),
			mcp.Description("Option identifier within the group."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("session")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		group, err := request.RequireString("group")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		option, err := request.RequireString("option")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.Select(ctx, id, group, option)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCurrentSelectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"current_selection",
		mcp.WithDescription("Return the active option of a group."),
		mcp.WithString("session",
			mcp.Required(),
			mcp.Description("Session identifier."),
		),
		mcp.WithString("group",
			mcp.Required(),
			mcp.Description("Group name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("session")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		group, err := request.RequireString("group")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		option, err := svc.Current(ctx, id, group)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"group": group, "option": option})
	})
}

func registerDescribeSessionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"describe_session",
		mcp.WithDescription("List every group with its options, the active selections and the priced quote."),
		mcp.WithString("session",
			mcp.Required(),
			mcp.Description("Session identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("session")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.Describe(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerEndSessionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"end_session",
		mcp.WithDescription("Discard a configurator session."),
		mcp.WithString("session",
			mcp.Required(),
			mcp.Description("Session identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("session")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.End(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"ended": id})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
