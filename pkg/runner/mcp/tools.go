package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerSearchBooksTool(srv, svc)
	registerGetBookTool(srv, svc)
	registerListAuthorsTool(srv, svc)
	registerListGenresTool(srv, svc)
}

func registerSearchBooksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_books",
		mcp.WithDescription("Search the catalog by title substring, author and genre, one page at a time."),
		mcp.WithString("title",
			mcp.Description("Case-insensitive text the title must contain. Empty matches every title."),
		),
		mcp.WithString("author",
			mcp.Description("Author id or name. Empty or \"any\" matches every author."),
		),
		mcp.WithString("genre",
			mcp.Description("Genre id or name. Empty or \"any\" matches every genre."),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number (default 1)."),
			mcp.Min(1),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Books per page (default 36)."),
			mcp.Min(1),
			mcp.Max(MaxPageSize),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := SearchOptions{
			Title:    request.GetString("title", ""),
			Author:   request.GetString("author", ""),
			Genre:    request.GetString("genre", ""),
			Page:     request.GetInt("page", 1),
			PageSize: request.GetInt("page_size", 0),
		}
		result, err := svc.Search(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerGetBookTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_book",
		mcp.WithDescription("Fetch a single book, including its description, by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Book identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		view, err := svc.Book(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(view)
	})
}

func registerListAuthorsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_authors",
		mcp.WithDescription("List every author in the catalog with their id."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		authors := svc.Authors(ctx)
		return toJSONResult(map[string]any{
			"authors": authors,
			"count":   len(authors),
		})
	})
}

func registerListGenresTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_genres",
		mcp.WithDescription("List every genre in the catalog with its id."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		genres := svc.Genres(ctx)
		return toJSONResult(map[string]any{
			"genres": genres,
			"count":  len(genres),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
