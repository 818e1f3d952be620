package mcp

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerAuthorsResource(srv, svc)
	registerGenresResource(srv, svc)
	registerBookTemplate(srv, svc)
}

func registerAuthorsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"bookshelf://authors",
		"Authors",
		mcp.WithResourceDescription("Every author in the catalog, ordered by name."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		authors := svc.Authors(ctx)
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"authors": authors,
			"count":   len(authors),
		})
	})
}

func registerGenresResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"bookshelf://genres",
		"Genres",
		mcp.WithResourceDescription("Every genre in the catalog, ordered by name."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		genres := svc.Genres(ctx)
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"genres": genres,
			"count":  len(genres),
		})
	})
}

func registerBookTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"bookshelf://books/{id}",
		"Book Details",
		mcp.WithTemplateDescription("Title, author, publication date, genres and description of one book."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("book id is required")
		}
		view, err := svc.Book(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"book": view})
	})
}

// templateArg unwraps a URI template variable, which mcp-go may deliver as
// a string or a single-element slice.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
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
