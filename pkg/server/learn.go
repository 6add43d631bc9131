package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"cola.io/learnmcp/pkg/catalog"
	mcpdef "cola.io/learnmcp/pkg/mcp"
)

func (s *Server) LearnMCP() func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		topic := ""
		if v, ok := req.GetArguments()["topic"]; ok && v != nil {
			str, ok := v.(string)
			if !ok {
				s.logger.Warn("Rejecting non-string topic", "topic", v)
				return mcp.NewToolResultError(fmt.Sprintf("topic must be a string, got %T", v)), nil
			}
			topic = str
		}

		selected := s.selector.Pick(topic)
		s.logger.Info("Returning resource", "topic", topic, "title", selected.Title)

		resp, err := json.Marshal(selected)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(resp)), nil
	}
}

func (s *Server) ListTopics() func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := json.Marshal(catalog.Topics())
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(resp)), nil
	}
}

func (s *Server) ReadCatalog() func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		resp, err := json.Marshal(catalog.All())
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      mcpdef.CatalogURI,
				MIMEType: "application/json",
				Text:     string(resp),
			},
		}, nil
	}
}
