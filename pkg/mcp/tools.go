package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

const CatalogURI = "learnmcp://catalog"

// MakeLearnMCPTool creates a tool that returns a random MCP learning resource
func MakeLearnMCPTool() mcp.Tool {
	return mcp.NewTool("learn_mcp",
		mcp.WithDescription(`Get a learning resource about the Model Context Protocol. If a topic is given, the resource is picked
among those tagged with a related topic, otherwise among all resources`),
		mcp.WithString("topic",
			mcp.Description("Topic to learn about, e.g. security, testing, architecture. Matching is case-insensitive and loose"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// MakeListTopicsTool creates a tool for listing the known topic tags
func MakeListTopicsTool() mcp.Tool {
	return mcp.NewTool("list_topics",
		mcp.WithDescription("List every topic tag used by the learning resources"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// MakeCatalogResource creates the resource exposing the whole catalog
func MakeCatalogResource() mcp.Resource {
	return mcp.NewResource(
		CatalogURI,
		"MCP Learning Resources",
		mcp.WithResourceDescription("All learning resources known to the server, as a JSON array"),
		mcp.WithMIMEType("application/json"),
	)
}
