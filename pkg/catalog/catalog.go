package catalog

import (
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Resource is a single learning resource in the catalog.
type Resource struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	ResourceType string   `json:"resource_type"`
	Topics       []string `json:"topics"`
}

var resources = []Resource{
	{
		Title:        "MCP Official Documentation",
		Description:  "Comprehensive guide to the Model Context Protocol with detailed explanations of concepts and implementation details.",
		URL:          "https://modelcontextprotocol.io/docs/",
		ResourceType: "documentation",
		Topics:       []string{"general", "documentation"},
	},
	{
		Title:        "MCP GitHub Repository",
		Description:  "Source code and examples for MCP implementations. A great resource for developers looking to understand the code behind MCP.",
		URL:          "https://github.com/modelcontextprotocol/typescript-sdk",
		ResourceType: "code",
		Topics:       []string{"implementation", "code", "examples"},
	},
	{
		Title:        "Building MCP Servers Tutorial",
		Description:  "Step-by-step guide to creating your own MCP server from scratch, with detailed explanations of each component.",
		URL:          "https://modelcontextprotocol.io/docs/getting-started",
		ResourceType: "tutorial",
		Topics:       []string{"implementation", "tutorial", "getting started"},
	},
	{
		Title:        "MCP Architecture Overview",
		Description:  "Understanding the architecture and components of MCP, including how clients and servers communicate.",
		URL:          "https://modelcontextprotocol.io/docs/protocol-spec/architecture",
		ResourceType: "documentation",
		Topics:       []string{"architecture", "design"},
	},
	{
		Title:        "MCP Tools Specification",
		Description:  "Detailed specification for implementing MCP tools, including tool definitions, calls, and responses.",
		URL:          "https://modelcontextprotocol.io/docs/protocol-spec/tools",
		ResourceType: "specification",
		Topics:       []string{"tools", "specification"},
	},
	{
		Title:        "Anthropic Claude MCP Integration",
		Description:  "Learn how Claude integrates with MCP and how to build tools that work with Claude's MCP implementation.",
		URL:          "https://docs.anthropic.com/claude/docs/model-context-protocol",
		ResourceType: "documentation",
		Topics:       []string{"claude", "integration"},
	},
	{
		Title:        "MCP Server Debugging",
		Description:  "Tips and techniques for debugging MCP servers, including common issues and their solutions.",
		URL:          "https://modelcontextprotocol.io/docs/tools/debugging",
		ResourceType: "guide",
		Topics:       []string{"debugging", "troubleshooting"},
	},
	{
		Title:        "Lambda-Based MCP Servers",
		Description:  "Building MCP servers with AWS Lambda - a scalable approach to MCP server implementation.",
		URL:          "https://github.com/modelcontextprotocol/examples",
		ResourceType: "example",
		Topics:       []string{"lambda", "aws", "architecture"},
	},
	{
		Title:        "MCP Authentication Patterns",
		Description:  "Implementing secure authentication in MCP servers to protect sensitive APIs and data.",
		URL:          "https://modelcontextprotocol.io/docs/tools/security",
		ResourceType: "guide",
		Topics:       []string{"security", "authentication"},
	},
	{
		Title:        "Testing MCP Servers",
		Description:  "Strategies and tools for testing MCP servers to ensure reliability and correctness.",
		URL:          "https://modelcontextprotocol.io/docs/tools/testing",
		ResourceType: "guide",
		Topics:       []string{"testing", "quality"},
	},
}

// Len returns the number of resources in the catalog.
func Len() int {
	return len(resources)
}

// All returns a copy of the catalog in its fixed order.
func All() []Resource {
	out := make([]Resource, len(resources))
	for i, r := range resources {
		out[i] = r.clone()
	}
	return out
}

// Topics returns every topic tag in the catalog, sorted and deduplicated.
func Topics() []string {
	tags := sets.New[string]()
	for _, r := range resources {
		tags.Insert(r.Topics...)
	}
	return sets.List(tags)
}

func (r Resource) clone() Resource {
	r.Topics = slices.Clone(r.Topics)
	return r
}
