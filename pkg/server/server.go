package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mark3labs/mcp-go/server"

	"cola.io/learnmcp/pkg/catalog"
	"cola.io/learnmcp/pkg/handler"
	"cola.io/learnmcp/pkg/mcp"
	"cola.io/learnmcp/pkg/version"
)

const (
	StdioTransport  = "stdio"
	SSETransport    = "sse"
	LambdaTransport = "lambda"
)

type ServerOption func(*Server)

type Server struct {
	svr       *server.MCPServer
	selector  *catalog.Selector
	logger    *slog.Logger
	transport string
	port      int
}

// WithTransport sets the transport type for the server.
func WithTransport(t string) func(*Server) {
	return func(s *Server) {
		s.transport = t
	}
}

// WithPort sets the port for the server when the transport is sse.
func WithPort(p int) func(*Server) {
	return func(s *Server) {
		s.port = p
	}
}

// WithSelector sets the selector shared by every transport.
func WithSelector(sel *catalog.Selector) func(*Server) {
	return func(s *Server) {
		s.selector = sel
	}
}

// WithLogger sets the logger used by tool handlers and the lambda handler.
func WithLogger(l *slog.Logger) func(*Server) {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer creates a new mcp server.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		transport: StdioTransport,
		port:      8888,
		svr: server.NewMCPServer(
			"MCP Learning Server",
			version.Get().Version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithRecovery(),
			server.WithLogging(),
		),
		selector: catalog.NewSelector(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterTools registers the tools for the server.
func (s *Server) RegisterTools(ctx context.Context) {
	s.logger.Info("Registering tools")
	s.svr.AddTools([]server.ServerTool{
		{
			Tool:    mcp.MakeLearnMCPTool(),
			Handler: s.LearnMCP(),
		},
		{
			Tool:    mcp.MakeListTopicsTool(),
			Handler: s.ListTopics(),
		},
	}...)
}

// RegisterResources registers the resources for the server.
func (s *Server) RegisterResources(ctx context.Context) {
	s.logger.Info("Registering resources")
	s.svr.AddResource(mcp.MakeCatalogResource(), s.ReadCatalog())
}

// Start starts the server on the configured transport.
func (s *Server) Start(ctx context.Context) error {
	switch s.transport {
	case SSETransport:
		s.RegisterTools(ctx)
		s.RegisterResources(ctx)
		s.logger.Info("Starting mcp server with sse mode and listening on", "port", s.port)
		sseServer := server.NewSSEServer(s.svr, server.WithBaseURL(fmt.Sprintf("http://0.0.0.0:%d", s.port)))
		go func() {
			<-ctx.Done()
			_ = sseServer.Shutdown(context.Background())
		}()
		return sseServer.Start(fmt.Sprintf(":%d", s.port))
	case StdioTransport:
		s.RegisterTools(ctx)
		s.RegisterResources(ctx)
		s.logger.Info("Starting mcp server with STDIO mode")
		stdioServer := server.NewStdioServer(s.svr)
		return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	case LambdaTransport:
		s.logger.Info("Starting lambda handler", "function", os.Getenv("AWS_LAMBDA_FUNCTION_NAME"))
		h := handler.New(handler.WithSelector(s.selector), handler.WithLogger(s.logger))
		lambda.StartWithOptions(h.Handle, lambda.WithContext(ctx))
		return nil
	}
	return errors.New("unsupported transport")
}
