package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"cola.io/learnmcp/pkg/catalog"
)

const (
	invalidRequestError   = "Invalid request"
	invalidRequestMessage = "This server expects a learn_mcp tool call"
	internalError         = "Internal server error"
	internalErrorMessage  = "An unexpected error occurred"
)

// ErrorBody is the body of every non-200 response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Option func(*Handler)

// WithLogger sets the logger used for diagnostic output.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

// WithSelector sets the selector used to pick resources.
func WithSelector(s *catalog.Selector) Option {
	return func(h *Handler) {
		h.selector = s
	}
}

// Handler answers learn_mcp tool calls with a random catalog resource.
type Handler struct {
	logger   *slog.Logger
	selector *catalog.Selector
}

// New creates a handler.
func New(opts ...Option) *Handler {
	h := &Handler{
		logger:   slog.Default(),
		selector: catalog.NewSelector(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle maps one event to one response. The returned error is always nil:
// failures are reported through the response status and body.
func (h *Handler) Handle(ctx context.Context, ev Event) (resp events.APIGatewayProxyResponse, _ error) {
	logger := h.logger.With("requestId", requestID(ctx))
	logger.Info("Received event", "body", string(ev.Body), "base64", ev.IsBase64Encoded)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			logger.Error("Error processing request", "error", err)
			resp = internalErrorResponse(err)
		}
	}()

	req, err := DecodeRequest(ev)
	if err != nil {
		logger.Error("Error processing request", "error", err)
		return internalErrorResponse(err), nil
	}

	if !req.IsLearnMCP() {
		logger.Info("Rejecting request", "type", req.Type, "name", req.Name)
		return invalidRequestResponse(), nil
	}

	topic, err := req.Topic()
	if err != nil {
		logger.Error("Error processing request", "error", err)
		return internalErrorResponse(err), nil
	}

	selected := h.selector.Pick(topic)
	body, err := json.Marshal(selected)
	if err != nil {
		logger.Error("Error processing request", "error", err)
		return internalErrorResponse(err), nil
	}

	logger.Info("Returning resource", "topic", topic, "resource", string(body))
	return newResponse(http.StatusOK, string(body)), nil
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}

func invalidRequestResponse() events.APIGatewayProxyResponse {
	return errorResponse(http.StatusBadRequest, ErrorBody{
		Error:   invalidRequestError,
		Message: invalidRequestMessage,
	})
}

func internalErrorResponse(err error) events.APIGatewayProxyResponse {
	msg := internalError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return errorResponse(http.StatusInternalServerError, ErrorBody{
		Error:   msg,
		Message: internalErrorMessage,
	})
}

func errorResponse(status int, body ErrorBody) events.APIGatewayProxyResponse {
	// ErrorBody holds only strings, Marshal cannot fail.
	b, _ := json.Marshal(body)
	return newResponse(status, string(b))
}

func newResponse(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: body,
	}
}
