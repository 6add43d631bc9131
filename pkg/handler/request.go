package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"k8s.io/utils/ptr"
)

const (
	ToolCallType = "tool_call"
	ToolName     = "learn_mcp"
)

// ErrEmptyBody is returned when an event carries no request document.
var ErrEmptyBody = errors.New("request body is empty")

// Event is the invocation event handed over by the hosting platform. Body
// holds either a JSON string containing the request document or the
// request document itself.
type Event struct {
	Body            json.RawMessage `json:"body"`
	IsBase64Encoded bool            `json:"isBase64Encoded,omitempty"`
}

// Request is a tool call addressed to this handler. Fields are looked up
// by their exact key; a type or name that is not a JSON string is kept as
// the empty string and never matches.
type Request struct {
	Type  string
	Name  string
	topic json.RawMessage
}

// IsLearnMCP reports whether the request is a learn_mcp tool call.
func (r *Request) IsLearnMCP() bool {
	return r.Type == ToolCallType && r.Name == ToolName
}

// Topic returns the requested topic, or "" when none was given. A topic
// that is present but not a string is an error.
func (r *Request) Topic() (string, error) {
	if len(r.topic) == 0 || bytes.Equal(r.topic, []byte("null")) {
		return "", nil
	}
	var topic *string
	if err := json.Unmarshal(r.topic, &topic); err != nil {
		return "", fmt.Errorf("failed to read parameters.topic: %w", err)
	}
	return ptr.Deref(topic, ""), nil
}

// DecodeRequest parses the body of an event. A JSON string body is
// unwrapped and decoded as a document; anything else is decoded as is.
// Documents that are valid JSON but not objects decode to an empty
// request, which is then rejected as an invalid tool call.
func DecodeRequest(ev Event) (*Request, error) {
	doc := bytes.TrimSpace(ev.Body)
	if len(doc) == 0 || bytes.Equal(doc, []byte("null")) {
		return nil, ErrEmptyBody
	}

	if doc[0] == '"' {
		var text string
		if err := json.Unmarshal(doc, &text); err != nil {
			return nil, fmt.Errorf("failed to decode body string: %w", err)
		}
		if ev.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(text)
			if err != nil {
				return nil, fmt.Errorf("failed to decode base64 body: %w", err)
			}
			text = string(decoded)
		}
		doc = bytes.TrimSpace([]byte(text))
		if bytes.Equal(doc, []byte("null")) {
			return nil, ErrEmptyBody
		}
	}
	if !json.Valid(doc) {
		return nil, fmt.Errorf("failed to parse request body: invalid JSON %q", truncate(string(doc), 64))
	}

	req := &Request{}
	fields, ok := objectFields(doc)
	if !ok {
		return req, nil
	}
	req.Type = stringField(fields["type"])
	req.Name = stringField(fields["name"])
	if params, ok := objectFields(fields["parameters"]); ok {
		req.topic = params["topic"]
	}
	return req, nil
}

// objectFields splits a JSON object into its members. It reports false for
// any other kind of value.
func objectFields(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func stringField(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
