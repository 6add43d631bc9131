package handler

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringBody(doc string) json.RawMessage {
	return json.RawMessage(strconv.Quote(doc))
}

func assertTopic(t *testing.T, req *Request, want string) {
	t.Helper()
	topic, err := req.Topic()
	require.NoError(t, err)
	assert.Equal(t, want, topic)
}

func TestDecodeRequest_StringBody(t *testing.T) {
	req, err := DecodeRequest(Event{Body: stringBody(`{"type":"tool_call","name":"learn_mcp","parameters":{"topic":"Security"}}`)})
	require.NoError(t, err)
	assert.True(t, req.IsLearnMCP())
	assertTopic(t, req, "Security")
}

func TestDecodeRequest_ObjectBody(t *testing.T) {
	req, err := DecodeRequest(Event{Body: json.RawMessage(`{"type":"tool_call","name":"learn_mcp"}`)})
	require.NoError(t, err)
	assert.True(t, req.IsLearnMCP())
	assertTopic(t, req, "")
}

func TestDecodeRequest_Base64Body(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(`{"type":"tool_call","name":"learn_mcp","parameters":{"topic":"aws"}}`))
	req, err := DecodeRequest(Event{Body: stringBody(encoded), IsBase64Encoded: true})
	require.NoError(t, err)
	assertTopic(t, req, "aws")
}

func TestDecodeRequest_ParametersWithoutTopic(t *testing.T) {
	req, err := DecodeRequest(Event{Body: json.RawMessage(`{"type":"tool_call","name":"learn_mcp","parameters":{}}`)})
	require.NoError(t, err)
	assertTopic(t, req, "")
}

func TestDecodeRequest_NonObjectDocument(t *testing.T) {
	for _, body := range []json.RawMessage{
		json.RawMessage(`42`),
		json.RawMessage(`[1,2]`),
		stringBody(`"just text"`),
	} {
		req, err := DecodeRequest(Event{Body: body})
		require.NoError(t, err, string(body))
		assert.False(t, req.IsLearnMCP())
	}
}

func TestDecodeRequest_Errors(t *testing.T) {
	_, err := DecodeRequest(Event{})
	assert.ErrorIs(t, err, ErrEmptyBody)

	_, err = DecodeRequest(Event{Body: json.RawMessage(`null`)})
	assert.ErrorIs(t, err, ErrEmptyBody)

	_, err = DecodeRequest(Event{Body: stringBody(`null`)})
	assert.ErrorIs(t, err, ErrEmptyBody)

	_, err = DecodeRequest(Event{Body: stringBody(`{not json`)})
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = DecodeRequest(Event{Body: stringBody(``)})
	assert.Error(t, err)

	_, err = DecodeRequest(Event{Body: json.RawMessage(`12x`)})
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = DecodeRequest(Event{Body: json.RawMessage(`{"type":"tool_call"`)})
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = DecodeRequest(Event{Body: stringBody("%%%"), IsBase64Encoded: true})
	assert.ErrorContains(t, err, "base64")
}

func TestEvent_UnmarshalProxyPayload(t *testing.T) {
	payload := `{
		"resource": "/learn",
		"httpMethod": "POST",
		"headers": {"Content-Type": "application/json"},
		"body": "{\"type\":\"tool_call\",\"name\":\"learn_mcp\",\"parameters\":{\"topic\":\"testing\"}}",
		"isBase64Encoded": false
	}`
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(payload), &ev))

	req, err := DecodeRequest(ev)
	require.NoError(t, err)
	assertTopic(t, req, "testing")
}

func TestDecodeRequest_ExactKeys(t *testing.T) {
	req, err := DecodeRequest(Event{Body: json.RawMessage(`{"TYPE":"tool_call","NAME":"learn_mcp"}`)})
	require.NoError(t, err)
	assert.False(t, req.IsLearnMCP())

	req, err = DecodeRequest(Event{Body: json.RawMessage(`{"type":"tool_call","name":"learn_mcp","Parameters":{"topic":"security"}}`)})
	require.NoError(t, err)
	assert.True(t, req.IsLearnMCP())
	assertTopic(t, req, "")

	req, err = DecodeRequest(Event{Body: json.RawMessage(`{"type":"tool_call","name":"learn_mcp","parameters":{"TOPIC":"security"}}`)})
	require.NoError(t, err)
	assertTopic(t, req, "")
}

func TestDecodeRequest_NonStringTypeOrName(t *testing.T) {
	for _, body := range []string{
		`{"type":5,"name":"learn_mcp"}`,
		`{"type":"tool_call","name":["learn_mcp"]}`,
		`{"type":"tool_call","name":{"value":"learn_mcp"}}`,
		`{"type":null,"name":"learn_mcp"}`,
	} {
		req, err := DecodeRequest(Event{Body: json.RawMessage(body)})
		require.NoError(t, err, body)
		assert.False(t, req.IsLearnMCP(), body)
	}
}

func TestDecodeRequest_NonObjectParameters(t *testing.T) {
	for _, params := range []string{`"abc"`, `5`, `null`, `[{"topic":"security"}]`, `true`} {
		req, err := DecodeRequest(Event{Body: json.RawMessage(`{"type":"tool_call","name":"learn_mcp","parameters":` + params + `}`)})
		require.NoError(t, err, params)
		assert.True(t, req.IsLearnMCP())
		assertTopic(t, req, "")
	}
}

func TestRequest_TopicNotAString(t *testing.T) {
	for _, topic := range []string{`7`, `true`, `["security"]`, `{"name":"security"}`} {
		req, err := DecodeRequest(Event{Body: json.RawMessage(`{"type":"tool_call","name":"learn_mcp","parameters":{"topic":` + topic + `}}`)})
		require.NoError(t, err, topic)
		_, err = req.Topic()
		assert.ErrorContains(t, err, "failed to read parameters.topic", topic)
	}

	req, err := DecodeRequest(Event{Body: json.RawMessage(`{"type":"tool_call","name":"learn_mcp","parameters":{"topic":null}}`)})
	require.NoError(t, err)
	assertTopic(t, req, "")
}
