package vireo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireo-ai/vireo-go/core"
)

func sseServer(t *testing.T, lines []string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range lines {
			w.Write([]byte(line + "\n"))
		}
	}))
}

func TestStreamChatCompletion(t *testing.T) {
	lines := []string{
		`data: {"id":"chatcmpl-1","model":"gpt-4o","choices":[{"index":0,"delta":{"content":"Hel"}}]}`,
		``,
		`data: {"id":"chatcmpl-1","choices":[{"index":0,"delta":{"content":"lo"}}]}`,
		``,
		`data: {"id":"chatcmpl-1","choices":[{"index":0,"delta":{},"finish_reason":"stop"}],"usage":{"prompt_tokens":5,"completion_tokens":2,"total_tokens":7}}`,
		``,
		`data: [DONE]`,
	}

	server := sseServer(t, lines, func(r *http.Request) {
		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
	})
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	req := &ChatCompletionRequest{
		Model:    "gpt-4o",
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "Hello"}},
	}
	stream, err := c.StreamChatCompletion(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, req.Stream, "caller request must not be mutated")

	var deltas []string
	for chunk := range stream.Ch {
		deltas = append(deltas, chunk.Delta)
	}
	assert.Equal(t, []string{"Hel", "lo"}, deltas)

	require.NoError(t, <-stream.Err)

	final := <-stream.Final
	require.NotNil(t, final)
	assert.Equal(t, "chatcmpl-1", final.ID)
	assert.Equal(t, "Hello", final.FirstChoice().Content)
	assert.Equal(t, "stop", final.Choices[0].FinishReason)
	assert.Equal(t, 7, final.Usage.TotalTokens)
}

func TestStreamChatCompletionToolCallFragments(t *testing.T) {
	lines := []string{
		`data: {"id":"chatcmpl-2","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"get_weather","arguments":""}}]}}]}`,
		``,
		`data: {"id":"chatcmpl-2","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"arguments":"{\"city\":"}}]}}]}`,
		``,
		`data: {"id":"chatcmpl-2","choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"Oslo\"}"}}]}}]}`,
		``,
		`data: [DONE]`,
	}

	server := sseServer(t, lines, nil)
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	stream, err := c.StreamChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt-4o"})
	require.NoError(t, err)

	final, err := DrainChatStream(context.Background(), stream)
	require.NoError(t, err)

	msg := final.FirstChoice()
	require.NotNil(t, msg)
	require.Len(t, msg.ToolCalls, 1)
	tc := msg.ToolCalls[0]
	assert.Equal(t, "call_1", tc.ID)
	assert.Equal(t, "get_weather", tc.Function.Name)
	assert.JSONEq(t, `{"city":"Oslo"}`, tc.Function.Arguments)

	canonical := tc.Canonical()
	assert.Equal(t, "get_weather", canonical.Name)
	assert.JSONEq(t, `{"city":"Oslo"}`, string(canonical.Arguments))
}

func TestStreamChatCompletionInvalidToolArgs(t *testing.T) {
	lines := []string{
		`data: {"choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"f","arguments":"{not json"}}]}}]}`,
		``,
		`data: [DONE]`,
	}

	server := sseServer(t, lines, nil)
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	stream, err := c.StreamChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt-4o"})
	require.NoError(t, err)

	_, err = DrainChatStream(context.Background(), stream)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDecode)
}

func TestStreamChatCompletionSetupError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	_, err := c.StreamChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt-4o"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestStreamRunEvents(t *testing.T) {
	lines := []string{
		`event: thread.run.created`,
		`data: {"id":"run_1","object":"thread.run","thread_id":"thread_1","status":"queued"}`,
		``,
		`event: thread.message.delta`,
		`data: {"id":"msg_1","object":"thread.message.delta","delta":{"content":[{"index":0,"type":"text","text":{"value":"Hi"}}]}}`,
		``,
		`event: thread.run.step.completed`,
		`data: {"id":"step_1","object":"thread.run.step"}`,
		``,
		`event: thread.message.completed`,
		`data: {"id":"msg_1","object":"thread.message","role":"assistant","content":[{"type":"text","text":{"value":"Hi","annotations":[]}}]}`,
		``,
		`event: thread.run.completed`,
		`data: {"id":"run_1","object":"thread.run","status":"completed"}`,
		``,
		`event: done`,
		`data: [DONE]`,
	}

	server := sseServer(t, lines, func(r *http.Request) {
		assert.Equal(t, "assistants=v2", r.Header.Get("OpenAI-Beta"))
		var req RunCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
	})
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	stream, err := c.StreamRun(context.Background(), "thread_1", &RunCreateRequest{AssistantID: "asst_1"})
	require.NoError(t, err)

	var events []RunStreamEvent
	for ev := range stream.Events {
		events = append(events, ev)
	}
	require.NoError(t, <-stream.Err)

	require.Len(t, events, 5)

	assert.Equal(t, "thread.run.created", events[0].Event)
	require.NotNil(t, events[0].Run)
	assert.Equal(t, RunStatusQueued, events[0].Run.Status)

	assert.Equal(t, "thread.message.delta", events[1].Event)
	require.NotNil(t, events[1].MessageDelta)
	require.Len(t, events[1].MessageDelta.Delta.Content, 1)
	delta := events[1].MessageDelta.Delta.Content[0]
	assert.Equal(t, ContentTypeText, delta.Type)
	require.NotNil(t, delta.Text)
	assert.Equal(t, "Hi", delta.Text.Value)

	// Step events pass through raw; nothing typed is populated.
	assert.Equal(t, "thread.run.step.completed", events[2].Event)
	assert.Nil(t, events[2].Run)
	assert.NotEmpty(t, events[2].Raw)

	assert.Equal(t, "thread.message.completed", events[3].Event)
	require.NotNil(t, events[3].Message)
	assert.Equal(t, "Hi", events[3].Message.Display())

	assert.Equal(t, "thread.run.completed", events[4].Event)
	require.NotNil(t, events[4].Run)
	assert.True(t, events[4].Run.Status.IsTerminal())
}

func TestStreamRunUnknownEventPassesThrough(t *testing.T) {
	lines := []string{
		`event: thread.run.telemetry`,
		`data: {"samples":[1,2,3]}`,
		``,
		`event: done`,
		`data: [DONE]`,
	}

	server := sseServer(t, lines, nil)
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	stream, err := c.StreamRun(context.Background(), "thread_1", &RunCreateRequest{AssistantID: "asst_1"})
	require.NoError(t, err)

	var events []RunStreamEvent
	for ev := range stream.Events {
		events = append(events, ev)
	}
	require.NoError(t, <-stream.Err)

	// "thread.run.telemetry" decodes as a run event; the payload has no run
	// fields but it still reaches the caller with Raw intact.
	require.Len(t, events, 1)
	assert.Equal(t, "thread.run.telemetry", events[0].Event)
	assert.JSONEq(t, `{"samples":[1,2,3]}`, string(events[0].Raw))
}

func TestStreamRunErrorEvent(t *testing.T) {
	lines := []string{
		`event: error`,
		`data: {"error":{"message":"run exploded","code":"server_error"}}`,
	}

	server := sseServer(t, lines, nil)
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	stream, err := c.StreamRun(context.Background(), "thread_1", &RunCreateRequest{AssistantID: "asst_1"})
	require.NoError(t, err)

	for range stream.Events {
	}
	err = <-stream.Err
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run exploded")
}

func TestContentDeltaUnknownTypeFails(t *testing.T) {
	var delta ContentDelta
	err := json.Unmarshal([]byte(`{"index":0,"type":"hologram"}`), &delta)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownContentType)
}

func TestContentDeltaVariants(t *testing.T) {
	var delta ContentDelta
	require.NoError(t, json.Unmarshal([]byte(`{"index":2,"type":"image_file","image_file":{"file_id":"file-x","detail":"low"}}`), &delta))
	assert.Equal(t, 2, delta.Index)
	require.NotNil(t, delta.ImageFile)
	assert.Equal(t, ImageDetailLow, delta.ImageFile.Detail)

	require.NoError(t, json.Unmarshal([]byte(`{"index":0,"type":"refusal","refusal":"no"}`), &delta))
	require.NotNil(t, delta.Refusal)
	assert.Equal(t, "no", *delta.Refusal)
}

func TestDrainChatStreamNil(t *testing.T) {
	_, err := DrainChatStream(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrBadRequest)
}

func TestSSECommentAndBlankLinesIgnored(t *testing.T) {
	lines := []string{
		`: keep-alive`,
		``,
		`data: {"choices":[{"index":0,"delta":{"content":"ok"}}]}`,
		``,
		`data: [DONE]`,
	}

	server := sseServer(t, lines, nil)
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	stream, err := c.StreamChatCompletion(context.Background(), &ChatCompletionRequest{Model: "gpt-4o"})
	require.NoError(t, err)

	var sb strings.Builder
	for chunk := range stream.Ch {
		sb.WriteString(chunk.Delta)
	}
	assert.Equal(t, "ok", sb.String())
	require.NoError(t, <-stream.Err)
}
