package vireo

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vireo-ai/vireo-go/core"
	"github.com/vireo-ai/vireo-go/internal/toolcalls"
)

// ChatStream represents a streaming chat completion.
//
// Channel rules:
//   - Ch, Err, and Final are all closed when the stream ends
//   - Err emits at most one error
//   - Final emits exactly once on success, zero times on failure
//   - On context cancellation the stream terminates promptly and closes
//     all channels
type ChatStream struct {
	// Ch emits text deltas in order. Closed when the stream ends.
	Ch <-chan ChatChunk

	// Err emits at most one error.
	Err <-chan error

	// Final carries the assembled completion, including tool calls and
	// usage when the server reports it.
	Final <-chan *ChatCompletion
}

// StreamChatCompletion generates a model response as a server-sent event
// stream. The request is sent with stream set; the caller's request value is
// not mutated. Streaming requests are not retried.
func (c *Client) StreamChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatStream, error) {
	streamReq := *req
	streamReq.Stream = true

	resp, err := c.openStream(ctx, requestSpec{
		op:     "chat.completions.stream",
		method: http.MethodPost,
		path:   "/chat/completions",
	}, &streamReq, c.buildHeaders())
	if err != nil {
		return nil, err
	}

	chunkCh := make(chan ChatChunk, 100)
	errCh := make(chan error, 1)
	finalCh := make(chan *ChatCompletion, 1)

	go processChatStream(ctx, resp.Body, chunkCh, errCh, finalCh)

	return &ChatStream{
		Ch:    chunkCh,
		Err:   errCh,
		Final: finalCh,
	}, nil
}

// openStream issues a streaming request and returns the live response after
// the status check. The caller owns resp.Body.
func (c *Client) openStream(ctx context.Context, spec requestSpec, body any, headers http.Header) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, newDecodeError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, spec.method, spec.url(c.config.BaseURL), bytes.NewReader(payload))
	if err != nil {
		return nil, newNetworkError(err)
	}

	for key, values := range headers {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(resp.Body)
		return nil, normalizeError(resp.StatusCode, respBody, resp.Header.Get("x-request-id"))
	}

	return resp, nil
}

// processChatStream reads the SSE stream and emits deltas, then the
// assembled completion.
func processChatStream(
	ctx context.Context,
	body io.ReadCloser,
	chunkCh chan<- ChatChunk,
	errCh chan<- error,
	finalCh chan<- *ChatCompletion,
) {
	defer body.Close()
	defer close(chunkCh)
	defer close(errCh)
	defer close(finalCh)

	reader := bufio.NewReader(body)
	assembler := toolcalls.NewAssembler()

	var responseID string
	var responseModel string
	var finishReason string
	var usage *Usage
	var content strings.Builder

	for {
		select {
		case <-ctx.Done():
			errCh <- ctx.Err()
			return
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			errCh <- newNetworkError(err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			break
		}

		var chunk chatStreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			errCh <- newDecodeError(err)
			return
		}

		if chunk.ID != "" {
			responseID = chunk.ID
		}
		if chunk.Model != "" {
			responseModel = chunk.Model
		}
		if chunk.Usage != nil {
			usage = chunk.Usage
		}

		for _, choice := range chunk.Choices {
			if choice.FinishReason != "" {
				finishReason = choice.FinishReason
			}

			if choice.Delta.Content != "" {
				content.WriteString(choice.Delta.Content)
				select {
				case chunkCh <- ChatChunk{Delta: choice.Delta.Content}:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}

			for _, tc := range choice.Delta.ToolCalls {
				assembler.AddFragment(toolcalls.Fragment{
					Index:     tc.Index,
					ID:        tc.ID,
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				})
			}
		}
	}

	calls, err := assembler.Finalize()
	if err != nil {
		if errors.Is(err, toolcalls.ErrInvalidJSON) {
			err = newDecodeError(err)
		}
		errCh <- err
		return
	}

	message := ChatMessage{
		Role:    ChatRoleAssistant,
		Content: content.String(),
	}
	for _, call := range calls {
		message.ToolCalls = append(message.ToolCalls, ChatToolCall{
			ID:   call.ID,
			Type: ToolTypeFunction,
			Function: ChatFunctionCall{
				Name:      call.Name,
				Arguments: string(call.Arguments),
			},
		})
	}

	final := &ChatCompletion{
		ID:     responseID,
		Object: "chat.completion",
		Model:  responseModel,
		Choices: []ChatCompletionChoice{{
			Message:      message,
			FinishReason: finishReason,
		}},
	}
	if usage != nil {
		final.Usage = *usage
	}

	finalCh <- final
}

// DrainChatStream accumulates all deltas and returns the final completion.
// It blocks until the stream completes or the context cancels.
func DrainChatStream(ctx context.Context, s *ChatStream) (*ChatCompletion, error) {
	if s == nil {
		return nil, core.ErrBadRequest
	}

	var accumulated strings.Builder
	var streamErr error
	var final *ChatCompletion

	ch := s.Ch
	errs := s.Err
	finals := s.Final
	for ch != nil || errs != nil || finals != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case chunk, ok := <-ch:
			if !ok {
				ch = nil
				continue
			}
			accumulated.WriteString(chunk.Delta)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if err != nil {
				streamErr = err
			}

		case resp, ok := <-finals:
			if !ok {
				finals = nil
				continue
			}
			final = resp
		}
	}

	if streamErr != nil {
		return nil, streamErr
	}
	if final == nil {
		return nil, core.ErrDecode
	}
	if msg := final.FirstChoice(); msg != nil && msg.Content == "" {
		msg.Content = accumulated.String()
	}
	return final, nil
}

// ContentDelta is one incremental change to a message content block during a
// run stream. It carries the same variants as ContentBlock plus the index of
// the block it extends; unknown variants fail decoding rather than being
// dropped.
type ContentDelta struct {
	Index     int
	Type      ContentType
	Text      *TextContent
	ImageFile *ImageFileContent
	ImageURL  *ImageURLContent
	Refusal   *string
}

// UnmarshalJSON decodes a content delta by its type discriminator.
func (d *ContentDelta) UnmarshalJSON(data []byte) error {
	var wire struct {
		Index     int               `json:"index"`
		Type      ContentType       `json:"type"`
		Text      *TextContent      `json:"text"`
		ImageFile *ImageFileContent `json:"image_file"`
		ImageURL  *ImageURLContent  `json:"image_url"`
		Refusal   *string           `json:"refusal"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("content delta: %w: %v", core.ErrMalformedContent, err)
	}

	switch wire.Type {
	case ContentTypeText, ContentTypeImageFile, ContentTypeImageURL, ContentTypeRefusal:
	default:
		return fmt.Errorf("content delta type %q: %w", string(wire.Type), core.ErrUnknownContentType)
	}

	d.Index = wire.Index
	d.Type = wire.Type
	d.Text = wire.Text
	d.ImageFile = wire.ImageFile
	d.ImageURL = wire.ImageURL
	d.Refusal = wire.Refusal
	return nil
}

// MessageDelta is an incremental change to a streamed message.
type MessageDelta struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Delta  struct {
		Content []ContentDelta `json:"content"`
	} `json:"delta"`
}

// RunStreamEvent is one typed server-sent event from a run stream. Raw
// always carries the verbatim payload; the typed fields are populated for
// the event families the client understands, so unrecognized events still
// reach the caller.
type RunStreamEvent struct {
	// Event is the event name as sent, e.g. "thread.run.completed".
	Event string

	Thread       *Thread
	Run          *Run
	Message      *Message
	MessageDelta *MessageDelta

	Raw json.RawMessage
}

// RunStream represents a streaming run.
//
// Channel rules match ChatStream: Events and Err are closed when the stream
// ends, and Err emits at most one error.
type RunStream struct {
	Events <-chan RunStreamEvent
	Err    <-chan error
}

// StreamRun starts a run and streams its lifecycle events. The caller's
// request value is not mutated. Streaming requests are not retried.
func (c *Client) StreamRun(ctx context.Context, threadID string, req *RunCreateRequest) (*RunStream, error) {
	streamReq := *req
	streamReq.Stream = true

	return c.openRunStream(ctx, requestSpec{
		op:     "threads.runs.stream",
		method: http.MethodPost,
		path:   "/threads/" + threadID + "/runs",
	}, &streamReq)
}

// StreamSubmitToolOutputs delivers tool results to a requires_action run and
// streams the resumed run's events.
func (c *Client) StreamSubmitToolOutputs(ctx context.Context, threadID, runID string, req *ToolOutputsRequest) (*RunStream, error) {
	streamReq := *req
	streamReq.Stream = true

	return c.openRunStream(ctx, requestSpec{
		op:     "threads.runs.submit_tool_outputs.stream",
		method: http.MethodPost,
		path:   "/threads/" + threadID + "/runs/" + runID + "/submit_tool_outputs",
	}, &streamReq)
}

func (c *Client) openRunStream(ctx context.Context, spec requestSpec, body any) (*RunStream, error) {
	resp, err := c.openStream(ctx, spec, body, c.buildHeadersWithBeta())
	if err != nil {
		return nil, err
	}

	eventCh := make(chan RunStreamEvent, 100)
	errCh := make(chan error, 1)

	go processRunStream(ctx, resp.Body, eventCh, errCh)

	return &RunStream{
		Events: eventCh,
		Err:    errCh,
	}, nil
}

// processRunStream reads event/data pairs and dispatches them by event name.
func processRunStream(
	ctx context.Context,
	body io.ReadCloser,
	eventCh chan<- RunStreamEvent,
	errCh chan<- error,
) {
	defer body.Close()
	defer close(eventCh)
	defer close(errCh)

	reader := bufio.NewReader(body)
	var eventName string

	for {
		select {
		case <-ctx.Done():
			errCh <- ctx.Err()
			return
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return
			}
			errCh <- newNetworkError(err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}

		if strings.HasPrefix(line, "event:") {
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			continue
		}
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			return
		}

		event, err := decodeRunEvent(eventName, []byte(payload))
		if err != nil {
			errCh <- err
			return
		}

		select {
		case eventCh <- event:
		case <-ctx.Done():
			errCh <- ctx.Err()
			return
		}
	}
}

// decodeRunEvent populates the typed field matching the event family. Names
// outside the known families pass through with only Raw set.
func decodeRunEvent(name string, payload []byte) (RunStreamEvent, error) {
	event := RunStreamEvent{
		Event: name,
		Raw:   append(json.RawMessage(nil), payload...),
	}

	switch {
	case name == "error":
		return event, normalizeError(0, payload, "")

	case name == "thread.created":
		var thread Thread
		if err := json.Unmarshal(payload, &thread); err != nil {
			return event, newDecodeError(err)
		}
		event.Thread = &thread

	case name == "thread.message.delta":
		var delta MessageDelta
		if err := json.Unmarshal(payload, &delta); err != nil {
			if errors.Is(err, core.ErrUnknownContentType) || errors.Is(err, core.ErrMalformedContent) {
				return event, err
			}
			return event, newDecodeError(err)
		}
		event.MessageDelta = &delta

	case strings.HasPrefix(name, "thread.message."):
		var message Message
		if err := json.Unmarshal(payload, &message); err != nil {
			if errors.Is(err, core.ErrUnknownContentType) || errors.Is(err, core.ErrMalformedContent) {
				return event, err
			}
			return event, newDecodeError(err)
		}
		event.Message = &message

	case strings.HasPrefix(name, "thread.run.step."):
		// Step events are passed through raw; the client does not model
		// run steps.

	case strings.HasPrefix(name, "thread.run."):
		var run Run
		if err := json.Unmarshal(payload, &run); err != nil {
			return event, newDecodeError(err)
		}
		event.Run = &run
	}

	return event, nil
}
