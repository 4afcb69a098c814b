package vireo

import (
	"encoding/json"

	"github.com/vireo-ai/vireo-go/core"
)

// ChatRole identifies a chat completion message participant.
type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleTool      ChatRole = "tool"
)

// ChatMessage is one message in a chat completion conversation.
type ChatMessage struct {
	Role       ChatRole       `json:"role"`
	Content    string         `json:"content"`
	Name       string         `json:"name,omitempty"`
	ToolCalls  []ChatToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

// ChatToolCall is a tool invocation inside a chat completion message.
type ChatToolCall struct {
	ID       string           `json:"id"`
	Type     ToolType         `json:"type"`
	Function ChatFunctionCall `json:"function"`
}

// ChatFunctionCall carries the function name and raw argument JSON.
// Arguments arrive as a string-encoded JSON document and are preserved
// verbatim.
type ChatFunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatCompletionRequest contains parameters for a chat completion.
// Pointer-typed sampling fields are omitted when nil so server defaults
// apply. ToolChoice nil means the field is absent, which is distinct from
// an explicit Auto. ResponseFormat follows the same omission rule via
// ResponseFormat.Ptr.
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    *float32        `json:"temperature,omitempty"`
	TopP           *float32        `json:"top_p,omitempty"`
	MaxTokens      *int            `json:"max_tokens,omitempty"`
	N              *int            `json:"n,omitempty"`
	Stop           []string        `json:"stop,omitempty"`
	Seed           *int            `json:"seed,omitempty"`
	User           string          `json:"user,omitempty"`
	Tools          []Tool          `json:"tools,omitempty"`
	ToolChoice     *ToolChoice     `json:"tool_choice,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`

	// Stream is set by StreamChatCompletion; CreateChatCompletion leaves
	// it false.
	Stream bool `json:"stream,omitempty"`
}

// ApplyToolChoiceHint resolves hint against the request's declared tools and
// sets the resulting selector. With no declared tools the field stays
// absent; an unmatched hint fails with core.ErrToolNotFound.
func (r *ChatCompletionRequest) ApplyToolChoiceHint(hint string) error {
	choice, err := ResolveToolChoice(r.Tools, hint)
	if err != nil {
		return err
	}
	r.ToolChoice = choice
	return nil
}

// ChatCompletionChoice is one generated alternative.
type ChatCompletionChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatCompletion is the response to a chat completion request.
type ChatCompletion struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created core.UnixTime          `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   Usage                  `json:"usage"`
}

// FirstChoice returns the first choice message, or nil if there is none.
func (c *ChatCompletion) FirstChoice() *ChatMessage {
	if len(c.Choices) == 0 {
		return nil
	}
	return &c.Choices[0].Message
}

// HasToolCalls reports whether the first choice requested tool invocations.
func (c *ChatCompletion) HasToolCalls() bool {
	msg := c.FirstChoice()
	return msg != nil && len(msg.ToolCalls) > 0
}

// chatStreamChunk is the wire shape of one streaming SSE payload.
type chatStreamChunk struct {
	ID    string `json:"id"`
	Model string `json:"model"`
	Choices []struct {
		Index int `json:"index"`
		Delta struct {
			Content   string               `json:"content"`
			ToolCalls []chatStreamToolCall `json:"tool_calls"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

// chatStreamToolCall is a fragmented tool call inside a streaming delta.
type chatStreamToolCall struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

// ChatChunk is one incremental streaming delta.
type ChatChunk struct {
	Delta string `json:"delta"`
}

// Canonical converts a chat tool call into the canonical ToolCall form,
// keeping the argument JSON verbatim.
func (tc ChatToolCall) Canonical() ToolCall {
	return ToolCall{
		ID:        tc.ID,
		Type:      tc.Type,
		Name:      tc.Function.Name,
		Arguments: json.RawMessage(tc.Function.Arguments),
	}
}
