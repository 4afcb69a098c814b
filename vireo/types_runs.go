package vireo

import "github.com/vireo-ai/vireo-go/core"

// RunStatus is the server-driven run state machine. The client only
// observes transitions; it never drives them.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusIncomplete     RunStatus = "incomplete"
	RunStatusExpired        RunStatus = "expired"
)

// runStatusTerminal is the explicit table of states a run never leaves.
var runStatusTerminal = map[RunStatus]bool{
	RunStatusCancelled:  true,
	RunStatusFailed:     true,
	RunStatusCompleted:  true,
	RunStatusIncomplete: true,
	RunStatusExpired:    true,
}

// IsTerminal reports whether the run has reached a state it never leaves.
func (s RunStatus) IsTerminal() bool {
	return runStatusTerminal[s]
}

// RequiredAction describes what the caller must do before a run proceeds.
type RequiredAction struct {
	Type              string             `json:"type"` // "submit_tool_outputs"
	SubmitToolOutputs *SubmitToolOutputs `json:"submit_tool_outputs,omitempty"`
}

// SubmitToolOutputs lists the tool calls awaiting results.
type SubmitToolOutputs struct {
	ToolCalls []RunToolCall `json:"tool_calls"`
}

// RunToolCall is a pending tool invocation inside a requires_action run.
type RunToolCall struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

// RunError carries the failure reason of a failed run.
type RunError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Usage reports token consumption for a run or completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Run is one execution of an assistant over a thread.
type Run struct {
	ID             string          `json:"id"`
	Object         string          `json:"object"`
	CreatedAt      core.UnixTime   `json:"created_at"`
	ThreadID       string          `json:"thread_id"`
	AssistantID    string          `json:"assistant_id"`
	Status         RunStatus       `json:"status"`
	RequiredAction *RequiredAction `json:"required_action,omitempty"`
	LastError      *RunError       `json:"last_error,omitempty"`

	Model        string `json:"model"`
	Instructions string `json:"instructions,omitempty"`
	Tools        []Tool `json:"tools,omitempty"`

	ExpiresAt   *core.UnixTime `json:"expires_at,omitempty"`
	StartedAt   *core.UnixTime `json:"started_at,omitempty"`
	CancelledAt *core.UnixTime `json:"cancelled_at,omitempty"`
	FailedAt    *core.UnixTime `json:"failed_at,omitempty"`
	CompletedAt *core.UnixTime `json:"completed_at,omitempty"`

	IncompleteDetails *IncompleteDetails `json:"incomplete_details,omitempty"`
	Usage             *Usage             `json:"usage,omitempty"`

	Temperature         *float32          `json:"temperature,omitempty"`
	TopP                *float32          `json:"top_p,omitempty"`
	MaxPromptTokens     *int              `json:"max_prompt_tokens,omitempty"`
	MaxCompletionTokens *int              `json:"max_completion_tokens,omitempty"`
	ToolChoice          *ToolChoice       `json:"tool_choice,omitempty"`
	ResponseFormat      *ResponseFormat   `json:"response_format,omitempty"`
	Metadata            map[string]string `json:"metadata,omitempty"`
}

// RunCreateRequest contains parameters for starting a run on a thread.
type RunCreateRequest struct {
	AssistantID            string                 `json:"assistant_id"`
	Model                  *string                `json:"model,omitempty"`
	Instructions           *string                `json:"instructions,omitempty"`
	AdditionalInstructions *string                `json:"additional_instructions,omitempty"`
	AdditionalMessages     []MessageCreateRequest `json:"additional_messages,omitempty"`
	Tools                  []Tool                 `json:"tools,omitempty"`
	Temperature            *float32               `json:"temperature,omitempty"`
	TopP                   *float32               `json:"top_p,omitempty"`
	MaxPromptTokens        *int                   `json:"max_prompt_tokens,omitempty"`
	MaxCompletionTokens    *int                   `json:"max_completion_tokens,omitempty"`
	ToolChoice             *ToolChoice            `json:"tool_choice,omitempty"`
	ResponseFormat         *ResponseFormat        `json:"response_format,omitempty"`
	Metadata               map[string]string      `json:"metadata,omitempty"`

	// Stream is set by StreamRun; CreateRun leaves it false.
	Stream bool `json:"stream,omitempty"`
}

// ThreadAndRunRequest creates a thread and immediately starts a run on it.
type ThreadAndRunRequest struct {
	AssistantID    string               `json:"assistant_id"`
	Thread         *ThreadCreateRequest `json:"thread,omitempty"`
	Model          *string              `json:"model,omitempty"`
	Instructions   *string              `json:"instructions,omitempty"`
	Tools          []Tool               `json:"tools,omitempty"`
	ToolResources  *ToolResources       `json:"tool_resources,omitempty"`
	Temperature    *float32             `json:"temperature,omitempty"`
	TopP           *float32             `json:"top_p,omitempty"`
	ToolChoice     *ToolChoice          `json:"tool_choice,omitempty"`
	ResponseFormat *ResponseFormat      `json:"response_format,omitempty"`
	Metadata       map[string]string    `json:"metadata,omitempty"`
}

// RunModifyRequest updates run metadata.
type RunModifyRequest struct {
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ToolOutputsRequest submits tool results to a requires_action run.
type ToolOutputsRequest struct {
	ToolOutputs []ToolOutput `json:"tool_outputs"`

	// Stream is set by the streaming submit variant.
	Stream bool `json:"stream,omitempty"`
}
