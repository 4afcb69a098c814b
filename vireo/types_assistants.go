package vireo

import "github.com/vireo-ai/vireo-go/core"

// Assistant is a configured model persona that runs execute.
type Assistant struct {
	ID             string            `json:"id"`
	Object         string            `json:"object"`
	CreatedAt      core.UnixTime     `json:"created_at"`
	Name           *string           `json:"name,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Model          string            `json:"model"`
	Instructions   *string           `json:"instructions,omitempty"`
	Tools          []Tool            `json:"tools,omitempty"`
	ToolResources  *ToolResources    `json:"tool_resources,omitempty"`
	Temperature    *float32          `json:"temperature,omitempty"`
	TopP           *float32          `json:"top_p,omitempty"`
	ResponseFormat *ResponseFormat   `json:"response_format,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// AssistantCreateRequest contains parameters for creating an assistant.
// Pointer fields are omitted when nil so server defaults apply; omitted,
// zero, and explicit values stay distinguishable.
type AssistantCreateRequest struct {
	Model          string            `json:"model"`
	Name           *string           `json:"name,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Instructions   *string           `json:"instructions,omitempty"`
	Tools          []Tool            `json:"tools,omitempty"`
	ToolResources  *ToolResources    `json:"tool_resources,omitempty"`
	Temperature    *float32          `json:"temperature,omitempty"`
	TopP           *float32          `json:"top_p,omitempty"`
	ResponseFormat *ResponseFormat   `json:"response_format,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// AssistantModifyRequest updates assistant configuration. Only non-nil
// fields change.
type AssistantModifyRequest struct {
	Model          *string           `json:"model,omitempty"`
	Name           *string           `json:"name,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Instructions   *string           `json:"instructions,omitempty"`
	Tools          []Tool            `json:"tools,omitempty"`
	ToolResources  *ToolResources    `json:"tool_resources,omitempty"`
	Temperature    *float32          `json:"temperature,omitempty"`
	TopP           *float32          `json:"top_p,omitempty"`
	ResponseFormat *ResponseFormat   `json:"response_format,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// AssistantDeleteResponse reports the result of an assistant deletion.
type AssistantDeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}
