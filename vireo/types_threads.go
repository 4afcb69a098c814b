package vireo

import "github.com/vireo-ai/vireo-go/core"

// Thread is a conversation that messages attach to and runs execute against.
type Thread struct {
	ID            string            `json:"id"`
	Object        string            `json:"object"`
	CreatedAt     core.UnixTime     `json:"created_at"`
	ToolResources *ToolResources    `json:"tool_resources,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ThreadCreateRequest contains parameters for creating a thread, optionally
// seeded with initial messages.
type ThreadCreateRequest struct {
	Messages      []MessageCreateRequest `json:"messages,omitempty"`
	ToolResources *ToolResources         `json:"tool_resources,omitempty"`
	Metadata      map[string]string      `json:"metadata,omitempty"`
}

// ThreadModifyRequest updates thread tool resources or metadata.
type ThreadModifyRequest struct {
	ToolResources *ToolResources    `json:"tool_resources,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ThreadDeleteResponse reports the result of a thread deletion.
type ThreadDeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}
