package vireo

import "github.com/vireo-ai/vireo-go/core"

// Model describes one model available to the caller.
type Model struct {
	ID      string        `json:"id"`
	Object  string        `json:"object"`
	Created core.UnixTime `json:"created"`
	OwnedBy string        `json:"owned_by"`
}

// ModelDeleteResponse confirms deletion of a fine-tuned model.
type ModelDeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}
