package vireo

import "github.com/vireo-ai/vireo-go/core"

// VectorStoreStatus represents the processing status of a vector store.
type VectorStoreStatus string

const (
	VectorStoreStatusExpired    VectorStoreStatus = "expired"
	VectorStoreStatusInProgress VectorStoreStatus = "in_progress"
	VectorStoreStatusCompleted  VectorStoreStatus = "completed"
)

// VectorStore holds processed files for file search.
type VectorStore struct {
	ID           string                `json:"id"`
	Object       string                `json:"object"`
	CreatedAt    core.UnixTime         `json:"created_at"`
	Name         string                `json:"name"`
	UsageBytes   int64                 `json:"usage_bytes"`
	FileCounts   VectorStoreFileCounts `json:"file_counts"`
	Status       VectorStoreStatus     `json:"status"`
	ExpiresAfter *VectorStoreExpiry    `json:"expires_after,omitempty"`
	ExpiresAt    *core.UnixTime        `json:"expires_at,omitempty"`
	LastActiveAt *core.UnixTime        `json:"last_active_at,omitempty"`
	Metadata     map[string]string     `json:"metadata,omitempty"`
}

// VectorStoreFileCounts tracks per-status file counts.
type VectorStoreFileCounts struct {
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	Cancelled  int `json:"cancelled"`
	Total      int `json:"total"`
}

// VectorStoreExpiry defines a vector store expiration policy.
type VectorStoreExpiry struct {
	Anchor string `json:"anchor"`
	Days   int    `json:"days"`
}

// ChunkingStrategy controls how files are split before embedding.
type ChunkingStrategy struct {
	Type   string                  `json:"type"` // "auto" or "static"
	Static *StaticChunkingStrategy `json:"static,omitempty"`
}

// StaticChunkingStrategy fixes chunk size and overlap.
type StaticChunkingStrategy struct {
	MaxChunkSizeTokens int `json:"max_chunk_size_tokens"`
	ChunkOverlapTokens int `json:"chunk_overlap_tokens"`
}

// VectorStoreCreateRequest contains parameters for creating a vector store.
type VectorStoreCreateRequest struct {
	Name             string             `json:"name,omitempty"`
	FileIDs          []string           `json:"file_ids,omitempty"`
	ExpiresAfter     *VectorStoreExpiry `json:"expires_after,omitempty"`
	ChunkingStrategy *ChunkingStrategy  `json:"chunking_strategy,omitempty"`
	Metadata         map[string]string  `json:"metadata,omitempty"`
}

// VectorStoreModifyRequest updates vector store configuration.
type VectorStoreModifyRequest struct {
	Name         *string            `json:"name,omitempty"`
	ExpiresAfter *VectorStoreExpiry `json:"expires_after,omitempty"`
	Metadata     map[string]string  `json:"metadata,omitempty"`
}

// VectorStoreDeleteResponse reports the result of a deletion.
type VectorStoreDeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// VectorStoreFileStatus represents per-file processing status.
type VectorStoreFileStatus string

const (
	VectorStoreFileStatusInProgress VectorStoreFileStatus = "in_progress"
	VectorStoreFileStatusCompleted  VectorStoreFileStatus = "completed"
	VectorStoreFileStatusCancelled  VectorStoreFileStatus = "cancelled"
	VectorStoreFileStatusFailed     VectorStoreFileStatus = "failed"
)

// VectorStoreFile is a file attached to a vector store.
type VectorStoreFile struct {
	ID               string                `json:"id"`
	Object           string                `json:"object"`
	UsageBytes       int64                 `json:"usage_bytes"`
	CreatedAt        core.UnixTime         `json:"created_at"`
	VectorStoreID    string                `json:"vector_store_id"`
	Status           VectorStoreFileStatus `json:"status"`
	LastError        *RunError             `json:"last_error,omitempty"`
	ChunkingStrategy *ChunkingStrategy     `json:"chunking_strategy,omitempty"`
}

// VectorStoreFileAddRequest attaches an uploaded file to a vector store.
type VectorStoreFileAddRequest struct {
	FileID           string            `json:"file_id"`
	ChunkingStrategy *ChunkingStrategy `json:"chunking_strategy,omitempty"`
}

// VectorStoreFileListParams extends ListParams with status filtering.
type VectorStoreFileListParams struct {
	ListParams
	Filter *VectorStoreFileStatus
}

// VectorStoreFileDeleteResponse reports the result of a file detachment.
type VectorStoreFileDeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}
