package vireo

import (
	"io"

	"github.com/vireo-ai/vireo-go/core"
)

// FilePurpose represents the intended use of an uploaded file.
type FilePurpose string

const (
	FilePurposeAssistants FilePurpose = "assistants"
	FilePurposeBatch      FilePurpose = "batch"
	FilePurposeFineTune   FilePurpose = "fine-tune"
	FilePurposeVision     FilePurpose = "vision"
	FilePurposeUserData   FilePurpose = "user_data"
)

// File represents an uploaded file.
type File struct {
	ID        string         `json:"id"`
	Object    string         `json:"object"`
	Bytes     int64          `json:"bytes"`
	CreatedAt core.UnixTime  `json:"created_at"`
	ExpiresAt *core.UnixTime `json:"expires_at,omitempty"`
	Filename  string         `json:"filename"`
	Purpose   FilePurpose    `json:"purpose"`
}

// ExpiresAfter defines a file expiration policy.
type ExpiresAfter struct {
	Anchor  string `json:"anchor"`
	Seconds int    `json:"seconds"`
}

// FileUploadRequest contains parameters for uploading a file. The body is
// multipart/form-data, not JSON.
type FileUploadRequest struct {
	File         io.Reader
	Filename     string
	Purpose      FilePurpose
	ExpiresAfter *ExpiresAfter
}

// FileListParams filters file listings.
type FileListParams struct {
	ListParams
	Purpose *FilePurpose
}

// FileDeleteResponse reports the result of a file deletion.
type FileDeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}
