package vireo

import (
	"encoding/json"
	"fmt"

	"github.com/vireo-ai/vireo-go/core"
)

// MessageRole identifies a message participant.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// MessageStatus is the vendor-reported processing status of a message.
type MessageStatus string

const (
	MessageStatusInProgress MessageStatus = "in_progress"
	MessageStatusIncomplete MessageStatus = "incomplete"
	MessageStatusCompleted  MessageStatus = "completed"
)

// Attachment ties a file to a message and names the tools that may use it.
type Attachment struct {
	FileID string `json:"file_id"`
	Tools  []Tool `json:"tools,omitempty"`
}

// IncompleteDetails explains why a message or run stopped early.
type IncompleteDetails struct {
	Reason string `json:"reason"`
}

// Message is a message within a thread. Content is an ordered sequence of
// content blocks. Messages are immutable value objects: they are built once
// from a decoded response body and never mutated.
//
// Metadata is an open string-to-string mapping. The server enforces its
// limits (16 entries, key <=64 chars, value <=512 chars); this client
// serializes whatever it is given and leaves validation to
// core.ValidateMetadata for callers who want to fail fast.
type Message struct {
	ID        string         `json:"id"`
	Object    string         `json:"object"`
	CreatedAt core.UnixTime  `json:"created_at"`
	ThreadID  string         `json:"thread_id"`
	Status    MessageStatus  `json:"status,omitempty"`
	Role      MessageRole    `json:"role"`
	Content   []ContentBlock `json:"content"`

	AssistantID       string             `json:"assistant_id,omitempty"`
	RunID             string             `json:"run_id,omitempty"`
	Attachments       []Attachment       `json:"attachments,omitempty"`
	IncompleteDetails *IncompleteDetails `json:"incomplete_details,omitempty"`
	CompletedAt       *core.UnixTime     `json:"completed_at,omitempty"`
	IncompleteAt      *core.UnixTime     `json:"incomplete_at,omitempty"`
	Metadata          map[string]string  `json:"metadata,omitempty"`
}

// Display returns the newline-joined human projection of the message content.
func (m *Message) Display() string {
	return PrintContent(m.Content)
}

// InputContent is the request-side form of a content block. Text is a bare
// string on the wire here, unlike the response form where it nests under
// {value, annotations}.
type InputContent struct {
	Type      ContentType       `json:"type"`
	Text      string            `json:"text,omitempty"`
	ImageFile *ImageFileContent `json:"image_file,omitempty"`
	ImageURL  *ImageURLContent  `json:"image_url,omitempty"`
}

// NewInputText creates a text input part.
func NewInputText(text string) InputContent {
	return InputContent{Type: ContentTypeText, Text: text}
}

// NewInputImageFile creates an image input part referencing an uploaded file.
func NewInputImageFile(fileID string, detail ImageDetail) InputContent {
	if detail == "" {
		detail = ImageDetailAuto
	}
	return InputContent{Type: ContentTypeImageFile, ImageFile: &ImageFileContent{FileID: fileID, Detail: detail}}
}

// NewInputImageURL creates an image input part referencing a URL.
func NewInputImageURL(url string, detail ImageDetail) InputContent {
	if detail == "" {
		detail = ImageDetailAuto
	}
	return InputContent{Type: ContentTypeImageURL, ImageURL: &ImageURLContent{URL: url, Detail: detail}}
}

// InputFromContentBlock explicitly converts a response-shaped block into the
// request shape, flattening nested text and dropping annotations. Refusal
// blocks have no request form and fail with core.ErrNotSupported. The
// conversion is a named function rather than an implicit coercion so data
// flow between response and request shapes stays auditable.
func InputFromContentBlock(b ContentBlock) (InputContent, error) {
	switch b.Type {
	case ContentTypeText:
		if b.Text == nil {
			return InputContent{}, fmt.Errorf("text block has no text payload: %w", core.ErrMalformedContent)
		}
		return NewInputText(b.Text.Value), nil
	case ContentTypeImageFile:
		if b.ImageFile == nil {
			return InputContent{}, fmt.Errorf("image_file block has no image_file payload: %w", core.ErrMalformedContent)
		}
		return InputContent{Type: ContentTypeImageFile, ImageFile: b.ImageFile}, nil
	case ContentTypeImageURL:
		if b.ImageURL == nil {
			return InputContent{}, fmt.Errorf("image_url block has no image_url payload: %w", core.ErrMalformedContent)
		}
		return InputContent{Type: ContentTypeImageURL, ImageURL: b.ImageURL}, nil
	case ContentTypeRefusal:
		return InputContent{}, fmt.Errorf("refusal blocks cannot be sent as input: %w", core.ErrNotSupported)
	default:
		return InputContent{}, fmt.Errorf("content block type %q: %w", string(b.Type), core.ErrUnknownContentType)
	}
}

// MessageContent is the union accepted when creating a message: either a
// plain string or a sequence of input parts.
type MessageContent struct {
	Text  string
	Parts []InputContent
}

// TextContentInput wraps a plain string.
func TextContentInput(s string) MessageContent {
	return MessageContent{Text: s}
}

// PartsContentInput wraps multimodal parts.
func PartsContentInput(parts ...InputContent) MessageContent {
	return MessageContent{Parts: parts}
}

// MarshalJSON emits either the bare string or the parts array.
func (m MessageContent) MarshalJSON() ([]byte, error) {
	if len(m.Parts) > 0 {
		return json.Marshal(m.Parts)
	}
	return json.Marshal(m.Text)
}

// UnmarshalJSON accepts either form.
func (m *MessageContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MessageContent{Text: s}
		return nil
	}
	var parts []InputContent
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	*m = MessageContent{Parts: parts}
	return nil
}

// MessageCreateRequest contains parameters for adding a message to a thread.
type MessageCreateRequest struct {
	Role        MessageRole       `json:"role"`
	Content     MessageContent    `json:"content"`
	Attachments []Attachment      `json:"attachments,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// MessageModifyRequest updates message metadata.
type MessageModifyRequest struct {
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MessageDeleteResponse reports the result of a message deletion.
type MessageDeleteResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// MessageListParams extends ListParams with run filtering.
type MessageListParams struct {
	ListParams
	RunID *string
}
