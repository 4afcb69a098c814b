package vireo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vireo-ai/vireo-go/core"
)

// ContentType is the wire discriminator naming which variant of the content
// union a JSON object represents.
type ContentType string

const (
	ContentTypeText      ContentType = "text"
	ContentTypeImageFile ContentType = "image_file"
	ContentTypeImageURL  ContentType = "image_url"
	ContentTypeRefusal   ContentType = "refusal"
)

// ImageDetail specifies the level of detail for image processing.
//
// The default is ImageDetailAuto. Auto is never written to the wire: the
// field is omitted so the server default applies. Decoding normalizes an
// absent detail back to Auto, so encode/decode round-trips are exact.
type ImageDetail string

const (
	// ImageDetailAuto lets the model decide the appropriate detail level.
	ImageDetailAuto ImageDetail = "auto"
	// ImageDetailLow uses fewer tokens for faster processing.
	ImageDetailLow ImageDetail = "low"
	// ImageDetailHigh uses more tokens for detailed analysis.
	ImageDetailHigh ImageDetail = "high"
)

// imageDetailWire is the explicit member table for ImageDetail. Decoding a
// value outside the table fails; it never defaults silently.
var imageDetailWire = map[ImageDetail]bool{
	ImageDetailAuto: true,
	ImageDetailLow:  true,
	ImageDetailHigh: true,
}

func validateImageDetail(d ImageDetail) error {
	if d == "" || imageDetailWire[d] {
		return nil
	}
	return fmt.Errorf("image detail %q: %w", string(d), core.ErrUnknownEnumValue)
}

// AnnotationType discriminates message text annotations.
type AnnotationType string

const (
	AnnotationTypeFileCitation AnnotationType = "file_citation"
	AnnotationTypeFilePath     AnnotationType = "file_path"
)

// Annotation marks a span of message text that references a file, either a
// citation produced by file search or a path produced by code interpreter.
type Annotation struct {
	Type         AnnotationType `json:"type"`
	Text         string         `json:"text"`
	StartIndex   int            `json:"start_index"`
	EndIndex     int            `json:"end_index"`
	FileCitation *FileCitation  `json:"file_citation,omitempty"`
	FilePath     *FilePathRef   `json:"file_path,omitempty"`
}

// FileCitation references the file a cited span came from.
type FileCitation struct {
	FileID string `json:"file_id"`
}

// FilePathRef references a file generated by a tool.
type FilePathRef struct {
	FileID string `json:"file_id"`
}

// TextContent is the text variant of the content union.
type TextContent struct {
	Value       string       `json:"value"`
	Annotations []Annotation `json:"annotations"`
}

// ImageFileContent references an uploaded file by ID.
type ImageFileContent struct {
	FileID string      `json:"file_id"`
	Detail ImageDetail `json:"detail,omitempty"`
}

// MarshalJSON applies the omission policy: Detail equal to the Auto default
// is dropped from the wire.
func (c ImageFileContent) MarshalJSON() ([]byte, error) {
	type wire ImageFileContent
	w := wire(c)
	if w.Detail == ImageDetailAuto {
		w.Detail = ""
	}
	return json.Marshal(w)
}

// UnmarshalJSON normalizes an absent detail to Auto and rejects wire values
// outside the documented table.
func (c *ImageFileContent) UnmarshalJSON(data []byte) error {
	type wire ImageFileContent
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := validateImageDetail(w.Detail); err != nil {
		return err
	}
	if w.Detail == "" {
		w.Detail = ImageDetailAuto
	}
	*c = ImageFileContent(w)
	return nil
}

// ImageURLContent references an image by HTTPS URL or data URL.
type ImageURLContent struct {
	URL    string      `json:"url"`
	Detail ImageDetail `json:"detail,omitempty"`
}

// MarshalJSON applies the omission policy: Detail equal to the Auto default
// is dropped from the wire.
func (c ImageURLContent) MarshalJSON() ([]byte, error) {
	type wire ImageURLContent
	w := wire(c)
	if w.Detail == ImageDetailAuto {
		w.Detail = ""
	}
	return json.Marshal(w)
}

// UnmarshalJSON normalizes an absent detail to Auto and rejects wire values
// outside the documented table.
func (c *ImageURLContent) UnmarshalJSON(data []byte) error {
	type wire ImageURLContent
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := validateImageDetail(w.Detail); err != nil {
		return err
	}
	if w.Detail == "" {
		w.Detail = ImageDetailAuto
	}
	*c = ImageURLContent(w)
	return nil
}

// ContentBlock is one unit of message content: a tagged union of text,
// image-file, image-url, and refusal variants. Exactly one variant is
// populated, named by Type.
//
// Decoding an unrecognized discriminator fails with
// core.ErrUnknownContentType; a recognized discriminator missing its
// required sub-fields fails with core.ErrMalformedContent. Content is never
// silently dropped. For every value produced by the constructors,
// decoding its encoding yields the identical value.
type ContentBlock struct {
	Type      ContentType
	Text      *TextContent
	ImageFile *ImageFileContent
	ImageURL  *ImageURLContent
	Refusal   *string
}

// NewTextContent creates a text content block.
func NewTextContent(value string) ContentBlock {
	return ContentBlock{
		Type: ContentTypeText,
		Text: &TextContent{Value: value, Annotations: []Annotation{}},
	}
}

// NewImageFileContent creates an image content block referencing an uploaded
// file.
func NewImageFileContent(fileID string, detail ImageDetail) ContentBlock {
	if detail == "" {
		detail = ImageDetailAuto
	}
	return ContentBlock{
		Type:      ContentTypeImageFile,
		ImageFile: &ImageFileContent{FileID: fileID, Detail: detail},
	}
}

// NewImageURLContent creates an image content block referencing a URL.
func NewImageURLContent(url string, detail ImageDetail) ContentBlock {
	if detail == "" {
		detail = ImageDetailAuto
	}
	return ContentBlock{
		Type:     ContentTypeImageURL,
		ImageURL: &ImageURLContent{URL: url, Detail: detail},
	}
}

// NewRefusalContent creates a refusal content block.
func NewRefusalContent(refusal string) ContentBlock {
	return ContentBlock{Type: ContentTypeRefusal, Refusal: &refusal}
}

// contentBlockWire is the flat wire shape with one sub-object per variant.
type contentBlockWire struct {
	Type      ContentType       `json:"type"`
	Text      *TextContent      `json:"text,omitempty"`
	ImageFile *ImageFileContent `json:"image_file,omitempty"`
	ImageURL  *ImageURLContent  `json:"image_url,omitempty"`
	Refusal   *string           `json:"refusal,omitempty"`
}

// MarshalJSON encodes the populated variant under its discriminator.
func (b ContentBlock) MarshalJSON() ([]byte, error) {
	w := contentBlockWire{Type: b.Type}

	switch b.Type {
	case ContentTypeText:
		if b.Text == nil {
			return nil, fmt.Errorf("text block has no text payload: %w", core.ErrMalformedContent)
		}
		w.Text = b.Text
	case ContentTypeImageFile:
		if b.ImageFile == nil {
			return nil, fmt.Errorf("image_file block has no image_file payload: %w", core.ErrMalformedContent)
		}
		w.ImageFile = b.ImageFile
	case ContentTypeImageURL:
		if b.ImageURL == nil {
			return nil, fmt.Errorf("image_url block has no image_url payload: %w", core.ErrMalformedContent)
		}
		w.ImageURL = b.ImageURL
	case ContentTypeRefusal:
		if b.Refusal == nil {
			return nil, fmt.Errorf("refusal block has no refusal payload: %w", core.ErrMalformedContent)
		}
		w.Refusal = b.Refusal
	default:
		return nil, fmt.Errorf("content block type %q: %w", string(b.Type), core.ErrUnknownContentType)
	}

	return json.Marshal(w)
}

// UnmarshalJSON reads the discriminator and dispatches to per-variant field
// extraction.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var w contentBlockWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	decoded := ContentBlock{Type: w.Type}

	switch w.Type {
	case ContentTypeText:
		if w.Text == nil {
			return fmt.Errorf("text block missing text object: %w", core.ErrMalformedContent)
		}
		decoded.Text = w.Text
	case ContentTypeImageFile:
		if w.ImageFile == nil || w.ImageFile.FileID == "" {
			return fmt.Errorf("image_file block missing file_id: %w", core.ErrMalformedContent)
		}
		decoded.ImageFile = w.ImageFile
	case ContentTypeImageURL:
		if w.ImageURL == nil || w.ImageURL.URL == "" {
			return fmt.Errorf("image_url block missing url: %w", core.ErrMalformedContent)
		}
		decoded.ImageURL = w.ImageURL
	case ContentTypeRefusal:
		if w.Refusal == nil {
			return fmt.Errorf("refusal block missing refusal text: %w", core.ErrMalformedContent)
		}
		decoded.Refusal = w.Refusal
	default:
		return fmt.Errorf("content block type %q: %w", string(w.Type), core.ErrUnknownContentType)
	}

	*b = decoded
	return nil
}

// Display returns a human-readable projection of the block: the text or
// refusal value, or a placeholder for image variants.
func (b ContentBlock) Display() string {
	switch b.Type {
	case ContentTypeText:
		if b.Text != nil {
			return b.Text.Value
		}
	case ContentTypeImageFile:
		if b.ImageFile != nil {
			return "[image file " + b.ImageFile.FileID + "]"
		}
	case ContentTypeImageURL:
		if b.ImageURL != nil {
			return "[image url " + b.ImageURL.URL + "]"
		}
	case ContentTypeRefusal:
		if b.Refusal != nil {
			return *b.Refusal
		}
	}
	return "[empty content]"
}

// PrintContent joins the human-readable projection of each block with
// newlines. For quick display only, not a wire format.
func PrintContent(blocks []ContentBlock) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Display()
	}
	return strings.Join(parts, "\n")
}
