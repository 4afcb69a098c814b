package vireo

import (
	"encoding/json"
	"fmt"

	"github.com/vireo-ai/vireo-go/core"
)

// ResponseFormatType names the output-format directive.
type ResponseFormatType string

const (
	// ResponseFormatAuto is the server default. It is never written to the
	// wire: Ptr() maps it to an absent response_format field.
	ResponseFormatAuto ResponseFormatType = "auto"
	// ResponseFormatText requests plain text output.
	ResponseFormatText ResponseFormatType = "text"
	// ResponseFormatJSON requests syntactically valid JSON output.
	ResponseFormatJSON ResponseFormatType = "json_object"
	// ResponseFormatJSONSchema requests output conforming to a caller
	// supplied JSON schema; it uses the nested object wire form.
	ResponseFormatJSONSchema ResponseFormatType = "json_schema"
)

// responseFormatWire is the explicit bidirectional member table for the
// bare-string forms. Mapping is by table, never by ordinal position.
var responseFormatWire = map[ResponseFormatType]bool{
	ResponseFormatAuto: true,
	ResponseFormatText: true,
	ResponseFormatJSON: true,
}

// JSONSchemaSpec describes a named JSON schema for structured output.
type JSONSchemaSpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema,omitempty"`
	Strict      *bool           `json:"strict,omitempty"`
}

// ResponseFormat directs whether model output must be plain text or
// structured JSON. Auto/Text/JSON encode as bare strings; JSONSchema encodes
// as {"type":"json_schema","json_schema":{...}}.
//
// Request fields are *ResponseFormat with omitempty. Use Ptr() to populate
// them: it applies the omission policy by returning nil for Auto, so the
// field disappears from the payload and the server default applies.
type ResponseFormat struct {
	Type       ResponseFormatType
	JSONSchema *JSONSchemaSpec // set only when Type is ResponseFormatJSONSchema
}

// NewResponseFormat creates a bare format directive.
func NewResponseFormat(t ResponseFormatType) ResponseFormat {
	return ResponseFormat{Type: t}
}

// NewJSONSchemaFormat creates a structured-output directive with a schema.
func NewJSONSchemaFormat(spec JSONSchemaSpec) ResponseFormat {
	return ResponseFormat{Type: ResponseFormatJSONSchema, JSONSchema: &spec}
}

// Ptr returns the pointer to place on a request, applying the omit-default
// policy: Auto yields nil so the response_format key is absent entirely.
func (f ResponseFormat) Ptr() *ResponseFormat {
	if f.Type == ResponseFormatAuto {
		return nil
	}
	clone := f
	return &clone
}

// responseFormatObjectWire is the nested object form of the union.
type responseFormatObjectWire struct {
	Type       ResponseFormatType `json:"type"`
	JSONSchema *JSONSchemaSpec    `json:"json_schema,omitempty"`
}

// MarshalJSON encodes Text and JSON as bare strings and JSONSchema as the
// nested object form.
func (f ResponseFormat) MarshalJSON() ([]byte, error) {
	switch f.Type {
	case ResponseFormatText, ResponseFormatJSON, ResponseFormatAuto:
		return json.Marshal(string(f.Type))
	case ResponseFormatJSONSchema:
		if f.JSONSchema == nil {
			return nil, fmt.Errorf("json_schema format missing schema spec: %w", core.ErrMalformedContent)
		}
		return json.Marshal(responseFormatObjectWire{Type: f.Type, JSONSchema: f.JSONSchema})
	default:
		return nil, fmt.Errorf("response format %q: %w", string(f.Type), core.ErrUnknownResponseFormat)
	}
}

// UnmarshalJSON decodes either the bare-string or the object form. A wire
// string outside the documented table fails; it never defaults silently.
func (f *ResponseFormat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t := ResponseFormatType(s)
		if !responseFormatWire[t] {
			return fmt.Errorf("response format %q: %w", s, core.ErrUnknownResponseFormat)
		}
		*f = ResponseFormat{Type: t}
		return nil
	}

	var w responseFormatObjectWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case ResponseFormatJSONSchema:
		if w.JSONSchema == nil {
			return fmt.Errorf("json_schema format missing schema spec: %w", core.ErrMalformedContent)
		}
		*f = ResponseFormat{Type: w.Type, JSONSchema: w.JSONSchema}
	case ResponseFormatText, ResponseFormatJSON, ResponseFormatAuto:
		// Some servers emit the object form for bare types.
		*f = ResponseFormat{Type: w.Type}
	default:
		return fmt.Errorf("response format %q: %w", string(w.Type), core.ErrUnknownResponseFormat)
	}
	return nil
}
