package vireo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vireo-ai/vireo-go/core"
)

// ToolChoiceMode is the wire form of the non-function tool-choice selectors.
type ToolChoiceMode string

const (
	ToolChoiceAuto     ToolChoiceMode = "auto"
	ToolChoiceNone     ToolChoiceMode = "none"
	ToolChoiceRequired ToolChoiceMode = "required"
	// toolChoiceFunction is the object form's discriminator; it never
	// appears as a bare string on the wire.
	toolChoiceFunction ToolChoiceMode = "function"
)

// toolChoiceModeWire is the explicit member table for the bare-string forms.
var toolChoiceModeWire = map[ToolChoiceMode]bool{
	ToolChoiceAuto:     true,
	ToolChoiceNone:     true,
	ToolChoiceRequired: true,
}

// ToolChoice directs whether and which tool the model must invoke.
// Auto, None, and Required encode as bare strings; a named function encodes
// as {"type":"function","function":{"name":...}}.
//
// An absent tool choice is represented by a nil *ToolChoice on the request,
// which is distinct from Auto: absent lets the server default apply.
type ToolChoice struct {
	Mode         ToolChoiceMode
	FunctionName string // set only when Mode is the function form
}

// NewToolChoice creates a mode selector (auto, none, or required).
func NewToolChoice(mode ToolChoiceMode) *ToolChoice {
	return &ToolChoice{Mode: mode}
}

// NewFunctionToolChoice forces the model to call the named function.
func NewFunctionToolChoice(name string) *ToolChoice {
	return &ToolChoice{Mode: toolChoiceFunction, FunctionName: name}
}

// IsFunction reports whether the selector names a specific function.
func (t *ToolChoice) IsFunction() bool {
	return t != nil && t.Mode == toolChoiceFunction
}

// ResolveToolChoice constructs a selector from the declared tools and an
// optional caller-supplied hint.
//
//   - No declared tools: returns nil, meaning the tool_choice field is
//     absent from the request entirely (not Auto).
//   - Blank hint: Auto.
//   - Hint exactly "auto", "none", or "required" (case-sensitive): that mode.
//   - Otherwise the hint is matched against declared function names: an
//     exact name match wins first; failing that, the first declared function
//     whose name contains the hint is selected.
//   - No match: fails with core.ErrToolNotFound carrying the hint.
func ResolveToolChoice(tools []Tool, hint string) (*ToolChoice, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	if hint == "" {
		return NewToolChoice(ToolChoiceAuto), nil
	}
	if toolChoiceModeWire[ToolChoiceMode(hint)] {
		return NewToolChoice(ToolChoiceMode(hint)), nil
	}

	// Exact names take priority so an exact match can never be shadowed by
	// an earlier substring hit.
	for _, t := range tools {
		if t.Function != nil && t.Function.Name == hint {
			return NewFunctionToolChoice(t.Function.Name), nil
		}
	}
	for _, t := range tools {
		if t.Function != nil && strings.Contains(t.Function.Name, hint) {
			return NewFunctionToolChoice(t.Function.Name), nil
		}
	}

	return nil, fmt.Errorf("tool choice hint %q matches no declared function: %w", hint, core.ErrToolNotFound)
}

// toolChoiceFunctionWire is the object form of the union.
type toolChoiceFunctionWire struct {
	Type     ToolChoiceMode `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

// MarshalJSON encodes modes as bare strings and named functions as the
// nested object form.
func (t ToolChoice) MarshalJSON() ([]byte, error) {
	if t.Mode == toolChoiceFunction {
		if t.FunctionName == "" {
			return nil, fmt.Errorf("function tool choice missing name: %w", core.ErrMalformedContent)
		}
		var w toolChoiceFunctionWire
		w.Type = toolChoiceFunction
		w.Function.Name = t.FunctionName
		return json.Marshal(w)
	}
	if !toolChoiceModeWire[t.Mode] {
		return nil, fmt.Errorf("tool choice mode %q: %w", string(t.Mode), core.ErrUnknownEnumValue)
	}
	return json.Marshal(string(t.Mode))
}

// UnmarshalJSON decodes either the bare-string or the object form.
func (t *ToolChoice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		mode := ToolChoiceMode(s)
		if !toolChoiceModeWire[mode] {
			return fmt.Errorf("tool choice %q: %w", s, core.ErrUnknownEnumValue)
		}
		*t = ToolChoice{Mode: mode}
		return nil
	}

	var w toolChoiceFunctionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type != toolChoiceFunction {
		return fmt.Errorf("tool choice object type %q: %w", string(w.Type), core.ErrUnknownEnumValue)
	}
	if w.Function.Name == "" {
		return fmt.Errorf("function tool choice missing name: %w", core.ErrMalformedContent)
	}
	*t = ToolChoice{Mode: toolChoiceFunction, FunctionName: w.Function.Name}
	return nil
}
