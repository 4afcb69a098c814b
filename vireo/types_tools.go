package vireo

import "encoding/json"

// ToolType discriminates tool definitions.
type ToolType string

const (
	ToolTypeFunction        ToolType = "function"
	ToolTypeCodeInterpreter ToolType = "code_interpreter"
	ToolTypeFileSearch      ToolType = "file_search"
)

// Tool declares a tool the model may call. Function tools carry a
// definition; built-in tools (code_interpreter, file_search) are bare types.
type Tool struct {
	Type     ToolType            `json:"type"`
	Function *FunctionDefinition `json:"function,omitempty"`
}

// FunctionDefinition describes a callable function and its JSON-schema
// parameters.
type FunctionDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Strict      *bool           `json:"strict,omitempty"`
}

// NewFunctionTool declares a function tool.
func NewFunctionTool(name, description string, parameters json.RawMessage) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: &FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// NewCodeInterpreterTool declares the built-in code interpreter tool.
func NewCodeInterpreterTool() Tool {
	return Tool{Type: ToolTypeCodeInterpreter}
}

// NewFileSearchTool declares the built-in file search tool.
func NewFileSearchTool() Tool {
	return Tool{Type: ToolTypeFileSearch}
}

// ToolCall represents a tool invocation requested by the model.
// Arguments are raw JSON bytes, preserved without reformatting.
type ToolCall struct {
	ID        string          `json:"id"`
	Type      ToolType        `json:"type"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolOutput carries the result of executing one tool call back to a run.
type ToolOutput struct {
	ToolCallID string `json:"tool_call_id"`
	Output     string `json:"output"`
}

// ToolResources holds configuration for built-in tools.
type ToolResources struct {
	CodeInterpreter *CodeInterpreterResources `json:"code_interpreter,omitempty"`
	FileSearch      *FileSearchResources      `json:"file_search,omitempty"`
}

// CodeInterpreterResources lists files available to code interpreter.
type CodeInterpreterResources struct {
	FileIDs []string `json:"file_ids,omitempty"`
}

// FileSearchResources lists vector stores available to file search.
type FileSearchResources struct {
	VectorStoreIDs []string `json:"vector_store_ids,omitempty"`
}
