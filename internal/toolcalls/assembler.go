// Package toolcalls assembles streamed tool-call fragments into complete calls.
package toolcalls

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrInvalidJSON is returned when assembled tool arguments are not valid JSON.
var ErrInvalidJSON = errors.New("tool call arguments invalid json")

// Fragment represents one streaming tool-call delta fragment. Streaming
// responses interleave fragments across calls; Index ties fragments to the
// call they extend.
type Fragment struct {
	Index     int
	ID        string
	Name      string
	Arguments string
}

// Call is a fully assembled tool call with validated JSON arguments.
type Call struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

type assemblingCall struct {
	id   string
	name string
	args strings.Builder
}

// Assembler accumulates fragmented tool calls and emits canonical calls.
// An Assembler is single-use and not safe for concurrent use; each stream
// owns its own.
type Assembler struct {
	calls map[int]*assemblingCall
}

// NewAssembler creates a tool-call assembler.
func NewAssembler() *Assembler {
	return &Assembler{calls: make(map[int]*assemblingCall)}
}

// AddFragment applies a streaming fragment, creating a call entry if needed.
// Later non-empty ID/Name fields win; argument text concatenates in arrival
// order.
func (a *Assembler) AddFragment(f Fragment) {
	call, ok := a.calls[f.Index]
	if !ok {
		call = &assemblingCall{}
		a.calls[f.Index] = call
	}

	if f.ID != "" {
		call.id = f.ID
	}
	if f.Name != "" {
		call.name = f.Name
	}
	if f.Arguments != "" {
		call.args.WriteString(f.Arguments)
	}
}

// Finalize validates and returns assembled calls in index order.
// Calls with no accumulated arguments get an empty JSON object, matching the
// wire convention for zero-argument functions.
func (a *Assembler) Finalize() ([]Call, error) {
	if len(a.calls) == 0 {
		return nil, nil
	}

	maxIndex := 0
	for idx := range a.calls {
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	result := make([]Call, 0, len(a.calls))
	for i := 0; i <= maxIndex; i++ {
		call, ok := a.calls[i]
		if !ok {
			continue
		}

		args := call.args.String()
		if args == "" {
			args = "{}"
		}
		if !json.Valid([]byte(args)) {
			return nil, ErrInvalidJSON
		}

		result = append(result, Call{
			ID:        call.id,
			Name:      call.name,
			Arguments: json.RawMessage(args),
		})
	}

	return result, nil
}
