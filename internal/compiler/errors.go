package compiler

import (
	"fmt"

	"github.com/vk/blueprintgo/internal/model"
)

// ValidationError names one violated compile-time invariant.
type ValidationError string

const (
	ErrUnknownPin         ValidationError = "link refers to unknown pin"
	ErrCrossGraphLink     ValidationError = "link crosses graph partitions"
	ErrDirectionMismatch  ValidationError = "pin direction mismatch"
	ErrTypeMismatch       ValidationError = "pin type mismatch"
	ErrMultipleExecInputs ValidationError = "multiple exec links into one input"
	ErrMultipleExecOuts   ValidationError = "multiple exec links out of one output"
	ErrMultipleDataInputs ValidationError = "multiple data links into one input"
	ErrExecCycle          ValidationError = "exec flow cycle detected"
	ErrBrokenExecLink     ValidationError = "broken exec link"
	ErrDuplicateVariable  ValidationError = "duplicate variable name"
	ErrUnknownVariable    ValidationError = "unknown variable"
)

func (e ValidationError) Error() string { return string(e) }

// CompileError is the single failure type Compile returns. Node and Pin
// locate the offending graph element when known (0 when not), so a caller
// can highlight the failure without parsing the message.
type CompileError struct {
	Kind ValidationError
	Node model.NodeID
	Pin  model.PinID
}

func newError(kind ValidationError) *CompileError {
	return &CompileError{Kind: kind}
}

func (e *CompileError) withNode(id model.NodeID) *CompileError {
	e.Node = id
	return e
}

func (e *CompileError) withPin(id model.PinID) *CompileError {
	e.Pin = id
	return e
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile failed: %s (node=%d pin=%d)", e.Kind, e.Node, e.Pin)
}

// Unwrap lets callers branch on the rule kind with errors.Is.
func (e *CompileError) Unwrap() error { return e.Kind }
