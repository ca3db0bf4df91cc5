package route

import (
	"errors"
	"fmt"
)

// ErrInvalidTool is matched by errors.Is for any InvalidToolError.
var ErrInvalidTool = errors.New("invalid tool")

// errNoAdapter reports routing to a tool with no configured backend.
var errNoAdapter = errors.New("no backend adapter configured")

// ErrExecutionFailed is matched by errors.Is for any ExecutionError.
var ErrExecutionFailed = errors.New("tool execution failed")

// InvalidToolError reports a tool label outside the closed enumeration.
type InvalidToolError struct {
	Tool Tool
}

func (e *InvalidToolError) Error() string {
	return fmt.Sprintf("invalid tool %q: must be one of %v", string(e.Tool), Tools())
}

// Is makes errors.Is(err, ErrInvalidTool) work.
func (e *InvalidToolError) Is(target error) bool { return target == ErrInvalidTool }

// ExecutionError wraps a backend adapter failure. It is distinct from an
// empty result: the fallback chain is driven by emptiness only, so an
// ExecutionError always aborts the call.
type ExecutionError struct {
	Tool Tool
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing tool %q: %v", string(e.Tool), e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrExecutionFailed) work.
func (e *ExecutionError) Is(target error) bool { return target == ErrExecutionFailed }
