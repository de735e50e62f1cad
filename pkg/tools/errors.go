package tools

import "fmt"

// ErrorKind classifies a dispatch failure so the loop can react per kind
// instead of catching a generic error.
type ErrorKind string

const (
	KindUnknownTool     ErrorKind = "unknown_tool"
	KindArgumentParse   ErrorKind = "argument_parse"
	KindMissingArgument ErrorKind = "missing_argument"
	KindExecution       ErrorKind = "execution_failure"
)

// ToolError reports a failed tool dispatch. Soft tool failures (error text
// returned as a normal result) are conversational content and never reach
// this type.
type ToolError struct {
	Kind ErrorKind
	Tool string
	// Arg is the offending argument name for KindMissingArgument.
	Arg string
	Err error
}

func (e *ToolError) Error() string {
	switch e.Kind {
	case KindUnknownTool:
		return fmt.Sprintf("unknown tool: %s", e.Tool)
	case KindArgumentParse:
		return fmt.Sprintf("%s: invalid arguments: %v", e.Tool, e.Err)
	case KindMissingArgument:
		return fmt.Sprintf("%s: missing required argument: %s", e.Tool, e.Arg)
	case KindExecution:
		return fmt.Sprintf("%s: execution failed: %v", e.Tool, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Tool, e.Err)
	}
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
