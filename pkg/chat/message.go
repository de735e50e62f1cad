// Package chat defines the provider-agnostic conversation model and the
// completion client used by the agent loop.
package chat

import (
	"context"
	"fmt"
)

// Role is the role for a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a function invocation requested by the completion service.
// It is created by the service and consumed exactly once by the loop.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // raw JSON text, parsed per the tool's declared schema
}

// String renders the call for diagnostics.
func (t ToolCall) String() string {
	return fmt.Sprintf("%s(%s)", t.Name, t.Arguments)
}

// Message is one entry in a conversation. Conversations are append-only;
// an appended Message is never mutated.
type Message struct {
	Role    Role
	Content string
	// ToolCalls is set only on assistant messages that request tool use.
	ToolCalls []ToolCall
	// ToolCallID correlates a tool message to the assistant ToolCall it answers.
	ToolCallID string
}

// SystemMessage builds a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant message carrying content and any tool calls.
func AssistantMessage(content string, calls []ToolCall) Message {
	return Message{Role: RoleAssistant, Content: content, ToolCalls: calls}
}

// ToolMessage builds a tool result message for the given call id.
func ToolMessage(content, toolCallID string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: toolCallID}
}

// Completion is the service's reply to one completion request: optional
// content plus an ordered, possibly empty, list of tool calls.
type Completion struct {
	Content   string
	ToolCalls []ToolCall
}

// Completer sends a conversation to a completion service and returns exactly
// one Completion. Implementations must not mutate the input messages and must
// report failures as *ServiceError rather than returning an empty result.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (Completion, error)
}

// ServiceError reports a failed completion request.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return "completion request failed: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
