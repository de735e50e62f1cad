// Package agent runs the conversation loop: it owns the message history,
// drives the completion client, and dispatches requested tool calls until the
// model produces a final answer or the iteration cap trips.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ehartanto/toolchat/pkg/chat"
	"github.com/ehartanto/toolchat/pkg/logger"
	"github.com/ehartanto/toolchat/pkg/tools"
	"github.com/google/uuid"
)

// DefaultSystemPrompt seeds every conversation.
const DefaultSystemPrompt = "You are a helpful assistant."

// DefaultMaxIterations bounds completion/tool cycles within one user turn.
// The cap is a circuit breaker against runaway tool-call loops.
const DefaultMaxIterations = 5

// UI receives user-facing output from the loop. Implementations must not
// retain the ToolCall values passed to them.
type UI interface {
	AssistantSays(text string)
	ToolRequest(call chat.ToolCall)
	ToolResult(name, output string)
	// Diagnostic reports a recoverable per-tool-call error.
	Diagnostic(msg string)
	// Warn reports a session-level condition such as an abandoned turn.
	Warn(msg string)
}

// NopUI discards all output.
type NopUI struct{}

func (NopUI) AssistantSays(string)      {}
func (NopUI) ToolRequest(chat.ToolCall) {}
func (NopUI) ToolResult(string, string) {}
func (NopUI) Diagnostic(string)         {}
func (NopUI) Warn(string)               {}

// Loop is the orchestration core for one interactive session. It is not safe
// for concurrent use; the history is owned exclusively by the loop.
type Loop struct {
	completer     chat.Completer
	registry      *tools.Registry
	maxIterations int
	systemPrompt  string
	history       []chat.Message

	ui        UI
	log       logger.Logger
	verbose   bool
	sessionID string
}

// New builds a Loop over the given completer and registry.
func New(completer chat.Completer, registry *tools.Registry, opts ...Option) (*Loop, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	if registry == nil {
		return nil, errors.New("tool registry is required")
	}

	l := &Loop{
		completer:     completer,
		registry:      registry,
		maxIterations: DefaultMaxIterations,
		systemPrompt:  DefaultSystemPrompt,
		ui:            NopUI{},
		log:           logger.NopLogger{},
		sessionID:     uuid.NewString(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.history = []chat.Message{chat.SystemMessage(l.systemPrompt)}

	logger.Debug(l.verbose, l.log, "session start", map[string]any{
		"session_id":     l.sessionID,
		"max_iterations": l.maxIterations,
	})
	return l, nil
}

// Run processes one user input: it appends the user message, then alternates
// completion requests and tool dispatch until the model answers without tool
// calls or the iteration cap is reached. Appended messages are retained even
// when the turn is abandoned.
func (l *Loop) Run(ctx context.Context, userInput string) error {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return errors.New("user input is required")
	}

	l.history = append(l.history, chat.UserMessage(userInput))

	for iteration := 1; iteration <= l.maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.debugf("iteration %d/%d: %d messages", iteration, l.maxIterations, len(l.history))

		completion, err := l.completer.Complete(ctx, l.history)
		if err != nil {
			// Turn over; everything appended so far stays for the next one.
			return err
		}

		if completion.Content != "" {
			l.ui.AssistantSays(completion.Content)
		}

		if len(completion.ToolCalls) == 0 {
			if completion.Content != "" {
				l.history = append(l.history, chat.AssistantMessage(completion.Content, nil))
			}
			l.debugf("turn done after %d iteration(s)", iteration)
			return nil
		}

		// One assistant message carries both the content and the calls so the
		// tool_call_ids stay correlated with the results appended below.
		l.history = append(l.history, chat.AssistantMessage(completion.Content, completion.ToolCalls))
		l.dispatchToolCalls(ctx, completion.ToolCalls)
	}

	l.ui.Warn(fmt.Sprintf("Reached maximum number of iterations (%d); giving up on this turn.", l.maxIterations))
	logger.Warn(l.log, "turn abandoned", map[string]any{
		"session_id":     l.sessionID,
		"max_iterations": l.maxIterations,
	})
	return nil
}

// dispatchToolCalls executes the calls strictly in the order received. Every
// call gets a tool message appended, even when dispatch fails: the completion
// service expects one result per issued call, so failures come back as error
// text under the original id. The user still sees a per-kind diagnostic.
func (l *Loop) dispatchToolCalls(ctx context.Context, calls []chat.ToolCall) {
	for _, call := range calls {
		l.ui.ToolRequest(call)

		output, err := l.registry.Dispatch(ctx, call.Name, call.Arguments)
		if err != nil {
			l.ui.Diagnostic(diagnosticFor(err))
			output = "Error: " + err.Error()
			logger.Error(l.log, "tool dispatch failed", map[string]any{
				"session_id": l.sessionID,
				"tool":       call.Name,
				"error":      err.Error(),
			})
		} else {
			l.ui.ToolResult(call.Name, output)
		}

		l.history = append(l.history, chat.ToolMessage(output, call.ID))
	}
}

// diagnosticFor renders a one-line, kind-specific diagnostic for a dispatch
// failure.
func diagnosticFor(err error) string {
	var toolErr *tools.ToolError
	if !errors.As(err, &toolErr) {
		return "Error executing tool call: " + err.Error()
	}
	switch toolErr.Kind {
	case tools.KindArgumentParse:
		return "Error parsing tool arguments: " + toolErr.Error()
	case tools.KindMissingArgument:
		return "Missing required argument: " + toolErr.Arg
	case tools.KindUnknownTool:
		return "Unknown tool: " + toolErr.Tool
	default:
		return "Error executing tool call: " + toolErr.Error()
	}
}

// Reset clears the history back to the system prompt.
func (l *Loop) Reset() {
	l.history = []chat.Message{chat.SystemMessage(l.systemPrompt)}
	logger.Debug(l.verbose, l.log, "history reset", map[string]any{"session_id": l.sessionID})
}

// History returns a copy of the conversation so far.
func (l *Loop) History() []chat.Message {
	out := make([]chat.Message, len(l.history))
	copy(out, l.history)
	return out
}

func (l *Loop) debugf(format string, args ...any) {
	logger.Debugf(l.verbose, l.log, format, args...)
}
