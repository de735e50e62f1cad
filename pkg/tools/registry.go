// Package tools declares the callable tools and dispatches tool calls by name.
package tools

import (
	"context"
	"encoding/json"

	"github.com/ehartanto/toolchat/pkg/chat"
	"github.com/ehartanto/toolchat/pkg/logger"
)

// Tool is a host function callable by the model. Execute receives the parsed
// argument record and returns text; the returned error is reserved for
// unexpected failures, tools that soft-fail return the error text as output.
type Tool interface {
	Declaration() chat.ToolDeclaration
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Registry maps tool names to declarations and implementations. It has no
// side effects of its own; everything observable happens in the dispatched
// implementation.
type Registry struct {
	tools   map[string]Tool
	decls   []chat.ToolDeclaration
	log     logger.Logger
	verbose bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger injects a logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithVerbose enables debug logging of dispatches.
func WithVerbose(v bool) Option {
	return func(r *Registry) {
		r.verbose = v
	}
}

// NewRegistry builds an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tools: make(map[string]Tool),
		log:   logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a tool. Later registrations with the same name replace
// earlier ones; declaration order follows first registration.
func (r *Registry) Register(t Tool) {
	decl := t.Declaration()
	if _, exists := r.tools[decl.Name]; !exists {
		r.decls = append(r.decls, decl)
	}
	r.tools[decl.Name] = t
	logger.Debugf(r.verbose, r.log, "registered tool: %s", decl.Name)
}

// Declarations returns all registered declarations in registration order,
// stable across calls.
func (r *Registry) Declarations() []chat.ToolDeclaration {
	return r.decls
}

// Dispatch looks up the named tool, validates the JSON-encoded arguments
// against the declared required set, and invokes the implementation. Every
// failure is reported as a *ToolError carrying its kind.
func (r *Registry) Dispatch(ctx context.Context, name, argsJSON string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &ToolError{Kind: KindExecution, Tool: name, Err: err}
	}

	tool, ok := r.tools[name]
	if !ok {
		return "", &ToolError{Kind: KindUnknownTool, Tool: name}
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return "", &ToolError{Kind: KindArgumentParse, Tool: name, Err: err}
	}

	for _, required := range tool.Declaration().Required {
		if _, present := args[required]; !present {
			return "", &ToolError{Kind: KindMissingArgument, Tool: name, Arg: required}
		}
	}

	logger.Debugf(r.verbose, r.log, "dispatching tool: %s", name)
	output, err := tool.Execute(ctx, args)
	if err != nil {
		return "", &ToolError{Kind: KindExecution, Tool: name, Err: err}
	}
	return output, nil
}
