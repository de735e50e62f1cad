package chat

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ToolParam describes one parameter in a tool's schema.
type ToolParam struct {
	Name        string
	Type        string // JSON schema type, e.g. "number" or "string"
	Description string
}

// ToolDeclaration is the static metadata advertised to the completion
// service for one callable tool. Declared once at startup, immutable after.
type ToolDeclaration struct {
	Name        string
	Description string
	Params      []ToolParam
	Required    []string
}

// Config holds the fixed settings for the OpenAI-backed Completer. There is
// no package-level client; callers construct one explicitly from resolved
// configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client sends conversations to the OpenAI chat completions API.
type Client struct {
	client openai.Client
	model  openai.ChatModel
	tools  []openai.ChatCompletionToolParam
}

// NewClient builds a Client advertising the given tool declarations.
func NewClient(cfg Config, decls []ToolDeclaration) *Client {
	opts := []option.RequestOption{}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	toolParams := make([]openai.ChatCompletionToolParam, 0, len(decls))
	for _, decl := range decls {
		toolParams = append(toolParams, toOpenAITool(decl))
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  openai.ChatModel(cfg.Model),
		tools:  toolParams,
	}
}

// Complete sends the conversation plus the tool declarations and returns one
// structured result. The input slice is never mutated.
func (c *Client) Complete(ctx context.Context, messages []Message) (Completion, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: toOpenAIMessages(messages),
		Tools:    c.tools,
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return Completion{}, &ServiceError{Err: err}
	}
	if len(completion.Choices) == 0 {
		return Completion{}, &ServiceError{Err: errors.New("empty completion choices")}
	}

	message := completion.Choices[0].Message
	result := Completion{Content: message.Content}
	for _, call := range message.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	return result, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleUser:
			out = append(out, openai.UserMessage(msg.Content))
		case RoleAssistant:
			if len(msg.ToolCalls) == 0 {
				out = append(out, openai.AssistantMessage(msg.Content))
				continue
			}
			out = append(out, assistantToolCallMessage(msg))
		case RoleTool:
			out = append(out, openai.ToolMessage(msg.Content, msg.ToolCallID))
		}
	}
	return out
}

// assistantToolCallMessage rebuilds an assistant turn that requested tool
// calls, preserving the original call ids so later tool messages correlate.
func assistantToolCallMessage(msg Message) openai.ChatCompletionMessageParamUnion {
	calls := make([]openai.ChatCompletionMessageToolCallParam, 0, len(msg.ToolCalls))
	for _, call := range msg.ToolCalls {
		calls = append(calls, openai.ChatCompletionMessageToolCallParam{
			ID: call.ID,
			Function: openai.ChatCompletionMessageToolCallFunctionParam{
				Name:      call.Name,
				Arguments: call.Arguments,
			},
		})
	}

	assistant := openai.ChatCompletionAssistantMessageParam{ToolCalls: calls}
	if msg.Content != "" {
		assistant.Content.OfString = openai.String(msg.Content)
	}
	return openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant}
}

// toOpenAITool renders a declaration as a strict function schema.
func toOpenAITool(decl ToolDeclaration) openai.ChatCompletionToolParam {
	properties := map[string]any{}
	for _, p := range decl.Params {
		prop := map[string]any{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		properties[p.Name] = prop
	}
	required := decl.Required
	if required == nil {
		required = []string{}
	}

	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        decl.Name,
			Description: openai.String(decl.Description),
			Strict:      openai.Bool(true),
			Parameters: openai.FunctionParameters{
				"type":                 "object",
				"properties":           properties,
				"required":             required,
				"additionalProperties": false,
			},
		},
	}
}

var _ Completer = (*Client)(nil)
