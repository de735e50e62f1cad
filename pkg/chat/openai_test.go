package chat

import (
	"testing"
)

func TestToOpenAIMessagesCoversAllRoles(t *testing.T) {
	messages := []Message{
		SystemMessage("be helpful"),
		UserMessage("hi"),
		AssistantMessage("checking", []ToolCall{
			{ID: "c1", Name: "get_time", Arguments: `{"time_zone":"UTC"}`},
			{ID: "c2", Name: "get_weather", Arguments: `{"latitude":1,"longitude":2}`},
		}),
		ToolMessage("12:00", "c1"),
		AssistantMessage("done", nil),
	}

	out := toOpenAIMessages(messages)
	if len(out) != 5 {
		t.Fatalf("expected 5 params, got %d", len(out))
	}
	if out[0].OfSystem == nil {
		t.Fatal("first param should be a system message")
	}
	if out[1].OfUser == nil {
		t.Fatal("second param should be a user message")
	}
	if out[2].OfAssistant == nil {
		t.Fatal("third param should be an assistant message")
	}
	if got := len(out[2].OfAssistant.ToolCalls); got != 2 {
		t.Fatalf("expected 2 tool calls on the assistant turn, got %d", got)
	}
	if out[2].OfAssistant.ToolCalls[0].ID != "c1" {
		t.Fatalf("tool call id not preserved: %q", out[2].OfAssistant.ToolCalls[0].ID)
	}
	if out[3].OfTool == nil {
		t.Fatal("fourth param should be a tool message")
	}
	if out[4].OfAssistant == nil || len(out[4].OfAssistant.ToolCalls) != 0 {
		t.Fatal("fifth param should be a plain assistant message")
	}
}

func TestToOpenAIToolRendersStrictSchema(t *testing.T) {
	decl := ToolDeclaration{
		Name:        "get_weather",
		Description: "Get the current weather for a location",
		Params: []ToolParam{
			{Name: "latitude", Type: "number"},
			{Name: "longitude", Type: "number"},
		},
		Required: []string{"latitude", "longitude"},
	}

	tool := toOpenAITool(decl)
	if tool.Function.Name != "get_weather" {
		t.Fatalf("unexpected name: %q", tool.Function.Name)
	}

	properties, ok := tool.Function.Parameters["properties"].(map[string]any)
	if !ok {
		t.Fatalf("properties missing: %#v", tool.Function.Parameters)
	}
	for _, name := range []string{"latitude", "longitude"} {
		if _, present := properties[name]; !present {
			t.Fatalf("property %q missing", name)
		}
	}
	required, ok := tool.Function.Parameters["required"].([]string)
	if !ok || len(required) != 2 {
		t.Fatalf("unexpected required set: %#v", tool.Function.Parameters["required"])
	}
	if ap, ok := tool.Function.Parameters["additionalProperties"].(bool); !ok || ap {
		t.Fatal("strict schemas must set additionalProperties to false")
	}
}
