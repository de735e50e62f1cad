package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/ehartanto/toolchat/pkg/chat"
	"github.com/mitchellh/mapstructure"
)

// ClockTool reports the current wall-clock time in a named IANA zone.
type ClockTool struct {
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewClockTool builds a ClockTool on the system clock.
func NewClockTool() *ClockTool {
	return &ClockTool{}
}

// Declaration implements Tool.
func (t *ClockTool) Declaration() chat.ToolDeclaration {
	return chat.ToolDeclaration{
		Name:        "get_time",
		Description: "Get the current time for a timezone (e.g., 'America/New_York', 'Europe/London')",
		Params: []chat.ToolParam{
			{Name: "time_zone", Type: "string"},
		},
		Required: []string{"time_zone"},
	}
}

type timeRequest struct {
	TimeZone string `mapstructure:"time_zone"`
}

// Execute implements Tool. An unrecognized zone is a soft failure: the error
// text goes back as the tool result so the model can see it and react.
func (t *ClockTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req timeRequest
	if err := mapstructure.Decode(args, &req); err != nil {
		return "", fmt.Errorf("decode arguments: %w", err)
	}

	loc, err := time.LoadLocation(req.TimeZone)
	if err != nil {
		return fmt.Sprintf("Error: Unknown timezone '%s'. Please use a valid timezone name.", req.TimeZone), nil
	}

	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	return now().In(loc).Format("2006-01-02 15:04:05 MST"), nil
}
