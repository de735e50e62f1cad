package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ehartanto/toolchat/pkg/chat"
	"github.com/mitchellh/mapstructure"
)

// defaultCommandTimeout bounds a single bash invocation.
const defaultCommandTimeout = 60 * time.Second

// ShellTool executes a command under bash with output capture.
type ShellTool struct {
	// Timeout bounds one command; zero means defaultCommandTimeout.
	Timeout time.Duration
}

// NewShellTool builds a ShellTool with the given timeout.
func NewShellTool(timeout time.Duration) *ShellTool {
	return &ShellTool{Timeout: timeout}
}

// Declaration implements Tool.
func (t *ShellTool) Declaration() chat.ToolDeclaration {
	return chat.ToolDeclaration{
		Name:        "run_command_in_bash",
		Description: "Run a command in Bash",
		Params: []chat.ToolParam{
			{Name: "command", Type: "string"},
		},
		Required: []string{"command"},
	}
}

type shellRequest struct {
	Command string `mapstructure:"command"`
}

// Execute implements Tool. Command failure is a soft failure: a non-zero
// exit, a start failure, or a timeout all come back as error text so the
// model can retry or adapt. The returned error is only for argument decoding.
func (t *ShellTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req shellRequest
	if err := mapstructure.Decode(args, &req); err != nil {
		return "", fmt.Errorf("decode arguments: %w", err)
	}

	timeout := t.Timeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "bash", "-c", req.Command)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return strings.TrimSpace(stdout.String()), nil
	}

	// Check the deadline first: a killed child also surfaces as an ExitError.
	var exitErr *exec.ExitError
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return fmt.Sprintf("Error executing command: timed out after %s", timeout), nil
	case errors.As(err, &exitErr):
		return "Error executing command: " + strings.TrimSpace(stderr.String()), nil
	default:
		return "Error executing command: " + err.Error(), nil
	}
}
