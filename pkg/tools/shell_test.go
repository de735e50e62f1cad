// Tests for the bash execution tool.
package tools

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestShellToolReturnsTrimmedStdout(t *testing.T) {
	tool := NewShellTool(0)

	out, err := tool.Execute(context.Background(), map[string]any{"command": "echo '  hello  '"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "hello" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestShellToolNonZeroExitSoftFails(t *testing.T) {
	tool := NewShellTool(0)

	out, err := tool.Execute(context.Background(), map[string]any{
		"command": `echo "no such file" >&2; exit 1`,
	})
	if err != nil {
		t.Fatalf("non-zero exit must not be a hard error, got: %v", err)
	}
	if !strings.HasPrefix(out, "Error executing command:") {
		t.Fatalf("output should carry the error marker: %q", out)
	}
	if !strings.Contains(out, "no such file") {
		t.Fatalf("output should carry stderr text: %q", out)
	}
}

func TestShellToolTimeout(t *testing.T) {
	tool := NewShellTool(100 * time.Millisecond)

	out, err := tool.Execute(context.Background(), map[string]any{"command": "sleep 5"})
	if err != nil {
		t.Fatalf("timeout must not be a hard error, got: %v", err)
	}
	if !strings.Contains(out, "timed out") {
		t.Fatalf("output should report the timeout: %q", out)
	}
}
