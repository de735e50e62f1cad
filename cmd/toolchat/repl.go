package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ehartanto/toolchat/pkg/agent"
	"github.com/ehartanto/toolchat/pkg/chat"
	"github.com/fatih/color"
)

var (
	promptColor     = color.New(color.FgBlue)
	assistantColor  = color.New(color.FgCyan)
	toolCallColor   = color.New(color.FgGreen)
	toolResultColor = color.New(color.FgMagenta)
	errorColor      = color.New(color.FgRed)
)

// consoleUI renders loop output to the terminal, mirroring the per-role
// coloring of the interleaved diagnostic and assistant text.
type consoleUI struct {
	out io.Writer
}

func (u consoleUI) AssistantSays(text string) {
	_, _ = fmt.Fprintf(u.out, "%s %s\n", assistantColor.Sprint("Assistant:"), text)
}

func (u consoleUI) ToolRequest(call chat.ToolCall) {
	_, _ = fmt.Fprintf(u.out, "%s %s\n", toolCallColor.Sprint("Tool Request:"), call)
}

func (u consoleUI) ToolResult(name, output string) {
	_, _ = fmt.Fprintf(u.out, "%s: %s\n", toolResultColor.Sprint(name), output)
}

func (u consoleUI) Diagnostic(msg string) {
	_, _ = fmt.Fprintln(u.out, errorColor.Sprint(msg))
}

func (u consoleUI) Warn(msg string) {
	_, _ = fmt.Fprintln(u.out, errorColor.Sprint(msg))
}

// runREPL drives the line-oriented session: one line of user text per turn,
// `quit` or `exit` (case-insensitive) to leave, slash commands for the rest.
// Interrupt cancels ctx and ends the whole session.
func runREPL(ctx context.Context, loop *agent.Loop, in io.Reader, out io.Writer) error {
	if loop == nil {
		return errors.New("conversation loop is required")
	}

	lines := make(chan string)
	var scanErr error
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr = scanner.Err()
		close(lines)
	}()

	printWelcome(out)

	for {
		_, _ = promptColor.Fprint(out, "> ")

		var input string
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, errorColor.Sprint("Exiting..."))
			return nil
		case line, ok := <-lines:
			if !ok {
				if scanErr != nil {
					return fmt.Errorf("read input: %w", scanErr)
				}
				return nil
			}
			input = strings.TrimSpace(line)
		}

		if input == "" {
			continue
		}
		if strings.EqualFold(input, "quit") || strings.EqualFold(input, "exit") {
			_, _ = fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if strings.HasPrefix(input, "/") {
			if shouldQuit := handleCommand(input, loop, out); shouldQuit {
				return nil
			}
			continue
		}

		if err := loop.Run(ctx, input); err != nil {
			if errors.Is(err, context.Canceled) {
				_, _ = fmt.Fprintln(out, errorColor.Sprint("Exiting..."))
				return nil
			}
			_, _ = fmt.Fprintf(out, "%s %v\n", errorColor.Sprint("Error:"), err)
		}
		_, _ = fmt.Fprintln(out)
	}
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "=== toolchat ===")
	_, _ = fmt.Fprintln(out, "Type a prompt for the AI and press Enter ('quit' to exit). Commands:")
	_, _ = fmt.Fprintln(out, "  /help  - Show this help message")
	_, _ = fmt.Fprintln(out, "  /clear - Clear conversation history")
	_, _ = fmt.Fprintln(out, "  /quit  - Exit the program")
	_, _ = fmt.Fprintln(out)
}

// handleCommand processes a slash command; it returns true when the session
// should end.
func handleCommand(input string, loop *agent.Loop, out io.Writer) bool {
	switch strings.ToLower(input) {
	case "/help", "/h":
		printWelcome(out)
		return false
	case "/clear", "/c":
		loop.Reset()
		_, _ = fmt.Fprintln(out, "Conversation history cleared.")
		_, _ = fmt.Fprintln(out)
		return false
	case "/quit", "/exit", "/q":
		_, _ = fmt.Fprintln(out, "Goodbye!")
		return true
	default:
		_, _ = fmt.Fprintf(out, "Unknown command: %s. Type /help for available commands.\n\n", input)
		return false
	}
}
