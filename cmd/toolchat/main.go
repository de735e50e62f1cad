// Package main wires configuration, the tool registry, and the OpenAI
// completion client into an interactive terminal chat loop.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ehartanto/toolchat/pkg/agent"
	"github.com/ehartanto/toolchat/pkg/chat"
	"github.com/ehartanto/toolchat/pkg/config"
	"github.com/ehartanto/toolchat/pkg/logger"
	"github.com/ehartanto/toolchat/pkg/tools"
)

func main() {
	cfg, err := parseCLIConfig(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var log logger.Logger = logger.NopLogger{}
	if cfg.Verbose {
		log = logger.NewWriterLogger(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry := tools.NewRegistry(tools.WithLogger(log), tools.WithVerbose(cfg.Verbose))
	registry.Register(tools.NewWeatherTool())
	registry.Register(tools.NewClockTool())
	registry.Register(tools.NewShellTool(cfg.CommandTimeout))

	client := chat.NewClient(chat.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	}, registry.Declarations())

	loop, err := agent.New(client, registry,
		agent.WithMaxIterations(cfg.MaxIterations),
		agent.WithUI(consoleUI{out: os.Stdout}),
		agent.WithLogger(log),
		agent.WithVerbose(cfg.Verbose),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runREPL(ctx, loop, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
