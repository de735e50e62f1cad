package main

import (
	"flag"
	"os"
	"strings"

	"github.com/ehartanto/toolchat/pkg/config"
	"github.com/joho/godotenv"
)

// parseCLIConfig layers configuration: defaults, then environment, then the
// optional YAML file, then explicitly set flags.
func parseCLIConfig(args []string) (config.Config, error) {
	_ = godotenv.Load()

	defaults := config.DefaultConfig()
	fs := flag.NewFlagSet("toolchat", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to an optional YAML config file")
	maxIterations := fs.Int("max_iterations", defaults.MaxIterations, "Max completion/tool cycles per user turn")
	commandTimeout := fs.Duration("command_timeout", defaults.CommandTimeout, "Timeout for one bash command")
	verbose := fs.Bool("verbose", defaults.Verbose, "Verbose logging to stderr")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := defaults
	cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	cfg.BaseURL = strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if model := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); model != "" {
		cfg.Model = model
	}

	if *configPath != "" {
		fc, err := config.LoadFile(*configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fc.Apply(cfg)
	}

	// Flags win over the file, but only when set explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max_iterations":
			cfg.MaxIterations = *maxIterations
		case "command_timeout":
			cfg.CommandTimeout = *commandTimeout
		case "verbose":
			cfg.Verbose = *verbose
		}
	})

	return config.Normalize(cfg), nil
}
