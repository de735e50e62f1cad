package agent

import "github.com/ehartanto/toolchat/pkg/logger"

// Option configures optional Loop behavior.
type Option func(*Loop)

// WithMaxIterations sets the per-turn completion/tool cycle cap.
func WithMaxIterations(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.maxIterations = n
		}
	}
}

// WithSystemPrompt replaces the default system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(l *Loop) {
		if prompt != "" {
			l.systemPrompt = prompt
		}
	}
}

// WithUI injects the output sink.
func WithUI(ui UI) Option {
	return func(l *Loop) {
		if ui != nil {
			l.ui = ui
		}
	}
}

// WithLogger injects a logger.
func WithLogger(log logger.Logger) Option {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// WithVerbose enables debug logging.
func WithVerbose(v bool) Option {
	return func(l *Loop) {
		l.verbose = v
	}
}
