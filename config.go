package flang

import (
	"io"
	"log"
)

const defaultMaxCallDepth = 100

// Option configures an Evaluator
type Option func(*Evaluator)

// WithOutput sets the stream print and println write to. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(ev *Evaluator) {
		ev.out = w
	}
}

// WithMaxCallDepth limits how many function calls, macro expansions and
// evals can be nested.
func WithMaxCallDepth(n int) Option {
	return func(ev *Evaluator) {
		if n > 0 {
			ev.maxDepth = n
		}
	}
}

// WithMaxScopes limits the size of the scope stack, global scope included.
func WithMaxScopes(n int) Option {
	return func(ev *Evaluator) {
		if n > 0 {
			ev.maxScopes = n
		}
	}
}

// WithLogger enables tracing of calls and scopes.
func WithLogger(l *log.Logger) Option {
	return func(ev *Evaluator) {
		if l != nil {
			ev.log = l
		}
	}
}
