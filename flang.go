// Package flang implements a small Lisp: every expression is an element of
// the ast package, special forms are ordinary lists dispatched at
// evaluation time and scopes are dynamic.
//
//	(func fact (n)
//		(cond (lesseq n 1) (return 1) (return (times n (fact (minus n 1))))))
//	(print (fact 5))
package flang

import (
	"io"
)

// Run evaluates src with a fresh evaluator that prints to out.
func Run(src []byte, out io.Writer, opts ...Option) error {
	ev := New(append(opts, WithOutput(out))...)
	_, err := ev.EvalSource(src)
	return err
}
