package flang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xiam/flang/lexer"
	"github.com/xiam/flang/parser"
)

// Runtime errors. Use errors.Is to classify an error returned by the
// evaluator.
var (
	ErrUndefinedVariable     = errors.New("undefined variable")
	ErrReservedKeyword       = errors.New("reserved keyword")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrArityMismatch         = errors.New("arity mismatch")
	ErrNotCallable           = errors.New("not callable")
	ErrAssertionFailed       = errors.New("assertion failed")
	ErrBreakOutsideLoop      = errors.New("break outside of loop")
	ErrReturnOutsideFunction = errors.New("return outside of function")
	ErrStackOverflow         = errors.New("stack overflow")
	ErrDivisionByZero        = errors.New("division by zero")
)

// signal is a non-local transfer of control. It travels up the evaluator
// like an error until a function call (return) or a loop (break) stops it.
type signal uint8

const (
	sigReturn signal = iota + 1
	sigBreak
)

func (s signal) Error() string {
	switch s {
	case sigReturn:
		return "return"
	case sigBreak:
		return "break"
	}
	return "signal"
}

// FormatError renders tokenizer and parser errors as a snippet of src with
// a caret under the offending column. Other errors are returned as is.
func FormatError(err error, src []byte) string {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return snippet(string(src), "TOKENIZE ERROR", lexErr.Line, lexErr.Col, err.Error())
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		line, col := parseErr.Token.Pos()
		return snippet(string(src), "PARSE ERROR", line, col, err.Error())
	}

	return err.Error()
}

// snippet shows at most one line before the error, the line itself and a
// caret. Coordinates are 1-based and clamped to the source.
func snippet(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^", strings.Repeat(" ", col-1))
	return b.String()
}
