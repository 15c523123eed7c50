package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/flang/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidLiteral  = errors.New("invalid literal")
	ErrTooDeep         = errors.New("nesting too deep")
)

// Error is returned when the parser finds a token it can't accept. Parsing
// stops at the first error.
type Error struct {
	Token *lexer.Token
	Err   error
}

func (e *Error) Error() string {
	line, col := e.Token.Pos()
	if e.Token.Is(lexer.TokenEOF) {
		return fmt.Sprintf("%v at %d:%d", e.Err, line, col)
	}
	return fmt.Sprintf("%v: %q at %d:%d", e.Err, e.Token.Text(), line, col)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func parserError(err error, tok *lexer.Token) error {
	return &Error{Token: tok, Err: err}
}
