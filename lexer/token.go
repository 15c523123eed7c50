package lexer

import (
	"fmt"
)

// Token is one lexeme of flang source: a parenthesis, the quote mark, an
// identifier or a number. Line and column are 1-based and point to the
// first character.
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int
}

// NewToken creates a token, mostly useful to feed the parser directly
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// Type returns the token type
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column where the token starts
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the lexeme as written in the source, sign included for
// numbers. EOF tokens have no text.
func (t Token) Text() string {
	return t.lexeme
}

// Is reports whether the token has type tt
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// String formats the token as used by flang -tokens: type, lexeme and
// line:col.
func (t Token) String() string {
	if t.tt == TokenEOF {
		return fmt.Sprintf("%v at %d:%d", t.tt, t.line, t.col)
	}
	return fmt.Sprintf("%v %q at %d:%d", t.tt, t.lexeme, t.line, t.col)
}
