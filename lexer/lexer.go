package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/scanner"
)

// ErrUnexpectedSymbol is returned when the input contains a character that
// can't start or continue any token.
var ErrUnexpectedSymbol = errors.New("unexpected symbol")

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
	isQuote     = isTokenType(TokenQuote)

	isLetter     = isOneOf(letters)
	isDigit      = isOneOf(digits)
	isWhitespace = isOneOf(whitespace)
)

const (
	commentStart = ';'
	newLine      = '\n'
	decimalPoint = '.'
)

// Error describes a tokenization failure and its position
type Error struct {
	Text string
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %q at %d:%d", ErrUnexpectedSymbol, e.Text, e.Line, e.Col)
}

func (e *Error) Unwrap() error {
	return ErrUnexpectedSymbol
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:     s,
		tokens: []Token{},
		buf:    []rune{},
		line:   1,
		col:    1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens  []Token
	lastErr error

	buf []rune

	line, col           int
	startLine, startCol int
}

// Tokens returns the tokens found by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input and splits it into tokens. The last token is
// always of type TokenEOF unless an error is returned.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return lx.lastErr
	}

	lx.start()
	lx.emit(TokenEOF)

	return nil
}

func (lx *Lexer) start() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	})
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	if r == newLine {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	lx.start()

	p := lx.peek()
	switch {
	case p == scanner.EOF:
		return nil

	case isWhitespace(p):
		return lexSkip(lexDefaultState)
	case p == commentStart:
		return lexComment

	case isOpenList(p):
		return lexEmit(TokenOpenList)
	case isCloseList(p):
		return lexEmit(TokenCloseList)
	case isQuote(p):
		return lexEmit(TokenQuote)

	case isLetter(p):
		return lexIdentifier
	case isDigit(p), isArithmeticSign(p):
		return lexNumber

	default:
		lx.next()
		return lexStateError(lx.unexpected())
	}
}

func lexSkip(next lexState) lexState {
	return func(lx *Lexer) lexState {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		return next
	}
}

func lexComment(lx *Lexer) lexState {
	for {
		r, err := lx.next()
		if err != nil {
			return lexStateError(err)
		}
		if r == newLine {
			return lexDefaultState
		}
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexIdentifier(lx *Lexer) lexState {
	for p := lx.peek(); isLetter(p) || isDigit(p); p = lx.peek() {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(TokenIdentifier)
	return lexDefaultState
}

func lexNumber(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	if isArithmeticSign(r) && !isDigit(lx.peek()) {
		return lexStateError(lx.unexpected())
	}

	if err := lx.collectDigits(); err != nil {
		return lexStateError(err)
	}

	if lx.peek() != decimalPoint {
		lx.emit(TokenInteger)
		return lexDefaultState
	}

	// got a point, this means this is a floating point number
	lx.next()
	if !isDigit(lx.peek()) {
		return lexStateError(lx.unexpected())
	}
	if err := lx.collectDigits(); err != nil {
		return lexStateError(err)
	}

	lx.emit(TokenReal)
	return lexDefaultState
}

func (lx *Lexer) collectDigits() error {
	for isDigit(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return err
		}
	}
	return nil
}

func (lx *Lexer) unexpected() error {
	return &Error{
		Text: string(lx.buf),
		Line: lx.startLine,
		Col:  lx.startCol,
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(bytes.NewReader(in))

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	return lx.Tokens(), nil
}
