package parser

import (
	"fmt"
	"strconv"

	"github.com/xiam/flang/ast"
	"github.com/xiam/flang/lexer"
)

const (
	literalTrue  = "true"
	literalFalse = "false"
	literalNull  = "null"

	quoteForm = "quote"

	// MaxNesting is the deepest a list or quote can be nested.
	MaxNesting = 1000
)

// TokenEOF is returned by the parser once all tokens are consumed
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

// Parser builds a program out of a sequence of tokens
type Parser struct {
	tokens []lexer.Token
	offset int
	depth  int

	lastTok *lexer.Token
}

// New creates a parser that reads the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes all the tokens and returns the top-level elements.
func (p *Parser) Parse() (ast.Program, error) {
	program := ast.Program{}
	for !p.peek().Is(lexer.TokenEOF) {
		node, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		program = append(program, node)
	}
	return program, nil
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) peek() *lexer.Token {
	if p.offset >= len(p.tokens) {
		if p.lastTok != nil && p.lastTok.Is(lexer.TokenEOF) {
			return p.lastTok
		}
		return TokenEOF
	}
	return &p.tokens[p.offset]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if p.offset < len(p.tokens) {
		p.offset++
	}
	p.lastTok = tok
	return tok
}

func (p *Parser) parseElement() (*ast.Element, error) {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenOpenList:
		return p.parseList()
	case lexer.TokenQuote:
		return p.parseQuote()
	case lexer.TokenIdentifier:
		return p.parseIdentifier()
	case lexer.TokenInteger:
		return p.parseInteger()
	case lexer.TokenReal:
		return p.parseReal()
	case lexer.TokenEOF:
		return nil, parserError(ErrUnexpectedEOF, tok)
	}

	return nil, parserError(ErrUnexpectedToken, tok)
}

func (p *Parser) nest() error {
	if p.depth >= MaxNesting {
		return parserError(ErrTooDeep, p.curr())
	}
	p.depth++
	return nil
}

func (p *Parser) unnest() {
	p.depth--
}

func (p *Parser) parseList() (*ast.Element, error) {
	open := p.curr()
	if err := p.nest(); err != nil {
		return nil, err
	}
	defer p.unnest()
	elements := []*ast.Element{}

	for {
		switch tok := p.peek(); tok.Type() {
		case lexer.TokenCloseList:
			p.next()
			return ast.NewList(open, elements...), nil
		case lexer.TokenEOF:
			return nil, parserError(ErrUnexpectedEOF, tok)
		}

		node, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, node)
	}
}

// parseQuote turns 'x into (quote x)
func (p *Parser) parseQuote() (*ast.Element, error) {
	mark := p.curr()
	if err := p.nest(); err != nil {
		return nil, err
	}
	defer p.unnest()

	node, err := p.parseElement()
	if err != nil {
		return nil, err
	}

	return ast.NewList(mark, ast.NewIdentifier(mark, quoteForm), node), nil
}

func (p *Parser) parseIdentifier() (*ast.Element, error) {
	tok := p.curr()

	switch tok.Text() {
	case literalTrue:
		return ast.True, nil
	case literalFalse:
		return ast.False, nil
	case literalNull:
		return ast.Null, nil
	}

	return ast.NewIdentifier(tok, tok.Text()), nil
}

func (p *Parser) parseInteger() (*ast.Element, error) {
	tok := p.curr()

	i64, err := strconv.ParseInt(tok.Text(), 10, 64)
	if err != nil {
		return nil, parserError(fmt.Errorf("%w: %v", ErrInvalidLiteral, err), tok)
	}

	return ast.NewInteger(tok, i64), nil
}

func (p *Parser) parseReal() (*ast.Element, error) {
	tok := p.curr()

	f64, err := strconv.ParseFloat(tok.Text(), 64)
	if err != nil {
		return nil, parserError(fmt.Errorf("%w: %v", ErrInvalidLiteral, err), tok)
	}

	return ast.NewReal(tok, f64), nil
}

// Parse tokenizes and parses the given source
func Parse(in []byte) (ast.Program, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}
