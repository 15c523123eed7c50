package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenList             // Open parenthesis: "("
	TokenCloseList            // Close parenthesis: ")"
	TokenQuote                // Quote mark: "'"
	TokenIdentifier           // Letter followed by letters or digits
	TokenInteger              // Optionally signed digits
	TokenReal                 // Optionally signed digits, dot, digits
	TokenEOF                  // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenQuote:     []rune{'\''},
}

var (
	letters    = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	digits     = []rune("0123456789")
	whitespace = []rune(" \f\t\r\n\v")
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenList:   "open_list",
	TokenCloseList:  "close_list",
	TokenQuote:      "quote",
	TokenIdentifier: "identifier",
	TokenInteger:    "integer",
	TokenReal:       "real",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// keywords are lexed as identifiers, the evaluator gives them meaning.
var keywords = map[string]struct{}{
	"quote":  {},
	"setq":   {},
	"func":   {},
	"lambda": {},
	"prog":   {},
	"cond":   {},
	"while":  {},
	"return": {},
	"break":  {},
}

// IsKeyword returns true if name is a reserved word of the language
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

func isTokenType(tt TokenType) func(r rune) bool {
	return isOneOf(tokenValues[tt])
}

func isOneOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isArithmeticSign(r rune) bool {
	return r == '+' || r == '-'
}
