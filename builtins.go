package flang

import (
	"fmt"

	"github.com/xiam/flang/ast"
	"github.com/xiam/flang/lexer"
)

// builtinFunc receives the unevaluated arguments of a call, each builtin
// decides when and whether to evaluate them.
type builtinFunc func(ev *Evaluator, args []*ast.Element) (*ast.Element, error)

func newRegistry() map[string]builtinFunc {
	return map[string]builtinFunc{
		// special forms
		"quote":  formQuote,
		"setq":   formSetq,
		"cond":   formCond,
		"while":  formWhile,
		"return": formReturn,
		"break":  formBreak,
		"func":   formFunc(false),
		"macro":  formFunc(true),
		"lambda": formLambda,
		"prog":   formProg,
		"eval":   formEval,

		// lists
		"head": strict("head", 1, builtinHead),
		"tail": strict("tail", 1, builtinTail),
		"cons": strict("cons", 2, builtinCons),

		// predicates
		"isint":  strict("isint", 1, isType(ast.TypeInteger)),
		"isreal": strict("isreal", 1, isType(ast.TypeReal)),
		"isbool": strict("isbool", 1, isType(ast.TypeBoolean)),
		"isnull": strict("isnull", 1, builtinIsNull),
		"isatom": strict("isatom", 1, builtinIsAtom),
		"islist": strict("islist", 1, isType(ast.TypeList)),

		// arithmetic
		"plus":   strict("plus", 2, arithmetic("plus", add)),
		"minus":  strict("minus", 2, arithmetic("minus", sub)),
		"times":  strict("times", 2, arithmetic("times", mul)),
		"divide": strict("divide", 2, arithmetic("divide", div)),

		// comparison
		"less":      strict("less", 2, comparison("less", less)),
		"lesseq":    strict("lesseq", 2, comparison("lesseq", lessEq)),
		"greater":   strict("greater", 2, comparison("greater", greater)),
		"greatereq": strict("greatereq", 2, comparison("greatereq", greaterEq)),

		// logic
		"and": strict("and", 2, logic("and", and)),
		"or":  strict("or", 2, logic("or", or)),
		"xor": strict("xor", 2, logic("xor", xor)),
		"not": strict("not", 1, builtinNot),

		"equal":    strict("equal", 2, equality("equal", false)),
		"nonequal": strict("nonequal", 2, equality("nonequal", true)),

		// io
		"print":   strict("print", 1, builtinPrint("")),
		"println": strict("println", 1, builtinPrint("\n")),
		"assert":  strict("assert", 1, builtinAssert),
	}
}

// strict wraps builtins that take a fixed number of evaluated arguments.
func strict(name string, arity int, fn builtinFunc) builtinFunc {
	return func(ev *Evaluator, argNodes []*ast.Element) (*ast.Element, error) {
		if err := expectArity(name, argNodes, arity, arity); err != nil {
			return nil, err
		}
		args, err := ev.evalArgs(argNodes)
		if err != nil {
			return nil, err
		}
		return fn(ev, args)
	}
}

func expectArity(name string, args []*ast.Element, min int, max int) error {
	if len(args) >= min && len(args) <= max {
		return nil
	}
	if min == max {
		return fmt.Errorf("%w: %s expects %d arguments, got %d", ErrArityMismatch, name, min, len(args))
	}
	return fmt.Errorf("%w: %s expects %d to %d arguments, got %d", ErrArityMismatch, name, min, max, len(args))
}

func typeMismatch(name string, i int, expected string, got *ast.Element) error {
	return fmt.Errorf("%w: %s expects argument %d to be %s, got %v", ErrTypeMismatch, name, i+1, expected, got.Type())
}

func expectInt(name string, args []*ast.Element, i int) (int64, error) {
	if !args[i].Is(ast.TypeInteger) {
		return 0, typeMismatch(name, i, "integer", args[i])
	}
	return args[i].Int(), nil
}

func expectBool(name string, args []*ast.Element, i int) (bool, error) {
	if !args[i].Is(ast.TypeBoolean) {
		return false, typeMismatch(name, i, "boolean", args[i])
	}
	return args[i].Bool(), nil
}

// expectSeq accepts lists and null, which stands for the empty list.
func expectSeq(name string, args []*ast.Element, i int) ([]*ast.Element, error) {
	switch args[i].Type() {
	case ast.TypeList:
		return args[i].List(), nil
	case ast.TypeNull:
		return nil, nil
	}
	return nil, typeMismatch(name, i, "list", args[i])
}

// expectName returns the name of an identifier that can be bound.
func expectName(name string, args []*ast.Element, i int) (string, error) {
	if !args[i].Is(ast.TypeIdentifier) {
		return "", typeMismatch(name, i, "identifier", args[i])
	}
	id := args[i].Name()
	if lexer.IsKeyword(id) {
		return "", fmt.Errorf("%w: %s can't bind %q", ErrReservedKeyword, name, id)
	}
	return id, nil
}
