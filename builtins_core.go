package flang

import (
	"fmt"

	"github.com/xiam/flang/ast"
)

func builtinHead(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	list, err := expectSeq("head", args, 0)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return ast.Null, nil
	}
	return list[0], nil
}

func builtinTail(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	list, err := expectSeq("tail", args, 0)
	if err != nil {
		return nil, err
	}
	if len(list) <= 1 {
		return ast.Null, nil
	}
	return ast.List(list[1:]...), nil
}

func builtinCons(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	list, err := expectSeq("cons", args, 1)
	if err != nil {
		return nil, err
	}
	elements := make([]*ast.Element, 0, len(list)+1)
	elements = append(elements, args[0])
	elements = append(elements, list...)
	return ast.List(elements...), nil
}

func isType(et ast.ElementType) builtinFunc {
	return func(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
		return ast.NewBoolean(args[0].Is(et)), nil
	}
}

// builtinIsNull is also true for the empty list.
func builtinIsNull(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	v := args[0]
	return ast.NewBoolean(v.Is(ast.TypeNull) || (v.IsList() && len(v.List()) == 0)), nil
}

func builtinIsAtom(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	return ast.NewBoolean(args[0].IsAtom()), nil
}

func add(a, b int64) (int64, error) { return a + b, nil }
func sub(a, b int64) (int64, error) { return a - b, nil }
func mul(a, b int64) (int64, error) { return a * b, nil }

func div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func arithmetic(name string, op func(a, b int64) (int64, error)) builtinFunc {
	return func(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
		a, b, err := intOperands(name, args)
		if err != nil {
			return nil, err
		}
		v, err := op(a, b)
		if err != nil {
			return nil, fmt.Errorf("%w: (%s %d %d)", err, name, a, b)
		}
		return ast.Int(v), nil
	}
}

func less(a, b int64) bool      { return a < b }
func lessEq(a, b int64) bool    { return a <= b }
func greater(a, b int64) bool   { return a > b }
func greaterEq(a, b int64) bool { return a >= b }

func comparison(name string, op func(a, b int64) bool) builtinFunc {
	return func(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
		a, b, err := intOperands(name, args)
		if err != nil {
			return nil, err
		}
		return ast.NewBoolean(op(a, b)), nil
	}
}

func intOperands(name string, args []*ast.Element) (int64, int64, error) {
	a, err := expectInt(name, args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := expectInt(name, args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func and(a, b bool) bool { return a && b }
func or(a, b bool) bool  { return a || b }
func xor(a, b bool) bool { return a != b }

func logic(name string, op func(a, b bool) bool) builtinFunc {
	return func(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
		a, err := expectBool(name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectBool(name, args, 1)
		if err != nil {
			return nil, err
		}
		return ast.NewBoolean(op(a, b)), nil
	}
}

func builtinNot(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	a, err := expectBool("not", args, 0)
	if err != nil {
		return nil, err
	}
	return ast.NewBoolean(!a), nil
}

// equality compares integers and booleans. Values of different types are
// never equal.
func equality(name string, negate bool) builtinFunc {
	return func(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
		for i := range args {
			if !args[i].Is(ast.TypeInteger) && !args[i].Is(ast.TypeBoolean) {
				return nil, typeMismatch(name, i, "integer or boolean", args[i])
			}
		}
		a, b := args[0], args[1]
		eq := false
		if a.Type() == b.Type() {
			if a.Is(ast.TypeInteger) {
				eq = a.Int() == b.Int()
			} else {
				eq = a.Bool() == b.Bool()
			}
		}
		return ast.NewBoolean(eq != negate), nil
	}
}

func builtinPrint(suffix string) builtinFunc {
	return func(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
		if err := ev.write(ast.Encode(args[0]) + suffix); err != nil {
			return nil, err
		}
		return ast.Null, nil
	}
}

func builtinAssert(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	ok, err := expectBool("assert", args, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAssertionFailed
	}
	return ast.True, nil
}
