package flang

import (
	"errors"
	"fmt"

	"github.com/xiam/flang/ast"
	"github.com/xiam/flang/lexer"
)

func formQuote(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("quote", args, 1, 1); err != nil {
		return nil, err
	}
	return args[0], nil
}

func formSetq(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("setq", args, 2, 2); err != nil {
		return nil, err
	}
	name, err := expectName("setq", args, 0)
	if err != nil {
		return nil, err
	}
	value, err := ev.eval(args[1])
	if err != nil {
		return nil, err
	}
	ev.st.Set(name, value)
	return value, nil
}

func formCond(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("cond", args, 2, 3); err != nil {
		return nil, err
	}
	ok, err := ev.evalCondition("cond", args[0])
	if err != nil {
		return nil, err
	}
	if ok {
		return ev.eval(args[1])
	}
	if len(args) == 3 {
		return ev.eval(args[2])
	}
	return ast.Null, nil
}

func formWhile(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("while", args, 2, 2); err != nil {
		return nil, err
	}
	for {
		ok, err := ev.evalCondition("while", args[0])
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if _, err := ev.eval(args[1]); err != nil {
			if errors.Is(err, sigBreak) {
				break
			}
			return nil, err
		}
	}
	return ast.Null, nil
}

// formReturn stages the value in the result register and unwinds up to the
// closest function call.
func formReturn(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("return", args, 1, 1); err != nil {
		return nil, err
	}
	value, err := ev.eval(args[0])
	if err != nil {
		return nil, err
	}
	ev.result = value
	return nil, sigReturn
}

func formBreak(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("break", args, 0, 0); err != nil {
		return nil, err
	}
	return nil, sigBreak
}

// formFunc defines a named function, or a macro when isMacro is set:
// (func name (args...) body)
func formFunc(isMacro bool) builtinFunc {
	form := "func"
	if isMacro {
		form = "macro"
	}
	return func(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
		if err := expectArity(form, args, 3, 3); err != nil {
			return nil, err
		}
		name, err := expectName(form, args, 0)
		if err != nil {
			return nil, err
		}
		formals, err := formalArgs(form, args, 1)
		if err != nil {
			return nil, err
		}
		ev.st.Set(name, ast.NewFunction(&ast.Function{
			Name:    name,
			Args:    formals,
			Body:    args[2],
			IsMacro: isMacro,
		}))
		return ast.Ident(name), nil
	}
}

func formLambda(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("lambda", args, 2, 2); err != nil {
		return nil, err
	}
	formals, err := formalArgs("lambda", args, 0)
	if err != nil {
		return nil, err
	}
	return ast.NewFunction(&ast.Function{
		Name: "lambda",
		Args: formals,
		Body: args[1],
	}), nil
}

// formProg evaluates body in a new scope where every local starts as null:
// (prog (locals...) body)
func formProg(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("prog", args, 2, 2); err != nil {
		return nil, err
	}
	locals, err := formalArgs("prog", args, 0)
	if err != nil {
		return nil, err
	}

	if err := ev.pushScope(); err != nil {
		return nil, err
	}
	defer ev.popScope()

	for _, name := range locals {
		ev.st.Set(name, ast.Null)
	}
	return ev.eval(args[1])
}

func formEval(ev *Evaluator, args []*ast.Element) (*ast.Element, error) {
	if err := expectArity("eval", args, 1, 1); err != nil {
		return nil, err
	}
	value, err := ev.eval(args[0])
	if err != nil {
		return nil, err
	}

	if err := ev.enter("eval"); err != nil {
		return nil, err
	}
	defer ev.leave()

	return ev.eval(value)
}

func (ev *Evaluator) evalCondition(form string, node *ast.Element) (bool, error) {
	value, err := ev.eval(node)
	if err != nil {
		return false, err
	}
	if !value.Is(ast.TypeBoolean) {
		return false, fmt.Errorf("%w: %s expects a boolean condition, got %v", ErrTypeMismatch, form, value.Type())
	}
	return value.Bool(), nil
}

// formalArgs reads a list of bindable names, like the argument list of a
// function.
func formalArgs(form string, args []*ast.Element, i int) ([]string, error) {
	if !args[i].Is(ast.TypeList) {
		return nil, typeMismatch(form, i, "list", args[i])
	}
	list := args[i].List()
	names := make([]string, 0, len(list))
	for _, el := range list {
		if !el.Is(ast.TypeIdentifier) {
			return nil, fmt.Errorf("%w: %s expects identifiers in argument %d, got %v", ErrTypeMismatch, form, i+1, el.Type())
		}
		if lexer.IsKeyword(el.Name()) {
			return nil, fmt.Errorf("%w: %s can't bind %q", ErrReservedKeyword, form, el.Name())
		}
		names = append(names, el.Name())
	}
	return names, nil
}
