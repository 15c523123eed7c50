package flang

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/xiam/flang/ast"
	"github.com/xiam/flang/parser"
)

// Evaluator walks the elements of a program. It is not safe for concurrent
// use.
type Evaluator struct {
	st       *symbolTable
	builtins map[string]builtinFunc

	// result holds the value of the last evaluated element. return stores
	// its value here before unwinding.
	result *ast.Element

	depth     int
	maxDepth  int
	maxScopes int

	out io.Writer
	log *log.Logger
}

// New creates an evaluator with a global scope holding all builtins.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{
		builtins:  newRegistry(),
		maxDepth:  defaultMaxCallDepth,
		maxScopes: defaultMaxScopes,
		out:       os.Stdout,
		log:       log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(ev)
	}
	ev.Reset()
	return ev
}

// Reset drops every user definition.
func (ev *Evaluator) Reset() {
	ev.st = newSymbolTable(ev.maxScopes)
	for name := range ev.builtins {
		ev.st.Set(name, ast.NewBuiltin(name))
	}
	ev.result = ast.Null
	ev.depth = 0
}

// Result returns the value of the last evaluated element.
func (ev *Evaluator) Result() *ast.Element {
	return ev.result
}

// Globals returns the sorted names bound in the global scope.
func (ev *Evaluator) Globals() []string {
	return ev.st.globals()
}

// EvalSource parses and evaluates src.
func (ev *Evaluator) EvalSource(src []byte) (*ast.Element, error) {
	program, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return ev.EvalProgram(program)
}

// EvalProgram evaluates the top-level elements in order and returns the
// value of the last one. The first error aborts the program.
func (ev *Evaluator) EvalProgram(program ast.Program) (*ast.Element, error) {
	ev.result = ast.Null
	for i := range program {
		if _, err := ev.Eval(program[i]); err != nil {
			return nil, err
		}
	}
	return ev.result, nil
}

// Eval evaluates a single top-level element.
func (ev *Evaluator) Eval(node *ast.Element) (*ast.Element, error) {
	value, err := ev.eval(node)
	switch {
	case errors.Is(err, sigReturn):
		return nil, ErrReturnOutsideFunction
	case errors.Is(err, sigBreak):
		return nil, ErrBreakOutsideLoop
	case err != nil:
		return nil, err
	}
	return value, nil
}

func (ev *Evaluator) eval(node *ast.Element) (*ast.Element, error) {
	switch node.Type() {
	case ast.TypeIdentifier:
		value, ok := ev.st.Get(node.Name())
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedVariable, node.Name())
		}
		ev.result = value

	case ast.TypeList:
		value, err := ev.evalList(node)
		if err != nil {
			return nil, err
		}
		ev.result = value

	default:
		ev.result = node
	}

	return ev.result, nil
}

func (ev *Evaluator) evalList(node *ast.Element) (*ast.Element, error) {
	list := node.List()
	if len(list) == 0 {
		return ast.Null, nil
	}

	head := list[0]
	callee, err := ev.eval(head)
	if err != nil {
		return nil, err
	}

	if callee.IsCallable() {
		return ev.apply(callee, list[1:])
	}

	// a list that starts with a form which is not a function groups
	// expressions: ((setq x 1) (print x))
	if head.IsList() {
		return ev.evalSequence(callee, list[1:])
	}

	return nil, fmt.Errorf("%w: %s", ErrNotCallable, ast.Encode(head))
}

func (ev *Evaluator) evalSequence(first *ast.Element, rest []*ast.Element) (*ast.Element, error) {
	value := first
	for i := range rest {
		var err error
		if value, err = ev.eval(rest[i]); err != nil {
			return nil, err
		}
	}
	return value, nil
}

func (ev *Evaluator) evalArgs(nodes []*ast.Element) ([]*ast.Element, error) {
	args := make([]*ast.Element, 0, len(nodes))
	for i := range nodes {
		value, err := ev.eval(nodes[i])
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	return args, nil
}

func (ev *Evaluator) apply(callee *ast.Element, args []*ast.Element) (*ast.Element, error) {
	switch callee.Type() {
	case ast.TypeBuiltin:
		fn, ok := ev.builtins[callee.Name()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotCallable, ast.Encode(callee))
		}
		return fn(ev, args)

	case ast.TypeFunction:
		fn := callee.Function()
		if len(args) != len(fn.Args) {
			return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrArityMismatch, fn.Name, len(fn.Args), len(args))
		}
		if fn.IsMacro {
			return ev.expand(fn, args)
		}
		values, err := ev.evalArgs(args)
		if err != nil {
			return nil, err
		}
		return ev.invoke(fn, values)
	}

	return nil, fmt.Errorf("%w: %s", ErrNotCallable, ast.Encode(callee))
}

// expand runs a macro over its unevaluated arguments and evaluates the
// resulting expansion in the caller's scope.
func (ev *Evaluator) expand(fn *ast.Function, args []*ast.Element) (*ast.Element, error) {
	expansion, err := ev.invoke(fn, args)
	if err != nil {
		return nil, err
	}
	ev.log.Printf("expand %s: %s", fn.Name, ast.Encode(expansion))

	if err := ev.enter(fn.Name); err != nil {
		return nil, err
	}
	defer ev.leave()

	return ev.eval(expansion)
}

// invoke binds args to the formal arguments of fn in a new scope and
// evaluates its body. The scope is popped on every exit path.
func (ev *Evaluator) invoke(fn *ast.Function, args []*ast.Element) (*ast.Element, error) {
	if err := ev.enter(fn.Name); err != nil {
		return nil, err
	}
	defer ev.leave()

	if err := ev.pushScope(); err != nil {
		return nil, err
	}
	defer ev.popScope()

	for i, name := range fn.Args {
		ev.st.Set(name, args[i])
	}

	ev.log.Printf("call %s %v", fn.Name, args)

	result, err := ev.eval(fn.Body)
	switch {
	case errors.Is(err, sigReturn):
		result = ev.result
	case errors.Is(err, sigBreak):
		return nil, fmt.Errorf("%w: in %s", ErrBreakOutsideLoop, fn.Name)
	case err != nil:
		return nil, err
	}

	ev.log.Printf("return %s: %s", fn.Name, ast.Encode(result))

	ev.result = result
	return result, nil
}

// enter takes one level of the nesting ceiling. Function calls, macro
// expansions and eval share it.
func (ev *Evaluator) enter(name string) error {
	if ev.depth >= ev.maxDepth {
		return fmt.Errorf("%w: %s exceeds %d nested calls", ErrStackOverflow, name, ev.maxDepth)
	}
	ev.depth++
	return nil
}

func (ev *Evaluator) leave() {
	ev.depth--
}

func (ev *Evaluator) pushScope() error {
	if err := ev.st.Push(); err != nil {
		return err
	}
	ev.log.Printf("push scope (%d)", ev.st.Depth())
	return nil
}

func (ev *Evaluator) popScope() {
	ev.log.Printf("pop scope (%d)", ev.st.Depth())
	ev.st.Pop()
}

func (ev *Evaluator) write(s string) error {
	if _, err := io.WriteString(ev.out, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
