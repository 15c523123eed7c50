package flang

import (
	"fmt"
	"sort"

	"github.com/xiam/flang/ast"
)

const defaultMaxScopes = 1000

type scope map[string]*ast.Element

// symbolTable is the stack of scopes visible to the evaluator. scopes[0] is
// the global scope, the last one is the innermost.
type symbolTable struct {
	scopes    []scope
	maxScopes int
}

func newSymbolTable(maxScopes int) *symbolTable {
	if maxScopes < 1 {
		maxScopes = defaultMaxScopes
	}
	return &symbolTable{
		scopes:    []scope{make(scope)},
		maxScopes: maxScopes,
	}
}

// Push adds an empty innermost scope.
func (st *symbolTable) Push() error {
	if len(st.scopes) >= st.maxScopes {
		return fmt.Errorf("%w: more than %d scopes", ErrStackOverflow, st.maxScopes)
	}
	st.scopes = append(st.scopes, make(scope))
	return nil
}

// Pop removes the innermost scope. The global scope can't be removed.
func (st *symbolTable) Pop() {
	if len(st.scopes) == 1 {
		panic("cannot pop the global scope")
	}
	st.scopes[len(st.scopes)-1] = nil
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Set binds name in the innermost scope only.
func (st *symbolTable) Set(name string, value *ast.Element) {
	st.scopes[len(st.scopes)-1][name] = value
}

// Get looks name up from the innermost scope to the global one.
func (st *symbolTable) Get(name string) (*ast.Element, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if value, ok := st.scopes[i][name]; ok {
			return value, true
		}
	}
	return nil, false
}

// Depth returns the number of scopes, including the global one.
func (st *symbolTable) Depth() int {
	return len(st.scopes)
}

func (st *symbolTable) globals() []string {
	names := make([]string, 0, len(st.scopes[0]))
	for name := range st.scopes[0] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
