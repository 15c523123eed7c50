package ast

import (
	"fmt"

	"github.com/xiam/flang/lexer"
)

// Element is both a node of the syntax tree and a runtime value. Elements
// are never modified after they are created.
type Element struct {
	et  ElementType
	tok *lexer.Token
	v   interface{}
}

// Program is the ordered sequence of top-level elements of a source file
type Program []*Element

// Function is the payload of user defined functions and macros
type Function struct {
	Name    string
	Args    []string
	Body    *Element
	IsMacro bool
}

var (
	Null  = &Element{et: TypeNull}
	True  = &Element{et: TypeBoolean, v: true}
	False = &Element{et: TypeBoolean, v: false}
)

func newElement(et ElementType, tok *lexer.Token, v interface{}) *Element {
	return &Element{
		et:  et,
		tok: tok,
		v:   v,
	}
}

// Token returns the token the element was parsed from, or nil if the element
// was created during evaluation
func (e *Element) Token() *lexer.Token {
	return e.tok
}

// Type returns the variant of the element
func (e *Element) Type() ElementType {
	return e.et
}

// Is returns true if the element is of the given type
func (e *Element) Is(et ElementType) bool {
	return e.et == et
}

// IsAtom returns true for identifiers and literals
func (e *Element) IsAtom() bool {
	return e.et&elementTypeAtom > 0
}

// IsList returns true if the element is a list
func (e *Element) IsList() bool {
	return e.et&elementTypeVector > 0
}

// IsCallable returns true for user functions, macros and builtins
func (e *Element) IsCallable() bool {
	return e.et&elementTypeCallable > 0
}

// Name returns the name of an identifier or builtin
func (e *Element) Name() string {
	return e.v.(string)
}

// Int returns the value of an integer
func (e *Element) Int() int64 {
	return e.v.(int64)
}

// Real returns the value of a real
func (e *Element) Real() float64 {
	return e.v.(float64)
}

// Bool returns the value of a boolean
func (e *Element) Bool() bool {
	return e.v.(bool)
}

// List returns the children of a list. The returned slice must not be
// modified.
func (e *Element) List() []*Element {
	return e.v.([]*Element)
}

// Function returns the payload of a user function or macro
func (e *Element) Function() *Function {
	return e.v.(*Function)
}

// Pos returns the position of the element in the source, or zeros when it
// has none
func (e *Element) Pos() (int, int) {
	if e.tok == nil {
		return 0, 0
	}
	return e.tok.Pos()
}

func (e *Element) String() string {
	return Encode(e)
}

// GoString is used by %#v
func (e *Element) GoString() string {
	return fmt.Sprintf("(%v): %s", e.et, Encode(e))
}
