package ast

import (
	"github.com/xiam/flang/lexer"
)

// NewIdentifier creates an element of type identifier
func NewIdentifier(tok *lexer.Token, name string) *Element {
	return newElement(TypeIdentifier, tok, name)
}

// NewInteger creates an element of type integer
func NewInteger(tok *lexer.Token, v int64) *Element {
	return newElement(TypeInteger, tok, v)
}

// NewReal creates an element of type real
func NewReal(tok *lexer.Token, v float64) *Element {
	return newElement(TypeReal, tok, v)
}

// NewBoolean returns the True or False singleton
func NewBoolean(v bool) *Element {
	if v {
		return True
	}
	return False
}

// NewList creates a list that owns the given elements
func NewList(tok *lexer.Token, elements ...*Element) *Element {
	if elements == nil {
		elements = []*Element{}
	}
	return newElement(TypeList, tok, elements)
}

// NewFunction creates a user function (or a macro) element
func NewFunction(fn *Function) *Element {
	return newElement(TypeFunction, nil, fn)
}

// NewBuiltin creates a handle to a native function known by name
func NewBuiltin(name string) *Element {
	return newElement(TypeBuiltin, nil, name)
}

// Int is a shortcut for NewInteger(nil, v)
func Int(v int64) *Element {
	return NewInteger(nil, v)
}

// Ident is a shortcut for NewIdentifier(nil, name)
func Ident(name string) *Element {
	return NewIdentifier(nil, name)
}

// List is a shortcut for NewList(nil, elements...)
func List(elements ...*Element) *Element {
	return NewList(nil, elements...)
}
