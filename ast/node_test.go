package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/flang/lexer"
)

func TestElement(t *testing.T) {
	token := lexer.NewToken(lexer.TokenInteger, "42", 3, 7)

	node := NewInteger(token, 42)
	assert.Equal(t, TypeInteger, node.Type())
	assert.Equal(t, int64(42), node.Int())
	assert.True(t, node.IsAtom())
	assert.False(t, node.IsList())
	assert.False(t, node.IsCallable())

	line, col := node.Pos()
	assert.Equal(t, 3, line)
	assert.Equal(t, 7, col)
}

func TestElementList(t *testing.T) {
	token := lexer.NewToken(lexer.TokenOpenList, "(", 1, 1)

	list := NewList(token, Ident("plus"), Int(1), Int(2))
	assert.True(t, list.IsList())
	assert.False(t, list.IsAtom())
	assert.Len(t, list.List(), 3)
	assert.Equal(t, "plus", list.List()[0].Name())

	empty := NewList(nil)
	assert.NotNil(t, empty.List())
	assert.Len(t, empty.List(), 0)

	line, col := empty.Pos()
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)
}

func TestElementTypes(t *testing.T) {
	testCases := []struct {
		Element  *Element
		Type     ElementType
		Atom     bool
		Callable bool
	}{
		{Ident("x"), TypeIdentifier, true, false},
		{Int(1), TypeInteger, true, false},
		{NewReal(nil, 1.5), TypeReal, true, false},
		{True, TypeBoolean, true, false},
		{Null, TypeNull, true, false},
		{List(), TypeList, false, false},
		{NewFunction(&Function{Name: "f"}), TypeFunction, false, true},
		{NewBuiltin("plus"), TypeBuiltin, false, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Type, tc.Element.Type())
		assert.True(t, tc.Element.Is(tc.Type))
		assert.Equal(t, tc.Atom, tc.Element.IsAtom(), tc.Type.String())
		assert.Equal(t, tc.Callable, tc.Element.IsCallable(), tc.Type.String())
	}
}

func TestBooleanSingletons(t *testing.T) {
	assert.True(t, NewBoolean(true) == True)
	assert.True(t, NewBoolean(false) == False)
	assert.True(t, True.Bool())
	assert.False(t, False.Bool())
}
