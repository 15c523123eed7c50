package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/flang/lexer"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Element
		Out string
	}{
		{Int(120), "120"},
		{Int(-7), "-7"},
		{NewReal(nil, 3.25), "3.25"},
		{NewReal(nil, 2), "2.0"},
		{NewReal(nil, -0.5), "-0.5"},
		{True, "true"},
		{False, "false"},
		{Null, "null"},
		{Ident("foo"), "foo"},
		{List(), "()"},
		{List(Int(1), Int(2), Int(3)), "(1 2 3)"},
		{List(Ident("quote"), List(Ident("a"), List(Null))), "(quote (a (null)))"},
		{NewFunction(&Function{Name: "fact", Args: []string{"n"}}), "<function fact>"},
		{NewFunction(&Function{Name: "unless", IsMacro: true}), "<macro unless>"},
		{NewBuiltin("plus"), "<builtin plus>"},
		{nil, "null"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, Encode(tc.In))
	}

	assert.Equal(t, "(1 2)", List(Int(1), Int(2)).String())
}

func TestPrint(t *testing.T) {
	open := lexer.NewToken(lexer.TokenOpenList, "(", 1, 1)
	program := Program{
		NewList(open,
			NewIdentifier(lexer.NewToken(lexer.TokenIdentifier, "print", 1, 2), "print"),
			Int(5),
		),
		Null,
	}

	var buf bytes.Buffer
	Print(&buf, program)

	expected := "(list)[2] [1 1]\n" +
		"    (identifier): print [1 2]\n" +
		"    (integer): 5\n" +
		"(null): null\n"
	assert.Equal(t, expected, buf.String())
}
