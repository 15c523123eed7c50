package flang

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/flang/ast"
)

func TestBuiltins(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(head '(1 2 3))`, `1`},
		{`(head '((1 2) 3))`, `(1 2)`},
		{`(head ())`, `null`},
		{`(head '())`, `null`},
		{`(tail '(1 2 3))`, `(2 3)`},
		{`(tail '(1))`, `null`},
		{`(tail '())`, `null`},
		{`(cons 1 '(2 3))`, `(1 2 3)`},
		{`(cons '(1) '(2))`, `((1) 2)`},
		{`(cons 1 '())`, `(1)`},
		{`(cons 1 ())`, `(1)`},
		{`(cons (head '(a b)) (tail '(a b)))`, `(a b)`},

		{`(isint 1)`, `true`},
		{`(isint 1.0)`, `false`},
		{`(isreal 1.5)`, `true`},
		{`(isreal 1)`, `false`},
		{`(isbool false)`, `true`},
		{`(isbool null)`, `false`},
		{`(isnull null)`, `true`},
		{`(isnull ())`, `true`},
		{`(isnull '())`, `true`},
		{`(isnull '(1))`, `false`},
		{`(isnull 0)`, `false`},
		{`(isatom 1)`, `true`},
		{`(isatom 'a)`, `true`},
		{`(isatom null)`, `true`},
		{`(isatom '(1))`, `false`},
		{`(isatom plus)`, `false`},
		{`(islist '(1))`, `true`},
		{`(islist '())`, `true`},
		{`(islist 1)`, `false`},

		{`(plus 2 3)`, `5`},
		{`(plus -2 +3)`, `1`},
		{`(minus 2 3)`, `-1`},
		{`(times -4 3)`, `-12`},
		{`(divide 7 2)`, `3`},
		{`(divide -7 2)`, `-3`},

		{`(less 1 2)`, `true`},
		{`(less 2 2)`, `false`},
		{`(lesseq 2 2)`, `true`},
		{`(greater 3 2)`, `true`},
		{`(greater 2 2)`, `false`},
		{`(greatereq 2 2)`, `true`},
		{`(greatereq 1 2)`, `false`},

		{`(and true true)`, `true`},
		{`(and true false)`, `false`},
		{`(or false true)`, `true`},
		{`(or false false)`, `false`},
		{`(xor true true)`, `false`},
		{`(xor true false)`, `true`},
		{`(not true)`, `false`},
		{`(not false)`, `true`},

		{`(equal 1 1)`, `true`},
		{`(equal 1 2)`, `false`},
		{`(equal true true)`, `true`},
		{`(equal true false)`, `false`},
		{`(equal 1 true)`, `false`},
		{`(nonequal 1 2)`, `true`},
		{`(nonequal false false)`, `false`},
		{`(nonequal 0 false)`, `true`},

		{`(quote a)`, `a`},
		{`(quote (quote a))`, `(quote a)`},
		{`(eval ''a)`, `a`},
		{`(setq v (plus 1 1))`, `2`},
		{`(prog (a b) (isnull a))`, `true`},
	}

	for i := range testCases {
		_, v, err := evalString(t, testCases[i].In)
		require.NoError(t, err, testCases[i].In)
		assert.Equal(t, testCases[i].Out, ast.Encode(v), testCases[i].In)
	}
}

func TestArithmeticProperties(t *testing.T) {
	values := []int64{0, 1, -1, 7, -13, 1000, math.MaxInt32}

	for _, a := range values {
		for _, b := range values {
			sa, sb := strconv.FormatInt(a, 10), strconv.FormatInt(b, 10)

			_, v, err := evalString(t, `(plus `+sa+` `+sb+`)`)
			require.NoError(t, err)
			assert.Equal(t, a+b, v.Int())

			_, v, err = evalString(t, `(minus `+sa+` `+sb+`)`)
			require.NoError(t, err)
			assert.Equal(t, a-b, v.Int())

			_, v, err = evalString(t, `(times `+sa+` `+sb+`)`)
			require.NoError(t, err)
			assert.Equal(t, a*b, v.Int())

			_, v, err = evalString(t, `(divide `+sa+` `+sb+`)`)
			if b == 0 {
				assert.True(t, errors.Is(err, ErrDivisionByZero))
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, a/b, v.Int())
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(1 2 3)`, `(1 2 3)`},
		{`(  a   (b  c)  )`, `(a (b c))`},
		{`((()))`, `((()))`},
		{`(-5 +5 2.50 true false null)`, `(-5 5 2.5 true false null)`},
		{`(2.0)`, `(2.0)`},
		{`(setq x (lambda (y) y))`, `(setq x (lambda (y) y))`},
	}

	for i := range testCases {
		_, v, err := evalString(t, `(quote `+testCases[i].In+`)`)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, ast.Encode(v))
	}
}

func TestPrint(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(print 1)`, `1`},
		{`(print -1.25)`, `-1.25`},
		{`(print 3.0)`, `3.0`},
		{`(print true)`, `true`},
		{`(print null)`, `null`},
		{`(print '(1 (2 3) ()))`, `(1 (2 3) ())`},
		{`(print 'abc)`, `abc`},
		{`(print print)`, `<builtin print>`},
		{`(func f () 1) (print f)`, `<function f>`},
		{`(macro m () 1) (print m)`, `<macro m>`},
		{`(print 1) (print 2)`, `12`},
		{`(println 1) (print 2)`, "1\n2"},
	}

	for i := range testCases {
		out, v, err := evalString(t, testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, out)
		assert.Equal(t, ast.Null, v)
	}
}

func TestBuiltinErrorMessages(t *testing.T) {
	testCases := []struct {
		In  string
		Err string
	}{
		{`(plus 1 true)`, `type mismatch: plus expects argument 2 to be integer, got boolean`},
		{`(and 1 true)`, `type mismatch: and expects argument 1 to be boolean, got integer`},
		{`(plus 1)`, `arity mismatch: plus expects 2 arguments, got 1`},
		{`(cond true)`, `arity mismatch: cond expects 2 to 3 arguments, got 1`},
		{`(cond 1 2)`, `type mismatch: cond expects a boolean condition, got integer`},
		{`(setq setq 1)`, `reserved keyword: setq can't bind "setq"`},
		{`(func f (a) a) (f)`, `arity mismatch: f expects 1 arguments, got 0`},
		{`undefined`, `undefined variable: undefined`},
		{`(1 2)`, `not callable: 1`},
		{`(divide 1 0)`, `division by zero: (divide 1 0)`},
	}

	for i := range testCases {
		_, _, err := evalString(t, testCases[i].In)
		require.Error(t, err)
		assert.Equal(t, testCases[i].Err, err.Error())
	}
}
