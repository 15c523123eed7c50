package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes a human-readable tree of the program, one element per line
func Print(w io.Writer, program Program) {
	for i := range program {
		printLevel(w, program[i], 0)
	}
}

func printLevel(w io.Writer, e *Element, level int) {
	indent := strings.Repeat("    ", level)
	if e == nil {
		fmt.Fprintf(w, "%snull\n", indent)
		return
	}

	pos := ""
	if e.Token() != nil {
		line, col := e.Pos()
		pos = fmt.Sprintf(" [%d %d]", line, col)
	}

	switch e.Type() {
	case TypeList:
		list := e.List()
		fmt.Fprintf(w, "%s(%s)[%d]%s\n", indent, e.Type(), len(list), pos)
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	default:
		fmt.Fprintf(w, "%s(%s): %s%s\n", indent, e.Type(), Encode(e), pos)
	}
}

// Encode returns the printed form of an element
func Encode(e *Element) string {
	var b strings.Builder
	encodeElement(&b, e)
	return b.String()
}

func encodeElement(b *strings.Builder, e *Element) {
	if e == nil {
		b.WriteString("null")
		return
	}

	switch e.Type() {
	case TypeIdentifier:
		b.WriteString(e.Name())

	case TypeInteger:
		b.WriteString(strconv.FormatInt(e.Int(), 10))

	case TypeReal:
		b.WriteString(formatReal(e.Real()))

	case TypeBoolean:
		b.WriteString(strconv.FormatBool(e.Bool()))

	case TypeNull:
		b.WriteString("null")

	case TypeList:
		b.WriteByte('(')
		for i, child := range e.List() {
			if i > 0 {
				b.WriteByte(' ')
			}
			encodeElement(b, child)
		}
		b.WriteByte(')')

	case TypeFunction:
		fn := e.Function()
		if fn.IsMacro {
			fmt.Fprintf(b, "<macro %s>", fn.Name)
			return
		}
		fmt.Fprintf(b, "<function %s>", fn.Name)

	case TypeBuiltin:
		fmt.Fprintf(b, "<builtin %s>", e.Name())

	default:
		panic("unknown element type")
	}
}

// formatReal keeps a decimal point so that reals don't read back as integers
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
