package parser_test

import (
	"log"
	"os"

	"github.com/xiam/flang/ast"
	"github.com/xiam/flang/parser"
)

func ExampleParse() {
	program, err := parser.Parse([]byte(`(setq x '(1 2.5 true))`))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, program)

	// Output:
	// (list)[3] [1 1]
	//     (identifier): setq [1 2]
	//     (identifier): x [1 7]
	//     (list)[2] [1 9]
	//         (identifier): quote [1 9]
	//         (list)[3] [1 10]
	//             (integer): 1 [1 11]
	//             (real): 2.5 [1 13]
	//             (boolean): true
}
