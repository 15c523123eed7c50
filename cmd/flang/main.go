package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/xiam/flang"
	"github.com/xiam/flang/ast"
	"github.com/xiam/flang/lexer"
	"github.com/xiam/flang/parser"
)

const (
	appName     = "flang"
	historyFile = ".flang_history"
	historyEnv  = "FLANG_HISTORY"

	promptMain = "flang> "
	promptCont = "... "
)

const helpText = `Commands:
  :help          show this help
  :quit          leave the REPL
  :reset         drop every definition
  :load FILE     evaluate FILE in this session
  :globals       list the names bound in the global scope
`

var (
	flagEval   = flag.String("e", "", "evaluate the given source and exit")
	flagTokens = flag.Bool("tokens", false, "dump the token stream before evaluating")
	flagAST    = flag.Bool("ast", false, "dump the syntax tree before evaluating")
	flagTrace  = flag.Bool("trace", false, "trace calls and scopes to stderr")
	flagDepth  = flag.Int("depth", 0, "maximum number of nested function calls")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [FILE]\n", appName)
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	switch {
	case *flagEval != "":
		return runSource([]byte(*flagEval))
	case len(args) > 0:
		src, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		return runSource(src)
	}
	return runREPL()
}

func options(out io.Writer) []flang.Option {
	opts := []flang.Option{
		flang.WithOutput(out),
		flang.WithMaxCallDepth(*flagDepth),
	}
	if *flagTrace {
		opts = append(opts, flang.WithLogger(log.New(os.Stderr, appName+": ", 0)))
	}
	return opts
}

func runSource(src []byte) int {
	if err := dump(os.Stderr, src); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", appName, flang.FormatError(err, src))
		return 1
	}

	ev := flang.New(options(os.Stdout)...)
	if _, err := ev.EvalSource(src); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", appName, flang.FormatError(err, src))
		return 1
	}
	return 0
}

// dump writes the tokens and the tree of src when requested by flags.
func dump(w io.Writer, src []byte) error {
	if !*flagTokens && !*flagAST {
		return nil
	}

	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	if *flagTokens {
		for i := range tokens {
			fmt.Fprintln(w, tokens[i])
		}
	}

	if *flagAST {
		program, err := parser.New(tokens).Parse()
		if err != nil {
			return err
		}
		ast.Print(w, program)
	}
	return nil
}

func historyPath() string {
	if path := os.Getenv(historyEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func runREPL() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	out := &lineWriter{w: os.Stdout}
	ev := flang.New(options(out)...)

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			if done := handleReplCommand(ev, out, code); done {
				break
			}
			continue
		}

		evalAndShow(ev, out, []byte(code))
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return 0
}

func evalAndShow(ev *flang.Evaluator, out *lineWriter, src []byte) {
	if err := dump(out, src); err != nil {
		out.Println(flang.FormatError(err, src))
		return
	}
	v, err := ev.EvalSource(src)
	if err != nil {
		out.Println(flang.FormatError(err, src))
		return
	}
	out.Println(ast.Encode(v))
}

func handleReplCommand(ev *flang.Evaluator, out *lineWriter, line string) (exit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		out.Print(helpText)

	case ":quit", ":exit":
		return true

	case ":reset":
		ev.Reset()
		out.Println("session reset.")

	case ":load":
		if len(fields) < 2 {
			out.Println("usage: :load FILE")
			return false
		}
		src, err := os.ReadFile(fields[1])
		if err != nil {
			out.Println(fmt.Sprintf("cannot read %s: %v", fields[1], err))
			return false
		}
		evalAndShow(ev, out, src)

	case ":globals":
		out.Println(strings.Join(ev.Globals(), " "))

	default:
		out.Println("unknown command. Type :help for help.")
	}
	return false
}

// readByParseProbe reads lines until the buffer parses or fails for a
// reason other than missing input.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// ctrl+c drops the pending input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := parser.Parse([]byte(src)); errors.Is(err, parser.ErrUnexpectedEOF) {
			continue
		}
		return src, true
	}
}

// lineWriter remembers whether the cursor is at the start of a line, so
// results are not glued to the output of print.
type lineWriter struct {
	w       io.Writer
	midLine bool
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		lw.midLine = p[len(p)-1] != '\n'
	}
	return lw.w.Write(p)
}

func (lw *lineWriter) Print(s string) {
	_, _ = io.WriteString(lw, s)
}

func (lw *lineWriter) Println(s string) {
	if lw.midLine {
		lw.Print("\n")
	}
	lw.Print(s + "\n")
}
