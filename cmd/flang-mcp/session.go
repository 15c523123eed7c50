package main

import (
	"bytes"
	"strings"
	"sync"

	"github.com/xiam/flang"
	"github.com/xiam/flang/ast"
)

// session is an evaluator shared by every tool call. Definitions survive
// between calls until reset.
type session struct {
	mu  sync.Mutex
	out bytes.Buffer
	ev  *flang.Evaluator
}

func newSession(opts ...flang.Option) *session {
	s := &session{}
	s.ev = flang.New(append(opts, flang.WithOutput(&s.out))...)
	return s
}

// eval returns whatever src printed followed by the printed form of its
// last value.
func (s *session) eval(src string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.out.Reset()
	v, err := s.ev.EvalSource([]byte(src))
	if err != nil {
		return "", errorMessage(err, src)
	}

	var b strings.Builder
	if s.out.Len() > 0 {
		b.Write(s.out.Bytes())
		if !bytes.HasSuffix(s.out.Bytes(), []byte("\n")) {
			b.WriteByte('\n')
		}
	}
	b.WriteString(ast.Encode(v))
	return b.String(), nil
}

func (s *session) globals() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ev.Globals()
}

func (s *session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ev.Reset()
}

type evalError struct {
	err error
	msg string
}

func (e *evalError) Error() string {
	return e.msg
}

func (e *evalError) Unwrap() error {
	return e.err
}

func errorMessage(err error, src string) error {
	return &evalError{err: err, msg: flang.FormatError(err, []byte(src))}
}
