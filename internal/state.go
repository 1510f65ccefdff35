package internal

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// staticError is a lex, parse or resolve error. They are collected
// and reported together before anything runs.
type staticError struct {
	err   error
	line  int
	where string
}

func (e staticError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, e.where, e.err.Error())
}

func (e staticError) Unwrap() error {
	return e.err
}

// runtimeError aborts the current run
type runtimeError struct {
	err   error
	token *token
}

func (e *runtimeError) Error() string {
	return fmt.Sprintf("[line %d] RuntimeError%s: %s", e.token.line, where(e.token), e.err.Error())
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

// parseError unwinds the parser up to the enclosing declaration
type parseError struct {
	err error
}

// interpreterState stores the state of a single run
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors       []staticError
	runtimeError *runtimeError

	logger *logrus.Logger
}

func newInterpreterState(source string, logger *logrus.Logger) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]staticError, 0),
		logger: logger,
	}
}

func where(tk *token) string {
	if tk == nil {
		return ""
	}
	if tk.token == tkEOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tk.lexeme)
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, staticError{
		err:  err,
		line: line,
	})
}

func (s *interpreterState) tokenError(err error, tk *token) {
	s.errors = append(s.errors, staticError{
		err:   err,
		line:  tk.line,
		where: where(tk),
	})
}

func (s *interpreterState) fatalError(err error, tk *token) {
	s.tokenError(err, tk)
	panic(parseError{err: err})
}

// throwRuntimeError unwinds the evaluator up to interpret
func throwRuntimeError(err error, tk *token) {
	panic(&runtimeError{
		err:   err,
		token: tk,
	})
}

// Valid returns true if no static errors were found
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all static errors and reports whether there were any
func (s *interpreterState) PrintErrors(p IPrinter) bool {
	for _, e := range s.errors {
		p.Fprintln(os.Stderr, e.Error())
	}
	return len(s.errors) != 0
}
