package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface. Program output goes through Println,
// diagnostics through Fprintln with os.Stderr.
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Outcome is the result of running a piece of source code
type Outcome int

const (
	// OutcomeOK means no errors of any kind happened
	OutcomeOK Outcome = iota
	// OutcomeStaticError means lexing, parsing or resolving failed and nothing ran
	OutcomeStaticError
	// OutcomeRuntimeError means execution stopped on an uncaught runtime error
	OutcomeRuntimeError
)

// ExitCode maps the outcome to a process exit status
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeStaticError:
		return 65
	case OutcomeRuntimeError:
		return 70
	}
	return 0
}

func (o Outcome) String() string {
	switch o {
	case OutcomeStaticError:
		return "static error"
	case OutcomeRuntimeError:
		return "runtime error"
	}
	return "ok"
}

// Interpreter is an interpreter session. Globals and resolved scopes
// persist across Run calls, so it serves both whole files and
// line-by-line interactive input. Sessions share nothing.
type Interpreter struct {
	printer IPrinter
	logger  *logrus.Logger

	globals *env
	locals  map[expr]int
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used to trace each phase
func WithLogger(logger *logrus.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// NewInterpreter creates a fresh session with its own global environment
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	i := &Interpreter{
		printer: p,
		globals: newEnv(nil),
		locals:  make(map[expr]int),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.logger == nil {
		i.logger = logrus.New()
		i.logger.SetOutput(os.Stderr)
		i.logger.SetLevel(logrus.WarnLevel)
	}
	defineGlobals(i.globals)
	return i
}

// Run scans, parses, resolves and executes source against the session
func (i *Interpreter) Run(source string) Outcome {
	state := newInterpreterState(source, i.logger)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	parser := &parser{
		state: state,
	}

	lexer.scan()
	i.logger.WithFields(logrus.Fields{
		"tokens": len(state.tokens),
		"errors": len(state.errors),
	}).Debug("scanned")

	parser.parse()
	i.logger.WithFields(logrus.Fields{
		"statements": len(state.stmts),
		"errors":     len(state.errors),
	}).Debug("parsed")

	// Resolving a tree with syntax errors would only add noise
	if state.PrintErrors(i.printer) {
		return OutcomeStaticError
	}

	newResolver(state, i.locals).resolve()
	i.logger.WithFields(logrus.Fields{
		"locals": len(i.locals),
		"errors": len(state.errors),
	}).Debug("resolved")

	if state.PrintErrors(i.printer) {
		return OutcomeStaticError
	}

	exec := &exec{
		state:   state,
		printer: i.printer,
		logger:  i.logger,
		globals: i.globals,
		env:     i.globals,
		locals:  i.locals,
	}

	if !exec.interpret() {
		i.printer.Fprintln(os.Stderr, state.runtimeError.Error())
		return OutcomeRuntimeError
	}
	return OutcomeOK
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) Outcome {
	return NewInterpreter(p).Run(source)
}
