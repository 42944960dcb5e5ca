package dlerr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Syntax
	UnsupportedConstruct
	DefinitionCycle
	Invariant
	UnexpandedDefinition
)

func (c ErrCode) String() string {
	switch c {
	case Syntax:
		return "syntax"
	case UnsupportedConstruct:
		return "unsupported construct"
	case DefinitionCycle:
		return "definition cycle"
	case Invariant:
		return "invariant violation"
	case UnexpandedDefinition:
		return "unexpanded definition"
	default:
		return "unclassified"
	}
}

// DLError is an error attributable to a single axiom or concept.
// Line is the 1-based line of the source text, or 0 when the error is not
// tied to a line.
type DLError interface {
	Error() string
	Code() ErrCode
	Line() int

	withLine(int) DLError
	withStack([]byte) DLError
	getStack() []byte
}

func FormatWithCode(e DLError) string {
	var prefix string
	if e.Line() > 0 {
		prefix = fmt.Sprintf("line %d: ", e.Line())
	}
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:%s(E%03d) %s", stack, prefix, e.Code(), e.Error())
	}
	return fmt.Sprintf("%s(E%03d) %s", prefix, e.Code(), e.Error())
}

func New[E DLError](err E) DLError {
	return err.withStack(debug.Stack())
}

// AtLine returns err attributed to the given source line.
func AtLine(err DLError, line int) DLError {
	return err.withLine(line)
}

// Position is embedded in every DLError to carry its source line.
type Position struct {
	LineNo int
}

func (p Position) Line() int { return p.LineNo }

type Unclassified struct {
	Position
	From  error
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Unwrap() error    { return e.From }
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) DLError {
	e.stack = stack
	return e
}
func (e Unclassified) withLine(line int) DLError {
	e.LineNo = line
	return e
}

// NewSyntax reports malformed concept or axiom text. Input is the offending substring.
type NewSyntax struct {
	Position
	Input  string
	Reason string
	stack  []byte
}

func (e NewSyntax) Error() string {
	return fmt.Sprintf("syntax error in '%s': %s", e.Input, e.Reason)
}
func (e NewSyntax) Code() ErrCode    { return Syntax }
func (e NewSyntax) getStack() []byte { return e.stack }
func (e NewSyntax) withStack(stack []byte) DLError {
	e.stack = stack
	return e
}
func (e NewSyntax) withLine(line int) DLError {
	e.LineNo = line
	return e
}

// NewUnsupportedConstruct reports a concept shape a rewrite does not know how to handle.
type NewUnsupportedConstruct struct {
	Position
	Operation string
	Kind      string
	stack     []byte
}

func (e NewUnsupportedConstruct) Error() string {
	return fmt.Sprintf("%s: unsupported concept of kind '%s'", e.Operation, e.Kind)
}
func (e NewUnsupportedConstruct) Code() ErrCode    { return UnsupportedConstruct }
func (e NewUnsupportedConstruct) getStack() []byte { return e.stack }
func (e NewUnsupportedConstruct) withStack(stack []byte) DLError {
	e.stack = stack
	return e
}
func (e NewUnsupportedConstruct) withLine(line int) DLError {
	e.LineNo = line
	return e
}

// NewDefinitionCycle reports definitions that refer to each other.
// Path lists the defined symbols along the cycle, first one repeated last.
type NewDefinitionCycle struct {
	Position
	Path  []string
	stack []byte
}

func (e NewDefinitionCycle) Error() string {
	return fmt.Sprintf("cyclic definitions: %s", strings.Join(e.Path, " -> "))
}
func (e NewDefinitionCycle) Code() ErrCode    { return DefinitionCycle }
func (e NewDefinitionCycle) getStack() []byte { return e.stack }
func (e NewDefinitionCycle) withStack(stack []byte) DLError {
	e.stack = stack
	return e
}
func (e NewDefinitionCycle) withLine(line int) DLError {
	e.LineNo = line
	return e
}

// NewInvariant reports a structurally corrupt concept tree.
type NewInvariant struct {
	Position
	Reason string
	stack  []byte
}

func (e NewInvariant) Error() string {
	return fmt.Sprintf("invariant violated: %s", e.Reason)
}
func (e NewInvariant) Code() ErrCode    { return Invariant }
func (e NewInvariant) getStack() []byte { return e.stack }
func (e NewInvariant) withStack(stack []byte) DLError {
	e.stack = stack
	return e
}
func (e NewInvariant) withLine(line int) DLError {
	e.LineNo = line
	return e
}

// NewUnexpandedDefinition reports a definition whose right-hand side still
// mentions the left-hand side of another definition after expansion.
type NewUnexpandedDefinition struct {
	Position
	Definition string
	Mentions   string
	stack      []byte
}

func (e NewUnexpandedDefinition) Error() string {
	return fmt.Sprintf("definition '%s' still mentions defined concept '%s' after expansion", e.Definition, e.Mentions)
}
func (e NewUnexpandedDefinition) Code() ErrCode    { return UnexpandedDefinition }
func (e NewUnexpandedDefinition) getStack() []byte { return e.stack }
func (e NewUnexpandedDefinition) withStack(stack []byte) DLError {
	e.stack = stack
	return e
}
func (e NewUnexpandedDefinition) withLine(line int) DLError {
	e.LineNo = line
	return e
}

// From returns err itself if it is a DLError, or wraps it as Unclassified.
func From(err error) DLError {
	var dlErr DLError
	if errors.As(err, &dlErr) {
		return dlErr
	}
	return New(Unclassified{From: err})
}
