package gograph

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================
// Parse errors - bad user input, recoverable
// ============================================================

var (
	ErrEmpty       = errors.New("empty expression")
	ErrUnbalanced  = errors.New("unbalanced brackets")
	ErrInvalidTerm = errors.New("invalid term")
	ErrMalformed   = errors.New("malformed expression")
)

// Solver outcomes.
var (
	ErrNoVariable  = errors.New("expression has no x to solve for")
	ErrCannotSolve = errors.New("cannot solve for x")
)

// ParseError reports text that Parse could not turn into an expression.
// Kind is one of the Err* parse sentinels and is exposed through Unwrap,
// so callers can test it with errors.Is.
type ParseError struct {
	Input string // formatted text that was being parsed
	Term  string // offending term, empty when the input as a whole is at fault
	Kind  error
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Term != "" {
		return fmt.Sprintf("gograph: %v %q: %s", e.Kind, e.Term, e.Msg)
	}
	return fmt.Sprintf("gograph: %v: %s", e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// Snippet renders the error with the parsed text and a caret under the
// offending term:
//
//	gograph: invalid term "2y": unrecognized term
//	  | 2y + x
//	  | ^
func (e *ParseError) Snippet() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Input == "" {
		return sb.String()
	}
	sb.WriteString("\n  | ")
	sb.WriteString(e.Input)
	col := 0
	if e.Term != "" {
		col = strings.Index(e.Input, e.Term)
		if col < 0 {
			return sb.String()
		}
	}
	sb.WriteString("\n  | ")
	sb.WriteString(strings.Repeat(" ", len([]rune(e.Input[:col]))))
	sb.WriteString("^")
	return sb.String()
}

func parseErr(input, term string, kind error, format string, args ...interface{}) *ParseError {
	return &ParseError{Input: input, Term: term, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ============================================================
// Invariant violations - malformed trees, not user errors
// ============================================================

// InvariantError is the panic value raised when simplification or
// evaluation meets a tree no parser would build: division by the literal
// 0, a log base below 2, 0^0, or x without a value.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return "gograph: invariant violation in " + e.Op + ": " + e.Msg
}

func invariant(op, msg string) { panic(&InvariantError{Op: op, Msg: msg}) }

// recoverInvariant stores an *InvariantError panic in *err. Any other
// panic keeps unwinding.
func recoverInvariant(err *error) {
	if r := recover(); r != nil {
		ie, ok := r.(*InvariantError)
		if !ok {
			panic(r)
		}
		*err = ie
	}
}
