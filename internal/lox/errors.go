package lox

import (
	"errors"
	"fmt"
)

// Kinds of runtime failures. A RuntimeError unwraps to one of these so that
// callers can match on them with errors.Is.
var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrNotCallable       = errors.New("not callable")
	ErrArity             = errors.New("arity mismatch")
	ErrStackOverflow     = errors.New("stack overflow")
)

// ScanError is reported by the scanner when it finds a character sequence
// that can not be turned into a token.
type ScanError struct {
	line    int
	message string
}

// NewScanError creates a new scan error
func NewScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("Error: %s\n[line %d]", err.message, err.line)
}

// SyntaxError wraps the error message returned by the parser with the token
// at which the error was detected.
type SyntaxError struct {
	token   *Token
	message string
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(token *Token, message string) error {
	return &SyntaxError{token, message}
}

func (err *SyntaxError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf("Error at end: %s\n[line %d]", err.message, err.token.Line)
	}
	return fmt.Sprintf(
		"Error at '%s': %s\n[line %d]",
		err.token.Lexeme,
		err.message,
		err.token.Line,
	)
}

// Token returns the token at which the error was detected
func (err *SyntaxError) Token() *Token {
	return err.token
}

// RuntimeError is raised during evaluation. It carries the offending token so
// the error can be reported with the line it came from.
type RuntimeError struct {
	token   *Token
	message string
	kind    error
}

// NewRuntimeError creates a new runtime error of the given kind
func NewRuntimeError(token *Token, kind error, message string) error {
	return &RuntimeError{token, message, kind}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", err.message, err.token.Line)
}

func (err *RuntimeError) Unwrap() error {
	return err.kind
}

// Token returns the token at which the error was raised
func (err *RuntimeError) Token() *Token {
	return err.token
}
