package lox

import (
	"errors"
	"strings"
)

type mockReporter struct {
	errors        []error
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func (reporter *mockReporter) messages() []string {
	msgs := make([]string, 0, len(reporter.errors))
	for _, err := range reporter.errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func tokEOF(line int) *Token {
	return NewToken(EOF, "", nil, line)
}

func tokIdent(name string) *Token {
	return NewToken(IDENTIFIER, name, nil, 1)
}

func tokNum(v float64, lexeme string) *Token {
	return NewToken(NUMBER, lexeme, v, 1)
}

func tokOp(typ TokenType) *Token {
	return NewToken(typ, typ.String(), nil, 1)
}

// parseSource scans and parses the source, errors go to the returned reporter
func parseSource(src string) ([]Stmt, *mockReporter) {
	report := newMockReporter()
	toks := NewScanner([]rune(src), report).Scan()
	stmts := NewParser(toks, report).Parse()
	return stmts, report
}

// runSource runs the source in a fresh interpreter and returns what it
// printed. Nothing is run if the source has syntax errors.
func runSource(src string) (string, *mockReporter) {
	return runSourceWith(src, DefaultConfig())
}

func runSourceWith(src string, config Config) (string, *mockReporter) {
	stmts, report := parseSource(src)
	var out strings.Builder
	if report.HadError() {
		return out.String(), report
	}
	NewInterpreter(&out, report, config).Interpret(stmts)
	return out.String(), report
}
