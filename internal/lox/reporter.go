package lox

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a reporter that writes to the given writer
func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer: writer}
}

func (reporter *SimpleReporter) Report(err error) {
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

// Reset clears the error flags, the REPL calls this after every line.
func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}
