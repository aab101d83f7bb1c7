package lox

import (
	"fmt"
	"time"
)

// Callable is implemented by every value that can be called from Lox code.
// The interpreter checks the number of arguments against Arity before Call is
// invoked.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
}

// loxFn is a user-defined function together with the environment it was
// declared in.
type loxFn struct {
	decl    *FunctionStmt
	closure *Environment
}

func newLoxFn(decl *FunctionStmt, closure *Environment) *loxFn {
	return &loxFn{decl, closure}
}

func (fn *loxFn) Arity() int {
	return len(fn.decl.Params)
}

func (fn *loxFn) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	/*
		Each call gets its own environment, otherwise recursion would break. The
		environment encloses the closure, not the caller's environment, so the
		body sees the variables that were in scope where it was declared.
	*/
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	res, err := in.execBlock(fn.decl.Body, env)
	if err != nil {
		return nil, err
	}
	if res.returning {
		return res.value, nil
	}
	return nil, nil
}

func (fn *loxFn) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}

// NativeFn wraps a Go function so it can be bound in an environment and
// called from Lox code.
type NativeFn struct {
	name  string
	arity int
	fn    func(args []interface{}) (interface{}, error)
}

// NewNativeFn creates a native function that accepts exactly `arity` arguments
func NewNativeFn(
	name string,
	arity int,
	fn func(args []interface{}) (interface{}, error),
) *NativeFn {
	return &NativeFn{name, arity, fn}
}

func (fn *NativeFn) Arity() int {
	return fn.arity
}

func (fn *NativeFn) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return fn.fn(args)
}

func (fn *NativeFn) String() string {
	return "<native fn>"
}

func nativeClock(args []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}
