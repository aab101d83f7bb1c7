package lox

import (
	"fmt"
	"io"
)

// flow is the outcome of executing a statement. A returning flow unwinds every
// enclosing statement until it reaches the function call that started it.
type flow struct {
	returning bool
	value     interface{}
}

var normal = flow{}

// Interpreter walks the syntax tree and evaluates it. The environment a node
// is evaluated in is always passed explicitly, the interpreter itself only
// keeps the global scope and the current call depth.
type Interpreter struct {
	globals  *Environment
	output   io.Writer
	reporter Reporter
	config   Config
	depth    int
}

// NewInterpreter creates an interpreter that writes the output of print
// statements to `output` and reports runtime errors to `reporter`.
func NewInterpreter(output io.Writer, reporter Reporter, config Config) *Interpreter {
	if config.MaxCallDepth <= 0 {
		config.MaxCallDepth = DefaultMaxCallDepth
	}
	if config.MaxCallDepth > MaxCallDepthLimit {
		config.MaxCallDepth = MaxCallDepthLimit
	}
	globals := NewEnvironment(nil)
	globals.Define("clock", NewNativeFn("clock", 0, nativeClock))
	return &Interpreter{
		globals:  globals,
		output:   output,
		reporter: reporter,
		config:   config,
	}
}

// Globals returns the outermost scope of the interpreter
func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Interpret runs the statements in the global scope
func (in *Interpreter) Interpret(statements []Stmt) {
	in.Run(statements, in.globals)
}

// Run executes the statements in order against the given environment. The
// first runtime error stops the execution, it's reported and returned.
func (in *Interpreter) Run(statements []Stmt, env *Environment) error {
	for _, stmt := range statements {
		res, err := in.exec(stmt, env)
		if err != nil {
			in.reporter.Report(err)
			return err
		}
		if res.returning {
			return nil
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt Stmt, env *Environment) (flow, error) {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		return in.execBlock(stmt.Statements, NewEnvironment(env))
	case *ExpressionStmt:
		return in.execExpression(stmt, env)
	case *FunctionStmt:
		env.Define(stmt.Name.Lexeme, newLoxFn(stmt, env))
		return normal, nil
	case *IfStmt:
		return in.execIf(stmt, env)
	case *PrintStmt:
		return in.execPrint(stmt, env)
	case *ReturnStmt:
		return in.execReturn(stmt, env)
	case *VarStmt:
		return in.execVar(stmt, env)
	case *WhileStmt:
		return in.execWhile(stmt, env)
	}
	panic(fmt.Sprintf("Unreachable: unknown statement %T", stmt))
}

// execBlock runs the statements in the given environment and stops at the
// first statement that returns or fails.
func (in *Interpreter) execBlock(statements []Stmt, env *Environment) (flow, error) {
	for _, stmt := range statements {
		res, err := in.exec(stmt, env)
		if err != nil || res.returning {
			return res, err
		}
	}
	return normal, nil
}

func (in *Interpreter) execExpression(stmt *ExpressionStmt, env *Environment) (flow, error) {
	val, err := in.eval(stmt.Expression, env)
	if err != nil {
		return normal, err
	}
	if in.config.REPL {
		if _, ok := stmt.Expression.(*AssignExpr); !ok {
			fmt.Fprintln(in.output, stringify(val))
		}
	}
	return normal, nil
}

func (in *Interpreter) execIf(stmt *IfStmt, env *Environment) (flow, error) {
	cond, err := in.eval(stmt.Condition, env)
	if err != nil {
		return normal, err
	}
	if isTruthy(cond) {
		return in.exec(stmt.ThenBranch, env)
	}
	if stmt.ElseBranch != nil {
		return in.exec(stmt.ElseBranch, env)
	}
	return normal, nil
}

func (in *Interpreter) execPrint(stmt *PrintStmt, env *Environment) (flow, error) {
	val, err := in.eval(stmt.Expression, env)
	if err != nil {
		return normal, err
	}
	fmt.Fprintln(in.output, stringify(val))
	return normal, nil
}

func (in *Interpreter) execReturn(stmt *ReturnStmt, env *Environment) (flow, error) {
	var val interface{}
	if stmt.Value != nil {
		var err error
		if val, err = in.eval(stmt.Value, env); err != nil {
			return normal, err
		}
	}
	return flow{returning: true, value: val}, nil
}

func (in *Interpreter) execVar(stmt *VarStmt, env *Environment) (flow, error) {
	var val interface{}
	if stmt.Initializer != nil {
		var err error
		if val, err = in.eval(stmt.Initializer, env); err != nil {
			return normal, err
		}
	}
	env.Define(stmt.Name.Lexeme, val)
	return normal, nil
}

func (in *Interpreter) execWhile(stmt *WhileStmt, env *Environment) (flow, error) {
	for {
		cond, err := in.eval(stmt.Condition, env)
		if err != nil {
			return normal, err
		}
		if !isTruthy(cond) {
			return normal, nil
		}
		res, err := in.exec(stmt.Body, env)
		if err != nil || res.returning {
			return res, err
		}
	}
}

func (in *Interpreter) eval(expr Expr, env *Environment) (interface{}, error) {
	switch expr := expr.(type) {
	case *AssignExpr:
		val, err := in.eval(expr.Value, env)
		if err != nil {
			return nil, err
		}
		if err := env.Assign(expr.Name, val); err != nil {
			return nil, err
		}
		return val, nil
	case *BinaryExpr:
		return in.evalBinary(expr, env)
	case *CallExpr:
		return in.evalCall(expr, env)
	case *GroupingExpr:
		return in.eval(expr.Expression, env)
	case *LiteralExpr:
		return expr.Value, nil
	case *LogicalExpr:
		return in.evalLogical(expr, env)
	case *UnaryExpr:
		return in.evalUnary(expr, env)
	case *VariableExpr:
		return env.Get(expr.Name)
	}
	panic(fmt.Sprintf("Unreachable: unknown expression %T", expr))
}

func (in *Interpreter) evalBinary(expr *BinaryExpr, env *Environment) (interface{}, error) {
	lhs, err := in.eval(expr.Left, env)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil
	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil
	case PLUS:
		if l, ok := lhs.(string); ok {
			if r, ok := rhs.(string); ok {
				return l + r, nil
			}
		}
		if l, ok := lhs.(float64); ok {
			if r, ok := rhs.(float64); ok {
				return l + r, nil
			}
		}
		return nil, NewRuntimeError(
			expr.Op,
			ErrTypeMismatch,
			"Operands must be two numbers or two strings.",
		)
	}

	l, r, err := numberOperands(expr.Op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	switch expr.Op.Typ {
	case GREATER:
		return l > r, nil
	case GREATER_EQUAL:
		return l >= r, nil
	case LESS:
		return l < r, nil
	case LESS_EQUAL:
		return l <= r, nil
	case MINUS:
		return l - r, nil
	case SLASH:
		return l / r, nil
	case STAR:
		return l * r, nil
	}
	panic("Unreachable")
}

func (in *Interpreter) evalCall(expr *CallExpr, env *Environment) (interface{}, error) {
	callee, err := in.eval(expr.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(
			expr.Paren,
			ErrNotCallable,
			"Can only call functions and natives.",
		)
	}

	args := make([]interface{}, 0, len(expr.Args))
	for _, arg := range expr.Args {
		val, err := in.eval(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	if len(args) != fn.Arity() {
		return nil, NewRuntimeError(
			expr.Paren,
			ErrArity,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		)
	}

	if in.depth >= in.config.MaxCallDepth {
		return nil, NewRuntimeError(expr.Paren, ErrStackOverflow, "Stack overflow.")
	}
	in.depth++
	defer func() { in.depth-- }()
	return fn.Call(in, args)
}

func (in *Interpreter) evalLogical(expr *LogicalExpr, env *Environment) (interface{}, error) {
	lhs, err := in.eval(expr.Left, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case OR:
		if isTruthy(lhs) {
			return lhs, nil
		}
	case AND:
		if !isTruthy(lhs) {
			return lhs, nil
		}
	default:
		panic("Unreachable")
	}
	return in.eval(expr.Right, env)
}

func (in *Interpreter) evalUnary(expr *UnaryExpr, env *Environment) (interface{}, error) {
	right, err := in.eval(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(right), nil
	case MINUS:
		if num, ok := right.(float64); ok {
			return -num, nil
		}
		return nil, NewRuntimeError(expr.Op, ErrTypeMismatch, "Operand must be a number.")
	}
	panic("Unreachable")
}

func numberOperands(op *Token, lhs, rhs interface{}) (float64, float64, error) {
	l, okLeft := lhs.(float64)
	r, okRight := rhs.(float64)
	if !okLeft || !okRight {
		return 0, 0, NewRuntimeError(op, ErrTypeMismatch, "Operands must be numbers.")
	}
	return l, r, nil
}
