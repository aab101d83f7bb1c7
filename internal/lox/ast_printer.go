package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter turns an expression into a fully parenthesized string, with the
// operator first in each group. It's only meant for debugging.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *AssignExpr:
		return printer.parenthesize("= "+expr.Name.Lexeme, expr.Value)
	case *BinaryExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right)
	case *CallExpr:
		return printer.parenthesize("call", append([]Expr{expr.Callee}, expr.Args...)...)
	case *GroupingExpr:
		return printer.parenthesize("group", expr.Expression)
	case *LiteralExpr:
		return printer.literal(expr.Value)
	case *LogicalExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right)
	case *UnaryExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Right)
	case *VariableExpr:
		return expr.Name.Lexeme
	}
	panic(fmt.Sprintf("Unreachable: unknown expression %T", expr))
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(printer.Print(expr))
	}
	b.WriteString(")")
	return b.String()
}

func (printer *AstPrinter) literal(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
