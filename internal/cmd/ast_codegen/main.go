package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	// we do it the scripting way, instead of having types support from Go stdlib
	expressionTypes := []string{
		"Assign: Name *Token, Value Expr",
		"Binary: Left Expr, Op *Token, Right Expr",
		// Call stores the token for the closing parenthesis so the token's location
		// can be used when we report RuntimeError caused by a function call.
		"Call: Callee Expr, Paren *Token, Args []Expr",
		"Grouping: Expression Expr",
		"Literal: Value interface{}",
		"Logical: Left Expr, Op *Token, Right Expr",
		"Unary: Op *Token, Right Expr",
		"Variable: Name *Token",
	}
	statementTypes := []string{
		"Block: Statements []Stmt",
		"Expression: Expression Expr",
		"Function: Name *Token, Params []*Token, Body []Stmt",
		"If: Condition Expr, ThenBranch Stmt, ElseBranch Stmt",
		"Print: Expression Expr",
		"Return: Keyword *Token, Value Expr",
		"Var: Name *Token, Initializer Expr",
		"While: Condition Expr, Body Stmt",
	}

	if err := defineAst(outputDir, "Expr", expressionTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := defineAst(outputDir, "Stmt", statementTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defineAst(outputDir string, baseName string, types []string) error {
	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	packageName := filepath.Base(absDir)
	fmt.Fprintf(&buf, "// Code generated by ast_codegen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// The node family is sealed: only types in this file implement it.
	marker := strings.ToLower(baseName) + "Node"
	fmt.Fprintf(&buf, "// %s is implemented by every %s node of the syntax tree.\n", baseName, strings.ToLower(baseName))
	fmt.Fprintf(&buf, "type %s interface {\n\t%s()\n}\n\n", baseName, marker)

	for _, t := range types {
		parts := strings.SplitN(t, ":", 2)
		typeName := strings.TrimSpace(parts[0])
		fields := strings.TrimSpace(parts[1])
		defineType(&buf, baseName, marker, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", baseName, err)
	}
	fpath := filepath.Join(absDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	return os.WriteFile(fpath, src, 0644)
}

func defineType(
	buf *bytes.Buffer,
	baseName string,
	marker string,
	typeName string,
	fieldList string,
) {
	var names, kinds []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.Fields(strings.TrimSpace(f))
		names = append(names, field[0])
		kinds = append(kinds, field[1])
	}
	structName := typeName + baseName

	// Struct definition
	fmt.Fprintf(buf, "type %s struct {\n", structName)
	for i := range names {
		fmt.Fprintf(buf, "\t%s %s\n", names[i], kinds[i])
	}
	fmt.Fprintf(buf, "}\n\n")

	// Constructor
	var params, args []string
	for i, name := range names {
		param := strings.ToLower(name[:1]) + name[1:]
		params = append(params, param+" "+kinds[i])
		args = append(args, param)
	}
	fmt.Fprintf(
		buf,
		"func New%s(%s) *%s {\n\treturn &%s{%s}\n}\n\n",
		structName,
		strings.Join(params, ", "),
		structName,
		structName,
		strings.Join(args, ", "),
	)

	// Marker method
	fmt.Fprintf(buf, "func (*%s) %s() {}\n\n", structName, marker)
}
