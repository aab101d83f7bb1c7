package main

// Prints the parenthesized syntax tree of every expression found in the given
// source, one per line. Reads standard input when no argument is given.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ltungv/lox/tlox/internal/lox"
)

func main() {
	var src string
	if len(os.Args) > 1 {
		src = strings.Join(os.Args[1:], " ")
	} else {
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		src = string(bytes)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	tokens := lox.NewScanner([]rune(src), reporter).Scan()
	statements := lox.NewParser(tokens, reporter).Parse()
	if reporter.HadError() {
		os.Exit(65)
	}

	printer := lox.AstPrinter{}
	for _, stmt := range statements {
		switch stmt := stmt.(type) {
		case *lox.ExpressionStmt:
			fmt.Println(printer.Print(stmt.Expression))
		case *lox.PrintStmt:
			fmt.Println(printer.Print(stmt.Expression))
		case *lox.VarStmt:
			if stmt.Initializer != nil {
				fmt.Println(printer.Print(stmt.Initializer))
			}
		}
	}
}
