package lox

import "fmt"

// maxArgs is the maximum number of parameters a function can declare, and the
// maximum number of arguments a call can pass.
const maxArgs = 8

// Parser composes the syntax tree for the Lox language from the sequence of
// tokens given by the scanner. See the package documentation for the grammar.
//
// Errors are reported to the reporter as soon as they are found. After an
// error, the parser discards tokens until it reaches a statement boundary and
// continues from there, so one malformed statement does not hide the errors
// in the statements that follow it.
type Parser struct {
	current  int
	fnDepth  int
	tokens   []*Token
	reporter Reporter
}

// NewParser creates a new parser for the Lox language. The token sequence
// must be terminated by an EOF token.
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse returns the statements that were parsed successfully. Declarations
// that failed to parse are reported and left out of the result.
func (parser *Parser) Parse() []Stmt {
	statements := make([]Stmt, 0)
	for !parser.isEOF() {
		if stmt := parser.declarationOrSync(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (parser *Parser) declarationOrSync() Stmt {
	stmt, err := parser.declaration()
	if err != nil {
		parser.reporter.Report(err)
		parser.sync()
		return nil
	}
	return stmt
}

// declaration --> funDecl | varDecl | stmt ;
func (parser *Parser) declaration() (Stmt, error) {
	if parser.match(FUN) {
		return parser.function()
	}
	if parser.match(VAR) {
		return parser.varDeclaration()
	}
	return parser.statement()
}

// funDecl --> "fun" IDENT "(" params? ")" block ;
// params  --> IDENT ( "," IDENT )* ;
func (parser *Parser) function() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}

	params := make([]*Token, 0)
	if !parser.check(RIGHT_PAREN) {
		for {
			if len(params) == maxArgs {
				parser.reporter.Report(NewSyntaxError(
					parser.peek(),
					fmt.Sprintf("Can't have more than %d parameters.", maxArgs),
				))
			}
			param, err := parser.consume(IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := parser.consume(LEFT_BRACE, "Expect '{' before function body."); err != nil {
		return nil, err
	}

	parser.fnDepth++
	body, err := parser.block()
	parser.fnDepth--
	if err != nil {
		return nil, err
	}
	return NewFunctionStmt(name, params, body), nil
}

// varDecl --> "var" IDENT ( "=" expr )? ";" ;
func (parser *Parser) varDeclaration() (Stmt, error) {
	name, err := parser.consume(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var init Expr
	if parser.match(EQUAL) {
		if init, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(
		SEMICOLON,
		"Expect ';' after variable declaration.",
	); err != nil {
		return nil, err
	}
	return NewVarStmt(name, init), nil
}

// stmt --> block | exprStmt | forStmt | ifStmt | printStmt | returnStmt
//        | whileStmt ;
func (parser *Parser) statement() (Stmt, error) {
	switch {
	case parser.match(FOR):
		return parser.forStatement()
	case parser.match(IF):
		return parser.ifStatement()
	case parser.match(PRINT):
		return parser.printStatement()
	case parser.match(RETURN):
		return parser.returnStatement()
	case parser.match(WHILE):
		return parser.whileStatement()
	case parser.match(LEFT_BRACE):
		statements, err := parser.block()
		if err != nil {
			return nil, err
		}
		return NewBlockStmt(statements), nil
	}
	return parser.expressionStatement()
}

// A for loop is desugared into a while loop, so the interpreter never sees it.
//
// forStmt --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
func (parser *Parser) forStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var (
		init Stmt
		err  error
	)
	switch {
	case parser.match(SEMICOLON):
	case parser.match(VAR):
		init, err = parser.varDeclaration()
	default:
		init, err = parser.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !parser.check(SEMICOLON) {
		if cond, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr Expr
	if !parser.check(RIGHT_PAREN) {
		if incr, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := parser.statement()
	if err != nil {
		return nil, err
	}
	if incr != nil {
		body = NewBlockStmt([]Stmt{body, NewExpressionStmt(incr)})
	}
	if cond == nil {
		cond = NewLiteralExpr(true)
	}
	body = NewWhileStmt(cond, body)
	if init != nil {
		body = NewBlockStmt([]Stmt{init, body})
	}
	return body, nil
}

// ifStmt --> "if" "(" expr ")" stmt ( "else" stmt )? ;
func (parser *Parser) ifStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := parser.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if parser.match(ELSE) {
		if elseBranch, err = parser.statement(); err != nil {
			return nil, err
		}
	}
	return NewIfStmt(cond, thenBranch, elseBranch), nil
}

// printStmt --> "print" expr ";" ;
func (parser *Parser) printStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return NewPrintStmt(expr), nil
}

// returnStmt --> "return" expr? ";" ;
func (parser *Parser) returnStatement() (Stmt, error) {
	keyword := parser.prev()
	if parser.fnDepth == 0 {
		parser.reporter.Report(NewSyntaxError(keyword, "Can't return from top-level code."))
	}

	var (
		val Expr
		err error
	)
	if !parser.check(SEMICOLON) {
		if val, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return NewReturnStmt(keyword, val), nil
}

// whileStmt --> "while" "(" expr ")" stmt ;
func (parser *Parser) whileStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := parser.statement()
	if err != nil {
		return nil, err
	}
	return NewWhileStmt(cond, body), nil
}

// block --> "{" decl* "}" ;
func (parser *Parser) block() ([]Stmt, error) {
	statements := make([]Stmt, 0)
	for !parser.check(RIGHT_BRACE) && !parser.isEOF() {
		if stmt := parser.declarationOrSync(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, err := parser.consume(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

// exprStmt --> expr ";" ;
func (parser *Parser) expressionStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return NewExpressionStmt(expr), nil
}

// expr --> assign ;
func (parser *Parser) expression() (Expr, error) {
	return parser.assignment()
}

// The left-hand side is parsed as a normal expression, then checked to be a
// valid assignment target once we see the "=". An invalid target is reported
// but does not stop the parse.
//
// assign --> IDENT "=" assign | or ;
func (parser *Parser) assignment() (Expr, error) {
	expr, err := parser.or()
	if err != nil {
		return nil, err
	}
	if parser.match(EQUAL) {
		equals := parser.prev()
		val, err := parser.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*VariableExpr); ok {
			return NewAssignExpr(v.Name, val), nil
		}
		parser.reporter.Report(NewSyntaxError(equals, "Invalid assignment target."))
	}
	return expr, nil
}

// or --> and ( "or" and )* ;
func (parser *Parser) or() (Expr, error) {
	expr, err := parser.and()
	if err != nil {
		return nil, err
	}
	for parser.match(OR) {
		op := parser.prev()
		right, err := parser.and()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(expr, op, right)
	}
	return expr, nil
}

// and --> equality ( "and" equality )* ;
func (parser *Parser) and() (Expr, error) {
	expr, err := parser.equality()
	if err != nil {
		return nil, err
	}
	for parser.match(AND) {
		op := parser.prev()
		right, err := parser.equality()
		if err != nil {
			return nil, err
		}
		expr = NewLogicalExpr(expr, op, right)
	}
	return expr, nil
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `comparison` if does not hits "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.binary(parser.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

// comparison --> addition ( ( ">" | ">=" | "<" | "<=" ) addition )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.binary(parser.addition, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

// addition --> multiplication ( ( "-" | "+" ) multiplication )* ;
func (parser *Parser) addition() (Expr, error) {
	return parser.binary(parser.multiplication, MINUS, PLUS)
}

// multiplication --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) multiplication() (Expr, error) {
	return parser.binary(parser.unary, SLASH, STAR)
}

// binary parses one left-associative level of binary operators, `operand`
// parses the next level of higher precedence.
func (parser *Parser) binary(
	operand func() (Expr, error),
	ops ...TokenType,
) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(ops...) {
		op := parser.prev()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(expr, op, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" | "+" | "/" | "*" ) unary
//         | call ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS, PLUS, SLASH, STAR) {
		op := parser.prev()
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		switch op.Typ {
		case PLUS, SLASH, STAR:
			return nil, NewSyntaxError(
				op,
				fmt.Sprintf("Unary '%s' expressions are not supported.", op.Lexeme),
			)
		}
		return NewUnaryExpr(op, right), nil
	}
	return parser.call()
}

// call --> primary ( "(" args? ")" )* ;
func (parser *Parser) call() (Expr, error) {
	expr, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for parser.match(LEFT_PAREN) {
		if expr, err = parser.finishCall(expr); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// args --> expr ( "," expr )* ;
func (parser *Parser) finishCall(callee Expr) (Expr, error) {
	args := make([]Expr, 0)
	if !parser.check(RIGHT_PAREN) {
		for {
			if len(args) == maxArgs {
				parser.reporter.Report(NewSyntaxError(
					parser.peek(),
					fmt.Sprintf("Can't have more than %d arguments.", maxArgs),
				))
			}
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !parser.match(COMMA) {
				break
			}
		}
	}
	paren, err := parser.consume(RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return NewCallExpr(callee, paren, args), nil
}

// primary --> NUMBER | STRING | IDENT | "true" | "false" | "nil"
//           | "(" expr ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(FALSE) {
		return NewLiteralExpr(false), nil
	}
	if parser.match(TRUE) {
		return NewLiteralExpr(true), nil
	}
	if parser.match(NIL) {
		return NewLiteralExpr(nil), nil
	}
	if parser.match(NUMBER, STRING) {
		return NewLiteralExpr(parser.prev().Literal), nil
	}
	if parser.match(IDENTIFIER) {
		return NewVariableExpr(parser.prev()), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupingExpr(expr), nil
	}
	return nil, NewSyntaxError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, NewSyntaxError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

// sync discards tokens until it reaches the start of the next statement: just
// after a ';', or right before a keyword that begins a declaration.
func (parser *Parser) sync() {
	parser.advance()
	for !parser.isEOF() {
		if parser.prev().Typ == SEMICOLON {
			return
		}
		switch parser.peek().Typ {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		parser.advance()
	}
}
