/*
Package lox implements the front-end and the tree-walking evaluator of the Lox
scripting language, without classes.

Grammars

	program    --> decl* EOF ;
	decl       --> funDecl
	             | varDecl
	             | stmt ;
	funDecl    --> "fun" IDENT "(" params? ")" block ;
	params     --> IDENT ( "," IDENT )* ;
	varDecl    --> "var" IDENT ( "=" expr )? ";" ;
	stmt       --> block
	             | exprStmt
	             | forStmt
	             | ifStmt
	             | printStmt
	             | returnStmt
	             | whileStmt ;
	block      --> "{" decl* "}" ;
	exprStmt   --> expr ";" ;
	forStmt    --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
	ifStmt     --> "if" "(" expr ")" stmt ( "else" stmt )? ;
	printStmt  --> "print" expr ";" ;
	returnStmt --> "return" expr? ";" ;
	whileStmt  --> "while" "(" expr ")" stmt ;
	expr       --> assign ;
	assign     --> IDENT "=" assign
	             | or ;
	or         --> and ( "or" and )* ;
	and        --> equality ( "and" equality )* ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> addition ( ( ">" | ">=" | "<" | "<=" ) addition )* ;
	addition   --> multiplication ( ( "-" | "+" ) multiplication )* ;
	multiplication --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" | "+" | "/" | "*" ) unary
	             | call ;
	call       --> primary ( "(" args? ")" )* ;
	args       --> expr ( "," expr )* ;
	primary    --> NUMBER | STRING | IDENT
	             | "true" | "false" | "nil"
	             | "(" expr ")" ;

"unary" rule has some matches for error generations:
+ Unary '+' expressions are not supported.
+ Unary '/' expressions are not supported.
+ Unary '*' expressions are not supported.

Functions take at most 8 parameters, and calls pass at most 8 arguments.
*/
package lox

//go:generate go run ../cmd/ast_codegen .
