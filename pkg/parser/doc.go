// Package parser provides syntactic analysis for the Hexenwerk
// language, turning the lexer's token stream into an Abstract Syntax
// Tree.
//
// Method:
//
// The parser is a hand-written recursive descent parser with
// precedence climbing for binary operators. It maintains a two-token
// window (cur/peek) over the lexer it owns; every parse function is
// entered with the current token on its construct's first token and
// leaves it on the last.
//
// Operator table:
//
//	=      10  right
//	<      17  left
//	+ -    20  left
//	* /    30  left
//
// Tokens outside the table have precedence 0 and terminate a climb.
//
// Grammar (informative):
//
//	program  := { ";" } (fn ";" { ";" })* EOF
//	fn       := "fn" ID "(" params? ")" "->" TYPE (";" | scope)
//	params   := ID ":" TYPE ("," ID ":" TYPE)*
//	scope    := "{" (stmt (";" stmt)*)? "}"
//	stmt     := "let" ID "=" expr | expr
//	primary  := INT | FLOAT | STR | ID | ID "(" args? ")"
//	          | "(" expr ")" | scope | if
//	if       := "if" expr scope "else" scope
//
// Error Handling:
//
// Each parse function records at most one diagnostic in the shared
// ParseErrors accumulator and returns nil; parents propagate the
// absence without stacking further messages. Diagnostics carry the
// offending token's line and column and render as
// "LINE:COL: Error: MESSAGE".
package parser
