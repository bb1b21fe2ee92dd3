// Package lexer provides lexical analysis for the Hexenwerk language.
//
// The lexer is the first stage of the compiler pipeline, converting a
// character stream (stdin in production) into tokens for the parser.
//
// Token Recognition:
//   - Keywords: let, if, else, fn
//   - Identifiers: alphabetic start, alphanumeric continuation
//   - Literals: 32-bit integers, doubles, strings with escape sequences
//   - Operators: = + - * / < ->
//   - Delimiters: ( ) { } ; : ,
//
// Multi-character disambiguation uses one character of lookahead:
// "-" followed by ">" is a single RARROW token, and "/" followed by
// "/" starts a line comment that is elided up to the next newline.
//
// Numbers follow the rule that a leading digit or point starts a
// literal; the literal is a FLOAT exactly when a decimal point was
// seen, and a bare "." is invalid.
//
// Position Tracking:
//
// The lexer counts lines and columns as characters are consumed so
// every token carries the location of its first character. Newlines
// increment the line counter and reset the column.
//
// The lexer never aborts: unrecognized characters produce INVALID
// tokens the parser turns into diagnostics, and once the input is
// exhausted every further request yields EOF.
package lexer
