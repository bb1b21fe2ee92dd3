// Package types defines the data model shared by the compiler stages:
// the abstract syntax tree produced by the parser and the semantic type
// system applied during lowering.
//
// AST Design:
//
// The tree is a closed set of variants behind two marker interfaces:
//   - Statement: anything that may appear in a scope body
//   - Expr: value-bearing nodes; every Expr is also a Statement
//
// Each node exclusively owns its children, carries the source position
// of the token that introduced it, and renders a diagnostic
// pseudo-source form through String(). Binary expressions render as
// "(lhs [Operator N] rhs)" where N is the operator's numeric tag.
//
// Type System:
//
// Types are a closed tagged set: void, bool, i32, double, the internal
// string-literal type, and function types. Equality is structural. The
// three arithmetic kinds form the total order bool < i32 < double used
// by Promote to select the target type of mixed-type arithmetic.
package types
