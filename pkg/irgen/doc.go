// Package irgen lowers the typed Hexenwerk syntax tree to LLVM IR.
//
// The generator performs a single type-checked traversal of each
// top-level statement, producing (ir value, semantic type) handles for
// every node. Three responsibilities live here:
//
//   - Symbol management: a lexically scoped symbol table whose frames
//     mirror the source's braces. Function bodies and if arms get their
//     own frames; inner bindings shadow outer ones. The global frame
//     carries the single builtin, the variadic i32 printf(i8*, ...).
//
//   - Typing: binary operands are promoted to the join of their types
//     on the order bool < i32 < double, with the cast instruction
//     selected per (source, target) pair. Calls check arity against the
//     callee's signature, with variadic callees accepting extras.
//     Definitions check the body's type against the declared return.
//
//   - Control flow: an if/else expression becomes a CFG diamond whose
//     merge point is a phi over the two arm values.
//
// Failure discipline follows the rest of the compiler: the first error
// inside a function definition aborts that definition, the partially
// lowered function is erased from the module (string-literal globals it
// created stay), and lowering continues with the next
// top-level statement. Lowered definitions are checked by a structural
// verifier (terminators, return/signature agreement, phi edge counts);
// a verifier failure is reported but the function is retained for
// inspection in the emitted module.
//
// File layout follows the dispatcher split used elsewhere in the
// module: generator.go holds state and module-level concerns,
// expressions.go and operators.go the expression lowering,
// control_flow.go scopes and the if diamond, statements.go the
// statement and function forms.
package irgen
