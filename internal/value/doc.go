// Package value defines the values threaded through IR lowering: the
// Handle pairing an LLVM IR value with its semantic type, and the
// Scopes symbol table binding names to handles.
//
// Scoping Model:
//
// Scopes is an ordered stack of frames. Frame zero is the global frame,
// populated with the builtin bindings (printf) when the lowerer is
// constructed and immutable thereafter by convention. A frame is pushed
// for every scope the lowerer enters, including function bodies and the
// arms of if expressions, and popped on every exit path. Name lookup
// scans from the innermost frame outward, giving inner bindings
// shadowing semantics; insertion always targets the innermost frame.
//
// Handles store borrowing references to IR values owned by the module,
// so copying a Handle is cheap and safe for the module's lifetime.
package value
