package value

import (
	irvalue "github.com/llir/llvm/ir/value"

	"github.com/elqu/hxwk/internal/types"
)

// Handle pairs an IR value with its semantic type. Handles are the
// currency of lowering: every expression and statement lowers to one.
// The IR value is a borrowing reference owned by the module; handles
// are freely copyable for the module's lifetime.
//
// A handle of type void carries no IR value. The zero Handle (nil type)
// marks a lowering failure and must never be bound or emitted.
type Handle struct {
	V irvalue.Value
	T *types.Type
}

// Valid reports whether the handle carries a type, i.e. whether
// lowering of the producing node succeeded.
func (h Handle) Valid() bool { return h.T != nil }

// VoidHandle returns the sentinel value of an empty scope or a
// statement with no value.
func VoidHandle() Handle { return Handle{T: types.Void} }
