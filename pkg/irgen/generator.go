package irgen

import (
	"io"

	"github.com/llir/llvm/ir"
	irtypes "github.com/llir/llvm/ir/types"

	"github.com/elqu/hxwk/internal/types"
	"github.com/elqu/hxwk/internal/value"
)

// Generator lowers the typed syntax tree into an LLVM IR module. It
// owns the module under construction, the scoped symbol table, and the
// insertion state (current function and basic block) that plays the
// role of an IR builder's insert point.
type Generator struct {
	module *ir.Module    // The module receiving all lowered IR
	scopes *value.Scopes // Lexically scoped name -> handle bindings

	fn    *ir.Func  // Function currently being defined, nil between definitions
	block *ir.Block // Insertion point for new instructions

	nstr int // Counter naming string-literal globals
	nblk int // Counter naming the blocks of an if diamond
}

// New creates a generator with a fresh module carrying the given
// source name. The global scope frame is populated with the single
// builtin: the external variadic declaration i32 printf(i8*, ...).
func New(name string) *Generator {
	m := ir.NewModule()
	m.SourceFilename = name

	g := &Generator{
		module: m,
		scopes: value.NewScopes(),
	}

	printf := m.NewFunc("printf", irtypes.I32,
		ir.NewParam("format", irtypes.NewPointer(irtypes.I8)))
	printf.Sig.Variadic = true

	g.scopes.DefineHere("printf", value.Handle{
		V: printf,
		T: types.NewFunction([]*types.Type{types.StrLit}, types.Int32, true),
	})

	return g
}

// Module returns the module under construction.
func (g *Generator) Module() *ir.Module {
	return g.module
}

// Lower lowers one top-level statement into the module. On failure the
// error carries the diagnostic and a definition whose body failed is
// erased from the module; string-literal globals it created stay, and a
// function failing verification is retained. Other top-level statements
// are unaffected.
func (g *Generator) Lower(stmt types.Statement) error {
	_, err := g.lowerStatement(stmt)

	return err
}

// Emit serializes the module as textual LLVM assembly.
func (g *Generator) Emit(w io.Writer) error {
	_, err := io.WriteString(w, g.module.String())

	return err
}

// irType translates a semantic type to its LLVM counterpart for use in
// a function signature. Only the four simple value types have a
// signature representation.
func irType(t *types.Type) (irtypes.Type, bool) {
	switch t.Kind {
	case types.TypeVoid:
		return irtypes.Void, true
	case types.TypeBool:
		return irtypes.I1, true
	case types.TypeInt32:
		return irtypes.I32, true
	case types.TypeDouble:
		return irtypes.Double, true
	default:
		return nil, false
	}
}

// eraseFunction removes a function from the module, dropping any
// partially emitted body. Used when lowering of a definition fails
// after the function was created.
func (g *Generator) eraseFunction(fn *ir.Func) {
	fn.Blocks = nil
	for i, f := range g.module.Funcs {
		if f == fn {
			g.module.Funcs = append(g.module.Funcs[:i], g.module.Funcs[i+1:]...)

			break
		}
	}
}
