package irgen

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"
	irvalue "github.com/llir/llvm/ir/value"

	"github.com/elqu/hxwk/internal/types"
	"github.com/elqu/hxwk/internal/value"
)

// lowerExpr is the central expression dispatcher. It pattern-matches
// on the AST variant and produces the (ir value, type) handle for the
// expression, emitting instructions at the current insertion point.
func (g *Generator) lowerExpr(expr types.Expr) (value.Handle, error) {
	switch expr := expr.(type) {
	case *types.IntExpr:
		return value.Handle{
			V: constant.NewInt(irtypes.I32, int64(expr.Value)),
			T: types.Int32,
		}, nil

	case *types.FloatExpr:
		return value.Handle{
			V: constant.NewFloat(irtypes.Double, expr.Value),
			T: types.Double,
		}, nil

	case *types.StringExpr:
		return g.lowerString(expr), nil

	case *types.IdentExpr:
		// Variable reference: resolve through the scope stack
		h, ok := g.scopes.Lookup(expr.Name)
		if !ok {
			return value.Handle{}, errorAt(expr.Position(),
				"unknown identifier %q", expr.Name)
		}

		return h, nil

	case *types.BinaryExpr:
		return g.lowerBinary(expr)

	case *types.CallExpr:
		return g.lowerCall(expr)

	case *types.ScopeExpr:
		return g.lowerScope(expr, nil)

	case *types.IfExpr:
		return g.lowerIf(expr)

	default:
		// Unreachable for trees built by the parser
		return value.Handle{}, errorAt(expr.Position(),
			"cannot lower expression of type %T", expr)
	}
}

// lowerString materializes a string literal as a private NUL-terminated
// global byte array and yields a pointer to its first character.
func (g *Generator) lowerString(expr *types.StringExpr) value.Handle {
	name := fmt.Sprintf(".str.%d", g.nstr)
	g.nstr++

	arr := constant.NewCharArrayFromString(expr.Value + "\x00")
	glob := g.module.NewGlobalDef(name, arr)
	glob.Linkage = enum.LinkagePrivate
	glob.UnnamedAddr = enum.UnnamedAddrUnnamedAddr
	glob.Immutable = true

	zero := constant.NewInt(irtypes.I64, 0)
	ptr := constant.NewGetElementPtr(glob.ContentType, glob, zero, zero)

	return value.Handle{V: ptr, T: types.StrLit}
}

// lowerCall lowers a function call. The callee must be bound to a
// function; the argument count must equal the declared parameter count
// unless the callee is variadic, in which case at least the declared
// parameters must be supplied.
func (g *Generator) lowerCall(expr *types.CallExpr) (value.Handle, error) {
	callee, ok := g.scopes.Lookup(expr.Name)
	if !ok {
		return value.Handle{}, errorAt(expr.Position(),
			"call of unknown function %q", expr.Name)
	}
	if callee.T.Kind != types.TypeFunction {
		return value.Handle{}, errorAt(expr.Position(),
			"%q is not a function", expr.Name)
	}

	nparams := len(callee.T.Params)
	if callee.T.Variadic {
		if len(expr.Args) < nparams {
			return value.Handle{}, errorAt(expr.Position(),
				"%q expects at least %d arguments, got %d",
				expr.Name, nparams, len(expr.Args))
		}
	} else if len(expr.Args) != nparams {
		return value.Handle{}, errorAt(expr.Position(),
			"%q expects %d arguments, got %d",
			expr.Name, nparams, len(expr.Args))
	}

	args := make([]irvalue.Value, 0, len(expr.Args))
	for _, argNode := range expr.Args {
		arg, err := g.lowerExpr(argNode)
		if err != nil {
			return value.Handle{}, err
		}
		args = append(args, arg.V)
	}

	call := g.block.NewCall(callee.V, args...)

	ret := callee.T.Ret
	if ret.Kind == types.TypeVoid {
		return value.Handle{T: types.Void}, nil
	}

	return value.Handle{V: call, T: ret}, nil
}
