package irgen

import (
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"
	irvalue "github.com/llir/llvm/ir/value"

	"github.com/elqu/hxwk/internal/types"
	"github.com/elqu/hxwk/internal/value"
)

// lowerBinary lowers a binary operation. Both operands must be
// arithmetic; they are promoted to the join of their types on the
// order bool < i32 < double, and the instruction variant is selected
// by the promoted type. The comparison operator yields bool.
func (g *Generator) lowerBinary(expr *types.BinaryExpr) (value.Handle, error) {
	lhs, err := g.lowerExpr(expr.Left)
	if err != nil {
		return value.Handle{}, err
	}
	rhs, err := g.lowerExpr(expr.Right)
	if err != nil {
		return value.Handle{}, err
	}

	if expr.Op == types.OpAssign {
		return value.Handle{}, errorAt(expr.Position(),
			"operator %s is not supported in expressions", expr.Op)
	}

	if !lhs.T.IsArithmetic() || !rhs.T.IsArithmetic() {
		return value.Handle{}, errorAt(expr.Position(),
			"operands of %s must be arithmetic, got %s and %s",
			expr.Op, lhs.T, rhs.T)
	}

	res := types.Promote(lhs.T, rhs.T)
	lv := g.cast(lhs, res)
	rv := g.cast(rhs, res)

	switch expr.Op {
	case types.OpAdd:
		if res.Kind == types.TypeDouble {
			return value.Handle{V: g.block.NewFAdd(lv, rv), T: res}, nil
		}

		return value.Handle{V: g.block.NewAdd(lv, rv), T: res}, nil

	case types.OpSub:
		if res.Kind == types.TypeDouble {
			return value.Handle{V: g.block.NewFSub(lv, rv), T: res}, nil
		}

		return value.Handle{V: g.block.NewSub(lv, rv), T: res}, nil

	case types.OpMul:
		if res.Kind == types.TypeDouble {
			return value.Handle{V: g.block.NewFMul(lv, rv), T: res}, nil
		}

		return value.Handle{V: g.block.NewMul(lv, rv), T: res}, nil

	case types.OpDiv:
		// Division is signed for i32, unsigned for bool
		switch res.Kind {
		case types.TypeDouble:
			return value.Handle{V: g.block.NewFDiv(lv, rv), T: res}, nil
		case types.TypeInt32:
			return value.Handle{V: g.block.NewSDiv(lv, rv), T: res}, nil
		default:
			return value.Handle{V: g.block.NewUDiv(lv, rv), T: res}, nil
		}

	case types.OpLT:
		// Comparison is unordered for doubles, signed for i32,
		// unsigned for bool; the result is always bool
		switch res.Kind {
		case types.TypeDouble:
			return value.Handle{V: g.block.NewFCmp(enum.FPredULT, lv, rv), T: types.Bool}, nil
		case types.TypeInt32:
			return value.Handle{V: g.block.NewICmp(enum.IPredSLT, lv, rv), T: types.Bool}, nil
		default:
			return value.Handle{V: g.block.NewICmp(enum.IPredULT, lv, rv), T: types.Bool}, nil
		}

	default:
		return value.Handle{}, errorAt(expr.Position(),
			"unknown binary operator %s", expr.Op)
	}
}

// cast emits the conversion of a handle's value to the given
// arithmetic target type. The cast instruction is chosen by the
// (source, target) pair; an identity conversion emits nothing.
func (g *Generator) cast(h value.Handle, to *types.Type) irvalue.Value {
	if h.T.Kind == to.Kind {
		return h.V
	}

	switch h.T.Kind {
	case types.TypeBool:
		if to.Kind == types.TypeInt32 {
			return g.block.NewZExt(h.V, irtypes.I32)
		}

		return g.block.NewUIToFP(h.V, irtypes.Double)

	case types.TypeInt32:
		if to.Kind == types.TypeBool {
			return g.block.NewTrunc(h.V, irtypes.I1)
		}

		return g.block.NewSIToFP(h.V, irtypes.Double)

	default: // double
		if to.Kind == types.TypeInt32 {
			return g.block.NewFPToSI(h.V, irtypes.I32)
		}

		return g.block.NewFPToUI(h.V, irtypes.I1)
	}
}
