package irgen

import (
	"fmt"

	"github.com/llir/llvm/ir"

	"github.com/elqu/hxwk/internal/types"
	"github.com/elqu/hxwk/internal/value"
)

// lowerScope lowers a braced block inside its own symbol frame. The
// setup callback, when present, runs after the frame is entered and is
// used by function bodies to bind their parameters. The scope's value
// is the value of its last statement, or the void sentinel for an
// empty scope. The frame is exited on every path, including errors.
func (g *Generator) lowerScope(sc *types.ScopeExpr, setup func()) (value.Handle, error) {
	g.scopes.Enter()
	defer g.scopes.Exit()

	if setup != nil {
		setup()
	}

	last := value.VoidHandle()
	for _, stmt := range sc.Body {
		h, err := g.lowerStatement(stmt)
		if err != nil {
			return value.Handle{}, err
		}
		last = h
	}

	return last, nil
}

// lowerIf lowers an if/else expression to a CFG diamond:
//
//	        br i1 %cond, label %then, label %else
//	then:   ...   br label %end
//	else:   ...   br label %end
//	end:    %v = phi [ %tv, %then-exit ], [ %ev, %else-exit ]
//
// The condition must be bool and both arms must lower to the same
// type, which becomes the type of the phi. The arms are lowered in
// their own blocks; the block the lowering ends up in may differ from
// the one it started in (nested ifs), so the phi's incoming edges use
// the recorded exit blocks.
func (g *Generator) lowerIf(expr *types.IfExpr) (value.Handle, error) {
	cond, err := g.lowerExpr(expr.Cond)
	if err != nil {
		return value.Handle{}, err
	}
	if cond.T.Kind != types.TypeBool {
		return value.Handle{}, errorAt(expr.Cond.Position(),
			"if condition must be bool, got %s", cond.T)
	}

	n := g.nblk
	g.nblk++

	// The then block joins the function now; else and end stay
	// detached until their predecessors exist.
	thenBlock := g.fn.NewBlock(fmt.Sprintf("if.then.%d", n))
	elseBlock := ir.NewBlock(fmt.Sprintf("if.else.%d", n))
	endBlock := ir.NewBlock(fmt.Sprintf("if.end.%d", n))

	g.block.NewCondBr(cond.V, thenBlock, elseBlock)

	g.block = thenBlock
	thenVal, err := g.lowerScope(expr.Then, nil)
	if err != nil {
		return value.Handle{}, err
	}
	thenExit := g.block
	thenExit.NewBr(endBlock)

	elseBlock.Parent = g.fn
	g.fn.Blocks = append(g.fn.Blocks, elseBlock)
	g.block = elseBlock
	elseVal, err := g.lowerScope(expr.Else, nil)
	if err != nil {
		return value.Handle{}, err
	}
	elseExit := g.block
	elseExit.NewBr(endBlock)

	if !thenVal.T.Equal(elseVal.T) {
		return value.Handle{}, errorAt(expr.Position(),
			"Types of then and else scope do not match")
	}

	endBlock.Parent = g.fn
	g.fn.Blocks = append(g.fn.Blocks, endBlock)
	g.block = endBlock

	// Two void arms have nothing to merge
	if thenVal.T.Kind == types.TypeVoid {
		return value.VoidHandle(), nil
	}

	phi := endBlock.NewPhi(
		ir.NewIncoming(thenVal.V, thenExit),
		ir.NewIncoming(elseVal.V, elseExit),
	)

	return value.Handle{V: phi, T: thenVal.T}, nil
}
