package irgen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	irtypes "github.com/llir/llvm/ir/types"
)

// verifyFunc performs structural verification of a lowered function:
// every block must carry a terminator, every ret must agree with the
// signature's return type, and every phi must have exactly one
// incoming edge per predecessor. Declarations verify trivially.
func verifyFunc(fn *ir.Func) error {
	if len(fn.Blocks) == 0 {
		return nil
	}

	preds := predecessors(fn)

	for _, block := range fn.Blocks {
		if block.Term == nil {
			return fmt.Errorf("verifier: block %q of %q has no terminator",
				block.Name(), fn.Name())
		}

		if ret, ok := block.Term.(*ir.TermRet); ok {
			if err := verifyRet(fn, ret); err != nil {
				return err
			}
		}

		for _, inst := range block.Insts {
			phi, ok := inst.(*ir.InstPhi)
			if !ok {
				continue
			}
			if err := verifyPhi(fn, block, phi, preds[block]); err != nil {
				return err
			}
		}
	}

	return nil
}

// verifyRet checks a return against the function signature.
func verifyRet(fn *ir.Func, ret *ir.TermRet) error {
	if ret.X == nil {
		if !irtypes.Equal(fn.Sig.RetType, irtypes.Void) {
			return fmt.Errorf("verifier: %q returns void but is declared %v",
				fn.Name(), fn.Sig.RetType)
		}

		return nil
	}
	if !irtypes.Equal(ret.X.Type(), fn.Sig.RetType) {
		return fmt.Errorf("verifier: %q returns %v but is declared %v",
			fn.Name(), ret.X.Type(), fn.Sig.RetType)
	}

	return nil
}

// verifyPhi checks that a phi's incoming edges exactly cover the
// block's predecessors and carry the phi's type.
func verifyPhi(fn *ir.Func, block *ir.Block, phi *ir.InstPhi, preds []*ir.Block) error {
	if len(phi.Incs) != len(preds) {
		return fmt.Errorf("verifier: phi in block %q of %q has %d incoming edges for %d predecessors",
			block.Name(), fn.Name(), len(phi.Incs), len(preds))
	}

	for _, inc := range phi.Incs {
		found := false
		for _, pred := range preds {
			if inc.Pred == pred {
				found = true

				break
			}
		}
		if !found {
			return fmt.Errorf("verifier: phi in block %q of %q has an edge from a non-predecessor",
				block.Name(), fn.Name())
		}
		if !irtypes.Equal(inc.X.Type(), phi.Type()) {
			return fmt.Errorf("verifier: phi in block %q of %q mixes incoming types",
				block.Name(), fn.Name())
		}
	}

	return nil
}

// predecessors computes the predecessor sets of all blocks from the
// terminators' successor lists.
func predecessors(fn *ir.Func) map[*ir.Block][]*ir.Block {
	preds := make(map[*ir.Block][]*ir.Block, len(fn.Blocks))
	for _, block := range fn.Blocks {
		if block.Term == nil {
			continue
		}
		for _, succ := range block.Term.Succs() {
			preds[succ] = append(preds[succ], block)
		}
	}

	return preds
}
