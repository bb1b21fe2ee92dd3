package irgen

import (
	"github.com/llir/llvm/ir"
	irvalue "github.com/llir/llvm/ir/value"

	"github.com/elqu/hxwk/internal/types"
	"github.com/elqu/hxwk/internal/value"
)

// lowerStatement dispatches on the statement variant. The statement's
// value is the expression's value for expression statements and the
// bound value for let bindings; declarations yield the function.
func (g *Generator) lowerStatement(stmt types.Statement) (value.Handle, error) {
	switch stmt := stmt.(type) {
	case types.Expr:
		return g.lowerExpr(stmt)

	case *types.VarDecl:
		return g.lowerVarDecl(stmt)

	case *types.FnDecl:
		return g.lowerFnDecl(stmt)

	case *types.FnDef:
		return g.lowerFnDef(stmt)

	default:
		// Unreachable for trees built by the parser
		return value.Handle{}, errorAt(stmt.Position(),
			"cannot lower statement of type %T", stmt)
	}
}

// lowerVarDecl lowers the right-hand side and binds the name to the
// resulting handle in the current frame. Shadowing an outer binding is
// allowed. The value is named after the identifier for readability of
// the emitted IR.
func (g *Generator) lowerVarDecl(decl *types.VarDecl) (value.Handle, error) {
	h, err := g.lowerExpr(decl.RHS)
	if err != nil {
		return value.Handle{}, err
	}

	// Constants have no name slot; instructions and arguments do
	if named, ok := h.V.(irvalue.Named); ok {
		named.SetName(decl.Name)
	}

	g.scopes.DefineHere(decl.Name, h)

	return h, nil
}

// lowerFnDecl creates the function with external linkage from the
// declared signature and binds its name in the current frame. The
// declared parameter and return types are honored in the emitted
// function type.
func (g *Generator) lowerFnDecl(decl *types.FnDecl) (value.Handle, error) {
	if _, exists := g.scopes.LookupLocal(decl.Name); exists {
		return value.Handle{}, errorAt(decl.Position(),
			"redeclaration of %q", decl.Name)
	}

	retType, ok := irType(decl.Ret)
	if !ok {
		return value.Handle{}, errorAt(decl.Position(),
			"invalid return type %s in signature of %q", decl.Ret, decl.Name)
	}

	params := make([]*ir.Param, 0, len(decl.Params))
	paramTypes := make([]*types.Type, 0, len(decl.Params))
	for _, p := range decl.Params {
		pt, ok := irType(p.Type)
		if !ok || p.Type.Kind == types.TypeVoid {
			return value.Handle{}, errorAt(decl.Position(),
				"invalid parameter type %s in signature of %q", p.Type, decl.Name)
		}
		params = append(params, ir.NewParam(p.Name, pt))
		paramTypes = append(paramTypes, p.Type)
	}

	fn := g.module.NewFunc(decl.Name, retType, params...)

	h := value.Handle{
		V: fn,
		T: types.NewFunction(paramTypes, decl.Ret, false),
	}
	g.scopes.DefineHere(decl.Name, h)

	return h, nil
}

// lowerFnDef lowers a function definition. A prior declaration of the
// same name is completed in place; a name already bound to a function
// with a body is a redefinition error. The body is lowered in a fresh
// scope frame whose setup binds the parameters. On any failure the
// function is erased from the module; a verifier failure is reported
// but the function is retained.
func (g *Generator) lowerFnDef(def *types.FnDef) (value.Handle, error) {
	var (
		fn  *ir.Func
		fnT *types.Type
	)

	if h, ok := g.scopes.Lookup(def.Decl.Name); ok {
		if h.T.Kind != types.TypeFunction {
			return value.Handle{}, errorAt(def.Position(),
				"%q is already bound and is not a function", def.Decl.Name)
		}
		prev, _ := h.V.(*ir.Func)
		if prev == nil || len(prev.Blocks) > 0 {
			return value.Handle{}, errorAt(def.Position(),
				"redefinition of function %q", def.Decl.Name)
		}
		declared := make([]*types.Type, 0, len(def.Decl.Params))
		for _, p := range def.Decl.Params {
			declared = append(declared, p.Type)
		}
		if !h.T.Equal(types.NewFunction(declared, def.Decl.Ret, false)) {
			return value.Handle{}, errorAt(def.Position(),
				"definition of %q does not match its declaration %s", def.Decl.Name, h.T)
		}
		fn, fnT = prev, h.T
	} else {
		h, err := g.lowerFnDecl(def.Decl)
		if err != nil {
			return value.Handle{}, err
		}
		fn = h.V.(*ir.Func)
		fnT = h.T
	}

	g.fn = fn
	g.nblk = 0
	g.block = fn.NewBlock("entry")
	defer func() {
		g.fn = nil
		g.block = nil
	}()

	body, err := g.lowerScope(def.Body, func() {
		for i, arg := range fn.Params {
			g.scopes.DefineHere(def.Decl.Params[i].Name, value.Handle{
				V: arg,
				T: def.Decl.Params[i].Type,
			})
		}
	})
	if err != nil {
		g.eraseFunction(fn)

		return value.Handle{}, err
	}

	if def.Decl.Ret.Kind == types.TypeVoid {
		g.block.NewRet(nil)
	} else {
		if !body.T.Equal(def.Decl.Ret) {
			g.eraseFunction(fn)

			return value.Handle{}, errorAt(def.Position(),
				"function %q returns %s but its body has type %s",
				def.Decl.Name, def.Decl.Ret, body.T)
		}
		g.block.NewRet(body.V)
	}

	if verr := verifyFunc(fn); verr != nil {
		return value.Handle{}, errorAt(def.Position(), "%s", verr)
	}

	return value.Handle{V: fn, T: fnT}, nil
}
