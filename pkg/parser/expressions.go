package parser

import (
	"strconv"

	"github.com/elqu/hxwk/internal/types"
	"github.com/elqu/hxwk/pkg/lexer"
)

// parseExpression parses a full expression starting at the current
// token: a primary followed by a precedence climb over any binary
// operators binding at least as tightly as minPrec.
func (p *Parser) parseExpression(minPrec int) types.Expr {
	lhs := p.parsePrimary()
	if lhs == nil {
		return nil
	}

	return p.parseBinaryRHS(minPrec, lhs)
}

// parseBinaryRHS implements precedence climbing. Given a parsed lhs
// and a minimum precedence:
//  1. Look at the pending operator; if it is not a binary operator or
//     binds weaker than minPrec, the climb is done.
//  2. Consume the operator and parse the primary to its right.
//  3. If the following operator binds tighter, or equally with a
//     right-associative current operator, climb into the rhs first.
//  4. Fold lhs and rhs into a binary node and continue.
func (p *Parser) parseBinaryRHS(minPrec int, lhs types.Expr) types.Expr {
	for {
		info, ok := lookupOperator(p.peek.Type)
		if !ok || info.prec < minPrec {
			return lhs
		}

		opLine, opCol := p.peek.Line, p.peek.Column
		p.advance() // current token is the operator
		p.advance() // current token starts the rhs primary

		rhs := p.parsePrimary()
		if rhs == nil {
			return nil
		}

		next, nextOK := lookupOperator(p.peek.Type)
		if nextOK && (next.prec > info.prec ||
			(next.prec == info.prec && info.assoc == assocRight)) {
			// A left-associative operator keeps later operators of its
			// own precedence out of the nested climb
			sub := info.prec
			if info.assoc == assocLeft {
				sub++
			}
			rhs = p.parseBinaryRHS(sub, rhs)
			if rhs == nil {
				return nil
			}
		}

		lhs = &types.BinaryExpr{
			NodeAt: types.At(opLine, opCol),
			Left:   lhs,
			Op:     info.op,
			Right:  rhs,
		}
	}
}

// parsePrimary parses the atoms of the expression grammar: literals,
// identifiers and calls, parenthesized expressions, scopes, and if
// expressions. Entered with the current token on the primary's first
// token; on success the current token is the primary's last token.
func (p *Parser) parsePrimary() types.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_INT:
		return p.parseInt()
	case lexer.TOKEN_FLOAT:
		return p.parseFloat()
	case lexer.TOKEN_STRING:
		return &types.StringExpr{
			NodeAt: types.At(p.cur.Line, p.cur.Column),
			Value:  p.cur.Literal,
		}

	case lexer.TOKEN_IDENT:
		// An identifier followed by '(' is a call
		if p.peekIs(lexer.TOKEN_LPAREN) {
			return p.parseCall()
		}

		return &types.IdentExpr{
			NodeAt: types.At(p.cur.Line, p.cur.Column),
			Name:   p.cur.Literal,
		}

	case lexer.TOKEN_LPAREN:
		return p.parseGrouped()

	case lexer.TOKEN_LBRACE:
		if sc := p.parseScope(); sc != nil {
			return sc
		}

		return nil

	case lexer.TOKEN_IF:
		return p.parseIf()

	default:
		p.unexpected(p.cur, "expected an expression")

		return nil
	}
}

// parseInt parses a 32-bit integer literal from its token text.
func (p *Parser) parseInt() types.Expr {
	val, err := strconv.ParseInt(p.cur.Literal, 10, 32)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"could not parse %q as i32", p.cur.Literal)

		return nil
	}

	return &types.IntExpr{
		NodeAt: types.At(p.cur.Line, p.cur.Column),
		Value:  int32(val),
	}
}

// parseFloat parses a double literal from its token text.
func (p *Parser) parseFloat() types.Expr {
	val, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.errors.Addf(p.cur.Line, p.cur.Column,
			"could not parse %q as double", p.cur.Literal)

		return nil
	}

	return &types.FloatExpr{
		NodeAt: types.At(p.cur.Line, p.cur.Column),
		Value:  val,
	}
}

// parseGrouped parses a parenthesized expression. Entered with the
// current token on '('; leaves it on the matching ')'.
func (p *Parser) parseGrouped() types.Expr {
	p.advance()

	expr := p.parseExpression(0)
	if expr == nil {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return expr
}

// parseCall parses "NAME(arg, ...)". Entered with the current token on
// the callee name and '(' pending; leaves the current token on ')'.
func (p *Parser) parseCall() types.Expr {
	call := &types.CallExpr{
		NodeAt: types.At(p.cur.Line, p.cur.Column),
		Name:   p.cur.Literal,
	}

	p.advance() // current token is '('

	if p.peekIs(lexer.TOKEN_RPAREN) {
		p.advance()

		return call
	}

	for {
		p.advance()
		arg := p.parseExpression(0)
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)

		if !p.peekIs(lexer.TOKEN_COMMA) {
			break
		}
		p.advance()
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil
	}

	return call
}

// parseIf parses "if COND { ... } else { ... }". The else arm is
// mandatory: the if is an expression and both arms must produce a
// value of the same type, which the lowerer checks. Entered with the
// current token on 'if'.
func (p *Parser) parseIf() types.Expr {
	at := types.At(p.cur.Line, p.cur.Column)

	p.advance()
	cond := p.parseExpression(0)
	if cond == nil {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	then := p.parseScope()
	if then == nil {
		return nil
	}

	if !p.peekIs(lexer.TOKEN_ELSE) {
		p.errors.Addf(p.peek.Line, p.peek.Column,
			"if expression requires an 'else' arm")

		return nil
	}
	p.advance()

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	els := p.parseScope()
	if els == nil {
		return nil
	}

	return &types.IfExpr{NodeAt: at, Cond: cond, Then: then, Else: els}
}
