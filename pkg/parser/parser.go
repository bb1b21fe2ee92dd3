package parser

import (
	"github.com/elqu/hxwk/internal/types"
	"github.com/elqu/hxwk/pkg/lexer"
)

// Parser implements a recursive descent parser for Hexenwerk with
// precedence climbing for binary expressions. It transforms the
// lexer's token stream into an Abstract Syntax Tree one top-level
// statement at a time.
type Parser struct {
	l      *lexer.Lexer // The lexer providing the token stream
	cur    lexer.Token  // Current token being processed
	peek   lexer.Token  // Next token (lookahead for parsing decisions)
	errors *ParseErrors // Accumulated parsing errors
}

// New creates a new parser instance owning the given lexer.
// The parser is primed with the first two tokens so the cur/peek
// window is valid before the first Parse call.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: &ParseErrors{},
	}
	// Prime the cur/peek window
	p.advance()
	p.advance()

	return p
}

// Parse returns the next top-level statement, or (nil, nil) once the
// end of input is reached. Stray semicolons between top-level
// statements are skipped. The only construct permitted at the top
// level is a function declaration or definition.
func (p *Parser) Parse() (types.Statement, error) {
	for p.curIs(lexer.TOKEN_SEMICOLON) {
		p.advance()
	}

	if p.curIs(lexer.TOKEN_EOF) {
		return nil, nil
	}

	if !p.curIs(lexer.TOKEN_FN) {
		p.unexpected(p.cur, "expected 'fn' at top level")

		return nil, p.errors
	}

	stmt := p.parseFn()
	if stmt == nil {
		return nil, p.errors
	}

	// Step past the statement's final token so the next call starts
	// fresh.
	p.advance()

	return stmt, nil
}

// Errors returns the accumulated parse errors.
func (p *Parser) Errors() *ParseErrors {
	return p.errors
}

// advance shifts the token window forward by one position: cur becomes
// the previous peek, peek becomes the next token from the lexer.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// parseFn parses a function declaration or definition. Both share the
// prefix "fn NAME(NAME: TYPE, ...) -> TYPE"; a following ';' makes a
// declaration, a '{' opens a definition body. Entered with the current
// token on 'fn'.
func (p *Parser) parseFn() types.Statement {
	at := types.At(p.cur.Line, p.cur.Column)

	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.cur.Literal

	if !p.expectPeek(lexer.TOKEN_LPAREN) {
		return nil
	}

	params, ok := p.parseParams()
	if !ok {
		return nil
	}

	if !p.expectPeek(lexer.TOKEN_RARROW) {
		return nil
	}

	ret, ok := p.parseType()
	if !ok {
		return nil
	}

	decl := &types.FnDecl{NodeAt: at, Name: name, Params: params, Ret: ret}

	// A declaration ends here; a definition continues with a body.
	if p.peekIs(lexer.TOKEN_SEMICOLON) {
		p.advance()

		return decl
	}

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}

	body := p.parseScope()
	if body == nil {
		return nil
	}

	return &types.FnDef{NodeAt: at, Decl: decl, Body: body}
}

// parseParams parses the parenthesized parameter list of a function
// signature. Entered with the current token on '('; on success the
// current token is the closing ')'. The list may be empty.
func (p *Parser) parseParams() ([]types.Param, bool) {
	var params []types.Param

	if p.peekIs(lexer.TOKEN_RPAREN) {
		p.advance()

		return params, true
	}

	for {
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			return nil, false
		}
		name := p.cur.Literal

		if !p.expectPeek(lexer.TOKEN_COLON) {
			return nil, false
		}

		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}

		params = append(params, types.Param{Name: name, Type: typ})

		if !p.peekIs(lexer.TOKEN_COMMA) {
			break
		}
		p.advance()
	}

	if !p.expectPeek(lexer.TOKEN_RPAREN) {
		return nil, false
	}

	return params, true
}

// parseType parses a type name in a signature position. Type names are
// ordinary identifiers (bool, i32, double, void) resolved here.
func (p *Parser) parseType() (*types.Type, bool) {
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil, false
	}

	t, ok := types.Named(p.cur.Literal)
	if !ok {
		p.errors.Addf(p.cur.Line, p.cur.Column, "unknown type %q", p.cur.Literal)

		return nil, false
	}

	return t, true
}

// parseScope parses a braced statement block. Entered with the current
// token on '{'; on success the current token is the closing '}'.
// Statements are separated by ';'; the separator is optional before
// the closing brace, and stray semicolons are skipped.
func (p *Parser) parseScope() *types.ScopeExpr {
	sc := &types.ScopeExpr{NodeAt: types.At(p.cur.Line, p.cur.Column)}

	for {
		if p.peekIs(lexer.TOKEN_RBRACE) {
			p.advance()

			return sc
		}
		if p.peekIs(lexer.TOKEN_EOF) {
			p.errors.Addf(p.peek.Line, p.peek.Column, "expected '}' to close scope")

			return nil
		}

		p.advance()
		if p.curIs(lexer.TOKEN_SEMICOLON) {
			continue
		}

		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		sc.Body = append(sc.Body, stmt)

		if p.peekIs(lexer.TOKEN_SEMICOLON) {
			p.advance()

			continue
		}
		if !p.peekIs(lexer.TOKEN_RBRACE) {
			p.errors.Addf(p.peek.Line, p.peek.Column,
				"expected ';' or '}' after statement, got %v", p.peek.Type)

			return nil
		}
	}
}

// parseStatement parses one statement inside a scope: a let binding or
// a bare expression. Entered with the current token on the statement's
// first token.
func (p *Parser) parseStatement() types.Statement {
	if p.curIs(lexer.TOKEN_LET) {
		if vd := p.parseVarDecl(); vd != nil {
			return vd
		}

		return nil
	}

	expr := p.parseExpression(0)
	if expr == nil {
		return nil
	}

	return expr
}

// parseVarDecl parses "let NAME = EXPR". Entered with the current
// token on 'let'.
func (p *Parser) parseVarDecl() *types.VarDecl {
	at := types.At(p.cur.Line, p.cur.Column)

	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	name := p.cur.Literal

	if !p.expectPeek(lexer.TOKEN_ASSIGN) {
		return nil
	}

	p.advance()
	rhs := p.parseExpression(0)
	if rhs == nil {
		return nil
	}

	return &types.VarDecl{NodeAt: at, Name: name, RHS: rhs}
}

// Helper methods for token inspection and parser state management.

// curIs checks if the current token matches the specified type.
func (p *Parser) curIs(t lexer.TokenType) bool {
	return p.cur.Type == t
}

// peekIs checks if the next token matches the specified type.
func (p *Parser) peekIs(t lexer.TokenType) bool {
	return p.peek.Type == t
}

// expectPeek verifies that the next token matches the expected type
// and consumes it. On mismatch a diagnostic is recorded with the
// offending token's position and false is returned.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()

		return true
	}

	p.unexpected(p.peek, "expected next token to be "+t.String())

	return false
}

// unexpected records a diagnostic for a token that does not fit the
// grammar. Invalid tokens from the lexer get their own message so the
// user sees the offending character rather than a grammar complaint.
func (p *Parser) unexpected(tok lexer.Token, context string) {
	if tok.Type == lexer.TOKEN_INVALID {
		p.errors.Addf(tok.Line, tok.Column, "invalid character %q", tok.Literal)

		return
	}

	p.errors.Addf(tok.Line, tok.Column, "%s, got %v", context, tok.Type)
}
