package parser

import (
	"github.com/elqu/hxwk/internal/types"
	"github.com/elqu/hxwk/pkg/lexer"
)

// assoc is the associativity of a binary operator.
type assoc int

const (
	assocLeft assoc = iota
	assocRight
)

// opInfo describes one entry of the binary operator table.
type opInfo struct {
	op    types.BinaryOp
	prec  int
	assoc assoc
}

// binaryPrecedence maps operator tokens to their precedence and
// associativity. Any token absent from the table has precedence 0 and
// terminates a climb.
var binaryPrecedence = map[lexer.TokenType]opInfo{
	lexer.TOKEN_ASSIGN:   {types.OpAssign, 10, assocRight},
	lexer.TOKEN_LT:       {types.OpLT, 17, assocLeft},
	lexer.TOKEN_PLUS:     {types.OpAdd, 20, assocLeft},
	lexer.TOKEN_MINUS:    {types.OpSub, 20, assocLeft},
	lexer.TOKEN_MULTIPLY: {types.OpMul, 30, assocLeft},
	lexer.TOKEN_SLASH:    {types.OpDiv, 30, assocLeft},
}

// lookupOperator returns the table entry for a token, reporting whether
// the token is a binary operator at all.
func lookupOperator(t lexer.TokenType) (opInfo, bool) {
	info, ok := binaryPrecedence[t]

	return info, ok
}
