package lexer

import (
	"strings"
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `fn add(a: i32, b: i32) -> i32 {
    let c = a + b;
    c
};
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_FN, "fn"},
		{TOKEN_IDENT, "add"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "a"},
		{TOKEN_COLON, ":"},
		{TOKEN_IDENT, "i32"},
		{TOKEN_COMMA, ","},
		{TOKEN_IDENT, "b"},
		{TOKEN_COLON, ":"},
		{TOKEN_IDENT, "i32"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RARROW, "->"},
		{TOKEN_IDENT, "i32"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_LET, "let"},
		{TOKEN_IDENT, "c"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_IDENT, "a"},
		{TOKEN_PLUS, "+"},
		{TOKEN_IDENT, "b"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_IDENT, "c"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_EOF, ""},
	}

	l := New(strings.NewReader(input))

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "= + - -> * / < , ; :"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_ASSIGN, "="},
		{TOKEN_PLUS, "+"},
		{TOKEN_MINUS, "-"},
		{TOKEN_RARROW, "->"},
		{TOKEN_MULTIPLY, "*"},
		{TOKEN_SLASH, "/"},
		{TOKEN_LT, "<"},
		{TOKEN_COMMA, ","},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_COLON, ":"},
		{TOKEN_EOF, ""},
	}

	l := New(strings.NewReader(input))

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "123 3.14 2. .5 ."

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_INT, "123"},
		{TOKEN_FLOAT, "3.14"},
		{TOKEN_FLOAT, "2."},
		{TOKEN_FLOAT, ".5"},
		{TOKEN_INVALID, "."},
		{TOKEN_EOF, ""},
	}

	l := New(strings.NewReader(input))

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `"hello world" "a\nb" "back\\slash" "quo\"te" "split
line" "unterminated`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_STRING, "hello world"},
		{TOKEN_STRING, "a\nb"},
		{TOKEN_STRING, "back\\slash"},
		{TOKEN_STRING, `quo"te`},
		{TOKEN_STRING, "splitline"}, // physical newline elided
		{TOKEN_STRING, "unterminated"},
		{TOKEN_EOF, ""},
	}

	l := New(strings.NewReader(input))

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "let if else fn i32 double bool void printf"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LET, "let"},
		{TOKEN_IF, "if"},
		{TOKEN_ELSE, "else"},
		{TOKEN_FN, "fn"},
		{TOKEN_IDENT, "i32"}, // type names are plain identifiers
		{TOKEN_IDENT, "double"},
		{TOKEN_IDENT, "bool"},
		{TOKEN_IDENT, "void"},
		{TOKEN_IDENT, "printf"},
		{TOKEN_EOF, ""},
	}

	l := New(strings.NewReader(input))

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestComments(t *testing.T) {
	input := `// leading comment
fn one // trailing comment
// another
/ two`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_FN, "fn"},
		{TOKEN_IDENT, "one"},
		{TOKEN_SLASH, "/"}, // a lone slash is division, not a comment
		{TOKEN_IDENT, "two"},
		{TOKEN_EOF, ""},
	}

	l := New(strings.NewReader(input))

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestPositions(t *testing.T) {
	input := "fn a\n  let b"

	tests := []struct {
		expectedType   TokenType
		expectedLine   int
		expectedColumn int
	}{
		{TOKEN_FN, 1, 1},
		{TOKEN_IDENT, 1, 4},
		{TOKEN_LET, 2, 3},
		{TOKEN_IDENT, 2, 7},
	}

	l := New(strings.NewReader(input))

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Line != tt.expectedLine || tok.Column != tt.expectedColumn {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d, got=%d:%d",
				i, tt.expectedLine, tt.expectedColumn, tok.Line, tok.Column)
		}
	}
}

func TestInvalidCharacter(t *testing.T) {
	l := New(strings.NewReader("fn # x"))

	if tok := l.NextToken(); tok.Type != TOKEN_FN {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TOKEN_FN, tok.Type)
	}

	tok := l.NextToken()
	if tok.Type != TOKEN_INVALID {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TOKEN_INVALID, tok.Type)
	}
	if tok.Literal != "#" {
		t.Fatalf("literal wrong. expected=%q, got=%q", "#", tok.Literal)
	}

	// The lexer recovers and continues after an invalid character
	if tok := l.NextToken(); tok.Type != TOKEN_IDENT {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TOKEN_IDENT, tok.Type)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := New(strings.NewReader("fn"))

	if tok := l.NextToken(); tok.Type != TOKEN_FN {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TOKEN_FN, tok.Type)
	}

	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != TOKEN_EOF {
			t.Fatalf("call %d after end - expected=%q, got=%q", i, TOKEN_EOF, tok.Type)
		}
	}
}
