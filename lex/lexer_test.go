package lex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	toks := Tokenize("x2 = 3.14 * (foo(1) + i) ** 2")
	want := []Type{
		Identifier, Assign, Decimal, Star, LeftParen, Identifier, LeftParen,
		Integer, RightParen, Plus, Identifier, RightParen, Caret, Integer,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Type, typ)
		}
	}
}

func TestDecimalLiteral(t *testing.T) {
	toks := Tokenize("3.14")
	if len(toks) != 1 || toks[0].Type != Decimal || toks[0].Text != "3.14" {
		t.Fatalf("got %v", toks)
	}
}

func TestIntegerDotNotFollowedByDigit(t *testing.T) {
	// "7." lexes as Integer "7" with the dot left unconsumed. There is no
	// token type for a bare dot, so a further Next would fail at it; this
	// only pins down the number-scanning boundary.
	tok := New("7.").Next()
	if tok.Type != Integer || tok.Text != "7" {
		t.Fatalf("got %v", tok)
	}
}

func TestDoubleStarIsCaret(t *testing.T) {
	toks := Tokenize("2**3")
	if toks[1].Type != Caret || toks[1].Text != "**" {
		t.Fatalf("got %v", toks[1])
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unrecognized character")
		}
	}()
	Tokenize("x @ y")
}

func TestIdentifierWithDigitsAndUnderscore(t *testing.T) {
	toks := Tokenize("foo_bar2")
	if len(toks) != 1 || toks[0].Type != Identifier || toks[0].Text != "foo_bar2" {
		t.Fatalf("got %v", toks)
	}
}

func TestTokenizeMatrixLiteral(t *testing.T) {
	got := Tokenize("[[1,2],[3,4]]")
	want := []Token{
		{Type: LeftBrack, Text: "[", Pos: 0},
		{Type: LeftBrack, Text: "[", Pos: 1},
		{Type: Integer, Text: "1", Pos: 2},
		{Type: Comma, Text: ",", Pos: 3},
		{Type: Integer, Text: "2", Pos: 4},
		{Type: RightBrack, Text: "]", Pos: 5},
		{Type: Comma, Text: ",", Pos: 6},
		{Type: LeftBrack, Text: "[", Pos: 7},
		{Type: Integer, Text: "3", Pos: 8},
		{Type: Comma, Text: ",", Pos: 9},
		{Type: Integer, Text: "4", Pos: 10},
		{Type: RightBrack, Text: "]", Pos: 11},
		{Type: RightBrack, Text: "]", Pos: 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}
