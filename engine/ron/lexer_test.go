package ron

import (
	"errors"
	"strings"
	"testing"
)

func lexAll(t *testing.T, in string) []token {
	t.Helper()
	l := newLexer(strings.NewReader(in))
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("lex %q: %v", in, err)
		}
		if tok.Type == tokEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexPunctuation(t *testing.T) {
	toks := lexAll(t, `()[]{},:`)
	want := []tokenType{tokLParen, tokRParen, tokLBracket, tokRBracket, tokLBrace, tokRBrace, tokComma, tokColon}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Fatalf("token %d has type %d, want %d", i, toks[i].Type, w)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	cases := []string{"0", "42", "-1", "+3", "0.5", "-0.25", "1e3", "1.5E-2"}
	for _, in := range cases {
		toks := lexAll(t, in)
		if len(toks) != 1 || toks[0].Type != tokNumber || toks[0].Lit != in {
			t.Fatalf("lex %q: got %+v", in, toks)
		}
	}
}

func TestLexMalformedNumber(t *testing.T) {
	l := newLexer(strings.NewReader("-."))
	_, err := l.next()
	if !errors.Is(err, ErrLex) {
		t.Fatalf("expected ErrLex, got %v", err)
	}
}

func TestLexPositions(t *testing.T) {
	toks := lexAll(t, "(\n    shape: Cube\n)")
	// shape is the second token, on line 2 column 5.
	if toks[1].Lit != "shape" || toks[1].Line != 2 || toks[1].Col != 5 {
		t.Fatalf("got %+v, want shape at 2:5", toks[1])
	}
}

func TestLexSkipsBOM(t *testing.T) {
	toks := lexAll(t, "\uFEFFtrue")
	if len(toks) != 1 || toks[0].Lit != "true" {
		t.Fatalf("got %+v", toks)
	}
}

func TestLexUnterminatedBlockComment(t *testing.T) {
	l := newLexer(strings.NewReader("/* never closed"))
	_, err := l.next()
	if !errors.Is(err, ErrLex) {
		t.Fatalf("expected ErrLex, got %v", err)
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	l := newLexer(strings.NewReader("@"))
	_, err := l.next()
	if !errors.Is(err, ErrLex) {
		t.Fatalf("expected ErrLex, got %v", err)
	}
}
