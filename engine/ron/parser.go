// Package ron parses the RON-like declarative syntax used by the asset
// files (*.obj object descriptors, *.material_type material types and
// settings.camera). The grammar is a small subset of RON: unit identifiers,
// booleans, numbers, strings, lists, ordered maps, and tuples/structs which
// may carry a leading variant name. Documents are parsed into a generic
// Value tree; schema interpretation lives in the descriptor package.
package ron

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Parse parses a RON document from bytes.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// Decode parses a RON document from a reader.
func Decode(r io.Reader) (Value, error) {
	p := newParser(r)
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	// The document must be a single value.
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	if tok.Type != tokEOF {
		return Value{}, fmt.Errorf("%w: %d:%d: trailing content after document value", ErrParse, tok.Line, tok.Col)
	}
	return v, nil
}

// DecodeFile parses a RON document from a file.
func DecodeFile(path string) (Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	return Parse(b)
}

// parser represents a parser for a RON document.
type parser struct {
	l   *lexer  // Lexer for the document
	buf []token // Buffered lookahead tokens
}

// newParser creates a new parser for a RON document.
func newParser(r io.Reader) *parser {
	return &parser{l: newLexer(r)}
}

// next returns the next token, consuming it.
func (p *parser) next() (token, error) {
	if len(p.buf) > 0 {
		tok := p.buf[0]
		p.buf = p.buf[1:]
		return tok, nil
	}
	return p.l.next()
}

// peek returns the n-th upcoming token (0-based) without consuming it.
func (p *parser) peek(n int) (token, error) {
	for len(p.buf) <= n {
		tok, err := p.l.next()
		if err != nil {
			return tok, err
		}
		p.buf = append(p.buf, tok)
	}
	return p.buf[n], nil
}

// parseValue parses a single RON value.
func (p *parser) parseValue() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}

	switch tok.Type {
	case tokString:
		return Value{Kind: KindString, Str: tok.Lit, Line: tok.Line, Col: tok.Col}, nil

	case tokNumber:
		f, err := strconv.ParseFloat(tok.Lit, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %d:%d: invalid number %q", ErrParse, tok.Line, tok.Col, tok.Lit)
		}
		return Value{Kind: KindNumber, Number: f, Line: tok.Line, Col: tok.Col}, nil

	case tokIdent:
		switch tok.Lit {
		case "true", "false":
			return Value{Kind: KindBool, Bool: tok.Lit == "true", Line: tok.Line, Col: tok.Col}, nil
		}
		// A name followed by a payload is a tuple- or struct-variant.
		nxt, err := p.peek(0)
		if err != nil {
			return Value{}, err
		}
		switch nxt.Type {
		case tokLParen:
			if _, err := p.next(); err != nil {
				return Value{}, err
			}
			return p.parseParenBody(tok.Lit, tok)
		case tokLBrace:
			// Brace-delimited named structs are tolerated for hand-written
			// files even though canonical RON uses parentheses.
			if _, err := p.next(); err != nil {
				return Value{}, err
			}
			fields, err := p.parseFields(tokRBrace)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindStruct, Name: tok.Lit, Fields: fields, Line: tok.Line, Col: tok.Col}, nil
		}
		return Value{Kind: KindUnit, Name: tok.Lit, Line: tok.Line, Col: tok.Col}, nil

	case tokLParen:
		return p.parseParenBody("", tok)

	case tokLBracket:
		items, err := p.parseItems(tokRBracket)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindList, Items: items, Line: tok.Line, Col: tok.Col}, nil

	case tokLBrace:
		fields, err := p.parseMapEntries()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindMap, Fields: fields, Line: tok.Line, Col: tok.Col}, nil

	case tokEOF:
		return Value{}, fmt.Errorf("%w: %d:%d: unexpected end of input", ErrParse, tok.Line, tok.Col)
	}

	return Value{}, fmt.Errorf("%w: %d:%d: unexpected token %q", ErrParse, tok.Line, tok.Col, tok.Lit)
}

// parseParenBody parses the contents of `( .. )`, deciding between a struct
// (leading `ident :`) and a tuple. The opening parenthesis is already
// consumed; name is the variant name or empty.
func (p *parser) parseParenBody(name string, open token) (Value, error) {
	first, err := p.peek(0)
	if err != nil {
		return Value{}, err
	}

	// `ident :` means named fields.
	if first.Type == tokIdent {
		second, err := p.peek(1)
		if err != nil {
			return Value{}, err
		}
		if second.Type == tokColon {
			fields, err := p.parseFields(tokRParen)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindStruct, Name: name, Fields: fields, Line: open.Line, Col: open.Col}, nil
		}
	}

	items, err := p.parseItems(tokRParen)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindTuple, Name: name, Items: items, Line: open.Line, Col: open.Col}, nil
}

// parseItems parses comma-separated values until the closing token.
// Trailing commas are allowed.
func (p *parser) parseItems(closing tokenType) ([]Value, error) {
	var items []Value
	for {
		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		if tok.Type == closing {
			_, _ = p.next()
			return items, nil
		}
		if tok.Type == tokEOF {
			return nil, fmt.Errorf("%w: %d:%d: unexpected end of input", ErrParse, tok.Line, tok.Col)
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)

		if err := p.expectSeparator(closing); err != nil {
			return nil, err
		}
	}
}

// parseFields parses `ident: value` fields until the closing token.
func (p *parser) parseFields(closing tokenType) ([]Field, error) {
	var fields []Field
	seen := make(map[string]struct{})
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == closing {
			return fields, nil
		}
		if tok.Type != tokIdent {
			return nil, fmt.Errorf("%w: %d:%d: expected field name, got %q", ErrParse, tok.Line, tok.Col, tok.Lit)
		}
		if _, dup := seen[tok.Lit]; dup {
			return nil, fmt.Errorf("%w: %d:%d: duplicate field %q", ErrParse, tok.Line, tok.Col, tok.Lit)
		}
		seen[tok.Lit] = struct{}{}

		colon, err := p.next()
		if err != nil {
			return nil, err
		}
		if colon.Type != tokColon {
			return nil, fmt.Errorf("%w: %d:%d: expected ':' after field %q", ErrParse, colon.Line, colon.Col, tok.Lit)
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: tok.Lit, Value: v})

		if err := p.expectSeparator(closing); err != nil {
			return nil, err
		}
	}
}

// parseMapEntries parses `{ key: value, .. }` entries. Keys may be strings
// or identifiers; order is preserved.
func (p *parser) parseMapEntries() ([]Field, error) {
	var fields []Field
	seen := make(map[string]struct{})
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == tokRBrace {
			return fields, nil
		}
		if tok.Type != tokString && tok.Type != tokIdent {
			return nil, fmt.Errorf("%w: %d:%d: expected map key, got %q", ErrParse, tok.Line, tok.Col, tok.Lit)
		}
		if _, dup := seen[tok.Lit]; dup {
			return nil, fmt.Errorf("%w: %d:%d: duplicate map key %q", ErrParse, tok.Line, tok.Col, tok.Lit)
		}
		seen[tok.Lit] = struct{}{}

		colon, err := p.next()
		if err != nil {
			return nil, err
		}
		if colon.Type != tokColon {
			return nil, fmt.Errorf("%w: %d:%d: expected ':' after map key %q", ErrParse, colon.Line, colon.Col, tok.Lit)
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: tok.Lit, Value: v})

		if err := p.expectSeparator(tokRBrace); err != nil {
			return nil, err
		}
	}
}

// expectSeparator consumes the comma between elements. The closing token may
// follow directly, which also covers trailing commas.
func (p *parser) expectSeparator(closing tokenType) error {
	tok, err := p.peek(0)
	if err != nil {
		return err
	}
	switch tok.Type {
	case tokComma:
		_, _ = p.next()
		return nil
	case closing:
		return nil
	}
	return fmt.Errorf("%w: %d:%d: expected ',' or closing delimiter, got %q", ErrParse, tok.Line, tok.Col, tok.Lit)
}
