package ron

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokEOF      tokenType = iota // End of input
	tokIdent                     // Identifier
	tokNumber                    // Number
	tokString                    // String
	tokLParen                    // Left parenthesis
	tokRParen                    // Right parenthesis
	tokLBracket                  // Left bracket
	tokRBracket                  // Right bracket
	tokLBrace                    // Left brace
	tokRBrace                    // Right brace
	tokColon                     // Colon
	tokComma                     // Comma
)

// token represents a token in a RON document.
type token struct {
	Lit  string    // Literal value of the token
	Type tokenType // Type of the token
	Line int       // Line number of the token
	Col  int       // Column number of the token
}

// lexer represents a lexer for a RON document.
type lexer struct {
	r   *bufio.Reader // Reader for the input
	pos position      // Position of the current character
	ch  rune          // Current character
	eof bool          // End of input
}

// position represents a position in the input.
type position struct {
	line int // Line number
	col  int // Column number
}

// newLexer creates a new lexer for a RON document.
func newLexer(r io.Reader) *lexer {
	l := &lexer{r: bufio.NewReader(r), pos: position{line: 1, col: 0}}
	l.read()
	if l.ch == 0xFEFF {
		// Skip UTF-8 BOM if present.
		l.read()
	}
	return l
}

// read advances to the next character.
func (l *lexer) read() {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}
	if l.ch == '\n' {
		l.pos.line++
		l.pos.col = 0
	}
	l.pos.col++
	l.ch = ch
}

// next returns the next token from the input.
func (l *lexer) next() (token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, err
	}

	start := l.pos
	if l.eof {
		return token{Type: tokEOF, Line: start.line, Col: start.col}, nil
	}

	switch {
	case l.ch == '(':
		l.read()
		return token{Type: tokLParen, Lit: "(", Line: start.line, Col: start.col}, nil
	case l.ch == ')':
		l.read()
		return token{Type: tokRParen, Lit: ")", Line: start.line, Col: start.col}, nil
	case l.ch == '[':
		l.read()
		return token{Type: tokLBracket, Lit: "[", Line: start.line, Col: start.col}, nil
	case l.ch == ']':
		l.read()
		return token{Type: tokRBracket, Lit: "]", Line: start.line, Col: start.col}, nil
	case l.ch == '{':
		l.read()
		return token{Type: tokLBrace, Lit: "{", Line: start.line, Col: start.col}, nil
	case l.ch == '}':
		l.read()
		return token{Type: tokRBrace, Lit: "}", Line: start.line, Col: start.col}, nil
	case l.ch == ':':
		l.read()
		return token{Type: tokColon, Lit: ":", Line: start.line, Col: start.col}, nil
	case l.ch == ',':
		l.read()
		return token{Type: tokComma, Lit: ",", Line: start.line, Col: start.col}, nil
	case l.ch == '"':
		return l.lexString(start)
	case l.ch == '-' || l.ch == '+' || unicode.IsDigit(l.ch):
		return l.lexNumber(start)
	case unicode.IsLetter(l.ch) || l.ch == '_':
		return l.lexIdent(start)
	}

	return token{}, fmt.Errorf("%w: %d:%d: unexpected character %q", ErrLex, start.line, start.col, l.ch)
}

// skipSpaceAndComments consumes whitespace, line comments and block comments.
func (l *lexer) skipSpaceAndComments() error {
	for !l.eof {
		if unicode.IsSpace(l.ch) {
			l.read()
			continue
		}
		if l.ch != '/' {
			return nil
		}

		start := l.pos
		l.read()
		switch l.ch {
		case '/':
			for !l.eof && l.ch != '\n' {
				l.read()
			}
		case '*':
			l.read()
			closed := false
			for !l.eof {
				if l.ch == '*' {
					l.read()
					if l.ch == '/' {
						l.read()
						closed = true
						break
					}
					continue
				}
				l.read()
			}
			if !closed {
				return fmt.Errorf("%w: %d:%d: unterminated block comment", ErrLex, start.line, start.col)
			}
		default:
			return fmt.Errorf("%w: %d:%d: unexpected character '/'", ErrLex, start.line, start.col)
		}
	}
	return nil
}

// lexString consumes a double-quoted string with escapes.
func (l *lexer) lexString(start position) (token, error) {
	var sb strings.Builder
	l.read() // consume opening quote
	for {
		if l.eof || l.ch == '\n' {
			return token{}, fmt.Errorf("%w: %d:%d: unterminated string", ErrLex, start.line, start.col)
		}
		if l.ch == '"' {
			l.read()
			return token{Type: tokString, Lit: sb.String(), Line: start.line, Col: start.col}, nil
		}
		if l.ch == '\\' {
			l.read()
			switch l.ch {
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			default:
				return token{}, fmt.Errorf("%w: %d:%d: unknown escape '\\%c'", ErrLex, l.pos.line, l.pos.col, l.ch)
			}
			l.read()
			continue
		}
		sb.WriteRune(l.ch)
		l.read()
	}
}

// lexNumber consumes an integer or float literal, optionally signed and with
// an exponent.
func (l *lexer) lexNumber(start position) (token, error) {
	var sb strings.Builder
	if l.ch == '-' || l.ch == '+' {
		sb.WriteRune(l.ch)
		l.read()
	}
	digits := 0
	for !l.eof && unicode.IsDigit(l.ch) {
		sb.WriteRune(l.ch)
		digits++
		l.read()
	}
	if l.ch == '.' {
		sb.WriteRune(l.ch)
		l.read()
		for !l.eof && unicode.IsDigit(l.ch) {
			sb.WriteRune(l.ch)
			digits++
			l.read()
		}
	}
	if digits == 0 {
		return token{}, fmt.Errorf("%w: %d:%d: malformed number", ErrLex, start.line, start.col)
	}
	if l.ch == 'e' || l.ch == 'E' {
		sb.WriteRune(l.ch)
		l.read()
		if l.ch == '-' || l.ch == '+' {
			sb.WriteRune(l.ch)
			l.read()
		}
		expDigits := 0
		for !l.eof && unicode.IsDigit(l.ch) {
			sb.WriteRune(l.ch)
			expDigits++
			l.read()
		}
		if expDigits == 0 {
			return token{}, fmt.Errorf("%w: %d:%d: malformed exponent", ErrLex, start.line, start.col)
		}
	}
	return token{Type: tokNumber, Lit: sb.String(), Line: start.line, Col: start.col}, nil
}

// lexIdent consumes an identifier.
func (l *lexer) lexIdent(start position) (token, error) {
	var sb strings.Builder
	for !l.eof && (unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_') {
		sb.WriteRune(l.ch)
		l.read()
	}
	return token{Type: tokIdent, Lit: sb.String(), Line: start.line, Col: start.col}, nil
}
