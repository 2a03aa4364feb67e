// Package scanner implements the lexer that turns Lox source text into a
// stream of tokens.
//
// The error-collection shape borrows from the Go standard library's
// go/scanner: accumulate a token.ErrorList while scanning so the caller
// sees every lexical error from a single source file, not just the first.
package scanner

import (
	"fmt"
	"strconv"

	"github.com/mna/lox/lang/token"
)

// Scanner tokenizes a single source file for the parser to consume.
type Scanner struct {
	src []byte
	err func(pos token.Pos, msg string)

	start int // byte offset of the start of the current lexeme
	off   int // byte offset of the next unread byte
	line  int
	col   int

	// startLine/startCol are the line/col of start, captured before any
	// advance() calls for the current lexeme.
	startLine, startCol int
}

// Init prepares s to scan src. errHandler is called once per lexical error
// encountered; it may be nil.
func (s *Scanner) Init(src []byte, errHandler func(pos token.Pos, msg string)) {
	s.src = src
	s.err = errHandler
	s.start = 0
	s.off = 0
	s.line = 1
	s.col = 1
}

func (s *Scanner) atEnd() bool { return s.off >= len(s.src) }

func (s *Scanner) advance() byte {
	c := s.src[s.off]
	s.off++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.off]
}

func (s *Scanner) peekNext() byte {
	if s.off+1 >= len(s.src) {
		return 0
	}
	return s.src[s.off+1]
}

// match consumes the next byte and returns true if it equals want.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.off] != want {
		return false
	}
	s.off++
	s.col++
	return true
}

func (s *Scanner) errorf(format string, args ...any) {
	if s.err != nil {
		s.err(token.MakePos(s.startLine, s.startCol), fmt.Sprintf(format, args...))
	}
}

// Scan returns the next token and fills val with its position and literal
// data. The scan is complete when Scan returns token.EOF.
func (s *Scanner) Scan(val *token.Value) token.Token {
	s.skipWhitespaceAndComments()

	s.start = s.off
	s.startLine, s.startCol = s.line, s.col
	pos := token.MakePos(s.startLine, s.startCol)

	if s.atEnd() {
		*val = token.Value{Pos: pos}
		return token.EOF
	}

	c := s.advance()
	switch {
	case isAlpha(c):
		return s.identifier(pos, val)
	case isDigit(c):
		return s.number(pos, val)
	}

	switch c {
	case '(':
		return s.simple(token.LEFT_PAREN, pos, val)
	case ')':
		return s.simple(token.RIGHT_PAREN, pos, val)
	case '{':
		return s.simple(token.LEFT_BRACE, pos, val)
	case '}':
		return s.simple(token.RIGHT_BRACE, pos, val)
	case ',':
		return s.simple(token.COMMA, pos, val)
	case '.':
		return s.simple(token.DOT, pos, val)
	case '-':
		return s.simple(token.MINUS, pos, val)
	case '+':
		return s.simple(token.PLUS, pos, val)
	case ';':
		return s.simple(token.SEMICOLON, pos, val)
	case '*':
		return s.simple(token.STAR, pos, val)
	case '!':
		if s.match('=') {
			return s.simple(token.BANG_EQUAL, pos, val)
		}
		return s.simple(token.BANG, pos, val)
	case '=':
		if s.match('=') {
			return s.simple(token.EQUAL_EQUAL, pos, val)
		}
		return s.simple(token.EQUAL, pos, val)
	case '<':
		if s.match('=') {
			return s.simple(token.LESS_EQUAL, pos, val)
		}
		return s.simple(token.LESS, pos, val)
	case '>':
		if s.match('=') {
			return s.simple(token.GREATER_EQUAL, pos, val)
		}
		return s.simple(token.GREATER, pos, val)
	case '/':
		return s.simple(token.SLASH, pos, val)
	case '"':
		return s.string(pos, val)
	}

	s.errorf("Unexpected character: %c", c)
	*val = token.Value{Pos: pos, Lexeme: string(c)}
	return token.ILLEGAL
}

func (s *Scanner) simple(tok token.Token, pos token.Pos, val *token.Value) token.Token {
	*val = token.Value{Pos: pos, Lexeme: string(s.src[s.start:s.off])}
	return tok
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\r', '\t', '\n':
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for !s.atEnd() && s.peek() != '\n' {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifier(pos token.Pos, val *token.Value) token.Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	lit := string(s.src[s.start:s.off])
	*val = token.Value{Pos: pos, Lexeme: lit}
	return token.LookupIdent(lit)
}

func (s *Scanner) number(pos token.Pos, val *token.Value) token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lit := string(s.src[s.start:s.off])
	n, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorf("invalid number literal: %s", lit)
	}
	*val = token.Value{Pos: pos, Lexeme: lit, Number: n}
	return token.NUMBER
}

func (s *Scanner) string(pos token.Pos, val *token.Value) token.Token {
	for !s.atEnd() && s.peek() != '"' {
		s.advance()
	}
	if s.atEnd() {
		s.errorf("Unterminated string.")
		*val = token.Value{Pos: pos, Lexeme: string(s.src[s.start:s.off])}
		return token.ILLEGAL
	}
	s.advance() // closing quote

	lit := string(s.src[s.start:s.off])
	str := lit[1 : len(lit)-1]
	*val = token.Value{Pos: pos, Lexeme: lit, String: str}
	return token.STRING
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
