package main

import (
	"fmt"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenCellRef
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLeftParen
	TokenRightParen
)

type Token struct {
	Type TokenType
	Text string
	Pos  int
}

type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans the whole input, appending a trailing EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0, 8)

	for {
		l.skipSpaces()
		if l.pos >= len(l.input) {
			break
		}

		start := l.pos
		c := l.input[l.pos]

		switch {
		case c == '+':
			tokens = append(tokens, Token{TokenPlus, "+", start})
			l.pos++
		case c == '-':
			tokens = append(tokens, Token{TokenMinus, "-", start})
			l.pos++
		case c == '*':
			tokens = append(tokens, Token{TokenStar, "*", start})
			l.pos++
		case c == '/':
			tokens = append(tokens, Token{TokenSlash, "/", start})
			l.pos++
		case c == '(':
			tokens = append(tokens, Token{TokenLeftParen, "(", start})
			l.pos++
		case c == ')':
			tokens = append(tokens, Token{TokenRightParen, ")", start})
			l.pos++
		case isDigit(c) || c == '.':
			tokens = append(tokens, Token{TokenNumber, l.scanNumber(), start})
		case isLetter(c):
			ref, err := l.scanCellRef()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{TokenCellRef, ref, start})
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", SyntaxError, c, start)
		}
	}

	tokens = append(tokens, Token{TokenEOF, "", l.pos})
	return tokens, nil
}

func (l *Lexer) skipSpaces() {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}
}

func (l *Lexer) scanNumber() string {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return l.input[start:l.pos]
}

// scanCellRef consumes letters followed by digits as one reference token.
// Shape errors (no digits after the letters) are reported here; column range
// is validated later by ParseRef.
func (l *Lexer) scanCellRef() (string, error) {
	start := l.pos
	for l.pos < len(l.input) && isLetter(l.input[l.pos]) {
		l.pos++
	}
	digits := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}

	if digits == l.pos {
		return "", fmt.Errorf("%w: unknown token %q at position %d", SyntaxError, l.input[start:l.pos], start)
	}

	return l.input[start:l.pos], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
