package main

import (
	"errors"
	"fmt"
	"gridsheet/contracts"
	"strconv"
	"strings"
)

const FormulaPrefix = "="

var SyntaxError = errors.New("syntax error")

// ExpressionParser turns raw cell text into a CellValue. Text starting with
// "=" is parsed as an arithmetic expression; anything else is a number if it
// reads as one and opaque display text otherwise. Parsing never touches the
// store: references are captured as Positions only.
type ExpressionParser struct {
}

func NewExpressionParser() *ExpressionParser {
	return &ExpressionParser{}
}

func (p *ExpressionParser) Parse(rawText string) (*contracts.CellValue, error) {
	if rawText == "" {
		return &contracts.CellValue{Kind: contracts.BlankValue}, nil
	}

	if strings.HasPrefix(rawText, FormulaPrefix) {
		expr, err := p.parseFormula(strings.TrimPrefix(rawText, FormulaPrefix))
		if err != nil {
			return nil, err
		}
		return &contracts.CellValue{Kind: contracts.FormulaValue, Expr: expr}, nil
	}

	if number, err := strconv.ParseFloat(strings.TrimSpace(rawText), 64); err == nil {
		return &contracts.CellValue{Kind: contracts.NumberValue, Number: number}, nil
	}

	return &contracts.CellValue{Kind: contracts.TextValue, Text: rawText}, nil
}

func (p *ExpressionParser) parseFormula(input string) (contracts.Expr, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}

	state := &parserState{tokens: tokens}
	expr, err := state.parseExpression()
	if err != nil {
		return nil, err
	}

	if trailing := state.peek(); trailing.Type != TokenEOF {
		return nil, fmt.Errorf("%w: unexpected token %q at position %d", SyntaxError, trailing.Text, trailing.Pos)
	}

	return expr, nil
}

type parserState struct {
	tokens []Token
	pos    int
}

func (s *parserState) peek() Token {
	return s.tokens[s.pos]
}

func (s *parserState) advance() Token {
	token := s.tokens[s.pos]
	if token.Type != TokenEOF {
		s.pos++
	}
	return token
}

// parseExpression handles + and -, left-associative.
func (s *parserState) parseExpression() (contracts.Expr, error) {
	left, err := s.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		var op contracts.BinaryOp
		switch s.peek().Type {
		case TokenPlus:
			op = contracts.OpAdd
		case TokenMinus:
			op = contracts.OpSubtract
		default:
			return left, nil
		}
		s.advance()

		right, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		left = contracts.BinaryNode{Op: op, Left: left, Right: right}
	}
}

// parseTerm handles * and /, which bind tighter than + and -.
func (s *parserState) parseTerm() (contracts.Expr, error) {
	left, err := s.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		var op contracts.BinaryOp
		switch s.peek().Type {
		case TokenStar:
			op = contracts.OpMultiply
		case TokenSlash:
			op = contracts.OpDivide
		default:
			return left, nil
		}
		s.advance()

		right, err := s.parseFactor()
		if err != nil {
			return nil, err
		}
		left = contracts.BinaryNode{Op: op, Left: left, Right: right}
	}
}

func (s *parserState) parseFactor() (contracts.Expr, error) {
	token := s.advance()

	switch token.Type {
	case TokenNumber:
		number, err := strconv.ParseFloat(token.Text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid number %q at position %d", SyntaxError, token.Text, token.Pos)
		}
		return contracts.NumberNode{Value: number}, nil

	case TokenCellRef:
		position, err := contracts.ParseRef(token.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", SyntaxError, err)
		}
		return contracts.RefNode{Position: position}, nil

	case TokenMinus:
		// unary minus: -x is folded as 0-x
		factor, err := s.parseFactor()
		if err != nil {
			return nil, err
		}
		return contracts.BinaryNode{Op: contracts.OpSubtract, Left: contracts.NumberNode{}, Right: factor}, nil

	case TokenLeftParen:
		expr, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing := s.advance(); closing.Type != TokenRightParen {
			return nil, fmt.Errorf("%w: unmatched parenthesis at position %d", SyntaxError, token.Pos)
		}
		return expr, nil

	case TokenEOF:
		return nil, fmt.Errorf("%w: unexpected end of formula", SyntaxError)
	}

	return nil, fmt.Errorf("%w: unexpected token %q at position %d", SyntaxError, token.Text, token.Pos)
}
