package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLexer_Tokenize(t *testing.T) {
	t.Run("operators_and_operands", func(t *testing.T) {
		tokens, err := NewLexer("(A1+2.5)*b10/3-4").Tokenize()

		assert.NoError(t, err)

		expected := []TokenType{
			TokenLeftParen, TokenCellRef, TokenPlus, TokenNumber, TokenRightParen,
			TokenStar, TokenCellRef, TokenSlash, TokenNumber, TokenMinus, TokenNumber,
			TokenEOF,
		}

		assert.Len(t, tokens, len(expected))
		for i, tokenType := range expected {
			assert.Equal(t, tokenType, tokens[i].Type, "token %d", i)
		}

		assert.Equal(t, "A1", tokens[1].Text)
		assert.Equal(t, "2.5", tokens[3].Text)
		assert.Equal(t, "b10", tokens[6].Text)
	})

	t.Run("whitespace_skipped", func(t *testing.T) {
		tokens, err := NewLexer("  1 \t+ 2  ").Tokenize()

		assert.NoError(t, err)
		assert.Len(t, tokens, 4)
	})

	t.Run("empty_input", func(t *testing.T) {
		tokens, err := NewLexer("").Tokenize()

		assert.NoError(t, err)
		assert.Len(t, tokens, 1)
		assert.Equal(t, TokenEOF, tokens[0].Type)
	})

	t.Run("letters_without_digits", func(t *testing.T) {
		_, err := NewLexer("foo+1").Tokenize()

		assert.ErrorIs(t, err, SyntaxError)
	})

	t.Run("unexpected_character", func(t *testing.T) {
		for _, input := range []string{"1%2", "1&2", "\"text\"", "1,2"} {
			_, err := NewLexer(input).Tokenize()
			assert.ErrorIs(t, err, SyntaxError, "input %q", input)
		}
	})
}
