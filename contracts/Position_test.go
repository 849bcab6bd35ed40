package contracts

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPosition_Next(t *testing.T) {
	t.Run("moves", func(t *testing.T) {
		start := Position{Row: 5, Column: 3}

		assert.Equal(t, Position{Row: 4, Column: 3}, start.Next(DirectionUp))
		assert.Equal(t, Position{Row: 6, Column: 3}, start.Next(DirectionDown))
		assert.Equal(t, Position{Row: 5, Column: 2}, start.Next(DirectionLeft))
		assert.Equal(t, Position{Row: 5, Column: 4}, start.Next(DirectionRight))
	})

	t.Run("clamps_at_minimum", func(t *testing.T) {
		origin := Position{Row: 1, Column: 1}

		assert.Equal(t, origin, origin.Next(DirectionUp))
		assert.Equal(t, origin, origin.Next(DirectionLeft))
	})

	t.Run("never_below_one", func(t *testing.T) {
		for _, direction := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
			position := Position{Row: 1, Column: 1}
			for i := 0; i < 10; i++ {
				position = position.Next(direction)
				assert.GreaterOrEqual(t, position.Row, 1)
				assert.GreaterOrEqual(t, position.Column, 1)
			}
		}
	})

	t.Run("original_value_untouched", func(t *testing.T) {
		start := Position{Row: 2, Column: 2}
		_ = start.Next(DirectionUp)

		assert.Equal(t, Position{Row: 2, Column: 2}, start)
	})
}

func TestParseRef(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testCases := map[string]Position{
			"A1":   {Row: 1, Column: 1},
			"a1":   {Row: 1, Column: 1},
			"B12":  {Row: 12, Column: 2},
			"Z999": {Row: 999, Column: 26},
		}

		for ref, expected := range testCases {
			actual, err := ParseRef(ref)
			assert.NoError(t, err)
			assert.Equal(t, expected, actual)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, ref := range []string{"", "A", "1", "A0", "A-1", "1A", "A1B", "AA1", " A1"} {
			_, err := ParseRef(ref)
			assert.Error(t, err, "ref %q should not parse", ref)
			assert.ErrorIs(t, err, CellRefError)
		}
	})

	t.Run("ref_round_trip", func(t *testing.T) {
		for _, ref := range []string{"A1", "C3", "Z100"} {
			position, err := ParseRef(ref)
			assert.NoError(t, err)
			assert.Equal(t, ref, position.Ref())
		}
	})
}

func TestParseDirection(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testCases := map[string]Direction{
			"up":    DirectionUp,
			"DOWN":  DirectionDown,
			"Left":  DirectionLeft,
			"right": DirectionRight,
		}

		for name, expected := range testCases {
			actual, err := ParseDirection(name)
			assert.NoError(t, err)
			assert.Equal(t, expected, actual)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseDirection("diagonal")
		assert.ErrorIs(t, err, DirectionError)
	})
}
