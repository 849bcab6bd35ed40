package contracts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Position is a 1-indexed grid address. Equality is structural, so it can be
// used directly as a map key.
type Position struct {
	Row    int
	Column int
}

type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// MaxColumn bounds the A1-style reference alphabet. Columns are single-letter
// only; multi-letter references ("AA1") are rejected rather than given an
// extended encoding.
const MaxColumn = 26

var CellRefError = errors.New("invalid cell reference")

var DirectionError = errors.New("unknown direction")

// Next moves one step in the given direction. Both coordinates are clamped at
// 1; the upper grid bound is owned by the caller.
func (p Position) Next(direction Direction) Position {
	switch direction {
	case DirectionUp:
		p.Row--
	case DirectionDown:
		p.Row++
	case DirectionLeft:
		p.Column--
	case DirectionRight:
		p.Column++
	}

	if p.Row < 1 {
		p.Row = 1
	}
	if p.Column < 1 {
		p.Column = 1
	}

	return p
}

// Ref formats the position in A1 notation.
func (p Position) Ref() string {
	return string(rune('A'+p.Column-1)) + strconv.Itoa(p.Row)
}

// ParseRef parses an A1-style reference, case-insensitively. The reference
// must be one letter followed by one or more digits.
func ParseRef(ref string) (Position, error) {
	position := Position{}

	letters := 0
	for letters < len(ref) && isRefLetter(ref[letters]) {
		letters++
	}

	if letters == 0 || letters == len(ref) {
		return position, fmt.Errorf("`%s`: %w", ref, CellRefError)
	}
	if letters > 1 {
		return position, fmt.Errorf("`%s`: %w: multi-letter columns are not supported", ref, CellRefError)
	}

	row, err := strconv.Atoi(ref[letters:])
	if err != nil || row < 1 {
		return position, fmt.Errorf("`%s`: %w", ref, CellRefError)
	}

	letter := ref[0]
	if letter >= 'a' {
		letter -= 'a' - 'A'
	}

	position.Column = int(letter-'A') + 1
	position.Row = row
	return position, nil
}

func ParseDirection(direction string) (Direction, error) {
	switch strings.ToLower(direction) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	}

	return 0, fmt.Errorf("`%s`: %w", direction, DirectionError)
}

func isRefLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
