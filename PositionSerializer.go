package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"gridsheet/contracts"
)

var SerializerError = errors.New("invalid serialized position key")

const positionKeyLength = 8

// PositionBinarySerializer encodes positions as fixed-width big-endian
// (row, column) keys, so a bbolt cursor walks cells in row-major order.
type PositionBinarySerializer struct {
}

func NewPositionBinarySerializer() *PositionBinarySerializer {
	return &PositionBinarySerializer{}
}

func (s *PositionBinarySerializer) Marshal(position contracts.Position) []byte {
	key := make([]byte, 0, positionKeyLength)
	key = binary.BigEndian.AppendUint32(key, uint32(position.Row))
	key = binary.BigEndian.AppendUint32(key, uint32(position.Column))
	return key
}

func (s *PositionBinarySerializer) Unmarshal(data []byte) (contracts.Position, error) {
	if len(data) != positionKeyLength {
		return contracts.Position{}, fmt.Errorf("%w: expected %d bytes, got %d", SerializerError, positionKeyLength, len(data))
	}

	return contracts.Position{
		Row:    int(binary.BigEndian.Uint32(data)),
		Column: int(binary.BigEndian.Uint32(data[4:])),
	}, nil
}
