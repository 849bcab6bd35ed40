package main

import "gridsheet/contracts"

// NewCellTextGetterChain resolves through first, falling back to second for
// positions the first getter does not know. Used to overlay an uncommitted
// edit on top of the stored sheet.
func NewCellTextGetterChain(first contracts.CellTextGetter, second contracts.CellTextGetter) contracts.CellTextGetter {
	if second == nil {
		return first
	}

	if first == nil {
		return second
	}

	return func(position contracts.Position) *string {
		if value := first(position); value != nil {
			return value
		}

		return second(position)
	}
}
