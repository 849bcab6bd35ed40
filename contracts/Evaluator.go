package contracts

type Evaluator interface {
	// Evaluate renders the cell at position whose raw text is rawText,
	// resolving references through getter. The returned string is always
	// displayable; evaluation failures surface as a short error tag plus the
	// underlying error.
	Evaluate(position Position, rawText string, getter CellTextGetter) (string, error)
}
