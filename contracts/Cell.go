package contracts

// Cell carries the raw text a user typed (Value) together with the rendered
// result of evaluating it (Result). Key is the canonical A1-style reference.
type Cell struct {
	Key    string `json:"cell_id"`
	Value  string `json:"value"`
	Result string `json:"result"`
}

type CellList map[string]*Cell

// CellTextGetter resolves a position to its stored raw text, or nil when the
// cell is blank. Evaluation dereferences every cell reference through one of
// these.
type CellTextGetter func(position Position) *string
