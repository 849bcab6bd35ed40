package contracts

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}

// Expr is the closed set of expression tree nodes produced by the formula
// parser: a numeric literal, a cell reference, or a binary operation.
type Expr interface {
	exprNode()
}

type NumberNode struct {
	Value float64
}

type RefNode struct {
	Position Position
}

type BinaryNode struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (NumberNode) exprNode() {}
func (RefNode) exprNode()    {}
func (BinaryNode) exprNode() {}

type CellValueKind int

const (
	// BlankValue is the interpretation of an absent or empty cell.
	BlankValue CellValueKind = iota
	NumberValue
	TextValue
	FormulaValue
)

// CellValue is the parsed interpretation of a cell's raw text. Exactly one of
// Number, Text or Expr is meaningful, selected by Kind.
type CellValue struct {
	Kind   CellValueKind
	Number float64
	Text   string
	Expr   Expr
}
