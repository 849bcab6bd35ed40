package contracts

type ExpressionParser interface {
	Parse(rawText string) (*CellValue, error)
}
