package contracts

type SheetRepository interface {
	SetCell(cellRef string, value string) (*Cell, error)
	GetCell(cellRef string) (*Cell, error)
	GetCellList() (*CellList, error)
}
