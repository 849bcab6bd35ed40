package contracts

type PositionSerializer interface {
	Marshal(position Position) []byte
	Unmarshal(data []byte) (Position, error)
}
