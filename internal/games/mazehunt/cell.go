package mazehunt

// Cell is the type of a single grid cell.
type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellRelic
	CellExit
	CellObstacle
)

// String returns a human-readable name for the cell type.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellRelic:
		return "relic"
	case CellExit:
		return "exit"
	case CellObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}
