package entities

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p moved one step along d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// IsOpposite reports whether d points exactly against other.
func (d Direction) IsOpposite(other Direction) bool {
	return d.DX+other.DX == 0 && d.DY+other.DY == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
