package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Shape identifies a tetromino kind. ShapeNone marks an empty cell and the
// absence of a falling piece.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeZ
	ShapeS
	ShapeLine
	ShapeT
	ShapeSquare
	ShapeL
	ShapeMirroredL
)

// shapeCount is the number of real tetrominoes (ShapeNone excluded).
const shapeCount = 7

// Offset is a cell position relative to the piece anchor. Y grows upwards.
type Offset struct {
	X, Y int
}

var shapeTable = [shapeCount + 1][4]Offset{
	ShapeNone:      {{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	ShapeZ:         {{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
	ShapeS:         {{0, -1}, {0, 0}, {1, 0}, {1, 1}},
	ShapeLine:      {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	ShapeT:         {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	ShapeSquare:    {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	ShapeL:         {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	ShapeMirroredL: {{1, -1}, {0, -1}, {0, 0}, {0, 1}},
}

var shapeColors = [shapeCount + 1]core.Color{
	ShapeNone:      core.ColorDefault,
	ShapeZ:         core.ColorRed,
	ShapeS:         core.ColorGreen,
	ShapeLine:      core.ColorBlue,
	ShapeT:         core.ColorYellow,
	ShapeSquare:    core.ColorMagenta,
	ShapeL:         core.ColorCyan,
	ShapeMirroredL: core.ColorOrange,
}

// Valid reports whether s is one of the defined shapes (ShapeNone included).
func (s Shape) Valid() bool {
	return s <= ShapeMirroredL
}

// Color returns the render color of the shape.
func (s Shape) Color() core.Color {
	if !s.Valid() {
		return core.ColorDefault
	}
	return shapeColors[s]
}

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeZ:
		return "Z"
	case ShapeS:
		return "S"
	case ShapeLine:
		return "line"
	case ShapeT:
		return "T"
	case ShapeSquare:
		return "square"
	case ShapeL:
		return "L"
	case ShapeMirroredL:
		return "mirrored L"
	default:
		return "unknown"
	}
}

// Piece is a shape together with its four cell offsets in the current
// rotation. Pieces are values: rotating returns a new Piece.
type Piece struct {
	shape   Shape
	offsets [4]Offset
}

// NewPiece returns a piece in the spawn orientation of the given shape.
// Unknown shapes yield an empty piece.
func NewPiece(shape Shape) Piece {
	if !shape.Valid() {
		shape = ShapeNone
	}
	return Piece{shape: shape, offsets: shapeTable[shape]}
}

// Shape returns the piece's shape kind.
func (p Piece) Shape() Shape {
	return p.shape
}

// X returns the x offset of cell i.
func (p Piece) X(i int) int {
	return p.offsets[i].X
}

// Y returns the y offset of cell i.
func (p Piece) Y(i int) int {
	return p.offsets[i].Y
}

// Cells returns the four offsets.
func (p Piece) Cells() [4]Offset {
	return p.offsets
}

func (p Piece) MinX() int {
	m := p.offsets[0].X
	for _, o := range p.offsets[1:] {
		m = min(m, o.X)
	}
	return m
}

func (p Piece) MaxX() int {
	m := p.offsets[0].X
	for _, o := range p.offsets[1:] {
		m = max(m, o.X)
	}
	return m
}

func (p Piece) MinY() int {
	m := p.offsets[0].Y
	for _, o := range p.offsets[1:] {
		m = min(m, o.Y)
	}
	return m
}

func (p Piece) MaxY() int {
	m := p.offsets[0].Y
	for _, o := range p.offsets[1:] {
		m = max(m, o.Y)
	}
	return m
}

// RotatedLeft returns the piece rotated a quarter turn with (x, y) -> (y, -x).
// The square is returned unchanged.
func (p Piece) RotatedLeft() Piece {
	if p.shape == ShapeSquare {
		return p
	}
	r := Piece{shape: p.shape}
	for i, o := range p.offsets {
		r.offsets[i] = Offset{X: o.Y, Y: -o.X}
	}
	return r
}

// RotatedRight returns the piece rotated a quarter turn with (x, y) -> (-y, x).
// The square is returned unchanged.
func (p Piece) RotatedRight() Piece {
	if p.shape == ShapeSquare {
		return p
	}
	r := Piece{shape: p.shape}
	for i, o := range p.offsets {
		r.offsets[i] = Offset{X: -o.Y, Y: o.X}
	}
	return r
}
