package tetris

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	State    State
	Lines    int
	Shape    Shape
	X, Y     int
	Waiting  bool
	Status   string
	Occupied int // Settled cells in the grid
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	x, y := g.board.Position()
	occupied := 0
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			if g.board.ShapeAt(col, row) != ShapeNone {
				occupied++
			}
		}
	}

	return Snapshot{
		Tick:     g.tick,
		State:    g.board.State(),
		Lines:    g.board.LinesRemoved(),
		Shape:    g.board.Current().Shape(),
		X:        x,
		Y:        y,
		Waiting:  g.board.Waiting(),
		Status:   g.hud.status,
		Occupied: occupied,
	}
}
