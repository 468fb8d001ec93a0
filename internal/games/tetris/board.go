package tetris

import (
	"math/rand"
	"strconv"
	"time"
)

// Board dimensions in cells. Row 0 is the bottom of the well.
const (
	Width  = 10
	Height = 22
)

// DefaultInterval is the time between two drop ticks.
const DefaultInterval = 300 * time.Millisecond

// Status texts emitted besides the lines-removed count.
const (
	StatusPaused   = "paused"
	StatusGameOver = "Game over"
)

// State is the lifecycle state of a Board.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a discrete player input understood by the board.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdRotateLeft
	CmdRotateRight
	CmdDrop
	CmdOneLineDown
	CmdPause
)

// Scheduler runs a repeating callback at a fixed interval until stopped.
// The host environment provides it; the board never spawns goroutines.
type Scheduler interface {
	Start(interval time.Duration, fn func())
	Stop()
}

// Listener receives the board's status messages and redraw hints.
type Listener interface {
	StatusChanged(msg string)
	Redraw()
}

// NopListener discards all notifications.
type NopListener struct{}

func (NopListener) StatusChanged(string) {}
func (NopListener) Redraw()              {}

type nopScheduler struct{}

func (nopScheduler) Start(time.Duration, func()) {}
func (nopScheduler) Stop()                       {}

// Options configures a Board. Zero values are replaced with defaults.
type Options struct {
	Rand      *rand.Rand
	Scheduler Scheduler
	Listener  Listener
	Interval  time.Duration
}

// Board owns the settled grid and the falling piece, and implements the
// game rules. It is not safe for concurrent use; hosts serialize all calls.
type Board struct {
	cells [Height][Width]Shape

	cur        Piece
	curX, curY int

	linesRemoved     int
	waitingAfterLine bool
	started          bool
	paused           bool
	gameOver         bool

	rng      *rand.Rand
	sched    Scheduler
	listener Listener
	interval time.Duration
}

// NewBoard creates an empty, not yet started board.
func NewBoard(opts Options) *Board {
	b := &Board{
		cur:      NewPiece(ShapeNone),
		rng:      opts.Rand,
		sched:    opts.Scheduler,
		listener: opts.Listener,
		interval: opts.Interval,
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.sched == nil {
		b.sched = nopScheduler{}
	}
	if b.listener == nil {
		b.listener = NopListener{}
	}
	if b.interval <= 0 {
		b.interval = DefaultInterval
	}
	return b
}

// Start begins a new game. It is a no-op while paused; unpause first.
func (b *Board) Start() {
	if b.paused {
		return
	}

	b.started = true
	b.gameOver = false
	b.waitingAfterLine = false
	b.linesRemoved = 0
	b.clearBoard()

	b.listener.StatusChanged(strconv.Itoa(b.linesRemoved))

	b.newPiece()
	if b.started {
		b.sched.Start(b.interval, b.Tick)
	}
}

// Pause toggles the paused state of a started game.
func (b *Board) Pause() {
	if !b.started {
		return
	}

	b.paused = !b.paused
	if b.paused {
		b.sched.Stop()
		b.listener.StatusChanged(StatusPaused)
	} else {
		b.sched.Start(b.interval, b.Tick)
		b.listener.StatusChanged(strconv.Itoa(b.linesRemoved))
	}
	b.listener.Redraw()
}

// Tick is the scheduler callback: it completes a spawn deferred by a line
// clear, or moves the falling piece down one row. Ignored unless running.
func (b *Board) Tick() {
	if !b.started || b.paused {
		return
	}
	if b.waitingAfterLine {
		b.waitingAfterLine = false
		b.newPiece()
		return
	}
	b.oneLineDown()
}

// Handle applies a player command and reports whether the board consumed it.
// Commands are ignored before the game starts, after it ends and while no
// piece is falling. While paused only CmdPause has an effect.
func (b *Board) Handle(cmd Command) bool {
	if !b.started || b.cur.Shape() == ShapeNone {
		return false
	}
	if cmd == CmdPause {
		b.Pause()
		return true
	}
	if b.paused {
		return cmd > CmdNone && cmd < CmdPause
	}

	switch cmd {
	case CmdMoveLeft:
		b.attemptMove(b.cur, b.curX-1, b.curY)
	case CmdMoveRight:
		b.attemptMove(b.cur, b.curX+1, b.curY)
	case CmdRotateLeft:
		b.attemptMove(b.cur.RotatedLeft(), b.curX, b.curY)
	case CmdRotateRight:
		b.attemptMove(b.cur.RotatedRight(), b.curX, b.curY)
	case CmdDrop:
		b.dropDown()
	case CmdOneLineDown:
		b.oneLineDown()
	default:
		return false
	}
	return true
}

// State reports the lifecycle state.
func (b *Board) State() State {
	switch {
	case b.started && b.paused:
		return StatePaused
	case b.started:
		return StateRunning
	case b.gameOver:
		return StateGameOver
	default:
		return StateNotStarted
	}
}

// ShapeAt returns the settled shape at (x, y), or ShapeNone outside the board.
func (b *Board) ShapeAt(x, y int) Shape {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return ShapeNone
	}
	return b.cells[y][x]
}

// Current returns the falling piece.
func (b *Board) Current() Piece {
	return b.cur
}

// Position returns the anchor of the falling piece.
func (b *Board) Position() (x, y int) {
	return b.curX, b.curY
}

// CurrentCells returns the board coordinates covered by the falling piece.
func (b *Board) CurrentCells() [4]Offset {
	var cells [4]Offset
	for i, o := range b.cur.offsets {
		cells[i] = Offset{X: b.curX + o.X, Y: b.curY - o.Y}
	}
	return cells
}

// LinesRemoved returns the number of rows cleared since Start.
func (b *Board) LinesRemoved() int {
	return b.linesRemoved
}

// Waiting reports whether the next spawn is deferred to the following tick.
func (b *Board) Waiting() bool {
	return b.waitingAfterLine
}

// Interval returns the drop tick interval.
func (b *Board) Interval() time.Duration {
	return b.interval
}

func (b *Board) setShapeAt(x, y int, s Shape) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b.cells[y][x] = s
}

func (b *Board) clearBoard() {
	b.cells = [Height][Width]Shape{}
}

// attemptMove places piece at (newX, newY) if every cell is inside the board
// and unoccupied. On failure nothing changes.
func (b *Board) attemptMove(piece Piece, newX, newY int) bool {
	for _, o := range piece.offsets {
		x := newX + o.X
		y := newY - o.Y
		if x < 0 || x >= Width || y < 0 || y >= Height {
			return false
		}
		if b.cells[y][x] != ShapeNone {
			return false
		}
	}

	b.cur = piece
	b.curX = newX
	b.curY = newY
	b.listener.Redraw()
	return true
}

func (b *Board) oneLineDown() {
	if !b.attemptMove(b.cur, b.curX, b.curY-1) {
		b.pieceDropped()
	}
}

func (b *Board) dropDown() {
	for newY := b.curY; newY > 0; newY-- {
		if !b.attemptMove(b.cur, b.curX, newY-1) {
			break
		}
	}
	b.pieceDropped()
}

// pieceDropped writes the falling piece into the grid, clears full rows and
// spawns the next piece unless the spawn was deferred by a line clear.
func (b *Board) pieceDropped() {
	for _, c := range b.CurrentCells() {
		b.setShapeAt(c.X, c.Y, b.cur.Shape())
	}

	b.removeFullLines()

	if !b.waitingAfterLine {
		b.newPiece()
	}
}

func (b *Board) rowFull(y int) bool {
	for _, s := range b.cells[y] {
		if s == ShapeNone {
			return false
		}
	}
	return true
}

// removeFullLines drops every full row and lets the rows above fall into
// the gap. Returns the number of rows removed.
func (b *Board) removeFullLines() int {
	removed := 0
	dst := 0
	for y := 0; y < Height; y++ {
		if b.rowFull(y) {
			removed++
			continue
		}
		if dst != y {
			b.cells[dst] = b.cells[y]
		}
		dst++
	}
	for y := dst; y < Height; y++ {
		b.cells[y] = [Width]Shape{}
	}

	if removed > 0 {
		b.linesRemoved += removed
		b.listener.StatusChanged(strconv.Itoa(b.linesRemoved))

		b.waitingAfterLine = true
		b.cur = NewPiece(ShapeNone)
		b.listener.Redraw()
	}
	return removed
}

func (b *Board) newPiece() {
	b.spawn(Shape(b.rng.Intn(shapeCount) + 1))
}

// spawn puts a piece of the given shape at the top of the well, ending the
// game if it does not fit.
func (b *Board) spawn(shape Shape) {
	piece := NewPiece(shape)
	b.cur = piece
	b.curX = Width/2 + 1
	b.curY = Height - 1 + piece.MinY()

	if !b.attemptMove(piece, b.curX, b.curY) {
		b.cur = NewPiece(ShapeNone)
		b.sched.Stop()
		b.started = false
		b.gameOver = true
		b.listener.StatusChanged(StatusGameOver)
	}
}
