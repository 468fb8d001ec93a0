// Package tetris implements the falling-block game: pieces, the board state
// machine, and the registry.Game adapter the platform drives.
package tetris

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "tetris"

// Package-level settings applied to games created afterwards. The CLI sets
// them once before any game starts.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultTetrisConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by new games.
func SetConfig(cfg config.TetrisConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

var actionCommands = map[core.Action]Command{
	core.ActionLeft:        CmdMoveLeft,
	core.ActionRight:       CmdMoveRight,
	core.ActionRotateLeft:  CmdRotateLeft,
	core.ActionRotateRight: CmdRotateRight,
	core.ActionDrop:        CmdDrop,
	core.ActionOneLineDown: CmdOneLineDown,
	core.ActionPause:       CmdPause,
}

// Game adapts a Board to the platform's fixed-step loop.
type Game struct {
	cfg   config.TetrisConfig
	log   *log.Logger
	board *Board
	clock *core.StepClock
	hud   *hud
	step  time.Duration
	tick  uint64
}

// hud collects the board's notifications for display.
type hud struct {
	log     *log.Logger
	status  string
	redraws uint64
}

func (h *hud) StatusChanged(msg string) {
	h.status = msg
	if msg == StatusGameOver {
		h.log.Info("game over")
		return
	}
	h.log.Debug("status", "msg", msg)
}

func (h *hud) Redraw() {
	h.redraws++
}

// New creates a game using the current package settings.
func New() *Game {
	settingsMu.RLock()
	defer settingsMu.RUnlock()

	g := &Game{
		cfg: settings,
		log: logger.With("game", GameID),
	}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register(GameID, "Tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset builds a fresh board and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.step = cfg.StepDuration()
	g.tick = 0
	g.clock = core.NewStepClock()
	g.hud = &hud{log: g.log}
	g.board = NewBoard(Options{
		Rand:      rand.New(rand.NewSource(cfg.Seed)),
		Scheduler: g.clock,
		Listener:  g.hud,
		Interval:  g.cfg.DropInterval(),
	})
	g.board.Start()
	g.log.Debug("game reset", "seed", cfg.Seed, "interval", g.board.Interval())
}

// Step applies this frame's actions in order, then advances the drop clock
// by one simulation step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Actions() {
		if a == core.ActionRestart {
			g.restart()
			continue
		}
		if cmd, ok := actionCommands[a]; ok {
			g.board.Handle(cmd)
		}
	}

	g.clock.Advance(g.step)

	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	switch g.board.State() {
	case StateGameOver, StateNotStarted:
		g.log.Info("game restarted", "previous_lines", g.board.LinesRemoved())
		g.board.Start()
	}
}

// State returns the current game state. The score is the number of lines removed.
func (g *Game) State() core.GameState {
	st := g.board.State()
	return core.GameState{
		Score:    g.board.LinesRemoved(),
		GameOver: st == StateGameOver,
		Paused:   st == StatePaused,
	}
}

// Board exposes the underlying board for read-only queries.
func (g *Game) Board() *Board {
	return g.board
}

// Status returns the latest status message.
func (g *Game) Status() string {
	return g.hud.status
}
