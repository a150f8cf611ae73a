package protocol

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"chessengine/board"
	"chessengine/search"
)

// side is who the engine is currently playing, toggled by the
// `force`/`go`/`playother`/`new` commands.
type side int

const (
	sideNone side = iota
	sideWhite
	sideBlack
)

func sideOf(c board.Color) side {
	if c == board.White {
		return sideWhite
	}
	return sideBlack
}

// snapshot is one entry on the undo stack: the position before a move
// was made plus that position's hash, so `undo`/`remove` can pop back
// and repetition detection can rebuild the game's hash history.
type snapshot struct {
	pos  *board.Position
	hash uint64
}

// Controller drives one CECP/xboard session against a search.Engine.
// It owns all of the mutable game state the protocol commands touch:
// the current position, the undo history, clocks, and the engine's
// current playing side.
type Controller struct {
	engine *search.Engine

	pos     *board.Position
	history []snapshot // one entry per half-move played so far

	playing side
	analyze bool
	sdCap   int // 0 = no cap
	stSecs  int // 0 = not using fixed seconds/move
	timeCs  int // remaining time, centiseconds; 0 = unset

	post bool

	out     io.Writer
	logger  *log.Logger
	watcher *inputWatcher
}

// New builds a Controller around engine, writing replies to out and
// append-only session logs through logger (pass nil to disable
// logging; protocol.OpenSessionLog builds one).
func New(engine *search.Engine, out io.Writer, logger *log.Logger) *Controller {
	pos, _ := board.ParseFEN(board.StartFEN)
	return &Controller{
		engine: engine,
		pos:    pos,
		out:    out,
		logger: logger,
	}
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func (c *Controller) reply(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, line)
	c.logf("<- %s", line)
}

// Run reads commands from in until `quit` or EOF, dispatching each
// line in turn. It returns the process exit code: zero on a clean
// quit.
func (c *Controller) Run(in io.Reader) int {
	c.watcher = newInputWatcher(in)
	for {
		line, ok := c.watcher.next()
		if !ok {
			return 0
		}
		c.logf("-> %s", line)
		if quit := c.dispatch(line); quit {
			return 0
		}
	}
}

func (c *Controller) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "xboard", "accepted", "easy", "hard", "otim", "random":
		// no-op
	case "protover":
		c.cmdProtover()
	case "new":
		c.cmdNew()
	case "force":
		c.playing = sideNone
		c.analyze = false
	case "go":
		c.playing = sideOf(c.pos.Side())
		c.searchAndMove()
	case "playother":
		c.playing = sideOf(c.pos.Side().Opponent())
	case "analyze":
		c.analyze = true
		c.searchAndMove()
	case "exit":
		c.analyze = false
	case "hint":
		c.cmdHint()
	case "level":
		c.cmdLevel(args)
	case "st":
		if n, err := strconv.Atoi(firstOr(args, "")); err == nil {
			c.stSecs = n
		}
	case "sd":
		if n, err := strconv.Atoi(firstOr(args, "")); err == nil {
			c.sdCap = n
		}
	case "time":
		if n, err := strconv.Atoi(firstOr(args, "")); err == nil {
			c.timeCs = n
		}
	case "setboard":
		c.cmdSetboard(strings.Join(args, " "))
	case "undo":
		c.cmdUndo(1)
	case "remove":
		c.cmdUndo(2)
	case "result":
		c.playing = sideNone
	case "quit":
		return true
	case "post":
		c.post = true
	case "nopost":
		c.post = false
	case "ics":
		// no-op: marks whether the controller is a chess server; this
		// engine's behavior doesn't depend on it.
	default:
		if m := c.parseUserMove(cmd); !m.IsSentry() {
			c.applyUserMove(m)
			return false
		}
		c.reply("Error (unknown command): %s", line)
	}
	return false
}

func firstOr(args []string, def string) string {
	if len(args) == 0 {
		return def
	}
	return args[0]
}

func (c *Controller) cmdProtover() {
	c.reply("feature myname=\"chessengine\" playother=1 sigint=0 colors=0 setboard=1 ics=1 debug=1 done=1")
}

func (c *Controller) cmdNew() {
	pos, _ := board.ParseFEN(board.StartFEN)
	c.pos = pos
	c.history = nil
	c.playing = sideBlack
	c.sdCap = 0
	c.analyze = false
}

func (c *Controller) cmdSetboard(fen string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		c.reply("Error (bad FEN): %s", fen)
		return
	}
	c.pos = pos
	c.history = nil
}

// cmdLevel accepts `level M T [inc]` (M moves per period, T minutes or
// mm:ss) but doesn't act on it: this controller only tracks the per-
// move time budget the downstream `time`/`st` commands refine, so the
// period itself is parsed just enough to validate and then discarded.
func (c *Controller) cmdLevel(args []string) {
	if len(args) < 2 {
		return
	}
}

func (c *Controller) cmdHint() {
	budget := c.budgetForMove()
	move, _ := c.engine.Search(c.pos, budget, c.clockCentis(), nil)
	if move.IsSentry() {
		return
	}
	c.reply("Hint: %s", move.String())
}

func (c *Controller) cmdUndo(halfMoves int) {
	for i := 0; i < halfMoves && len(c.history) > 0; i++ {
		last := c.history[len(c.history)-1]
		c.history = c.history[:len(c.history)-1]
		c.pos = last.pos
	}
}

func (c *Controller) parseUserMove(token string) board.Move {
	if len(token) < 4 || len(token) > 5 {
		return board.Sentry
	}
	m := c.pos.ParseCoordMove(token)
	return m
}

func (c *Controller) applyUserMove(m board.Move) {
	before := c.pos
	child, ok := before.AfterMove(m)
	if !ok {
		c.reply("Illegal move: %s", m.String())
		return
	}
	c.history = append(c.history, snapshot{pos: before, hash: before.Hash()})
	c.pos = child
	c.reportGameEndIfAny()
	if c.playing == sideOf(c.pos.Side()) || c.analyze {
		c.searchAndMove()
	}
}

// hashHistory rebuilds the position-hash vector MateOrDraw needs for
// repetition detection from the undo stack plus the current position.
func (c *Controller) hashHistory() []uint64 {
	out := make([]uint64, 0, len(c.history)+1)
	for _, s := range c.history {
		out = append(out, s.hash)
	}
	out = append(out, c.pos.Hash())
	return out
}

func (c *Controller) reportGameEndIfAny() {
	switch c.pos.MateOrDraw(c.hashHistory()) {
	case board.StatusMated:
		if c.pos.Side() == board.White {
			c.reply("0-1 {Black mates}")
		} else {
			c.reply("1-0 {White mates}")
		}
		c.playing = sideNone
	case board.StatusStalemate:
		c.reply("1/2-1/2 {Stalemate}")
		c.playing = sideNone
	case board.StatusDrawFifty:
		c.reply("1/2-1/2 {50-move rule}")
		c.playing = sideNone
	case board.StatusDrawRepetition:
		c.reply("1/2-1/2 {Threefold repetition}")
		c.playing = sideNone
	}
}

func (c *Controller) budgetForMove() search.Budget {
	b := search.Budget{MaxDepth: c.sdCap}
	b.Stopper = c.makeStopper()
	return b
}

// makeStopper builds the deadline this move's search should respect
// from `st`/`time`, falling back to no deadline (sd-capped searches,
// or analyze mode, run until the next input line arrives).
func (c *Controller) makeStopper() *deadlineStopper {
	now := func() int64 { return time.Now().UnixNano() }
	var deadlineNanos int64
	switch {
	case c.stSecs > 0:
		deadlineNanos = now() + int64(c.stSecs)*int64(time.Second)
	case c.timeCs > 0:
		// Spend a conservative slice of the reported remaining time.
		ms := c.timeCs * 10 / 30
		deadlineNanos = now() + int64(ms)*int64(time.Millisecond)
	}
	return newDeadlineStopper(deadlineNanos, now, c.watcher)
}

func (c *Controller) clockCentis() func() int64 {
	start := time.Now()
	return func() int64 { return time.Since(start).Milliseconds() / 10 }
}

// searchAndMove runs one search to completion (or until interrupted by
// fresh input), applies the resulting move, and reports it in the
// `move <m>` reply format.
func (c *Controller) searchAndMove() {
	if len(c.pos.Moves()) == 0 {
		c.reportGameEndIfAny()
		return
	}
	budget := c.budgetForMove()
	stopper := budget.Stopper.(*deadlineStopper)

	var onInfo func(search.Info)
	if c.post {
		onInfo = func(info search.Info) {
			c.reply("%d %d %d %d%s", info.Depth, info.Score, info.Centiseconds, info.Nodes, formatPV(info.PV))
		}
	}

	move, _ := c.engine.Search(c.pos, budget, c.clockCentis(), onInfo)
	if move.IsSentry() {
		c.reportGameEndIfAny()
		return
	}

	before := c.pos
	child, ok := before.AfterMove(move)
	if !ok {
		c.logf("search produced an illegal move %s, ignoring", move.String())
		return
	}
	c.history = append(c.history, snapshot{pos: before, hash: before.Hash()})
	c.pos = child
	c.reply("move %s", move.String())
	c.reportGameEndIfAny()

	if line, ok := stopper.takePending(); ok {
		c.logf("-> %s", line)
		c.dispatch(line)
	}
}

func formatPV(pv []board.Move) string {
	if len(pv) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range pv {
		b.WriteByte(' ')
		b.WriteString(m.String())
	}
	return b.String()
}

// OpenSessionLog opens the append-only session log file and wraps it
// in a *log.Logger with no extra prefix/flags (the caller writes
// already-formatted protocol lines).
func OpenSessionLog() (*log.Logger, io.Closer, error) {
	f, err := openLogFile(EngineBaseName())
	if err != nil {
		return nil, nil, err
	}
	return log.New(bufio.NewWriter(f), "", 0), f, nil
}
