// Package snake implements the game-state engine: a discrete-time
// simulation that advances the snake one cell per tick, detects wall and
// self collisions, spawns food and tracks the score. The engine is pure
// state transition logic with no rendering, input or timer dependencies;
// drivers call AdvanceTick at a fixed interval and feed heading changes
// in between.
package snake

import (
	"math/rand"
	"sync"
	"time"
)

// Cell is a single grid coordinate. Valid cells satisfy
// 0 <= X,Y < grid size.
type Cell struct {
	X, Y int
}

// Phase is the engine's lifecycle state.
// Idle -> Running <-> Paused, Running -> Over (terminal).
// Idle/Over return to Running only via Start.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Config holds the simulation parameters.
type Config struct {
	GridSize     int     // Board is GridSize x GridSize cells
	Reward       int     // Score increment per food item
	Spawn        Cell    // Initial head position
	SpawnHeading Heading // Initial direction of travel
	Seed         int64   // RNG seed; 0 derives a seed from the clock
}

// DefaultConfig returns the reference parameters: a 20x20 grid, 10 points
// per food, spawn at the board center heading right.
func DefaultConfig() Config {
	return Config{
		GridSize:     20,
		Reward:       10,
		Spawn:        Cell{X: 10, Y: 10},
		SpawnHeading: HeadingRight,
	}
}

// ScoreKeeper is the persistence collaborator for the best score.
// Implementations may fail; the engine treats both calls as best-effort
// and never lets a storage error corrupt the in-memory game state.
type ScoreKeeper interface {
	// HighScore returns the persisted best score, 0 if none is recorded.
	HighScore() (int, error)

	// RecordHighScore persists a new best score.
	RecordHighScore(score int) error
}

// Result is returned by engine operations that change state: the snapshot
// after the transition plus any notable events it produced.
type Result struct {
	Snapshot Snapshot
	Events   []Event
}

// Engine owns the entire game state. External code only reads snapshots
// and submits commands. All operations are safe to call from independent
// goroutines: a single mutex serializes ticks and input events, so no tick
// ever observes a half-applied heading change.
type Engine struct {
	mu     sync.Mutex
	cfg    Config
	rng    *rand.Rand
	scores ScoreKeeper // may be nil

	body    []Cell // head first
	food    Cell
	heading Heading
	score   int
	high    int
	phase   Phase
}

// New creates an engine in the Idle phase. The persisted high score is
// read once here and mirrored for comparison during play; a nil or
// failing keeper yields a mirror of 0.
func New(cfg Config, scores ScoreKeeper) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		scores: scores,
	}

	if scores != nil {
		if high, err := scores.HighScore(); err == nil {
			e.high = high
		}
	}

	e.placeDefaults()
	e.spawnFood()
	return e
}

// placeDefaults resets the snake, heading and score to their start values.
// Callers hold the lock (or are constructing the engine).
func (e *Engine) placeDefaults() {
	e.body = []Cell{e.cfg.Spawn}
	e.heading = e.cfg.SpawnHeading
	e.score = 0
}

// Start begins a fresh game: score zero, single-cell snake at the default
// position, food at a random free cell, phase Running. It always succeeds
// and doubles as restart after game over.
func (e *Engine) Start() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.placeDefaults()
	e.spawnFood()
	e.phase = PhaseRunning

	return Result{
		Snapshot: e.snapshotLocked(),
		Events:   []Event{{Kind: EventStarted}},
	}
}

// Reset returns the engine to Idle with default snake, heading, score and
// a fresh food placement, regardless of the current phase.
func (e *Engine) Reset() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.placeDefaults()
	e.spawnFood()
	e.phase = PhaseIdle

	return Result{
		Snapshot: e.snapshotLocked(),
		Events:   []Event{{Kind: EventReset}},
	}
}

// SetHeading requests a direction change, effective on the next tick.
// It is ignored unless the engine is Running, and ignored when the request
// equals the current heading or is its direct reverse (no instant
// self-reversal). Returns true if the heading was applied.
func (e *Engine) SetHeading(h Heading) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseRunning {
		return false
	}
	if h == e.heading || h == e.heading.Opposite() {
		return false
	}
	e.heading = h
	return true
}

// TogglePause flips between Running and Paused. It is a no-op in Idle and
// Over. No tick advances the simulation while Paused.
func (e *Engine) TogglePause() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case PhaseRunning:
		e.phase = PhasePaused
		return Result{
			Snapshot: e.snapshotLocked(),
			Events:   []Event{{Kind: EventPaused}},
		}
	case PhasePaused:
		e.phase = PhaseRunning
		return Result{
			Snapshot: e.snapshotLocked(),
			Events:   []Event{{Kind: EventResumed}},
		}
	default:
		return Result{Snapshot: e.snapshotLocked()}
	}
}

// AdvanceTick advances the simulation by one step. In any phase other than
// Running it leaves the state untouched. A tick that ends the game still
// produces the updated snapshot, so the renderer always sees the exact
// pre-freeze frame.
func (e *Engine) AdvanceTick() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseRunning {
		return Result{Snapshot: e.snapshotLocked()}
	}

	dx, dy := e.heading.Delta()
	head := e.body[0]
	next := Cell{X: head.X + dx, Y: head.Y + dy}

	// Wall collision: the state freezes as-is, the head never leaves
	// the grid.
	if next.X < 0 || next.X >= e.cfg.GridSize || next.Y < 0 || next.Y >= e.cfg.GridSize {
		return e.gameOverLocked()
	}

	eating := next == e.food

	// Self collision against the pre-move body. On a plain move the tail
	// vacates its cell this same tick, so it is excluded from the scan:
	// chasing your own tail is legal.
	scan := e.body
	if !eating && len(scan) > 0 {
		scan = scan[:len(scan)-1]
	}
	for _, c := range scan {
		if c == next {
			return e.gameOverLocked()
		}
	}

	e.body = append([]Cell{next}, e.body...)

	var events []Event
	if eating {
		e.score += e.cfg.Reward
		events = append(events, Event{Kind: EventFoodEaten, Score: e.score})

		if e.score > e.high {
			e.high = e.score
			events = append(events, Event{Kind: EventNewHighScore, Score: e.score})
			if e.scores != nil {
				// Best-effort: a failing keeper must not disturb the game.
				_ = e.scores.RecordHighScore(e.score)
			}
		}

		e.spawnFood()
	} else {
		e.body = e.body[:len(e.body)-1]
	}

	return Result{Snapshot: e.snapshotLocked(), Events: events}
}

// gameOverLocked transitions to the terminal Over phase.
func (e *Engine) gameOverLocked() Result {
	e.phase = PhaseOver
	return Result{
		Snapshot: e.snapshotLocked(),
		Events:   []Event{{Kind: EventGameOver, Score: e.score}},
	}
}

// spawnFood places food at a uniformly random free cell using rejection
// sampling against the snake body. Terminates because the grid always has
// more cells than the snake can occupy. Callers hold the lock.
func (e *Engine) spawnFood() {
	for {
		c := Cell{X: e.rng.Intn(e.cfg.GridSize), Y: e.rng.Intn(e.cfg.GridSize)}
		if !e.occupied(c) {
			e.food = c
			return
		}
	}
}

// occupied reports whether the snake body covers the given cell.
func (e *Engine) occupied(c Cell) bool {
	for _, b := range e.body {
		if b == c {
			return true
		}
	}
	return false
}
