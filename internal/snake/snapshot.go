package snake

// Snapshot is a read-only copy of the game state, produced after every
// operation for rendering and testing. The body slice is owned by the
// snapshot; mutating it never affects the engine.
type Snapshot struct {
	GridSize int
	Body     []Cell // head first
	Food     Cell
	Heading  Heading
	Score    int
	High     int
	Phase    Phase
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	return s.Body[0]
}

// Over reports whether the game has reached the terminal phase.
func (s Snapshot) Over() bool {
	return s.Phase == PhaseOver
}

// Paused reports whether the simulation is paused.
func (s Snapshot) Paused() bool {
	return s.Phase == PhasePaused
}

// Snapshot returns the current game state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// snapshotLocked builds a snapshot. Callers hold the lock.
func (e *Engine) snapshotLocked() Snapshot {
	body := make([]Cell, len(e.body))
	copy(body, e.body)

	return Snapshot{
		GridSize: e.cfg.GridSize,
		Body:     body,
		Food:     e.food,
		Heading:  e.heading,
		Score:    e.score,
		High:     e.high,
		Phase:    e.phase,
	}
}
