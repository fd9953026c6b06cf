package snake

import "fmt"

// EventKind identifies a notable game event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventFoodEaten
	EventNewHighScore
	EventGameOver
	EventPaused
	EventResumed
	EventReset
)

// Event is a human-readable notification emitted by the engine. Score
// carries the score at the time of the event where it is meaningful
// (food eaten, new high score, game over).
type Event struct {
	Kind  EventKind
	Score int
}

// String renders the event for a notification sink. The exact wording
// is cosmetic.
func (ev Event) String() string {
	switch ev.Kind {
	case EventStarted:
		return "game started"
	case EventFoodEaten:
		return fmt.Sprintf("score %d", ev.Score)
	case EventNewHighScore:
		return fmt.Sprintf("new high score: %d", ev.Score)
	case EventGameOver:
		return fmt.Sprintf("game over — final score %d", ev.Score)
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventReset:
		return "reset"
	default:
		return "unknown event"
	}
}
