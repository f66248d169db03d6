package core

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventNone           EventType = iota
	EventHazardDodged             // A hazard left the playfield
	EventBonusCollected           // The player picked up a bonus
	EventShieldBlocked            // A hazard overlapped a shielded player
	EventCrash                    // The run ended
	EventHighScore                // A new high score was committed
	EventRestart                  // A new run started after game over
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventHazardDodged:
		return "dodged"
	case EventBonusCollected:
		return "bonus"
	case EventShieldBlocked:
		return "blocked"
	case EventCrash:
		return "crash"
	case EventHighScore:
		return "highscore"
	case EventRestart:
		return "restart"
	default:
		return "none"
	}
}

// Event is emitted by Game.Step. Detail carries event-specific data,
// such as the bonus kind for EventBonusCollected.
type Event struct {
	Type   EventType
	Detail string
}

// HasEvent reports whether events contains at least one event of type t.
func HasEvent(events []Event, t EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// CountEvents returns how many events of type t occurred.
func CountEvents(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
