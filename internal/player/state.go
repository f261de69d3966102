package player

// State is the engine's playback state machine:
//
//	Idle → Loading → Ready ⇄ Buffering
//	any  → Failed (terminal until the next Play reconstructs the source)
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateBuffering
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateLoading:
		return "LOADING"
	case StateReady:
		return "LIVE"
	case StateBuffering:
		return "BUFFERING"
	case StateFailed:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
