package player

import (
	"context"
	"time"
)

// EventKind identifies a status or metadata notification from a Source.
type EventKind int

const (
	// EventReady: the source decoded audio and is keeping up.
	EventReady EventKind = iota
	// EventBufferEmpty: the playback buffer ran dry.
	EventBufferEmpty
	// EventKeepUp: the buffer refilled after running dry.
	EventKeepUp
	// EventFailed: fatal source error; playback has stopped.
	EventFailed
	// EventMetadata: fresh stream metadata arrived.
	EventMetadata
)

func (k EventKind) String() string {
	switch k {
	case EventReady:
		return "ready"
	case EventBufferEmpty:
		return "buffer-empty"
	case EventKeepUp:
		return "keep-up"
	case EventFailed:
		return "failed"
	case EventMetadata:
		return "metadata"
	default:
		return "unknown"
	}
}

// Event is a single notification from a Source. For EventMetadata, Fields
// carries structured key/value metadata when the stream exposes it, and
// StreamTitle the raw inline "Artist - Track" string otherwise.
type Event struct {
	Kind        EventKind
	Err         error
	Fields      map[string]string
	StreamTitle string
}

// Source is a single audio stream connection. The engine owns exactly one
// at a time; callbacks from a closed source are never delivered because
// the engine drains the event channel before releasing it.
type Source interface {
	// Start connects and begins playback, returning the event channel.
	// The channel is closed when the source shuts down.
	Start(ctx context.Context) (<-chan Event, error)

	// Pause stops audio output without tearing down the connection.
	Pause()

	// Resume restarts audio output after Pause.
	Resume()

	// SetVolume applies a gain in [0.0, 1.0].
	SetVolume(volume float64)

	// Seek shifts the playback position by a signed offset. Best-effort:
	// live streams may ignore it.
	Seek(offset time.Duration) error

	// Close tears down the connection and releases audio resources.
	Close() error
}

// SourceFactory constructs a Source for a stream URL. The engine calls it
// lazily on the first Play and again after a failure.
type SourceFactory func(streamURL string) Source
