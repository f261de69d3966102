// Package player implements stream playback for the station: an explicit
// playback state machine around a single audio source, now-playing metadata
// tracking, and the sleep timer.
package player

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Snapshot is a read-only projection of the engine's observable state.
// LastError holds the message of the failure that put the engine into
// StateFailed; it is empty in every other state.
type Snapshot struct {
	State        State
	IsPlaying    bool
	IsBuffering  bool
	Volume       float64
	Track        string
	Artist       string
	SleepMinutes int
	LastError    string
}

// Subscription delivers state snapshots to one observer. Snapshots are
// dropped, not queued, when the observer lags; the latest state always
// arrives eventually.
type Subscription struct {
	C      <-chan Snapshot
	engine *Engine
	id     int
}

// Close unsubscribes. Safe to call more than once; no snapshot is
// delivered after Close returns.
func (s *Subscription) Close() {
	s.engine.unsubscribe(s.id)
}

// Engine is the single authority over the stream source and playback
// state. It is constructed once at the composition root and handed to the
// UI and the now-playing publisher; nothing else touches the source.
type Engine struct {
	mu          sync.Mutex
	state       State
	isPlaying   bool
	isBuffering bool
	volume      float64
	track       string
	artist      string
	lastError   string

	defaultTrack  string
	defaultArtist string

	streamURL string
	newSource SourceFactory
	source    Source
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	sleep *sleepTimer

	subs   map[int]chan Snapshot
	nextID int
	closed bool
}

// NewEngine creates an engine for the given stream URL. defaultTrack and
// defaultArtist label the now-playing display until stream metadata
// arrives (station name and location, in practice).
func NewEngine(streamURL, defaultTrack, defaultArtist string, factory SourceFactory) *Engine {
	e := &Engine{
		state:         StateIdle,
		volume:        1.0,
		track:         defaultTrack,
		artist:        defaultArtist,
		defaultTrack:  defaultTrack,
		defaultArtist: defaultArtist,
		streamURL:     streamURL,
		newSource:     factory,
		subs:          make(map[int]chan Snapshot),
	}
	e.sleep = newSleepTimer(func() {
		log.Debug().Msg("Sleep timer fired, pausing playback")
		e.Pause()
		e.notify()
	})
	return e
}

// Play starts playback, lazily constructing the source on first use and
// after a failure. Idempotent while already playing: no second source is
// ever constructed. isPlaying flips optimistically; buffering state
// follows from source events.
func (e *Engine) Play() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if e.isPlaying && e.source != nil {
		e.mu.Unlock()
		return
	}

	e.lastError = ""

	if e.source == nil {
		src := e.newSource(e.streamURL)
		ctx, cancel := context.WithCancel(context.Background())

		events, err := src.Start(ctx)
		if err != nil {
			cancel()
			log.Error().Err(err).Msg("Failed to start stream source")
			e.state = StateFailed
			e.isPlaying = false
			e.isBuffering = false
			e.lastError = err.Error()
			e.mu.Unlock()
			e.notify()
			return
		}

		src.SetVolume(e.volume)
		e.source = src
		e.cancel = cancel
		e.state = StateLoading
		log.Debug().Str("url", e.streamURL).Msg("Stream source started")

		e.wg.Add(1)
		go e.consumeEvents(events)
	} else {
		e.source.Resume()
	}

	e.isPlaying = true
	e.mu.Unlock()
	e.notify()
}

// Pause stops audio output but keeps the source connected so resuming is
// cheap. Buffering is a sub-state of playing, so it clears here too.
func (e *Engine) Pause() {
	e.mu.Lock()
	if !e.isPlaying {
		e.mu.Unlock()
		return
	}
	if e.source != nil {
		e.source.Pause()
	}
	e.isPlaying = false
	e.isBuffering = false
	if e.state == StateBuffering {
		e.state = StateReady
	}
	e.mu.Unlock()
	e.notify()
	log.Debug().Msg("Playback paused")
}

// TogglePlayPause pauses if playing, plays otherwise.
func (e *Engine) TogglePlayPause() {
	if e.IsPlaying() {
		e.Pause()
	} else {
		e.Play()
	}
}

// SetVolume clamps to [0.0, 1.0] and applies to the live source if one
// exists. Volume is not persisted here; it resets with the process.
func (e *Engine) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	e.mu.Lock()
	e.volume = volume
	src := e.source
	e.mu.Unlock()

	if src != nil {
		src.SetVolume(volume)
	}
	e.notify()
	log.Debug().Float64("volume", volume).Msg("Volume set")
}

// Skip shifts playback by a signed number of seconds. Best-effort: a
// no-op without a live source, and live streams may ignore it anyway.
func (e *Engine) Skip(seconds float64) {
	e.mu.Lock()
	src := e.source
	e.mu.Unlock()

	if src == nil {
		return
	}
	if err := src.Seek(time.Duration(seconds * float64(time.Second))); err != nil {
		log.Debug().Err(err).Float64("seconds", seconds).Msg("Seek not applied")
	}
}

// SetSleepTimer arms a one-shot pause after the given number of minutes,
// superseding any pending timer. Zero or negative disarms.
func (e *Engine) SetSleepTimer(minutes int) {
	e.sleep.Set(minutes)
	e.notify()
}

// SleepTimerRemaining returns the armed duration in minutes, or 0 when no
// timer is pending. The value is the originally requested duration, not a
// live countdown.
func (e *Engine) SleepTimerRemaining() int {
	return e.sleep.Remaining()
}

func (e *Engine) IsPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isPlaying
}

func (e *Engine) IsBuffering() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isBuffering
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// NowPlaying returns the current track and artist labels.
func (e *Engine) NowPlaying() (track, artist string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.track, e.artist
}

// Snapshot returns the full observable state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:        e.state,
		IsPlaying:    e.isPlaying,
		IsBuffering:  e.isBuffering,
		Volume:       e.volume,
		Track:        e.track,
		Artist:       e.artist,
		SleepMinutes: e.sleep.Remaining(),
		LastError:    e.lastError,
	}
}

// Subscribe registers an observer for state changes.
func (e *Engine) Subscribe() *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	ch := make(chan Snapshot, 8)
	e.subs[e.nextID] = ch

	return &Subscription{C: ch, engine: e, id: e.nextID}
}

func (e *Engine) unsubscribe(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ch, ok := e.subs[id]; ok {
		delete(e.subs, id)
		close(ch)
	}
}

func (e *Engine) notify() {
	e.mu.Lock()
	snap := e.snapshotLocked()
	for _, ch := range e.subs {
		select {
		case ch <- snap:
		default:
		}
	}
	e.mu.Unlock()
}

// consumeEvents applies source events strictly in receipt order.
func (e *Engine) consumeEvents(events <-chan Event) {
	defer e.wg.Done()
	for ev := range events {
		e.apply(ev)
	}
	log.Debug().Msg("Source event channel closed")
}

func (e *Engine) apply(ev Event) {
	e.mu.Lock()

	switch ev.Kind {
	case EventReady:
		e.isBuffering = false
		if e.state == StateLoading || e.state == StateBuffering {
			e.state = StateReady
		}
	case EventBufferEmpty:
		// A dry buffer while paused is not surfaced; the user is not
		// expecting continuous playback.
		if e.isPlaying {
			e.isBuffering = true
			e.state = StateBuffering
		}
	case EventKeepUp:
		e.isBuffering = false
		if e.state == StateBuffering || e.state == StateLoading {
			e.state = StateReady
		}
	case EventFailed:
		log.Error().Err(ev.Err).Msg("Stream failed")
		e.state = StateFailed
		e.isPlaying = false
		e.isBuffering = false
		if ev.Err != nil {
			e.lastError = ev.Err.Error()
		}
		e.releaseSourceLocked()
	case EventMetadata:
		e.applyMetadataLocked(ev)
	}

	e.mu.Unlock()
	e.notify()
}

// releaseSourceLocked detaches the current source. Close runs off the
// event goroutine: the source's own teardown waits for its emitters, and
// this may be called from the consumer of their channel.
func (e *Engine) releaseSourceLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if src := e.source; src != nil {
		e.source = nil
		go func() {
			if err := src.Close(); err != nil {
				log.Debug().Err(err).Msg("Source close failed")
			}
		}()
	}
}

// Close tears down the engine: sleep timer cancelled, source released,
// event goroutine drained, all subscriptions closed. No snapshot is
// delivered after Close returns.
func (e *Engine) Close() {
	e.sleep.cancel()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.isPlaying = false
	e.isBuffering = false
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	src := e.source
	e.source = nil
	e.mu.Unlock()

	if src != nil {
		if err := src.Close(); err != nil {
			log.Debug().Err(err).Msg("Source close failed")
		}
	}
	e.wg.Wait()

	e.mu.Lock()
	for id, ch := range e.subs {
		delete(e.subs, id)
		close(ch)
	}
	e.mu.Unlock()

	log.Debug().Msg("Playback engine closed")
}
