package player

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// timerHandle is the cancellable handle returned when a sleep deadline is
// armed.
type timerHandle interface {
	Stop() bool
}

// timerFunc schedules fn after d. Swapped for a fake in tests.
type timerFunc func(d time.Duration, fn func()) timerHandle

func realTimer(d time.Duration, fn func()) timerHandle {
	return time.AfterFunc(d, fn)
}

// sleepTimer is a one-shot delayed pause. At most one deadline is pending
// at a time: arming a new one supersedes the old atomically. The stored
// minutes value is the originally requested duration, not a countdown; it
// resets to zero on firing or cancellation.
type sleepTimer struct {
	mu       sync.Mutex
	minutes  int
	pending  timerHandle
	gen      int
	newTimer timerFunc
	onFire   func()
}

func newSleepTimer(onFire func()) *sleepTimer {
	return &sleepTimer{
		newTimer: realTimer,
		onFire:   onFire,
	}
}

// Set arms a deadline minutes from now, cancelling any pending one.
// minutes <= 0 just disarms.
func (t *sleepTimer) Set(minutes int) {
	t.mu.Lock()

	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.gen++

	if minutes <= 0 {
		t.minutes = 0
		t.mu.Unlock()
		log.Debug().Msg("Sleep timer disarmed")
		return
	}

	t.minutes = minutes
	gen := t.gen
	t.pending = t.newTimer(time.Duration(minutes)*time.Minute, func() {
		t.fire(gen)
	})
	t.mu.Unlock()
	log.Debug().Int("minutes", minutes).Msg("Sleep timer armed")
}

// fire runs the pause action unless this deadline was superseded between
// scheduling and delivery.
func (t *sleepTimer) fire(gen int) {
	t.mu.Lock()
	if gen != t.gen || t.pending == nil {
		t.mu.Unlock()
		return
	}
	t.pending = nil
	t.minutes = 0
	onFire := t.onFire
	t.mu.Unlock()

	onFire()
}

// Remaining returns the armed duration in minutes, 0 when disarmed.
func (t *sleepTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.minutes
}

func (t *sleepTimer) cancel() {
	t.Set(0)
}
