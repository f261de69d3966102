package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/bluewaveradio/bluewave-cli/internal/player"
)

func TestStatusRendererStates(t *testing.T) {
	tests := []struct {
		name string
		snap player.Snapshot
		want string
	}{
		{
			name: "idle",
			snap: player.Snapshot{State: player.StateIdle},
			want: "IDLE",
		},
		{
			name: "loading",
			snap: player.Snapshot{State: player.StateLoading},
			want: "TUNING IN",
		},
		{
			name: "buffering",
			snap: player.Snapshot{State: player.StateBuffering, IsBuffering: true},
			want: "BUFFERING",
		},
		{
			name: "live",
			snap: player.Snapshot{State: player.StateReady, IsPlaying: true},
			want: "LIVE",
		},
		{
			name: "paused",
			snap: player.Snapshot{State: player.StateReady},
			want: "PAUSED",
		},
		{
			name: "failed",
			snap: player.Snapshot{State: player.StateFailed},
			want: "STREAM ERROR",
		},
	}

	renderer := NewStatusRenderer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderer.renderSnapshot(tt.snap)
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderSnapshot(%v) = %q, want substring %q", tt.snap.State, got, tt.want)
			}
		})
	}
}

func TestStatusRendererSleepBadge(t *testing.T) {
	renderer := NewStatusRenderer(nil)

	snap := player.Snapshot{State: player.StateReady, IsPlaying: true, SleepMinutes: 30}
	if got := renderer.renderSnapshot(snap); !strings.Contains(got, "sleep 30m") {
		t.Errorf("live status %q missing sleep badge", got)
	}

	snap.SleepMinutes = 0
	if got := renderer.renderSnapshot(snap); strings.Contains(got, "sleep") {
		t.Errorf("live status %q has sleep badge with no timer armed", got)
	}
}

func TestStatusRendererMuted(t *testing.T) {
	renderer := NewStatusRenderer(nil)
	renderer.SetMuted(true)

	snap := player.Snapshot{State: player.StateReady, IsPlaying: true}
	if got := renderer.renderSnapshot(snap); !strings.Contains(got, "MUTED") {
		t.Errorf("muted live status %q missing MUTED", got)
	}

	renderer.SetMuted(false)
	if got := renderer.renderSnapshot(snap); strings.Contains(got, "MUTED") {
		t.Errorf("unmuted live status %q still shows MUTED", got)
	}
}

func TestStatusRendererAnimationAdvance(t *testing.T) {
	renderer := NewStatusRenderer(nil)

	first := renderer.renderSnapshot(player.Snapshot{State: player.StateLoading})
	for i := 0; i < renderer.ticksPerFrame; i++ {
		renderer.AdvanceAnimation()
	}
	second := renderer.renderSnapshot(player.Snapshot{State: player.StateLoading})

	if first == second {
		t.Errorf("animation frame did not advance: %q", first)
	}
}

func TestVolumeBarFill(t *testing.T) {
	tests := []struct {
		name      string
		volume    float64
		barHeight int
		expected  int
	}{
		{"silent", 0.0, 8, 0},
		{"full", 1.0, 8, 8},
		{"half", 0.5, 8, 4},
		{"quarter", 0.25, 8, 2},
		{"barely audible rounds up", 0.01, 8, 1},
		{"over range clamps", 1.5, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := volumeBarFill(tt.volume, tt.barHeight)
			if got != tt.expected {
				t.Errorf("volumeBarFill(%v, %d) = %d, want %d", tt.volume, tt.barHeight, got, tt.expected)
			}
		})
	}
}

func TestFriendlyErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"dns failure", "dial tcp: lookup streaming.shoutcast.com: no such host", "internet connection"},
		{"refused", "dial tcp 1.2.3.4:443: connection refused", "temporarily offline"},
		{"timeout", "context deadline exceeded (Client.Timeout exceeded)", "timed out"},
		{"dropped stream", "stream ended unexpectedly", "tune back in"},
		{"http 404", "unexpected status 404", "not found"},
		{"passthrough", "some short error", "some short error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := friendlyErrorMessage(tt.input)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("friendlyErrorMessage(%q) = %q, want substring %q", tt.input, got, tt.contains)
			}
		})
	}
}

func TestFriendlyErrorMessageTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := friendlyErrorMessage(long)
	if len(got) > 110 {
		t.Errorf("long error not truncated: %d chars", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated error %q missing ellipsis", got)
	}
}

func TestNextShowToday(t *testing.T) {
	// Monday 5:00 AM, before the morning show starts at 6:00 AM.
	early := time.Date(2026, time.August, 31, 5, 0, 0, 0, time.UTC)
	show, ok := nextShowToday(early)
	if !ok {
		t.Fatal("expected an upcoming show early Monday morning")
	}
	if show.StartTime != "6:00 AM" {
		t.Errorf("next show starts at %q, want 6:00 AM", show.StartTime)
	}

	// Just before midnight nothing is left on the day's lineup.
	late := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC)
	if show, ok := nextShowToday(late); ok {
		t.Errorf("expected no upcoming show at 11:59 PM, got %q", show.Name)
	}
}
