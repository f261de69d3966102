package player

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestGainToDB(t *testing.T) {
	tests := []struct {
		gain     float64
		expected float64
	}{
		{0, MinVolumeDB},
		{1, 0},
		{-0.5, MinVolumeDB},
		{1.5, 0},
	}

	for _, tt := range tests {
		result := gainToDB(tt.gain)
		if result != tt.expected {
			t.Errorf("gainToDB(%v) = %v, want %v", tt.gain, result, tt.expected)
		}
	}
}

func TestGainToDBCurve(t *testing.T) {
	g25 := gainToDB(0.25)
	g50 := gainToDB(0.50)
	g75 := gainToDB(0.75)

	if g25 >= g50 || g50 >= g75 {
		t.Error("volume curve should be monotonically increasing")
	}

	if g25 <= MinVolumeDB || g75 >= 0 {
		t.Error("mid-range gains should be between min and max")
	}
}

func TestExtractStreamTitle(t *testing.T) {
	tests := []struct {
		name     string
		meta     string
		expected string
		found    bool
	}{
		{"plain title", "StreamTitle='DJ Carlos - Island Nights';", "DJ Carlos - Island Nights", true},
		{"with stream url", "StreamTitle='Jamming';StreamUrl='http://x';", "Jamming", true},
		{"empty title", "StreamTitle='';", "", true},
		{"no marker", "SomethingElse='abc';", "", false},
		{"unterminated", "StreamTitle='cut off", "", false},
		{"padded block", "StreamTitle='Track';\x00\x00\x00", "Track", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, found := extractStreamTitle(tt.meta)
			if found != tt.found {
				t.Fatalf("extractStreamTitle(%q) found = %v, want %v", tt.meta, found, tt.found)
			}
			if title != tt.expected {
				t.Errorf("extractStreamTitle(%q) = %q, want %q", tt.meta, title, tt.expected)
			}
		})
	}
}

func TestHTTPStatusError(t *testing.T) {
	err := &httpStatusError{StatusCode: 404, Status: "404 Not Found"}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error message %q should mention the status code", err.Error())
	}
}

// icyBody builds a wire-format ICY body: fixed-size audio chunks
// interleaved with length-prefixed metadata blocks.
func icyBody(chunks []string, metas []string) []byte {
	var buf bytes.Buffer
	for i, chunk := range chunks {
		buf.WriteString(chunk)

		meta := ""
		if i < len(metas) {
			meta = metas[i]
		}
		// Pad to a multiple of 16 as the protocol requires
		padded := meta
		if rem := len(meta) % 16; rem != 0 {
			padded = meta + strings.Repeat("\x00", 16-rem)
		}
		buf.WriteByte(byte(len(padded) / 16))
		buf.WriteString(padded)
	}
	return buf.Bytes()
}

func collectEvents(src *ICYSource, max int, timeout time.Duration) []Event {
	var events []Event
	deadline := time.After(timeout)
	for len(events) < max {
		select {
		case ev, ok := <-src.events:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-deadline:
			return events
		}
	}
	return events
}

// Drives readNetworkStream directly with a canned body: metadata titles
// must surface as events and the audio bytes must pass through untouched.
func TestReadNetworkStreamMetadata(t *testing.T) {
	const metaint = 8

	body := icyBody(
		[]string{"AAAAAAAA", "BBBBBBBB", "CCCCCCCC"},
		[]string{"StreamTitle='DJ Carlos - Island Nights';", "", "StreamTitle='Second Track';"},
	)

	src := NewICYSource("http://test.invalid/stream")
	pipeReader, pipeWriter := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := bytes.NewReader(body)
	src.wg.Add(1)
	go src.readNetworkStream(ctx, io.NopCloser(reader), reader, pipeWriter, metaint)

	audio, err := io.ReadAll(pipeReader)
	if err != nil && err != io.ErrClosedPipe {
		t.Logf("pipe read ended: %v", err)
	}
	src.wg.Wait()

	if got := string(audio); got != "AAAAAAAABBBBBBBBCCCCCCCC" {
		t.Errorf("audio passthrough = %q, want chunks only", got)
	}

	events := collectEvents(src, 3, 2*time.Second)

	var titles []string
	sawFailure := false
	for _, ev := range events {
		switch ev.Kind {
		case EventMetadata:
			titles = append(titles, ev.StreamTitle)
		case EventFailed:
			// Body EOF after the canned data; expected
			sawFailure = true
		}
	}

	if len(titles) != 2 {
		t.Fatalf("got %d metadata events (%v), want 2", len(titles), titles)
	}
	if titles[0] != "DJ Carlos - Island Nights" || titles[1] != "Second Track" {
		t.Errorf("titles = %v", titles)
	}
	if !sawFailure {
		t.Error("expected a failure event when the canned stream ended")
	}
}

func TestSeekIsNotSupported(t *testing.T) {
	src := NewICYSource("http://test.invalid/stream")
	if err := src.Seek(30 * time.Second); err != ErrNotSeekable {
		t.Errorf("Seek() error = %v, want ErrNotSeekable", err)
	}
}

func TestCloseBeforeStart(t *testing.T) {
	src := NewICYSource("http://test.invalid/stream")
	if err := src.Close(); err != nil {
		t.Errorf("Close() before Start error = %v", err)
	}

	if _, ok := <-src.events; ok {
		t.Error("events channel should be closed")
	}
}
