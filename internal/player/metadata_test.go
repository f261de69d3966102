package player

import "testing"

func TestParseInlineTitle(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantArtist string
		wantTrack  string
		hasArtist  bool
	}{
		{"artist and track", "DJ Carlos - Island Nights", "DJ Carlos", "Island Nights", true},
		{"no delimiter", "JustATitle", "", "JustATitle", false},
		{"surrounding whitespace", "  Bob Marley -  Jamming ", "Bob Marley", "Jamming", true},
		{"splits on first delimiter only", "A - B - C", "A", "B - C", true},
		{"hyphen without spaces is not a delimiter", "Ska-P", "", "Ska-P", false},
		{"empty track side", "Solo Artist - ", "Solo Artist", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artist, track, hasArtist := parseInlineTitle(tt.input)
			if hasArtist != tt.hasArtist {
				t.Errorf("parseInlineTitle(%q) hasArtist = %v, want %v", tt.input, hasArtist, tt.hasArtist)
			}
			if artist != tt.wantArtist {
				t.Errorf("parseInlineTitle(%q) artist = %q, want %q", tt.input, artist, tt.wantArtist)
			}
			if track != tt.wantTrack {
				t.Errorf("parseInlineTitle(%q) track = %q, want %q", tt.input, track, tt.wantTrack)
			}
		})
	}
}

func TestInlineParseKeepsPriorArtist(t *testing.T) {
	rig := newTestRig()
	defer rig.engine.Close()

	rig.engine.Play()
	src := rig.currentSource()

	src.emit(Event{Kind: EventMetadata, StreamTitle: "DJ Carlos - Island Nights"})
	waitFor(t, "first title", func() bool {
		track, _ := rig.engine.NowPlaying()
		return track == "Island Nights"
	})

	// No delimiter: whole string becomes the track, artist unchanged
	src.emit(Event{Kind: EventMetadata, StreamTitle: "JustATitle"})
	waitFor(t, "second title", func() bool {
		track, _ := rig.engine.NowPlaying()
		return track == "JustATitle"
	})

	_, artist := rig.engine.NowPlaying()
	if artist != "DJ Carlos" {
		t.Errorf("artist = %q, want prior value %q", artist, "DJ Carlos")
	}
}

func TestEmptyMetadataIsIgnored(t *testing.T) {
	rig := newTestRig()
	defer rig.engine.Close()

	rig.engine.Play()
	src := rig.currentSource()

	src.emit(Event{Kind: EventMetadata, StreamTitle: "   "})
	src.emit(Event{Kind: EventMetadata})
	// Terminal event so we know the blanks were processed
	src.emit(Event{Kind: EventReady})
	waitFor(t, "events drained", func() bool { return rig.engine.State() == StateReady })

	track, artist := rig.engine.NowPlaying()
	if track != "101.1 Blue Wave Radio" || artist != "Roatan" {
		t.Errorf("now playing = %q/%q, want station defaults", track, artist)
	}
}

func TestPartialStructuredMetadata(t *testing.T) {
	rig := newTestRig()
	defer rig.engine.Close()

	rig.engine.Play()
	src := rig.currentSource()

	src.emit(Event{Kind: EventMetadata, Fields: map[string]string{MetaTitle: "Only A Title"}})
	waitFor(t, "title only", func() bool {
		track, _ := rig.engine.NowPlaying()
		return track == "Only A Title"
	})

	_, artist := rig.engine.NowPlaying()
	if artist != "Roatan" {
		t.Errorf("artist = %q, want untouched default", artist)
	}
}
