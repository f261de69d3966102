package player

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Metadata field keys a source may populate in Event.Fields.
const (
	MetaTitle  = "title"
	MetaArtist = "artist"
)

const inlineDelimiter = " - "

// applyMetadataLocked folds one metadata event into the now-playing
// labels. Structured fields win over the inline string for the same
// update; the two are never merged in one pass. Anything undecodable is
// ignored, the labels keep their previous values.
func (e *Engine) applyMetadataLocked(ev Event) {
	if len(ev.Fields) > 0 {
		if title, ok := ev.Fields[MetaTitle]; ok && title != "" {
			e.track = title
		}
		if artist, ok := ev.Fields[MetaArtist]; ok && artist != "" {
			e.artist = artist
		}
		log.Debug().Str("track", e.track).Str("artist", e.artist).Msg("Now playing (tagged)")
		return
	}

	raw := strings.TrimSpace(ev.StreamTitle)
	if raw == "" {
		return
	}

	artist, track, hasArtist := parseInlineTitle(raw)
	e.track = track
	if hasArtist {
		e.artist = artist
	}
	log.Debug().Str("track", e.track).Str("artist", e.artist).Msg("Now playing (inline)")
}

// parseInlineTitle splits a Shoutcast-style "Artist - Track" string on
// the first " - " delimiter. Without a delimiter the whole string is the
// track and the artist is left to the caller's previous value.
func parseInlineTitle(raw string) (artist, track string, hasArtist bool) {
	before, after, found := strings.Cut(raw, inlineDelimiter)
	if !found {
		return "", strings.TrimSpace(raw), false
	}
	return strings.TrimSpace(before), strings.TrimSpace(after), true
}
