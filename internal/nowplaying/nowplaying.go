//go:build linux

package nowplaying

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"

	"github.com/bluewaveradio/bluewave-cli/internal/config"
	"github.com/bluewaveradio/bluewave-cli/internal/player"
)

// Publisher mirrors the playback engine onto the desktop media surface
// over D-Bus so lock screens and media applets can show the station and
// control it.
type Publisher struct {
	engine *player.Engine
	server *server.Server
	events *events.EventHandler
	sub    *player.Subscription
	artURL string
	done   chan struct{}
}

// New creates and starts a now-playing publisher for the given engine.
// artURL is the file:// URL of the station artwork, or empty.
func New(engine *player.Engine, artURL string) (*Publisher, error) {
	p := &Publisher{
		engine: engine,
		artURL: artURL,
		done:   make(chan struct{}),
	}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{engine: engine, artURL: artURL}

	p.server = server.NewServer("bluewave", rootAdapter, playerAdapter)
	p.events = events.NewEventHandler(p.server)
	p.sub = engine.Subscribe()

	go func() {
		if err := p.server.Listen(); err != nil {
			log.Debug().Err(err).Msg("MPRIS server stopped")
		}
	}()
	go p.watch()

	return p, nil
}

// watch forwards engine state changes as D-Bus property change signals.
func (p *Publisher) watch() {
	var last player.Snapshot
	for {
		select {
		case snap, ok := <-p.sub.C:
			if !ok {
				return
			}
			if snap.Track != last.Track || snap.Artist != last.Artist {
				if err := p.events.Player.OnTitle(); err != nil {
					log.Debug().Err(err).Msg("Failed to emit title change")
				}
			}
			if snap.IsPlaying != last.IsPlaying || snap.State != last.State {
				if err := p.events.Player.OnPlayPause(); err != nil {
					log.Debug().Err(err).Msg("Failed to emit playback change")
				}
			}
			if snap.Volume != last.Volume {
				if err := p.events.Player.OnVolume(); err != nil {
					log.Debug().Err(err).Msg("Failed to emit volume change")
				}
			}
			last = snap
		case <-p.done:
			return
		}
	}
}

// Close stops the publisher and releases D-Bus resources.
func (p *Publisher) Close() error {
	close(p.done)
	p.sub.Close()
	return p.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported, app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return config.AppName, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/aac"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter for a live
// stream. Next and Previous map to the short skip controls the way car
// and lock-screen surfaces expect from a radio app.
type playerAdapter struct {
	engine *player.Engine
	artURL string
}

func (p *playerAdapter) Next() error {
	p.engine.Skip(config.SkipForwardSeconds)
	return nil
}

func (p *playerAdapter) Previous() error {
	p.engine.Skip(-config.SkipBackwardSeconds)
	return nil
}

func (p *playerAdapter) Pause() error {
	p.engine.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.engine.TogglePlayPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.engine.Pause()
	return nil
}

func (p *playerAdapter) Play() error {
	p.engine.Play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	seconds := time.Duration(offset) * time.Microsecond
	p.engine.Skip(seconds.Seconds())
	return nil
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Live stream has no absolute position
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	snap := p.engine.Snapshot()
	switch {
	case snap.IsPlaying:
		return types.PlaybackStatusPlaying, nil
	case snap.State == player.StateReady || snap.State == player.StateBuffering:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track, artist := p.engine.NowPlaying()

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(artist + "/" + track)),
		Title:   track,
		Artist:  []string{artist},
		Album:   config.StationName,
	}
	if p.artURL != "" {
		meta.ArtUrl = p.artURL
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.engine.Volume(), nil
}

func (p *playerAdapter) SetVolume(volume float64) error {
	p.engine.SetVolume(volume)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil // Live stream
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
