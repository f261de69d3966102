//go:build !linux

package nowplaying

import "github.com/bluewaveradio/bluewave-cli/internal/player"

// Publisher is a no-op on non-Linux platforms.
type Publisher struct{}

// New returns a no-op publisher on non-Linux platforms.
func New(_ *player.Engine, _ string) (*Publisher, error) {
	return &Publisher{}, nil
}

// Close is a no-op on non-Linux platforms.
func (p *Publisher) Close() error {
	return nil
}
