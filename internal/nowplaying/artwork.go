package nowplaying

import (
	"image"
	"image/color"
	"math"

	"github.com/bluewaveradio/bluewave-cli/internal/cache"
)

const artworkSize = 512

// Palette for the generated station artwork.
var (
	artworkBackground = color.RGBA{R: 0x0b, G: 0x1d, B: 0x33, A: 0xff}
	artworkWave       = color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
	artworkCenter     = color.RGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
)

// ArtworkURL renders the station artwork once per cache lifetime and
// returns a file:// URL for it, or empty if it cannot be written.
func ArtworkURL(c *cache.Cache) string {
	if c == nil {
		return ""
	}
	path, err := c.SaveImage("artwork", renderArtwork())
	if err != nil {
		return ""
	}
	return "file://" + path
}

// renderArtwork draws concentric broadcast waves radiating from a
// center dot. The output is deterministic.
func renderArtwork() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, artworkSize, artworkSize))

	center := float64(artworkSize) / 2
	for y := 0; y < artworkSize; y++ {
		for x := 0; x < artworkSize; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			dist := math.Sqrt(dx*dx + dy*dy)

			switch {
			case dist < 28:
				img.Set(x, y, artworkCenter)
			case isWaveRing(dist):
				img.Set(x, y, artworkWave)
			default:
				img.Set(x, y, artworkBackground)
			}
		}
	}
	return img
}

// isWaveRing reports whether a distance from center falls on one of the
// evenly spaced wave rings.
func isWaveRing(dist float64) bool {
	const spacing = 56.0
	const thickness = 7.0

	if dist < 28 || dist > artworkSize/2 {
		return false
	}
	offset := math.Mod(dist, spacing)
	return offset < thickness
}
