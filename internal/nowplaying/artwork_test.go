package nowplaying

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bluewaveradio/bluewave-cli/internal/cache"
)

func TestRenderArtworkDimensions(t *testing.T) {
	img := renderArtwork()
	bounds := img.Bounds()
	if bounds.Dx() != artworkSize || bounds.Dy() != artworkSize {
		t.Errorf("artwork is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), artworkSize, artworkSize)
	}
}

func TestRenderArtworkIsDeterministic(t *testing.T) {
	a := renderArtwork()
	b := renderArtwork()

	points := [][2]int{{0, 0}, {256, 256}, {100, 300}, {511, 511}}
	for _, pt := range points {
		ca := color.RGBAModel.Convert(a.At(pt[0], pt[1]))
		cb := color.RGBAModel.Convert(b.At(pt[0], pt[1]))
		if ca != cb {
			t.Errorf("pixel (%d,%d) differs between renders", pt[0], pt[1])
		}
	}
}

func TestRenderArtworkCenterDot(t *testing.T) {
	img := renderArtwork()
	if got := color.RGBAModel.Convert(img.At(256, 256)); got != color.RGBAModel.Convert(artworkCenter) {
		t.Errorf("center pixel = %v, want center dot color", got)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != color.RGBAModel.Convert(artworkBackground) {
		t.Errorf("corner pixel = %v, want background color", got)
	}
}

func TestIsWaveRing(t *testing.T) {
	tests := []struct {
		dist     float64
		expected bool
	}{
		{10, false},
		{112, true},
		{120, false},
		{400, false},
	}

	for _, tt := range tests {
		if got := isWaveRing(tt.dist); got != tt.expected {
			t.Errorf("isWaveRing(%v) = %v, want %v", tt.dist, got, tt.expected)
		}
	}
}

func TestArtworkURL(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := cache.NewCache()
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	url := ArtworkURL(c)
	if !strings.HasPrefix(url, "file://") {
		t.Fatalf("ArtworkURL() = %q, want file:// URL", url)
	}

	path := strings.TrimPrefix(url, "file://")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("artwork file not written: %v", err)
	}
	if base := filepath.Base(path); base != "artwork.png" {
		t.Errorf("artwork file is %q, want artwork.png", base)
	}
}

func TestArtworkURLWithoutCache(t *testing.T) {
	if got := ArtworkURL(nil); got != "" {
		t.Errorf("ArtworkURL(nil) = %q, want empty", got)
	}
}
