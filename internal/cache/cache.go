// Package cache provides disk caching of decoded directory data and artwork.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultExpiry is how long cached blobs are valid (24 hours).
	DefaultExpiry = 24 * time.Hour
	// BlobSubdir is the subdirectory for cached JSON blobs.
	BlobSubdir = "data"
	// ImageSubdir is the subdirectory for generated artwork.
	ImageSubdir = "images"
	// AppName is used for the cache directory name.
	AppName = "bluewave"
)

// Cache manages flat key-value disk caching of decoded JSON blobs
// (events, restaurants, weather) plus generated artwork images.
type Cache struct {
	baseDir string
	expiry  time.Duration
}

// NewCache creates a new Cache instance with the default expiry.
func NewCache() (*Cache, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return nil, err
	}

	return &Cache{
		baseDir: cacheDir,
		expiry:  DefaultExpiry,
	}, nil
}

// GetCacheDir returns the platform-specific cache directory for the application.
func GetCacheDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}

	cacheDir := filepath.Join(userCacheDir, AppName)
	return cacheDir, nil
}

func (c *Cache) ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func hashKey(key string) string {
	hash := md5.Sum([]byte(key))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) blobPath(key string) string {
	return filepath.Join(c.baseDir, BlobSubdir, hashKey(key)+".json")
}

// GetJSON retrieves a cached blob by key and unmarshals it into v.
// Returns false if the blob is missing, expired, or undecodable.
func (c *Cache) GetJSON(key string, v any) bool {
	blobPath := c.blobPath(key)

	info, err := os.Stat(blobPath)
	if err != nil {
		return false
	}

	if time.Since(info.ModTime()) > c.expiry {
		if err := os.Remove(blobPath); err != nil {
			log.Debug().Err(err).Str("file", blobPath).Msg("Failed to remove expired cache file")
		}
		return false
	}

	data, err := os.ReadFile(blobPath)
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Debug().Err(err).Str("file", blobPath).Msg("Failed to decode cached blob")
		return false
	}

	return true
}

// SaveJSON stores a value in the cache as JSON, keyed by name.
func (c *Cache) SaveJSON(key string, v any) error {
	blobDir := filepath.Join(c.baseDir, BlobSubdir)

	if err := c.ensureDir(blobDir); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode blob: %w", err)
	}

	if err := os.WriteFile(c.blobPath(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// LastUpdated returns the modification time of a cached blob, or the zero
// time if the blob does not exist.
func (c *Cache) LastUpdated(key string) time.Time {
	info, err := os.Stat(c.blobPath(key))
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// SaveImage stores a generated artwork image, keyed by name.
// Returns the path of the written file.
func (c *Cache) SaveImage(name string, img image.Image) (string, error) {
	imageDir := filepath.Join(c.baseDir, ImageSubdir)

	if err := c.ensureDir(imageDir); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	imagePath := filepath.Join(imageDir, name+".png")

	file, err := os.Create(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return imagePath, nil
}

// CleanExpired removes cached blobs older than the expiry duration.
// Generated artwork is kept; it is deterministic and cheap to rewrite.
func (c *Cache) CleanExpired() error {
	blobDir := filepath.Join(c.baseDir, BlobSubdir)

	entries, err := os.ReadDir(blobDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	now := time.Now()
	var removed, failed int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.Debug().Err(err).Str("file", entry.Name()).Msg("Failed to get file info")
			continue
		}

		if now.Sub(info.ModTime()) > c.expiry {
			filePath := filepath.Join(blobDir, entry.Name())
			if err := os.Remove(filePath); err != nil {
				log.Debug().Err(err).Str("file", filePath).Msg("Failed to remove expired cache file")
				failed++
			} else {
				removed++
			}
		}
	}

	if removed > 0 || failed > 0 {
		log.Debug().Int("removed", removed).Int("failed", failed).Msg("Cache cleanup completed")
	}

	return nil
}
