// Package cache stores rendered chart artifacts between runs.
//
// The pipeline renders a chart once per output format. With a [FileCache]
// those renders are kept on disk, keyed by a hash of everything that
// influences the output, so rendering the same chart again returns the
// stored bytes. [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiration.
//
// Get reports a miss with ok=false and a nil error. Implementations must be
// safe for use by one process at a time.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key of one rendered format of the chart
	// identified by chartHash.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the output settings that change the rendered bytes
// without changing the chart.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Quality   int    `json:"quality,omitempty"`
	EmbedFont bool   `json:"embed_font,omitempty"`
	Title     string `json:"title,omitempty"`
}

// DefaultKeyer builds keys of the form artifact:<sha256>.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes chartHash together with opts.
func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}
