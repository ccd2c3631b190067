package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// FormatVersion is mixed into every key. Bump it when the stored format
// changes.
const FormatVersion = "snapshot-v1"

// DefaultTTL is how long built trees are kept when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// BuildKeyOpts are the parameters that determine a built tree.
type BuildKeyOpts struct {
	Policy        string
	Height        int
	MaxPrimes     int
	MaxComposites int
}

// Keyer derives cache keys.
type Keyer interface {
	// BuildKey returns the key for a tree built with opts.
	BuildKey(opts BuildKeyOpts) string

	// DiagonalKey returns the key for the formula of diagonal d.
	DiagonalKey(d int) string
}

// DefaultKeyer hashes parameters with [FormatVersion].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// BuildKey returns "build:<sha256>".
func (DefaultKeyer) BuildKey(opts BuildKeyOpts) string {
	return hashKey("build", opts.Policy, opts.Height, opts.MaxPrimes, opts.MaxComposites)
}

// DiagonalKey returns "diagonal:<sha256>".
func (DefaultKeyer) DiagonalKey(d int) string {
	return hashKey("diagonal", d)
}

// hashKey digests FormatVersion and parts, "|"-separated, under kind.
func hashKey(kind string, parts ...any) string {
	h := sha256.New()
	h.Write([]byte(FormatVersion))
	for _, p := range parts {
		fmt.Fprintf(h, "|%v", p)
	}
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 of data. [FileCache] shards entries by it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
