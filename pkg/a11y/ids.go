package a11y

import (
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultPrefix is used when a caller asks for an id without a prefix.
const DefaultPrefix = "field"

// IDGenerator produces element identifiers. Implementations must never
// return the same value twice for the lifetime of the generator.
type IDGenerator interface {
	NewID(prefix string) string
}

// Counter is a monotonic generator. Ids are unique per Counter; share one
// (see Default) to get process-wide uniqueness.
type Counter struct {
	next atomic.Uint64
}

// NewCounter returns a counter starting at 1.
func NewCounter() *Counter {
	return &Counter{}
}

// NewID returns prefix-<n> where n is base36.
func (c *Counter) NewID(prefix string) string {
	n := c.next.Add(1)
	return normalizePrefix(prefix) + "-" + strconv.FormatUint(n, 36)
}

var defaultCounter = NewCounter()

// Default returns the process-wide counter.
func Default() IDGenerator {
	return defaultCounter
}

// UUIDGenerator builds ids from random UUIDs. With a nil reader it uses the
// uuid package's default source.
type UUIDGenerator struct {
	mu     sync.Mutex
	reader io.Reader
}

// NewUUIDGenerator returns a generator reading randomness from reader. Pass a
// seeded reader for reproducible ids.
func NewUUIDGenerator(reader io.Reader) *UUIDGenerator {
	return &UUIDGenerator{reader: reader}
}

func (g *UUIDGenerator) NewID(prefix string) string {
	return normalizePrefix(prefix) + "-" + g.uuid().String()
}

func (g *UUIDGenerator) uuid() uuid.UUID {
	if g == nil || g.reader == nil {
		return uuid.New()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := uuid.NewRandomFromReader(g.reader)
	if err != nil {
		// Exhausted reader: fall back to the default source.
		return uuid.New()
	}
	return id
}

func normalizePrefix(prefix string) string {
	prefix = strings.Join(strings.Fields(prefix), "-")
	if prefix == "" {
		return DefaultPrefix
	}
	return prefix
}
