package formatter

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"sync"

	"github.com/golang/groupcache/lru"

	"peticiona-backend/models"
)

type cacheKind byte

const (
	kindFormat cacheKind = iota + 1
	kindAnalyze
)

type cacheKey struct {
	kind cacheKind
	sum  [sha256.Size]byte
}

// Cache memoizes Format and Analyze results keyed by a hash of their inputs.
// It is safe for concurrent use. A Cache with a non-positive size passes
// every call straight through.
type Cache struct {
	mu     sync.Mutex
	lru    *lru.Cache
	hits   uint64
	misses uint64
}

// NewCache creates a cache holding at most size entries
func NewCache(size int) *Cache {
	c := &Cache{}
	if size > 0 {
		c.lru = lru.New(size)
	}
	return c
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Stats returns a snapshot of the hit and miss counters
func (c *Cache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := CacheStats{Hits: c.hits, Misses: c.misses}
	if c.lru != nil {
		stats.Entries = c.lru.Len()
	}
	return stats
}

// Format returns Format(content, settings), reusing a previous result when
// the same content and settings were seen before.
func (c *Cache) Format(content string, settings models.StyleSettings) []models.Block {
	if c == nil || c.lru == nil {
		return Format(content, settings)
	}

	key := cacheKey{kind: kindFormat, sum: formatDigest(content, settings)}
	if v, ok := c.get(key); ok {
		return cloneBlocks(v.([]models.Block))
	}

	blocks := Format(content, settings)
	c.add(key, cloneBlocks(blocks))
	return blocks
}

// Analyze returns Analyze(content), memoized like Format
func (c *Cache) Analyze(content string) models.AnalysisReport {
	if c == nil || c.lru == nil {
		return Analyze(content)
	}

	key := cacheKey{kind: kindAnalyze, sum: sha256.Sum256([]byte(content))}
	if v, ok := c.get(key); ok {
		return v.(models.AnalysisReport)
	}

	report := Analyze(content)
	c.add(key, report)
	return report
}

func (c *Cache) get(key cacheKey) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

func (c *Cache) add(key cacheKey, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, value)
}

func cloneBlocks(blocks []models.Block) []models.Block {
	out := make([]models.Block, len(blocks))
	copy(out, blocks)
	return out
}

// formatDigest hashes content and every settings field. Strings are length
// prefixed so adjacent fields cannot collide.
func formatDigest(content string, s models.StyleSettings) [sha256.Size]byte {
	h := sha256.New()
	var buf [8]byte

	writeString := func(v string) {
		binary.BigEndian.PutUint64(buf[:], uint64(len(v)))
		h.Write(buf[:])
		h.Write([]byte(v))
	}
	writeFloat := func(v float64) {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	writeString(content)
	writeString(s.DefaultFont)
	writeString(s.FirstLineIndent)
	writeString(s.JurisprudenceIndent)
	writeFloat(s.JurisprudenceFontSize)
	writeString(string(s.ChapterNumbering))
	writeString(s.Margin)
	writeFloat(s.LineHeight)
	writeFloat(s.FontSize)

	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
