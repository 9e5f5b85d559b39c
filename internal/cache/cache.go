// Package cache keeps parsed blueprint estimates so an unchanged plan file
// is not re-read or re-OCR'd.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ppiankov/planreader/internal/model"
)

// Cache is a byte cache with per-entry TTL. A zero TTL means the layer's default.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

const keyPrefix = "planreader:v1:"

// DocumentKey derives a key from the file bytes and the settings that change
// what parsing produces. Renaming a file keeps its key.
func DocumentKey(data []byte, minTextChars int, ocrProvider string) string {
	h := sha256.New()
	h.Write(data)
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(minTextChars)))
	h.Write([]byte{0})
	h.Write([]byte(ocrProvider))
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// New builds the configured cache: memory in front of disk, or Nop when disabled
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return Nop{}
	}
	return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
}

// Estimates stores BlueprintEstimates as JSON in an underlying cache
type Estimates struct {
	c Cache
}

// NewEstimates wraps c
func NewEstimates(c Cache) *Estimates {
	if c == nil {
		c = Nop{}
	}
	return &Estimates{c: c}
}

// Get returns a cached estimate. Undecodable entries are dropped.
func (e *Estimates) Get(key string) (model.BlueprintEstimate, bool) {
	data, ok := e.c.Get(key)
	if !ok {
		return model.BlueprintEstimate{}, false
	}
	var est model.BlueprintEstimate
	if err := json.Unmarshal(data, &est); err != nil {
		_ = e.c.Delete(key)
		return model.BlueprintEstimate{}, false
	}
	return est, true
}

// Put stores est with the layer defaults
func (e *Estimates) Put(key string, est model.BlueprintEstimate) error {
	data, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("marshal estimate: %w", err)
	}
	return e.c.Set(key, data, 0)
}

// Nop caches nothing
type Nop struct{}

func (Nop) Get(string) ([]byte, bool)               { return nil, false }
func (Nop) Set(string, []byte, time.Duration) error { return nil }
func (Nop) Delete(string) error                     { return nil }
func (Nop) Clear() error                            { return nil }
