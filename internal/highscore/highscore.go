// Package highscore persists the best score as a decimal string under a
// single key of a durable key-value store.
package highscore

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultKey is the storage key used by the browser build.
const DefaultKey = "snake-best-score"

var ErrNegativeScore = errors.New("score must be non-negative")

// KV is a string key-value store such as window.localStorage.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store reads and writes the best score under one key.
type Store struct {
	kv  KV
	key string
}

func New(kv KV, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key}
}

// Load returns the persisted best score, or 0 when it is missing,
// unreadable or not a number.
func (s *Store) Load() int {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil || !ok {
		return 0
	}
	return Parse(raw)
}

// Save writes best as a decimal string.
func (s *Store) Save(best int) error {
	if best < 0 {
		return ErrNegativeScore
	}
	if err := s.kv.Set(s.key, strconv.Itoa(best)); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

// Parse converts a stored value to a score. Anything that is not a finite,
// non-negative number yields 0; fractions are truncated.
func Parse(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
