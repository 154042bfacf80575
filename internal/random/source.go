// File: internal/random/source.go
// Package random provides the process-wide default Source and seeded sources.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package random

import (
	"math/rand/v2"
	"reflect"
	"sync"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-generics/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Source = (*Locked)(nil)
	_ api.Source = (*rand.Rand)(nil)
)

// Locked serializes access to a *rand.Rand so it can be shared between goroutines.
type Locked struct {
	_   cpu.CacheLinePad // Padding against neighbouring hot data
	mu  sync.Mutex
	rng *rand.Rand
	_   cpu.CacheLinePad
}

// NewLocked wraps src.
func NewLocked(src rand.Source) *Locked {
	return &Locked{rng: rand.New(src)}
}

// IntN returns a uniform int in [0, n).
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

// Float64 returns a uniform float64 in [0.0, 1.0).
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// NewSeeded returns a deterministic PCG-backed generator for seed.
// Not safe for concurrent use.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var defaultSource = NewLocked(rand.NewPCG(uint64(time.Now().UnixNano()), 0xda3e39cb94b95bdb))

// Default returns the process-wide source.
func Default() api.Source { return defaultSource }

// Or returns src, or the process-wide source when src is nil. A typed
// nil such as (*rand.Rand)(nil) counts as nil.
func Or(src api.Source) api.Source {
	if isNil(src) {
		return defaultSource
	}
	return src
}

func isNil(src api.Source) bool {
	if src == nil {
		return true
	}
	switch v := reflect.ValueOf(src); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
