package websocket

import (
	"slices"
	"sync"

	"github.com/impacto/site/internal/carousel"
)

// typeWhitelist is the set of client message types a session accepts.
type typeWhitelist struct {
	mu      sync.RWMutex
	allowed []string
}

// NewTypeWhitelist creates a whitelist of the given message types. Empty
// names are dropped.
func NewTypeWhitelist(types ...string) *typeWhitelist {
	valid := make([]string, 0, len(types))
	for _, t := range types {
		if t != "" && !slices.Contains(valid, t) {
			valid = append(valid, t)
		}
	}
	return &typeWhitelist{allowed: valid}
}

// IsAllowed reports whether messages of type t may reach the sequencer.
func (w *typeWhitelist) IsAllowed(t string) bool {
	if t == "" {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Contains(w.allowed, t)
}

// Allow adds t to the whitelist. It reports false if t was empty or present.
func (w *typeWhitelist) Allow(t string) bool {
	if t == "" {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if slices.Contains(w.allowed, t) {
		return false
	}
	w.allowed = append(w.allowed, t)
	return true
}

// WhitelistFor returns the message types that make sense for a variant:
// touch and swipe only where swiping is enabled, hover only where hovering
// pauses.
func WhitelistFor(v carousel.Variant) *typeWhitelist {
	wl := NewTypeWhitelist(TypeKey, TypeDot, TypePrev, TypeNext)
	if v.Swipe {
		wl.Allow(TypeSwipe)
		wl.Allow(TypeTouchStart)
		wl.Allow(TypeTouchMove)
		wl.Allow(TypeTouchEnd)
	}
	if v.PauseOnHover {
		wl.Allow(TypeHover)
	}
	return wl
}
