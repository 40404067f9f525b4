package culture

import "sync"

var (
	currentMu sync.RWMutex
	current   = Invariant
)

// Current returns the process-wide default culture used by the
// *CurrentCulture pattern constructors. It starts as the invariant culture.
func Current() *Culture {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide default culture. A nil culture
// resets it to the invariant culture.
func SetCurrent(c *Culture) {
	currentMu.Lock()
	defer currentMu.Unlock()
	if c == nil {
		c = Invariant
	}
	current = c
}
