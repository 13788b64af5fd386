package config

import "sync"

// MaxFPSLimit is the highest frame cap SetFPSLimit accepts.
const MaxFPSLimit = 1000

// RuntimeSettings holds values that change while the viewer runs.
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 = unlimited
}

var globalRuntimeSettings = &RuntimeSettings{}

// GetFPSLimit returns the current frame cap
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap, clamped to [0, MaxFPSLimit]
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	globalRuntimeSettings.fpsLimit = limit
}
