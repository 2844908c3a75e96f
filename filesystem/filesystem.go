// Package filesystem routes every disk access through a swappable afero backend,
// so tests can run against memory instead of the real home directory.
package filesystem

import (
	"sync"

	"github.com/spf13/afero"
)

var (
	mu      sync.RWMutex
	backend = afero.Afero{Fs: afero.NewOsFs()}
)

// API returns the active backend.
func API() afero.Afero {
	mu.RLock()
	defer mu.RUnlock()
	return backend
}

// Set replaces the backend with fs.
func Set(fs afero.Fs) {
	mu.Lock()
	defer mu.Unlock()
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the operating system backend.
func SetOsFs() {
	Set(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory backend.
func SetMemMapFs() {
	Set(afero.NewMemMapFs())
}
