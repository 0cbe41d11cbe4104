package terminal

import (
	"context"
	"sync"
)

// Settings persists the cross-session preferences the terminal owns.
type Settings interface {
	// Get reports ok=false when key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

const (
	KeyTheme     = "theme"
	KeyWallpaper = "wallpaper"
	KeySound     = "sound"
)

var (
	Themes     = []string{"dark", "light", "matrix", "dracula", "nord", "retro"}
	Wallpapers = []string{"none", "aurora", "grid", "sunset", "mountains"}
)

const (
	DefaultTheme     = "dark"
	DefaultWallpaper = "aurora"
)

// MemorySettings keeps settings in process memory.
type MemorySettings struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: make(map[string]string)}
}

func (m *MemorySettings) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySettings) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}
