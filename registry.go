package vg

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory creates a backend rendering into a target of the given
// size in device pixels.
type BackendFactory func(width, height int) (Backend, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]BackendFactory)
)

// RegisterBackend makes a backend available by name. It is meant to be
// called from init in backend packages, following the database/sql driver
// pattern:
//
//	func init() {
//	    vg.RegisterBackend("software", func(w, h int) (vg.Backend, error) {
//	        return New(w, h), nil
//	    })
//	}
//
// RegisterBackend panics if factory is nil or the name is already taken.
func RegisterBackend(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("vg: RegisterBackend factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("vg: RegisterBackend called twice for " + name)
	}
	factories[name] = factory
	Logger().Info("vg: backend registered", "name", name)
}

// UnregisterBackend removes a backend from the registry. Unknown names are
// ignored.
func UnregisterBackend(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// NewBackend creates a registered backend by name.
//
//	import _ "github.com/gogpu/vg/backend/software"
//
//	b, err := vg.NewBackend("software", 640, 480)
func NewBackend(name string, width, height int) (Backend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("vg: unknown backend %q (forgotten import?)", name)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vg: backend %q: invalid size %dx%d", name, width, height)
	}
	b, err := factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("vg: backend %q: %w", name, err)
	}
	Logger().Info("vg: backend created", "name", name, "width", width, "height", height)
	return b, nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
