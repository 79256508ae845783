// Package registry maps stable algorithm keys to engine constructors, so
// CLIs and GUIs can select implementations without compile-time coupling.
//
// The Registry is an explicitly passed object, created once at process start,
// populated by built-ins (NewDefault) and extensions (Register), and treated
// as read-only thereafter. Registration order is preserved for selection UIs.
//
// Errors:
//
//   - ErrEmptyName: Register called with a blank key.
//   - ErrDuplicateAlgorithm: Register would silently shadow an existing key.
//   - ErrUnknownAlgorithm: Get/New called with an unregistered key.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/A-D-Alamdari/single-agent-pathfinding/search"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyName indicates a blank algorithm key.
	ErrEmptyName = errors.New("registry: algorithm name must be non-empty")

	// ErrDuplicateAlgorithm indicates the key is already registered.
	ErrDuplicateAlgorithm = errors.New("registry: algorithm already registered")

	// ErrUnknownAlgorithm indicates a lookup miss.
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")
)

// Constructor builds a fresh engine configured by the given options.
type Constructor func(opts ...search.Option) search.Engine

// Registry holds named engine constructors in registration order.
// It is not safe for concurrent mutation; populate it at startup and treat
// it as read-only afterwards.
type Registry struct {
	names []string
	ctors map[string]Constructor
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// NewDefault returns a Registry pre-populated with the built-in engines
// under the keys "bfs", "dfs", "dijkstra", and "astar".
func NewDefault() *Registry {
	r := New()
	builtins := []struct {
		key  string
		ctor Constructor
	}{
		{"bfs", search.NewBFS},
		{"dfs", search.NewDFS},
		{"dijkstra", search.NewDijkstra},
		{"astar", search.NewAStar},
	}
	for _, b := range builtins {
		// Built-in keys are distinct; Register cannot fail here.
		_ = r.Register(b.key, b.ctor)
	}

	return r
}

// Register adds a constructor under a stable key. Keys are trimmed and
// lowercased. Registering an existing key fails with ErrDuplicateAlgorithm
// rather than silently shadowing the earlier entry.
func (r *Registry) Register(name string, ctor Constructor) error {
	key := normalize(name)
	if key == "" {
		return ErrEmptyName
	}
	if _, exists := r.ctors[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, key)
	}
	if ctor == nil {
		return fmt.Errorf("registry: nil constructor for %q", key)
	}
	r.ctors[key] = ctor
	r.names = append(r.names, key)

	return nil
}

// Get returns the constructor registered under name, or an
// ErrUnknownAlgorithm-wrapping error naming the attempted key and the
// available ones.
func (r *Registry) Get(name string) (Constructor, error) {
	key := normalize(name)
	ctor, ok := r.ctors[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, key, strings.Join(r.names, ", "))
	}

	return ctor, nil
}

// New constructs an engine by key, applying the given options.
func (r *Registry) New(name string, opts ...search.Option) (search.Engine, error) {
	ctor, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	return ctor(opts...), nil
}

// Names returns the registered keys in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
