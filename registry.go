package configkit

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry holds at most one live Config per concrete Checks type.
// Construction and reload for a type are serialized; a failed first
// load leaves the type uninitialized so a later attempt can retry.
type Registry struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry
}

// entry serializes construction for one configuration type. cfg stays
// nil until the first successful load.
type entry struct {
	mu  sync.Mutex
	cfg *Config
}

// NewRegistry creates an empty registry. Most callers use the
// process-wide registry through the package-level functions; separate
// registries exist for test isolation and embedding.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]*entry)}
}

// Instance returns the singleton Config for the concrete type of
// checks, constructing it on first call. The first call per type
// requires both non-empty file paths and runs the full load, validate,
// publish sequence; every later call ignores the arguments and returns
// the existing instance without touching the filesystem. Concurrent
// first calls run exactly one load.
func (r *Registry) Instance(checks Checks, jsonFile, schemaFile string) (*Config, error) {
	return r.instance(checks, jsonFile, schemaFile, DefaultMaxFileSize)
}

func (r *Registry) instance(checks Checks, jsonFile, schemaFile string, maxFileSize int64) (*Config, error) {
	if checks == nil {
		checks = NoChecks{}
	}
	key := reflect.TypeOf(checks)

	r.mu.Lock()
	e, exists := r.entries[key]
	if !exists {
		e = &entry{}
		r.entries[key] = e
	}
	r.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg != nil {
		return e.cfg, nil
	}

	if jsonFile == "" || schemaFile == "" {
		return nil, fmt.Errorf("%w (type %s)", ErrMissingFiles, key)
	}

	cfg := &Config{checks: checks, maxFileSize: maxFileSize}
	store, err := cfg.load(jsonFile, schemaFile)
	if err != nil {
		return nil, err
	}
	cfg.store.Store(store)
	e.cfg = cfg
	return cfg, nil
}

// Lookup returns the live instance for the concrete type of checks, or
// ErrNotInitialized if the type has no instance yet.
func (r *Registry) Lookup(checks Checks) (*Config, error) {
	if checks == nil {
		checks = NoChecks{}
	}
	key := reflect.TypeOf(checks)

	r.mu.Lock()
	e, exists := r.entries[key]
	r.mu.Unlock()
	if !exists {
		return nil, fmt.Errorf("%w (type %s)", ErrNotInitialized, key)
	}

	e.mu.Lock()
	cfg := e.cfg
	e.mu.Unlock()
	if cfg == nil {
		return nil, fmt.Errorf("%w (type %s)", ErrNotInitialized, key)
	}
	return cfg, nil
}

// Reload reloads the singleton for the concrete type of checks.
// Reloading before first construction is a usage error.
func (r *Registry) Reload(checks Checks, jsonFile, schemaFile string) error {
	cfg, err := r.Lookup(checks)
	if err != nil {
		return err
	}
	return cfg.Reload(jsonFile, schemaFile)
}

// Reset drops every entry so the next Instance call per type runs a
// fresh load. It exists for test isolation, not production use.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[reflect.Type]*entry)
}

// Process-wide registry instance and initialization guard.
var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// Global returns the process-wide registry, creating it on first call.
func Global() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// Instance returns the process-wide singleton for the concrete type of
// checks. See Registry.Instance.
func Instance(checks Checks, jsonFile, schemaFile string) (*Config, error) {
	return Global().Instance(checks, jsonFile, schemaFile)
}

// Lookup returns the process-wide instance for the concrete type of
// checks without constructing one.
func Lookup(checks Checks) (*Config, error) {
	return Global().Lookup(checks)
}

// Reload reloads the process-wide singleton for the concrete type of
// checks. See Registry.Reload.
func Reload(checks Checks, jsonFile, schemaFile string) error {
	return Global().Reload(checks, jsonFile, schemaFile)
}

// Reset clears the process-wide registry. Test use only.
func Reset() {
	Global().Reset()
}
