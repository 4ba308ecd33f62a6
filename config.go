package configkit

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Config is a handle to one singleton configuration instance. All
// methods are safe for concurrent use. Readers resolve against an
// atomically published immutable Store generation, so Get never blocks,
// not even while a reload is in flight.
type Config struct {
	mu          sync.Mutex // serializes reloads
	store       atomic.Pointer[Store]
	checks      Checks
	maxFileSize int64
}

// load runs the full read, parse, compile, validate sequence and
// returns the resulting generation without publishing it. Any failure
// leaves the published generation untouched.
func (c *Config) load(jsonFile, schemaFile string) (*Store, error) {
	doc, docRaw, err := readDocumentFile(jsonFile, c.maxFileSize)
	if err != nil {
		return nil, err
	}

	schemaRaw, err := readFile(schemaFile, c.maxFileSize)
	if err != nil {
		return nil, err
	}
	schema, err := compileSchema(schemaFile, schemaRaw)
	if err != nil {
		return nil, err
	}

	if err := validateDocument(doc, schema, jsonFile, c.checks); err != nil {
		return nil, err
	}

	return &Store{
		document:    doc,
		documentRaw: docRaw,
		schema:      schema,
		schemaRaw:   schemaRaw,
		jsonFile:    jsonFile,
		schemaFile:  schemaFile,
	}, nil
}

// Get retrieves a value by dot-notation path from the currently
// published generation. The leaf is returned exactly as parsing
// produced it (string, json.Number, bool, nil, map[string]any, []any);
// callers needing a concrete type use the typed accessors or handle
// the assertion themselves. Fails with ErrKeyNotFound when any segment
// is absent or an intermediate value is not a mapping.
func (c *Config) Get(path string) (any, error) {
	return resolvePath(c.store.Load().document, path)
}

// GetOr is Get with a default: def is returned whenever the path does
// not fully resolve.
func (c *Config) GetOr(path string, def any) any {
	value, err := c.Get(path)
	if err != nil {
		return def
	}
	return value
}

// Reload re-reads and re-validates configuration, then atomically
// replaces the published generation in a single pointer swap. An empty
// path defaults to the corresponding path of the current generation.
// On failure the error wraps ErrReload and the current generation
// stays published unchanged. Reads that start after Reload returns see
// the new generation; reads that overlap it see one complete
// generation, old or new, never a mixture.
func (c *Config) Reload(jsonFile, schemaFile string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.store.Load()
	if jsonFile == "" {
		jsonFile = current.jsonFile
	}
	if schemaFile == "" {
		schemaFile = current.schemaFile
	}

	store, err := c.load(jsonFile, schemaFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReload, err)
	}

	c.store.Store(store)
	return nil
}

// Generation returns the currently published Store.
func (c *Config) Generation() *Store { return c.store.Load() }

// Document returns the current generation's parsed tree. The tree is
// shared and must be treated as read-only.
func (c *Config) Document() map[string]any { return c.store.Load().document }

// JSONFile returns the path the current generation's document was
// loaded from.
func (c *Config) JSONFile() string { return c.store.Load().jsonFile }

// SchemaFile returns the path the current generation's schema was
// loaded from.
func (c *Config) SchemaFile() string { return c.store.Load().schemaFile }
