package configkit

import (
	"fmt"
)

// Builder provides a fluent interface for constructing the singleton
// configuration for a type.
type Builder struct {
	checks      Checks
	jsonFile    string
	schemaFile  string
	maxFileSize int64
	registry    *Registry
	err         error
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{maxFileSize: DefaultMaxFileSize}
}

// WithJSONFile sets the configuration document path.
func (b *Builder) WithJSONFile(path string) *Builder {
	b.jsonFile = path
	return b
}

// WithSchemaFile sets the JSON Schema path.
func (b *Builder) WithSchemaFile(path string) *Builder {
	b.schemaFile = path
	return b
}

// WithChecks sets the extension hook; its concrete type keys the
// singleton. Defaults to NoChecks.
func (b *Builder) WithChecks(checks Checks) *Builder {
	b.checks = checks
	return b
}

// WithMaxFileSize overrides the read size limit for both files.
func (b *Builder) WithMaxFileSize(n int64) *Builder {
	if n <= 0 {
		b.err = fmt.Errorf("max file size must be positive, got %d", n)
		return b
	}
	b.maxFileSize = n
	return b
}

// WithRegistry targets a specific registry instead of the process-wide
// one. Used for test isolation and embedding.
func (b *Builder) WithRegistry(r *Registry) *Builder {
	b.registry = r
	return b
}

// Build constructs the singleton, or returns the existing instance if
// the type is already initialized.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	registry := b.registry
	if registry == nil {
		registry = Global()
	}
	return registry.instance(b.checks, b.jsonFile, b.schemaFile, b.maxFileSize)
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("configkit build failed: %v", err))
	}
	return cfg
}
