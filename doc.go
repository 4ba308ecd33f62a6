// Package configkit provides singleton JSON configuration management for Go
// applications: a configuration file is loaded once per process, validated
// against a JSON Schema (Draft 2020-12), and exposed through thread-safe
// dot-notation accessors.
//
// Features:
//   - At most one live configuration instance per concrete Checks type
//   - Structural schema validation plus a domain-specific extension hook
//   - Explicit, caller-triggered reload with an atomic generation swap
//   - Lock-free concurrent reads, even while a reload is in flight
//   - Dot-notation access with typed conversions and struct decoding
//   - YAML and TOML documents accepted and normalized to JSON semantics
//
// Quick Start:
//
//	type AppConfig struct{}
//
//	func (AppConfig) AdditionalChecks(doc map[string]any) error {
//	    if _, ok := doc["database"]; !ok {
//	        return fmt.Errorf("'database' section is required")
//	    }
//	    return nil
//	}
//
//	cfg, err := configkit.Instance(AppConfig{}, "config.json", "schema.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host, _ := cfg.String("database.host")
//	port := cfg.GetOr("database.port", 5432)
//
// Every later Instance call for the same Checks type returns the existing
// instance without touching the filesystem. Configuration never changes
// underneath a running process unless Reload is called explicitly:
//
//	if err := cfg.Reload("", ""); err != nil {
//	    // the previously published configuration is still intact
//	    log.Print(err)
//	}
//
// Thread Safety:
// Construction and reload for a given type are serialized by a mutex.
// Readers resolve against an atomically published immutable generation, so
// concurrent Get calls never block each other and always observe one
// complete, self-consistent document.
package configkit
