package configkit

import "fmt"

// Quick constructs (or fetches) the process-wide singleton with the
// default no-op checks. This is the recommended way to initialize
// configuration for applications without domain checks.
func Quick(jsonFile, schemaFile string) (*Config, error) {
	return Instance(NoChecks{}, jsonFile, schemaFile)
}

// MustQuick is like Quick but panics on error.
func MustQuick(jsonFile, schemaFile string) *Config {
	cfg, err := Quick(jsonFile, schemaFile)
	if err != nil {
		panic(fmt.Sprintf("configkit initialization failed: %v", err))
	}
	return cfg
}
