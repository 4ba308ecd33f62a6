package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/configkit"
)

// Configuration carries the domain checks for this application.
type Configuration struct{}

func (Configuration) AdditionalChecks(doc map[string]any) error {
	if _, ok := doc["database"]; !ok {
		return fmt.Errorf("'database' section is required")
	}
	return nil
}

func main() {
	cfg, err := configkit.Instance(Configuration{}, "./example/config.json", "./example/schema.json")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Later call sites fetch the same instance without paths.
	cfg, err = configkit.Lookup(Configuration{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	host, err := cfg.String("database.host")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(host)
	fmt.Println(cfg.GetOr("database.port", 5432))
}
