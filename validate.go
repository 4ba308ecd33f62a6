package configkit

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Checks is the extension hook implemented by each concrete
// configuration type. AdditionalChecks runs after structural schema
// validation succeeds and may enforce domain rules ("section database
// is required"), reporting failure with a descriptive error.
//
// The concrete type of a Checks value also keys the singleton registry:
// each type gets its own configuration instance.
type Checks interface {
	AdditionalChecks(doc map[string]any) error
}

// NoChecks is the default no-op extension hook.
type NoChecks struct{}

func (NoChecks) AdditionalChecks(map[string]any) error { return nil }

// compileSchema parses and compiles a JSON Schema (Draft 2020-12).
func compileSchema(path string, data []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("schema.json", bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: invalid schema in '%s': %w", ErrParse, path, err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema '%s': %w", path, err)
	}
	return schema, nil
}

// validateDocument runs structural schema validation, then the
// extension hook. Domain checks never run against a structurally
// invalid document, so schema violations are always reported first.
func validateDocument(doc map[string]any, schema *jsonschema.Schema, jsonFile string, checks Checks) error {
	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &ValidationError{File: jsonFile, Violations: collectViolations(verr)}
		}
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if checks != nil {
		if err := checks.AdditionalChecks(doc); err != nil {
			return fmt.Errorf("additional checks failed for '%s': %w", jsonFile, err)
		}
	}
	return nil
}

// collectViolations flattens the validator's cause tree into leaf
// violations with their instance locations.
func collectViolations(err *jsonschema.ValidationError) []Violation {
	if len(err.Causes) == 0 {
		return []Violation{{Path: err.InstanceLocation, Message: err.Message}}
	}
	var violations []Violation
	for _, cause := range err.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}
