package configkit

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the document subtree at basePath into target, which
// must be a non-nil pointer. An empty basePath decodes the whole
// document. Field names map through `json` struct tags.
func (c *Config) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	var section any = c.Document()
	if basePath != "" {
		value, err := c.Get(basePath)
		if err != nil {
			return err
		}
		section = value
	}

	sectionMap, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("configuration path %q does not refer to a mapping", basePath)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to decode subtree %q: %w", basePath, err)
	}
	return nil
}
