package configkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultMaxFileSize caps how many bytes of a document or schema file
// are read. Override per instance with Builder.WithMaxFileSize.
const DefaultMaxFileSize int64 = 10 << 20

// readFile reads a file with existence, regular-file, and size checks.
// Underlying os errors are preserved in the wrap chain.
func readFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat configuration file '%s': %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("configuration file '%s' is a directory", path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w: '%s' is %d bytes (limit %d)", ErrFileSize, path, info.Size(), maxSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file '%s': %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if maxSize > 0 {
		reader = io.LimitReader(file, maxSize)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}
	return data, nil
}

// readDocumentFile reads and parses a configuration document. JSON is
// the primary format; YAML and TOML files are accepted and normalized
// to the representation a JSON parse would have produced, so schema
// validation sees identical value types regardless of source format.
func readDocumentFile(path string, maxSize int64) (map[string]any, []byte, error) {
	data, err := readFile(path, maxSize)
	if err != nil {
		return nil, nil, err
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	doc := make(map[string]any)
	switch format {
	case "json":
		if err := parseJSON(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("%w: invalid JSON in '%s': %w", ErrParse, path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("%w: invalid YAML in '%s': %w", ErrParse, path, err)
		}
		if doc, err = normalizeDocument(doc); err != nil {
			return nil, nil, fmt.Errorf("%w: failed to normalize YAML document '%s': %w", ErrParse, path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, nil, fmt.Errorf("%w: invalid TOML in '%s': %w", ErrParse, path, err)
		}
		if doc, err = normalizeDocument(doc); err != nil {
			return nil, nil, fmt.Errorf("%w: failed to normalize TOML document '%s': %w", ErrParse, path, err)
		}
	default:
		return nil, nil, fmt.Errorf("%w: unable to determine format of '%s'", ErrParse, path)
	}

	return doc, data, nil
}

// parseJSON decodes JSON preserving number precision as json.Number.
func parseJSON(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	return decoder.Decode(target)
}

// normalizeDocument round-trips a parsed tree through JSON so non-JSON
// documents carry the canonical value types (json.Number scalars,
// string-keyed maps).
func normalizeDocument(doc map[string]any) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	normalized := make(map[string]any)
	if err := parseJSON(data, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml", ".tml":
		return "toml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
func detectFormatFromContent(data []byte) string {
	// JSON first (strict), then YAML (a JSON superset), then TOML.
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
