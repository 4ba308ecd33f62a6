package configkit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// String retrieves a string value using the path.
// Attempts conversion from common scalar types if the stored value
// isn't already a string.
func (c *Config) String(path string) (string, error) {
	val, err := c.Get(path)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil // Treat null as empty string for convenience
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for path %s", val, path)
	}
}

// Int64 retrieves an int64 value using the path.
// Attempts conversion from numeric types and parsable strings.
// A fractional number fails rather than truncating silently.
func (c *Config) Int64(path string) (int64, error) {
	val, err := c.Get(path)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return 0, fmt.Errorf("value %q at path %s is not an integer", v.String(), path)
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("value %v at path %s is not an integer", v, path)
		}
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to int64 for path %s: %w", v, path, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot convert type %T to int64 for path %s", val, path)
	}
}

// Float64 retrieves a float64 value using the path.
func (c *Config) Float64(path string) (float64, error) {
	val, err := c.Get(path)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float64 for path %s: %w", v.String(), path, err)
		}
		return f, nil
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float64 for path %s: %w", v, path, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert type %T to float64 for path %s", val, path)
	}
}

// Bool retrieves a boolean value using the path.
// Attempts conversion from parsable strings and numbers (zero is
// false, anything else true).
func (c *Config) Bool(path string) (bool, error) {
	val, err := c.Get(path)
	if err != nil {
		return false, err
	}

	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for path %s: %w", v, path, err)
		}
		return b, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return false, fmt.Errorf("cannot convert %q to bool for path %s: %w", v.String(), path, err)
		}
		return f != 0, nil
	default:
		return false, fmt.Errorf("cannot convert type %T to bool for path %s", val, path)
	}
}

// Strings retrieves a []string value using the path. A sequence is
// converted element by element; a single string is split on commas.
func (c *Config) Strings(path string) ([]string, error) {
	val, err := c.Get(path)
	if err != nil {
		return nil, err
	}

	switch v := val.(type) {
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			switch s := item.(type) {
			case string:
				out[i] = s
			case json.Number:
				out[i] = s.String()
			case bool:
				out[i] = strconv.FormatBool(s)
			default:
				return nil, fmt.Errorf("cannot convert element %d (%T) to string for path %s", i, item, path)
			}
		}
		return out, nil
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	default:
		return nil, fmt.Errorf("cannot convert type %T to []string for path %s", val, path)
	}
}

// Duration retrieves a time.Duration value using the path. Strings are
// parsed with time.ParseDuration; numbers are taken as nanoseconds.
func (c *Config) Duration(path string) (time.Duration, error) {
	val, err := c.Get(path)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to duration for path %s: %w", v, path, err)
		}
		return d, nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to duration for path %s: %w", v.String(), path, err)
		}
		return time.Duration(i), nil
	default:
		return 0, fmt.Errorf("cannot convert type %T to duration for path %s", val, path)
	}
}
