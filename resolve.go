package configkit

import (
	"fmt"
	"strings"
)

// resolvePath walks a dot-notation path through nested mappings. Each
// segment is a mapping key lookup; sequences are returned whole when
// reached, never indexed. Deterministic and side-effect-free, safe for
// any number of concurrent readers against the same document.
func resolvePath(doc map[string]any, path string) (any, error) {
	var current any = doc
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrKeyNotFound, path)
		}
		value, exists := node[segment]
		if !exists {
			return nil, fmt.Errorf("%w: '%s'", ErrKeyNotFound, path)
		}
		current = value
	}
	return current, nil
}
