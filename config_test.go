package configkit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openSchema accepts any object; used when a test only cares about the
// lifecycle, not structural validation.
const openSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object"
}`

// dbSchema requires a database section with a string host.
const dbSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "database": {
      "type": "object",
      "properties": {
        "host": {"type": "string"},
        "port": {"type": "integer"}
      },
      "required": ["host"]
    }
  },
  "required": ["database"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// newInstance builds an isolated singleton for one test.
func newInstance(t *testing.T, checks Checks, document, schema string) *Config {
	t.Helper()
	dir := t.TempDir()
	jsonFile := writeFile(t, dir, "config.json", document)
	schemaFile := writeFile(t, dir, "schema.json", schema)

	cfg, err := NewRegistry().Instance(checks, jsonFile, schemaFile)
	require.NoError(t, err)
	return cfg
}

// TestDotNotationAccess covers the accessor contract end to end.
func TestDotNotationAccess(t *testing.T) {
	cfg := newInstance(t, nil, `{
		"a": {"b": {"c": 42}},
		"list": [1, 2, 3],
		"scalar": "leaf"
	}`, openSchema)

	t.Run("RoundTrip", func(t *testing.T) {
		val, err := cfg.Get("a.b.c")
		require.NoError(t, err)
		assert.Equal(t, json.Number("42"), val)

		i, err := cfg.Int64("a.b.c")
		require.NoError(t, err)
		assert.Equal(t, int64(42), i)
	})

	t.Run("DefaultOnMissing", func(t *testing.T) {
		assert.Equal(t, 7, cfg.GetOr("a.b.x", 7))
	})

	t.Run("MissingWithoutDefault", func(t *testing.T) {
		_, err := cfg.Get("a.b.x")
		assert.ErrorIs(t, err, ErrKeyNotFound)
		assert.Contains(t, err.Error(), "a.b.x")
	})

	t.Run("IntermediateNotMapping", func(t *testing.T) {
		_, err := cfg.Get("scalar.deeper")
		assert.ErrorIs(t, err, ErrKeyNotFound)
		assert.Equal(t, "fallback", cfg.GetOr("scalar.deeper", "fallback"))
	})

	t.Run("SequenceReturnedWhole", func(t *testing.T) {
		val, err := cfg.Get("list")
		require.NoError(t, err)
		assert.Equal(t, []any{json.Number("1"), json.Number("2"), json.Number("3")}, val)
	})

	t.Run("MappingReturnedWhole", func(t *testing.T) {
		val, err := cfg.Get("a.b")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"c": json.Number("42")}, val)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		_, err := cfg.Get("")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})
}

// TestReloadReplacesGeneration verifies a successful reload publishes
// the new document to subsequent reads.
func TestReloadReplacesGeneration(t *testing.T) {
	dir := t.TempDir()
	jsonFile := writeFile(t, dir, "config.json", `{"value": "before"}`)
	schemaFile := writeFile(t, dir, "schema.json", openSchema)

	cfg, err := NewRegistry().Instance(nil, jsonFile, schemaFile)
	require.NoError(t, err)

	val, err := cfg.String("value")
	require.NoError(t, err)
	assert.Equal(t, "before", val)

	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"value": "after"}`), 0644))
	require.NoError(t, cfg.Reload("", ""))

	val, err = cfg.String("value")
	require.NoError(t, err)
	assert.Equal(t, "after", val)
}

// TestReloadFailureIsolation verifies a failed reload leaves the
// published generation untouched.
func TestReloadFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	jsonFile := writeFile(t, dir, "config.json", `{"database": {"host": "db1"}}`)
	schemaFile := writeFile(t, dir, "schema.json", dbSchema)
	badFile := writeFile(t, dir, "bad.json", `{"database": {"port": 1}}`)

	cfg, err := NewRegistry().Instance(nil, jsonFile, schemaFile)
	require.NoError(t, err)

	err = cfg.Reload(badFile, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReload)
	assert.ErrorIs(t, err, ErrValidation)

	host, err := cfg.String("database.host")
	require.NoError(t, err)
	assert.Equal(t, "db1", host)
	assert.Equal(t, jsonFile, cfg.JSONFile())
}

// TestReloadPathDefaulting pins the contract that an omitted path
// defaults to the path of the currently published generation, which
// after a reload with new files is the most recently used path.
func TestReloadPathDefaulting(t *testing.T) {
	dir := t.TempDir()
	fileA := writeFile(t, dir, "a.json", `{"value": "a"}`)
	fileB := writeFile(t, dir, "b.json", `{"value": "b"}`)
	schemaFile := writeFile(t, dir, "schema.json", openSchema)

	cfg, err := NewRegistry().Instance(nil, fileA, schemaFile)
	require.NoError(t, err)

	require.NoError(t, cfg.Reload(fileB, ""))
	assert.Equal(t, "b", cfg.GetOr("value", ""))
	assert.Equal(t, fileB, cfg.JSONFile())

	// Omitted path now means fileB, not the constructor's fileA.
	require.NoError(t, os.WriteFile(fileB, []byte(`{"value": "b2"}`), 0644))
	require.NoError(t, cfg.Reload("", ""))
	assert.Equal(t, "b2", cfg.GetOr("value", ""))
}

// TestReloadAtomicity hammers Get from several goroutines while
// reloads toggle between two documents. Every read must observe a
// single self-consistent generation, never fields from both.
func TestReloadAtomicity(t *testing.T) {
	dir := t.TempDir()
	docOne := `{"left": "one", "right": "one"}`
	docTwo := `{"left": "two", "right": "two"}`
	jsonFile := writeFile(t, dir, "config.json", docOne)
	schemaFile := writeFile(t, dir, "schema.json", openSchema)

	cfg, err := NewRegistry().Instance(nil, jsonFile, schemaFile)
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				doc := cfg.Document()
				left, right := doc["left"], doc["right"]
				assert.Equal(t, left, right)

				value, err := cfg.Get("left")
				assert.NoError(t, err)
				assert.Contains(t, []any{"one", "two"}, value)
			}
		}()
	}

	for i := 0; i < 50; i++ {
		content := docOne
		if i%2 == 0 {
			content = docTwo
		}
		require.NoError(t, os.WriteFile(jsonFile, []byte(content), 0644))
		require.NoError(t, cfg.Reload("", ""))
	}

	close(done)
	wg.Wait()
}

// TestGenerationAccessors covers the Store read-only surface.
func TestGenerationAccessors(t *testing.T) {
	dir := t.TempDir()
	document := `{"database": {"host": "db1"}}`
	jsonFile := writeFile(t, dir, "config.json", document)
	schemaFile := writeFile(t, dir, "schema.json", dbSchema)

	cfg, err := NewRegistry().Instance(nil, jsonFile, schemaFile)
	require.NoError(t, err)

	gen := cfg.Generation()
	assert.Equal(t, jsonFile, gen.JSONFile())
	assert.Equal(t, schemaFile, gen.SchemaFile())
	assert.JSONEq(t, document, string(gen.DocumentRaw()))
	assert.JSONEq(t, dbSchema, string(gen.SchemaRaw()))
	assert.Equal(t, "db1", cfg.GetOr("database.host", ""))
	assert.Equal(t, gen.Document()["database"], cfg.Document()["database"])
}

// TestConcurrentReads verifies many readers proceed without blocking
// each other or corrupting results.
func TestConcurrentReads(t *testing.T) {
	cfg := newInstance(t, nil, `{"a": {"b": {"c": 42}}}`, openSchema)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				i, err := cfg.Int64("a.b.c")
				assert.NoError(t, err)
				assert.Equal(t, int64(42), i)
			}
		}()
	}
	wg.Wait()
}
