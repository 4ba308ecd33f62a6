package configkit

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Store is one fully validated generation of configuration: the parsed
// document, its compiled schema, and the paths both were loaded from.
// A Store is never mutated after construction; reload publishes a
// replacement generation instead.
type Store struct {
	document    map[string]any
	documentRaw []byte
	schema      *jsonschema.Schema
	schemaRaw   []byte
	jsonFile    string
	schemaFile  string
}

// Document returns the parsed configuration tree. The tree is shared by
// every reader of this generation and must be treated as read-only.
func (s *Store) Document() map[string]any { return s.document }

// DocumentRaw returns the bytes the document was parsed from.
func (s *Store) DocumentRaw() []byte { return s.documentRaw }

// SchemaRaw returns the bytes the schema was compiled from.
func (s *Store) SchemaRaw() []byte { return s.schemaRaw }

// JSONFile returns the path the document was loaded from.
func (s *Store) JSONFile() string { return s.jsonFile }

// SchemaFile returns the path the schema was loaded from.
func (s *Store) SchemaFile() string { return s.schemaFile }
