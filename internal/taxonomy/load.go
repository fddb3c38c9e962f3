package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchema constrains taxonomy override files: a non-empty array of
// specialties, each with a title and a (possibly empty) subspecialty list.
const fileSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["title"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"subspecialties": {
				"type": "array",
				"items": {"type": "string", "minLength": 1}
			}
		},
		"additionalProperties": false
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(fileSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse taxonomy schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://taxonomy.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://taxonomy.json")
	})
	return compiledSchema, compileErr
}

// LoadFile reads a taxonomy override file, validates it against the
// taxonomy schema, and returns a Provider over its contents.
func LoadFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("taxonomy file %s: invalid JSON: %w", path, err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("taxonomy file %s: %w", path, err)
	}

	var specs []Specialty
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("taxonomy file %s: %w", path, err)
	}
	return NewStatic(specs), nil
}
