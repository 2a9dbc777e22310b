package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/coins.schema.json
var coinsSchemaJSON string

// ErrInvalid is wrapped by every schema validation failure.
var ErrInvalid = errors.New("config: invalid document")

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("coins.schema.json", coinsSchemaJSON)
	})
	return schema, schemaErr
}

// Validate checks a YAML document against the embedded JSON schema.
func Validate(doc []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("config: compile schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if raw == nil {
		// Empty document: every field falls back to defaults.
		return nil
	}

	// The validator expects JSON-shaped values (float64 numbers,
	// map[string]any objects), so round-trip through encoding/json.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
