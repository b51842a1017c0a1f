package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSetSchema validates a lesson question file before decoding.
// Malformed entries that pass the schema (e.g. a correct answer id missing
// from the choices) are still caught by Question.Validate afterwards; the
// schema rejects only shape-level problems so decoding cannot fail.
var questionSetSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"text": map[string]any{"type": "string"},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"multiple-choice", "true-false", "fill-blank"},
					},
					"choices": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":   map[string]any{"type": "string"},
								"text": map[string]any{"type": "string"},
							},
							"required": []any{"id", "text"},
						},
					},
					"correct_answer_id":  map[string]any{"type": "string"},
					"explanation":        map[string]any{"type": "string"},
					"topic":              map[string]any{"type": "string"},
					"difficulty":         map[string]any{"type": "string"},
					"points":             map[string]any{"type": "integer"},
					"time_limit_seconds": map[string]any{"type": "integer"},
				},
				"required": []any{"id", "text", "type", "choices", "correct_answer_id", "difficulty", "points"},
			},
		},
	},
	"required": []any{"questions"},
}

// lessonManifestSchema validates the lesson ordering manifest.
var lessonManifestSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"lessons": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string"},
					"title":       map[string]any{"type": "string"},
					"topic":       map[string]any{"type": "string"},
					"order_index": map[string]any{"type": "integer"},
				},
				"required": []any{"id", "order_index"},
			},
		},
	},
	"required": []any{"lessons"},
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument validates raw JSON against the named schema definition.
func validateDocument(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
