// Package validation checks input documents against the embedded JSON
// schema before they are turned into records.
package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/document.schema.json
var documentSchema []byte

const schemaURL = "document.schema.json"

// Violation is one schema failure. Pointer is a JSON pointer into the
// document ("/options/0/NAME"); empty for the root.
type Violation struct {
	Pointer string
	Message string
}

// String formats the violation as "pointer: message".
func (v Violation) String() string {
	loc := v.Pointer
	if loc == "" {
		loc = "(root)"
	}
	return fmt.Sprintf("%s: %s", loc, v.Message)
}

// SchemaValidator validates YAML documents against the document schema.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaURL, bytes.NewReader(documentSchema)); err != nil {
		return nil, fmt.Errorf("failed to add document schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile document schema: %w", err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// ValidateYAML validates a YAML document. The returned error is reserved
// for input that is not YAML at all.
func (v *SchemaValidator) ValidateYAML(data []byte) ([]Violation, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	return v.Validate(doc), nil
}

// Validate validates an already decoded JSON value.
func (v *SchemaValidator) Validate(doc any) []Violation {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []Violation{{Message: err.Error()}}
	}

	violations := collectViolations(verr)
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Pointer < violations[j].Pointer
	})
	return violations
}

// collectViolations flattens the error tree to its leaves, which carry the
// specific messages.
func collectViolations(err *jsonschema.ValidationError) []Violation {
	var out []Violation
	seen := make(map[Violation]bool)

	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			v := Violation{Pointer: e.InstanceLocation, Message: e.Message}
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)

	return out
}
