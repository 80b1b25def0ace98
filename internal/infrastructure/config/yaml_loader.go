// Package config provides infrastructure for loading togglegen input
// documents. This package handles CSV and YAML parsing and file I/O.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/infrastructure/validation"
)

// Top-level document keys.
const (
	keyGenerator = "generator"
	keyOptions   = "options"
	keyCharIDs   = "char_ids"
)

// YAMLLoader reads YAML documents with "generator", "options" and
// "char_ids" keys. Records keep their key order and the line they start on.
type YAMLLoader struct {
	validator *validation.SchemaValidator
}

// NewYAMLLoader creates a new YAML loader. A nil validator skips schema
// validation.
func NewYAMLLoader(validator *validation.SchemaValidator) *YAMLLoader {
	return &YAMLLoader{validator: validator}
}

// Parse reads one document from r into doc.
func (l *YAMLLoader) Parse(source string, r io.Reader, doc *entities.Document, diags *entities.Diagnostics) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", source, err)
	}

	if l.validator != nil {
		violations, err := l.validator.ValidateYAML(data)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", source, err)
		}
		for _, v := range violations {
			loc := entities.Location{Source: source, Line: lineOf(file, v.Pointer)}
			diags.Fail(loc, entities.CodeSchema, v.Pointer,
				fmt.Errorf("%w: %s", entities.ErrInvalidField, v.String()))
		}
	}

	for _, d := range file.Docs {
		if d == nil || d.Body == nil {
			continue
		}
		for _, mv := range mappingValues(unwrap(d.Body)) {
			key := scalarText(mv.Key)
			switch key {
			case keyGenerator:
				if c := strings.TrimSpace(scalarText(mv.Value)); c != "" {
					if doc.Generator != "" {
						doc.Generator += ", "
					}
					doc.Generator += c
				}
			case keyOptions:
				doc.Options = append(doc.Options, l.records(source, mv.Value)...)
			case keyCharIDs:
				doc.Profiles = append(doc.Profiles, l.records(source, mv.Value)...)
			}
		}
	}

	return nil
}

// records converts a sequence of mappings. Anything else has already been
// reported by the schema and is skipped.
func (l *YAMLLoader) records(source string, node ast.Node) []entities.RawRecord {
	seq, ok := unwrap(node).(*ast.SequenceNode)
	if !ok {
		return nil
	}

	out := make([]entities.RawRecord, 0, len(seq.Values))
	for _, item := range seq.Values {
		values := mappingValues(unwrap(item))
		if values == nil {
			continue
		}

		rec := entities.RawRecord{
			Location: entities.Location{Source: source, Line: line(item)},
			Fields:   make([]entities.Field, 0, len(values)),
		}
		for _, mv := range values {
			rec.Fields = append(rec.Fields, field(scalarText(mv.Key), mv.Value))
		}
		out = append(out, rec)
	}
	return out
}

// field converts one mapping entry. A present key is always explicit, even
// with a null value.
func field(key string, value ast.Node) entities.Field {
	f := entities.Field{Key: key, Explicit: true}

	if seq, ok := unwrap(value).(*ast.SequenceNode); ok {
		f.IsList = true
		for _, item := range seq.Values {
			f.Items = append(f.Items, scalarText(item))
		}
		f.Value = strings.Join(f.Items, ", ")
		return f
	}

	f.Value = scalarText(value)
	return f
}

// mappingValues returns the entries of a mapping node, or nil.
func mappingValues(node ast.Node) []*ast.MappingValueNode {
	switch n := node.(type) {
	case *ast.MappingNode:
		return n.Values
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}
	default:
		return nil
	}
}

// unwrap strips tags and anchors.
func unwrap(node ast.Node) ast.Node {
	for {
		switch n := node.(type) {
		case *ast.TagNode:
			node = n.Value
		case *ast.AnchorNode:
			node = n.Value
		default:
			return node
		}
	}
}

// scalarText renders a scalar node to its literal source text, so that
// "0x0F", "1.0" and "-1" reach the generated C code unchanged.
func scalarText(node ast.Node) string {
	if node == nil {
		return ""
	}
	switch n := unwrap(node).(type) {
	case nil:
		return ""
	case *ast.NullNode:
		return ""
	case *ast.StringNode:
		return n.Value
	case *ast.LiteralNode:
		if n.Value == nil {
			return ""
		}
		return strings.TrimRight(n.Value.Value, "\n")
	case ast.ScalarNode:
		if tk := n.GetToken(); tk != nil {
			return tk.Value
		}
		return fmt.Sprint(n.GetValue())
	default:
		return strings.TrimSpace(n.String())
	}
}

func line(node ast.Node) int {
	if node == nil {
		return 0
	}
	if tk := node.GetToken(); tk != nil && tk.Position != nil {
		return tk.Position.Line
	}
	return 0
}

// lineOf maps a JSON pointer ("/options/0/NAME") to the line of the YAML
// node it designates, or 0 if the node cannot be found.
func lineOf(file *ast.File, pointer string) int {
	var b strings.Builder
	b.WriteString("$")
	for _, seg := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		if seg == "" {
			continue
		}
		if isIndex(seg) {
			b.WriteString("[" + seg + "]")
			continue
		}
		b.WriteString("." + seg)
	}

	path, err := yaml.PathString(b.String())
	if err != nil {
		return 0
	}
	node, err := path.FilterFile(file)
	if err != nil {
		return 0
	}
	return line(node)
}

func isIndex(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
