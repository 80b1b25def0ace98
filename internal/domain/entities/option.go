package entities

import (
	"fmt"

	"github.com/reglet-dev/togglegen/internal/domain/values"
)

// OptionDefinition is one toggle option. It is immutable once built.
type OptionDefinition struct {
	Name        string
	Type        values.OptionType
	Decl        values.Decl
	Default     string
	Brief       string
	Description string

	// Optional custom code, one per render mode. Zero templates are absent.
	Header     values.Template
	Source     values.Template
	TestAssign values.Template

	Location Location
}

// TemplateFor returns the custom template for a render mode, if any.
func (o *OptionDefinition) TemplateFor(mode values.RenderMode) values.Template {
	switch mode {
	case values.ModeDecl:
		return o.Header
	case values.ModeDef:
		return o.Source
	case values.ModeAssign:
		return o.TestAssign
	default:
		return values.Template{}
	}
}

// OptionTable is the ordered, read-only set of option definitions.
type OptionTable struct {
	options []*OptionDefinition
	byName  map[string]*OptionDefinition
}

// NewOptionTable builds a table in declaration order, rejecting duplicate names.
func NewOptionTable(options []*OptionDefinition) (*OptionTable, error) {
	t := &OptionTable{
		options: make([]*OptionDefinition, 0, len(options)),
		byName:  make(map[string]*OptionDefinition, len(options)),
	}
	for _, opt := range options {
		if _, exists := t.byName[opt.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOption, opt.Name)
		}
		t.byName[opt.Name] = opt
		t.options = append(t.options, opt)
	}
	return t, nil
}

// Get retrieves an option by name.
func (t *OptionTable) Get(name string) (*OptionDefinition, bool) {
	opt, ok := t.byName[name]
	return opt, ok
}

// All returns the options in declaration order.
func (t *OptionTable) All() []*OptionDefinition {
	out := make([]*OptionDefinition, len(t.options))
	copy(out, t.options)
	return out
}

// Len returns the number of options.
func (t *OptionTable) Len() int {
	return len(t.options)
}
