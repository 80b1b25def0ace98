package services

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/values"
)

// Option record fields.
const (
	FieldName        = "NAME"
	FieldDefault     = "DEFAULT"
	FieldType        = "TYPE"
	FieldDecl        = "DECL"
	FieldBrief       = "BRIEF"
	FieldDescription = "DESCRIPTION"
	FieldHeader      = "H"
	FieldSource      = "C"
	FieldTestAssign  = "TEST_ASSIGN"
)

// Profile record fields. Any other key must name an option.
const (
	FieldCharID  = "CHAR_ID"
	FieldBasedOn = "BASED_ON"
	FieldTesting = "TESTING"
)

var optionFields = map[string]bool{
	FieldName: true, FieldDefault: true, FieldType: true, FieldDecl: true,
	FieldBrief: true, FieldDescription: true,
	FieldHeader: true, FieldSource: true, FieldTestAssign: true,
}

var profileFields = map[string]bool{
	FieldCharID: true, FieldBrief: true, FieldDescription: true,
	FieldBasedOn: true, FieldTesting: true,
}

// Macros the master header defines or tests. No option or CHAR_ID may use them.
var reservedMacros = map[string]bool{
	"CHAR_ID": true, "NUM_CHAR_IDS": true, "DOXYGEN": true,
}

// TableBuilder turns raw input records into validated option definitions and
// raw profiles. It keeps going after a bad record so that one run reports
// every authoring mistake; findings go to the Diagnostics passed in.
type TableBuilder struct {
	warned map[string]bool
}

// NewTableBuilder creates a new table builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		warned: make(map[string]bool),
	}
}

// BuildOptions validates option records. Invalid records are reported and
// left out of the returned table.
func (b *TableBuilder) BuildOptions(records []entities.RawRecord, diags *entities.Diagnostics) *entities.OptionTable {
	firstSeen := make(map[string]entities.Location, len(records))
	options := make([]*entities.OptionDefinition, 0, len(records))

	for _, rec := range records {
		opt, ok := b.buildOption(rec, diags)
		if !ok {
			continue
		}
		if at, dup := firstSeen[opt.Name]; dup {
			diags.Fail(rec.Location, entities.CodeDuplicateOption, opt.Name,
				fmt.Errorf("%w: %s (first declared at %s)", entities.ErrDuplicateOption, opt.Name, at))
			continue
		}
		firstSeen[opt.Name] = rec.Location
		options = append(options, opt)
	}

	// Duplicates were filtered above, so this cannot fail.
	table, err := entities.NewOptionTable(options)
	if err != nil {
		diags.Fail(entities.Location{}, entities.CodeDuplicateOption, "", err)
		table, _ = entities.NewOptionTable(nil)
	}
	return table
}

func (b *TableBuilder) buildOption(rec entities.RawRecord, diags *entities.Diagnostics) (*entities.OptionDefinition, bool) {
	name := rec.Value(FieldName)
	if name == "" {
		diags.Fail(rec.Location, entities.CodeMissingField, "",
			fmt.Errorf("%w: option record has no %s", entities.ErrMissingField, FieldName))
		return nil, false
	}
	if !values.IsIdentifier(name) {
		diags.Fail(rec.Location, entities.CodeInvalidIdentifier, name,
			fmt.Errorf("%w: option name %q is not a C identifier", entities.ErrInvalidIdentifier, name))
		return nil, false
	}
	if reservedMacros[name] || profileFields[name] {
		diags.Fail(rec.Location, entities.CodeInvalidIdentifier, name,
			fmt.Errorf("%w: option name %q is reserved", entities.ErrInvalidIdentifier, name))
		return nil, false
	}

	ok := true
	opt := &entities.OptionDefinition{
		Name:        name,
		Default:     rec.Value(FieldDefault),
		Brief:       rec.Value(FieldBrief),
		Description: rec.Value(FieldDescription),
		Location:    rec.Location,
	}

	typ, err := values.NewOptionType(rec.Value(FieldType))
	if err != nil {
		diags.Fail(rec.Location, entities.CodeNotImplemented, name, fmt.Errorf("option %s: %w", name, err))
		ok = false
	}
	opt.Type = typ

	decl, err := values.NewDecl(rec.Value(FieldDecl))
	if err != nil {
		diags.Fail(rec.Location, entities.CodeNotImplemented, name, fmt.Errorf("option %s: %w", name, err))
		ok = false
	}
	opt.Decl = decl

	for _, tf := range []struct {
		key  string
		dest *values.Template
	}{
		{FieldHeader, &opt.Header},
		{FieldSource, &opt.Source},
		{FieldTestAssign, &opt.TestAssign},
	} {
		src := rec.Value(tf.key)
		if src == "" {
			continue
		}
		tmpl, err := values.NewTemplate(src)
		if err != nil {
			diags.Fail(rec.Location, entities.CodeUnknownPlaceholder, name,
				fmt.Errorf("option %s column %s: %w", name, tf.key, err))
			ok = false
			continue
		}
		*tf.dest = tmpl
	}

	for _, f := range rec.Fields {
		if !optionFields[f.Key] {
			b.warnUnknown(rec.Location, f.Key, "option", diags)
		}
	}

	return opt, ok
}

// BuildProfiles validates profile records against the option table. Profiles
// with invalid fields are still returned so BASED_ON chains can be checked;
// the diagnostics decide whether the run may continue.
func (b *TableBuilder) BuildProfiles(
	records []entities.RawRecord,
	options *entities.OptionTable,
	diags *entities.Diagnostics,
) []*entities.RawProfile {
	if len(records) == 0 {
		diags.Fail(entities.Location{}, entities.CodeNoProfiles, "", entities.ErrNoProfiles)
		return nil
	}

	profiles := make([]*entities.RawProfile, 0, len(records))
	for _, rec := range records {
		if p, ok := b.buildProfile(rec, options, diags); ok {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

func (b *TableBuilder) buildProfile(
	rec entities.RawRecord,
	options *entities.OptionTable,
	diags *entities.Diagnostics,
) (*entities.RawProfile, bool) {
	id := rec.Value(FieldCharID)
	if id == "" {
		diags.Fail(rec.Location, entities.CodeMissingField, "",
			fmt.Errorf("%w: characterization record has no %s", entities.ErrMissingField, FieldCharID))
		return nil, false
	}
	if !values.IsIdentifier(id) {
		diags.Fail(rec.Location, entities.CodeInvalidIdentifier, id,
			fmt.Errorf("%w: CHAR_ID %q is not a C identifier", entities.ErrInvalidIdentifier, id))
		return nil, false
	}
	if reservedMacros[id] {
		diags.Fail(rec.Location, entities.CodeInvalidIdentifier, id,
			fmt.Errorf("%w: CHAR_ID %q is reserved", entities.ErrInvalidIdentifier, id))
		return nil, false
	}
	if _, clash := options.Get(id); clash {
		diags.Fail(rec.Location, entities.CodeInvalidIdentifier, id,
			fmt.Errorf("%w: CHAR_ID %q is also an option name", entities.ErrInvalidIdentifier, id))
		return nil, false
	}

	p := &entities.RawProfile{ID: id, Location: rec.Location}

	for _, f := range rec.Fields {
		switch {
		case f.Key == FieldCharID:
		case f.Key == FieldBrief:
			if f.Explicit {
				p.Fields.Brief = stringPtr(strings.TrimSpace(f.Value))
			}
		case f.Key == FieldDescription:
			if f.Explicit {
				p.Fields.Description = stringPtr(strings.TrimSpace(f.Value))
			}
		case f.Key == FieldBasedOn:
			p.BasedOn = append(p.BasedOn, splitBasedOn(f)...)
		case f.Key == FieldTesting:
			if !f.Explicit || strings.TrimSpace(f.Value) == "" {
				continue
			}
			testing, err := ParseTesting(f.Value)
			if err != nil {
				diags.Fail(rec.Location, entities.CodeInvalidField, id, fmt.Errorf("characterization %s: %w", id, err))
				continue
			}
			p.Fields.Testing = &testing
		default:
			b.addOverride(rec.Location, p, f, options, diags)
		}
	}

	return p, true
}

func (b *TableBuilder) addOverride(
	loc entities.Location,
	p *entities.RawProfile,
	f entities.Field,
	options *entities.OptionTable,
	diags *entities.Diagnostics,
) {
	opt, known := options.Get(f.Key)
	if !known {
		b.warnUnknown(loc, f.Key, "characterization", diags)
		return
	}
	if !f.Explicit {
		return
	}

	value := strings.TrimSpace(f.Value)
	if value != "" && !opt.Type.Overridable() {
		diags.Fail(loc, entities.CodeValueOverride, p.ID,
			fmt.Errorf("characterization %s sets %s: %w", p.ID, opt.Name, entities.ErrValueOverride))
		return
	}
	// An empty value is no override: the inherited or default value stays.
	if value == "" {
		return
	}
	p.Fields.Overrides = append(p.Fields.Overrides, entities.Override{Option: opt.Name, Value: value})
}

// warnUnknown reports an unrecognized field once per source and key.
func (b *TableBuilder) warnUnknown(loc entities.Location, key, kind string, diags *entities.Diagnostics) {
	k := loc.Source + "\x00" + kind + "\x00" + key
	if b.warned[k] {
		return
	}
	b.warned[k] = true
	diags.Warn(loc, entities.CodeUnknownField, key, "unknown %s field %q ignored", kind, key)
}

// ParseTesting parses a TESTING cell: an integer (non-zero is true) or a
// boolean literal.
func ParseTesting(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0, nil
	}
	if v, err := strconv.ParseBool(strings.ToLower(s)); err == nil {
		return v, nil
	}
	return false, fmt.Errorf("%w: %s = %q (expected 0, 1, true or false)", entities.ErrInvalidField, FieldTesting, s)
}

func splitBasedOn(f entities.Field) []string {
	if f.IsList {
		out := make([]string, 0, len(f.Items))
		for _, item := range f.Items {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}
	return strings.FieldsFunc(f.Value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func stringPtr(s string) *string {
	return &s
}
