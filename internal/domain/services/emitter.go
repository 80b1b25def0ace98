package services

import (
	"fmt"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/values"
)

// OptionRendering is everything generated for one option in one profile.
type OptionRendering struct {
	Option         *entities.OptionDefinition
	Classification Classification
	Value          string
	Decl           string
	Def            string
	Assign         string
}

// ProfileRendering is the per-option output for one profile plus the body of
// its test-reset function (empty unless the profile is a testing profile).
type ProfileRendering struct {
	Options []OptionRendering
	Reset   []string
}

// Emitter renders header declarations, source definitions and test-reset
// assignments. It never mutates its inputs; output is a pure function of
// (option, profile, mode).
type Emitter struct {
	classifier *Classifier
}

// NewEmitter creates a new emitter service.
func NewEmitter() *Emitter {
	return &Emitter{
		classifier: NewClassifier(),
	}
}

// Classifier returns the classifier the emitter decides with.
func (e *Emitter) Classifier() *Classifier {
	return e.classifier
}

// Emit renders one option for one profile in the given mode.
func (e *Emitter) Emit(
	opt *entities.OptionDefinition,
	profile entities.ProfileReader,
	mode values.RenderMode,
) (string, error) {
	cls, err := e.classifier.Classify(opt, profile)
	if err != nil {
		return "", fmt.Errorf("option %s: %w", opt.Name, err)
	}
	return e.render(opt, profile, cls, mode)
}

// Render renders every option of the table for a profile, in declaration order.
func (e *Emitter) Render(options *entities.OptionTable, profile entities.ProfileReader) (*ProfileRendering, error) {
	out := &ProfileRendering{
		Options: make([]OptionRendering, 0, options.Len()),
	}
	testing := profile != nil && profile.Testing()

	for _, opt := range options.All() {
		cls, err := e.classifier.Classify(opt, profile)
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", opt.Name, err)
		}

		r := OptionRendering{
			Option:         opt,
			Classification: cls,
			Value:          ResolveValue(opt, profile),
		}
		if r.Decl, err = e.render(opt, profile, cls, values.ModeDecl); err != nil {
			return nil, err
		}
		if r.Def, err = e.render(opt, profile, cls, values.ModeDef); err != nil {
			return nil, err
		}
		if r.Assign, err = e.render(opt, profile, cls, values.ModeAssign); err != nil {
			return nil, err
		}

		if testing && r.Assign != "" {
			out.Reset = append(out.Reset, r.Assign)
		}
		out.Options = append(out.Options, r)
	}

	return out, nil
}

// ResetAssignments returns the statements of a profile's test-reset function,
// one per mutable option in declaration order. Non-testing profiles get none.
func (e *Emitter) ResetAssignments(options *entities.OptionTable, profile entities.ProfileReader) ([]string, error) {
	if profile == nil || !profile.Testing() {
		return nil, nil
	}
	r, err := e.Render(options, profile)
	if err != nil {
		return nil, err
	}
	return r.Reset, nil
}

func (e *Emitter) render(
	opt *entities.OptionDefinition,
	profile entities.ProfileReader,
	cls Classification,
	mode values.RenderMode,
) (string, error) {
	tmpl, err := e.templateFor(opt, cls, mode)
	if err != nil {
		return "", fmt.Errorf("option %s (%s): %w", opt.Name, mode, err)
	}
	if tmpl.IsZero() {
		return "", nil
	}

	return tmpl.Render(values.Bindings{
		Name:  opt.Name,
		Value: ResolveValue(opt, profile),
		Const: cls.Const(),
	}), nil
}

// templateFor picks the option's custom template for the mode, or the
// generated shape for its classification.
func (e *Emitter) templateFor(
	opt *entities.OptionDefinition,
	cls Classification,
	mode values.RenderMode,
) (values.Template, error) {
	// Only mutable symbols are ever reset.
	if mode == values.ModeAssign && !cls.Mutable {
		return values.Template{}, nil
	}

	if custom := opt.TemplateFor(mode); !custom.IsZero() {
		return custom, nil
	}
	if cls.Kind == values.StorageCustom {
		return values.Template{}, nil
	}

	src := generatedShape(cls, mode)
	if src == "" {
		return values.Template{}, nil
	}
	return values.NewTemplate(src)
}

// generatedShape returns the template text for a classification and mode.
func generatedShape(cls Classification, mode values.RenderMode) string {
	if cls.Kind == values.StorageMacro && !cls.Mutable {
		if mode == values.ModeDecl {
			return "#define @NAME@ @VALUE@"
		}
		return ""
	}

	declarator := cls.CType.Declarator("@NAME@")

	switch mode {
	case values.ModeDecl:
		if cls.Kind == values.StorageConst {
			return "extern @CONST@ " + declarator + ";"
		}
		return "extern " + declarator + ";"
	case values.ModeDef:
		if cls.Kind == values.StorageConst {
			return "@CONST@ " + declarator + " = @VALUE@;"
		}
		return declarator + " = @VALUE@;"
	case values.ModeAssign:
		if cls.CType.IsArray() {
			// Keep the fixed-length storage: copy the initializer element-wise.
			return "memcpy(@NAME@, @VALUE@, sizeof(@NAME@));"
		}
		return "@NAME@ = @VALUE@;"
	default:
		return ""
	}
}
