package services

import (
	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/values"
)

// Classification says what kind of C symbol an option becomes in a profile.
// It is the StorageKind x Mutability tag consumed by the Emitter.
type Classification struct {
	Kind    values.StorageKind
	CType   values.CType // zero for MACRO and CUSTOM
	Mutable bool
}

// Const returns the @CONST@ expansion: empty for mutable symbols.
func (c Classification) Const() string {
	if c.Mutable {
		return ""
	}
	return "const"
}

// Classifier decides storage class and mutability.
//
// Decision table (testing = profile.TESTING, overridable = TYPE is OPTION):
//
//	MACRO      -> MACRO,  never mutable (no type to declare a variable with)
//	CUSTOM     -> CUSTOM, never mutable
//	MACRO_<T>  -> MACRO,  mutable when testing && overridable
//	CONST_<T>  -> CONST,  mutable when testing && overridable
//	VAR_<T>    -> VAR,    mutable when testing && overridable
type Classifier struct{}

// NewClassifier creates a new classifier service.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify classifies an option for a profile (nil profile: not testing).
func (c *Classifier) Classify(opt *entities.OptionDefinition, profile entities.ProfileReader) (Classification, error) {
	if opt.Decl.IsZero() {
		return Classification{}, &values.NotImplementedError{Field: "DECL", Value: opt.Decl.String()}
	}
	if opt.Type != values.OptionTypeValue && opt.Type != values.OptionTypeOption {
		return Classification{}, &values.NotImplementedError{
			Field: "TYPE",
			Value: opt.Type.String(),
			Valid: []string{values.OptionTypeValue.String(), values.OptionTypeOption.String()},
		}
	}

	kind := opt.Decl.Kind()
	ct, typed := opt.Decl.CType()

	if kind == values.StorageCustom || !typed {
		return Classification{Kind: kind}, nil
	}

	testing := profile != nil && profile.Testing()

	return Classification{
		Kind:    kind,
		CType:   ct,
		Mutable: testing && opt.Type.Overridable(),
	}, nil
}
