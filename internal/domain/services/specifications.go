package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// ProfileSpecification defines a condition that a profile must meet.
type ProfileSpecification interface {
	// IsSatisfiedBy checks if the profile meets the specification.
	// Returns true if satisfied, along with a reason if not (or empty if satisfied).
	IsSatisfiedBy(p *entities.CharacterizationProfile) (bool, string)
}

// AndSpecification combines multiple specifications with logical AND.
type AndSpecification struct {
	specs []ProfileSpecification
}

// NewAndSpecification creates a new AndSpecification.
func NewAndSpecification(specs ...ProfileSpecification) *AndSpecification {
	return &AndSpecification{specs: specs}
}

// IsSatisfiedBy checks if all specifications are satisfied.
func (s *AndSpecification) IsSatisfiedBy(p *entities.CharacterizationProfile) (bool, string) {
	for _, spec := range s.specs {
		if satisfied, reason := spec.IsSatisfiedBy(p); !satisfied {
			return false, reason
		}
	}
	return true, ""
}

// ExclusiveProfilesSpecification includes only the named CHAR_IDs.
type ExclusiveProfilesSpecification struct {
	ids map[string]bool
}

// NewExclusiveProfilesSpecification creates a new ExclusiveProfilesSpecification.
func NewExclusiveProfilesSpecification(ids map[string]bool) *ExclusiveProfilesSpecification {
	return &ExclusiveProfilesSpecification{ids: ids}
}

// IsSatisfiedBy checks if the profile id is in the exclusive list.
func (s *ExclusiveProfilesSpecification) IsSatisfiedBy(p *entities.CharacterizationProfile) (bool, string) {
	if len(s.ids) == 0 {
		return true, "" // Not active
	}
	if s.ids[p.ID()] {
		return true, ""
	}
	return false, "excluded by --char-id"
}

// TestingSpecification includes only testing (or only non-testing) profiles.
type TestingSpecification struct {
	testing bool
}

// NewTestingSpecification creates a new TestingSpecification.
func NewTestingSpecification(testing bool) *TestingSpecification {
	return &TestingSpecification{testing: testing}
}

// IsSatisfiedBy checks the profile's TESTING flag.
func (s *TestingSpecification) IsSatisfiedBy(p *entities.CharacterizationProfile) (bool, string) {
	if p.Testing() != s.testing {
		return false, fmt.Sprintf("excluded by --testing=%t", s.testing)
	}
	return true, ""
}

// ExpressionSpecification filters profiles using an expr program.
type ExpressionSpecification struct {
	program *vm.Program
}

// NewExpressionSpecification creates a new ExpressionSpecification.
func NewExpressionSpecification(program *vm.Program) *ExpressionSpecification {
	return &ExpressionSpecification{program: program}
}

// IsSatisfiedBy evaluates the expr program against the profile.
func (s *ExpressionSpecification) IsSatisfiedBy(p *entities.CharacterizationProfile) (bool, string) {
	if s.program == nil {
		return true, ""
	}

	output, err := expr.Run(s.program, NewProfileEnv(p))
	if err != nil {
		return false, fmt.Sprintf("select expression error: %v", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Sprintf("select expression did not return boolean: %v", output)
	}

	if !result {
		return false, "excluded by --select expression"
	}

	return true, ""
}
