package services

import (
	"fmt"
	"maps"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// ProfileEnv defines the variables available to a --select expression.
type ProfileEnv struct {
	ID          string            `expr:"id"`
	Number      int               `expr:"number"`
	Testing     bool              `expr:"testing"`
	Brief       string            `expr:"brief"`
	Description string            `expr:"description"`
	BasedOn     []string          `expr:"based_on"`
	Overrides   map[string]string `expr:"overrides"`
}

// NewProfileEnv exposes a resolved profile to expressions.
func NewProfileEnv(p *entities.CharacterizationProfile) ProfileEnv {
	return ProfileEnv{
		ID:          p.ID(),
		Number:      p.Number(),
		Testing:     p.Testing(),
		Brief:       p.Brief(),
		Description: p.Description(),
		BasedOn:     p.BasedOn(),
		Overrides:   p.OverrideMap(),
	}
}

// CompileSelectExpression compiles a --select expression. The expression must
// evaluate to a boolean over ProfileEnv.
func CompileSelectExpression(source string) (*vm.Program, error) {
	program, err := expr.Compile(source, expr.Env(ProfileEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid select expression %q: %w", source, err)
	}
	return program, nil
}

// ProfileSelector decides which profiles get per-profile artifacts.
// The master header and source always enumerate every profile.
type ProfileSelector struct {
	// Exclusive mode: only include specified profiles
	exclusiveIDs map[string]bool

	testingOnly *bool

	// Advanced filtering
	selectProgram *vm.Program
}

// NewProfileSelector initializes a selector that accepts every profile.
func NewProfileSelector() *ProfileSelector {
	return &ProfileSelector{
		exclusiveIDs: make(map[string]bool),
	}
}

// WithExclusiveProfiles restricts selection to ONLY the specified CHAR_IDs.
// If set, all other filters are ignored.
func (s *ProfileSelector) WithExclusiveProfiles(ids []string) *ProfileSelector {
	s.exclusiveIDs = toSet(ids)
	return s
}

// WithTesting keeps only profiles whose TESTING flag equals testing.
func (s *ProfileSelector) WithTesting(testing bool) *ProfileSelector {
	s.testingOnly = &testing
	return s
}

// WithSelectExpression applies a compiled expr program.
func (s *ProfileSelector) WithSelectExpression(program *vm.Program) *ProfileSelector {
	s.selectProgram = program
	return s
}

// Matches evaluates whether a profile is selected, with a reason if not.
func (s *ProfileSelector) Matches(p *entities.CharacterizationProfile) (bool, string) {
	if len(s.exclusiveIDs) > 0 {
		return NewExclusiveProfilesSpecification(s.exclusiveIDs).IsSatisfiedBy(p)
	}

	var specs []ProfileSpecification
	if s.testingOnly != nil {
		specs = append(specs, NewTestingSpecification(*s.testingOnly))
	}
	if s.selectProgram != nil {
		specs = append(specs, NewExpressionSpecification(s.selectProgram))
	}

	return NewAndSpecification(specs...).IsSatisfiedBy(p)
}

// Select returns the matching profiles in CHAR_ID order, and the ids of
// exclusive profiles that do not exist.
func (s *ProfileSelector) Select(table *entities.CharacterizationTable) ([]*entities.CharacterizationProfile, []string) {
	var missing []string
	for _, id := range slices.Sorted(maps.Keys(s.exclusiveIDs)) {
		if _, ok := table.Get(id); !ok {
			missing = append(missing, id)
		}
	}

	var out []*entities.CharacterizationProfile
	for _, p := range table.All() {
		if ok, _ := s.Matches(p); ok {
			out = append(out, p)
		}
	}
	return out, missing
}

// toSet converts a slice to a map (set)
func toSet(slice []string) map[string]bool {
	s := make(map[string]bool, len(slice))
	for _, item := range slice {
		s[item] = true
	}
	return s
}
