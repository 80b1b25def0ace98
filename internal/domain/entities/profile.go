// Package entities contains domain entities for the togglegen domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import "fmt"

// Override is one option value set by a characterization profile.
type Override struct {
	Option string
	Value  string
}

// ProfileFields is the mergeable part of a profile. Nil pointers mean "not
// specified here" so that inheritance can tell explicit values from absent ones.
type ProfileFields struct {
	Brief       *string
	Description *string
	Testing     *bool
	Overrides   []Override
}

// Override returns the override for an option, if this field set has one.
func (f ProfileFields) Override(option string) (string, bool) {
	for _, o := range f.Overrides {
		if o.Option == option {
			return o.Value, true
		}
	}
	return "", false
}

// RawProfile is a characterization profile as declared, before BASED_ON is resolved.
type RawProfile struct {
	ID       string
	BasedOn  []string
	Fields   ProfileFields
	Location Location
}

// CharacterizationProfile is a fully resolved, immutable build target.
//
// Entity Identity: ID uniquely identifies each profile; Number is its
// 1-based CHAR_ID value, assigned by declaration order.
type CharacterizationProfile struct {
	id          string
	number      int
	brief       string
	description string
	testing     bool
	basedOn     []string
	overrides   []Override
	index       map[string]int
	location    Location
}

// NewCharacterizationProfile builds a resolved profile from merged fields.
func NewCharacterizationProfile(raw *RawProfile, number int, merged ProfileFields) *CharacterizationProfile {
	p := &CharacterizationProfile{
		id:        raw.ID,
		number:    number,
		basedOn:   append([]string(nil), raw.BasedOn...),
		overrides: make([]Override, 0, len(merged.Overrides)),
		index:     make(map[string]int, len(merged.Overrides)),
		location:  raw.Location,
	}
	if merged.Brief != nil {
		p.brief = *merged.Brief
	}
	if merged.Description != nil {
		p.description = *merged.Description
	}
	if merged.Testing != nil {
		p.testing = *merged.Testing
	}
	for _, o := range merged.Overrides {
		if i, ok := p.index[o.Option]; ok {
			p.overrides[i] = o
			continue
		}
		p.index[o.Option] = len(p.overrides)
		p.overrides = append(p.overrides, o)
	}
	return p
}

// ID returns the profile identifier (the CHAR_ID macro name).
func (p *CharacterizationProfile) ID() string { return p.id }

// Number returns the 1-based CHAR_ID value.
func (p *CharacterizationProfile) Number() int { return p.number }

// Brief returns the one-line documentation.
func (p *CharacterizationProfile) Brief() string { return p.brief }

// Description returns the long documentation.
func (p *CharacterizationProfile) Description() string { return p.description }

// Testing reports whether test-reset generation is enabled.
func (p *CharacterizationProfile) Testing() bool { return p.testing }

// BasedOn returns the declared parents.
func (p *CharacterizationProfile) BasedOn() []string {
	return append([]string(nil), p.basedOn...)
}

// Location returns where the profile was declared.
func (p *CharacterizationProfile) Location() Location { return p.location }

// Override returns the value a profile sets for an option, if any.
func (p *CharacterizationProfile) Override(option string) (string, bool) {
	i, ok := p.index[option]
	if !ok {
		return "", false
	}
	return p.overrides[i].Value, true
}

// Overrides returns the merged overrides, inherited ones first.
func (p *CharacterizationProfile) Overrides() []Override {
	return append([]Override(nil), p.overrides...)
}

// OverrideMap returns the overrides as a map (for tests and reporting).
func (p *CharacterizationProfile) OverrideMap() map[string]string {
	m := make(map[string]string, len(p.overrides))
	for _, o := range p.overrides {
		m[o.Option] = o.Value
	}
	return m
}

// CharacterizationTable is the ordered, read-only set of resolved profiles.
type CharacterizationTable struct {
	profiles []*CharacterizationProfile
	byID     map[string]*CharacterizationProfile
}

// NewCharacterizationTable builds a table in declaration order.
func NewCharacterizationTable(profiles []*CharacterizationProfile) (*CharacterizationTable, error) {
	t := &CharacterizationTable{
		profiles: make([]*CharacterizationProfile, 0, len(profiles)),
		byID:     make(map[string]*CharacterizationProfile, len(profiles)),
	}
	for _, p := range profiles {
		if _, exists := t.byID[p.ID()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProfile, p.ID())
		}
		t.byID[p.ID()] = p
		t.profiles = append(t.profiles, p)
	}
	return t, nil
}

// Get retrieves a profile by id.
func (t *CharacterizationTable) Get(id string) (*CharacterizationProfile, bool) {
	p, ok := t.byID[id]
	return p, ok
}

// All returns the profiles in CHAR_ID order.
func (t *CharacterizationTable) All() []*CharacterizationProfile {
	out := make([]*CharacterizationProfile, len(t.profiles))
	copy(out, t.profiles)
	return out
}

// Len returns the number of profiles (NUM_CHAR_IDS).
func (t *CharacterizationTable) Len() int {
	return len(t.profiles)
}
