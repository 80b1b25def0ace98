package services

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// ResolveError reports a profile that could not be resolved.
type ResolveError struct {
	Err      error
	Profile  string
	Code     string
	Location entities.Location
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("characterization %s: %v", e.Profile, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// ProfileResolver transforms raw profiles into resolved, immutable
// characterization profiles, in declaration order.
//
// Resolution steps for each profile:
// 1. Reject a duplicate id, or one that differs only in case (file names
//    are the lowercased id)
// 2. Look up every BASED_ON parent among the profiles resolved so far
// 3. Merge parents left-to-right, then the profile's own fields
// 4. Number the profile (CHAR_ID) by its position
//
// A parent must be declared before its child. The single pass therefore
// rejects forward references and cycles without a separate graph walk.
type ProfileResolver struct {
	merger *ProfileMerger
}

// NewProfileResolver creates a new profile resolver service.
func NewProfileResolver() *ProfileResolver {
	return &ProfileResolver{
		merger: NewProfileMerger(),
	}
}

// Resolve resolves every raw profile. The input is NOT modified.
func (r *ProfileResolver) Resolve(raws []*entities.RawProfile) (*entities.CharacterizationTable, error) {
	declared := make(map[string]int, len(raws))
	for i, raw := range raws {
		if _, seen := declared[raw.ID]; !seen {
			declared[raw.ID] = i
		}
	}

	resolved := make(map[string]entities.ProfileFields, len(raws))
	fileNames := make(map[string]string, len(raws))
	profiles := make([]*entities.CharacterizationProfile, 0, len(raws))

	for i, raw := range raws {
		if _, dup := resolved[raw.ID]; dup {
			return nil, &ResolveError{
				Err:      fmt.Errorf("%w: %s", entities.ErrDuplicateProfile, raw.ID),
				Profile:  raw.ID,
				Code:     entities.CodeDuplicateProfile,
				Location: raw.Location,
			}
		}
		if other, clash := fileNames[strings.ToLower(raw.ID)]; clash {
			return nil, &ResolveError{
				Err: fmt.Errorf("%w: %s and %s differ only in case and would share generated file names",
					entities.ErrDuplicateProfile, other, raw.ID),
				Profile:  raw.ID,
				Code:     entities.CodeDuplicateProfile,
				Location: raw.Location,
			}
		}
		fileNames[strings.ToLower(raw.ID)] = raw.ID

		parents := make([]entities.ProfileFields, 0, len(raw.BasedOn))
		for _, base := range raw.BasedOn {
			fields, ok := resolved[base]
			if !ok {
				return nil, &ResolveError{
					Err:      fmt.Errorf("%w: %q %s", entities.ErrUnresolvedBase, base, r.unresolvedReason(raw.ID, base, i, declared)),
					Profile:  raw.ID,
					Code:     entities.CodeUnresolvedBase,
					Location: raw.Location,
				}
			}
			parents = append(parents, fields)
		}

		merged := r.merger.MergeAll(parents, raw.Fields)
		resolved[raw.ID] = merged
		profiles = append(profiles, entities.NewCharacterizationProfile(raw, len(profiles)+1, merged))
	}

	return entities.NewCharacterizationTable(profiles)
}

func (r *ProfileResolver) unresolvedReason(id, base string, pos int, declared map[string]int) string {
	switch at, ok := declared[base]; {
	case base == id:
		return "is the profile itself"
	case ok && at > pos:
		return "is declared after it; parents must come first"
	default:
		return "is not defined"
	}
}
