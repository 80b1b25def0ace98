package services

import (
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// ProfileMerger merges characterization profile field sets according to
// BASED_ON inheritance semantics.
// This is a DOMAIN SERVICE because merge semantics are business rules.
//
// Merge Semantics:
//   - BRIEF, DESCRIPTION, TESTING: overlay wins when specified, else base is kept
//   - Overrides: merge by option name (same name = replace in place, new name = append)
//   - BASED_ON: NOT propagated (already resolved)
type ProfileMerger struct{}

// NewProfileMerger creates a new profile merger service.
func NewProfileMerger() *ProfileMerger {
	return &ProfileMerger{}
}

// MergeAll merges multiple parents then applies the current profile.
// Parents are merged left-to-right (later parents win on conflict).
// Returns a NEW field set (does not mutate inputs).
func (m *ProfileMerger) MergeAll(
	parents []entities.ProfileFields,
	current entities.ProfileFields,
) entities.ProfileFields {
	if len(parents) == 0 {
		return CopyProfileFields(current)
	}

	// Merge parents left-to-right
	result := CopyProfileFields(parents[0])
	for _, parent := range parents[1:] {
		result = m.mergeTwo(result, parent)
	}

	// Apply current profile (highest priority)
	return m.mergeTwo(result, current)
}

// Merge combines two field sets with overlay winning on conflicts.
// Returns a NEW field set (does not mutate inputs).
func (m *ProfileMerger) Merge(base, overlay entities.ProfileFields) entities.ProfileFields {
	return m.mergeTwo(CopyProfileFields(base), overlay)
}

// mergeTwo merges overlay onto base. base must already be a private copy.
func (m *ProfileMerger) mergeTwo(base, overlay entities.ProfileFields) entities.ProfileFields {
	merged := base

	if overlay.Brief != nil {
		merged.Brief = copyStringPtr(overlay.Brief)
	}
	if overlay.Description != nil {
		merged.Description = copyStringPtr(overlay.Description)
	}
	if overlay.Testing != nil {
		merged.Testing = copyBoolPtr(overlay.Testing)
	}

	merged.Overrides = m.mergeOverrides(base.Overrides, overlay.Overrides)

	return merged
}

// mergeOverrides merges overrides by option name.
// Order is preserved: base overrides first, then new overlay overrides.
func (m *ProfileMerger) mergeOverrides(base, overlay []entities.Override) []entities.Override {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}

	result := make([]entities.Override, 0, len(base)+len(overlay))
	index := make(map[string]int, len(base)+len(overlay))

	for _, o := range base {
		if i, seen := index[o.Option]; seen {
			result[i] = o
			continue
		}
		index[o.Option] = len(result)
		result = append(result, o)
	}

	for _, o := range overlay {
		if i, seen := index[o.Option]; seen {
			result[i] = o // Overlay wins on conflict
			continue
		}
		index[o.Option] = len(result)
		result = append(result, o)
	}

	return result
}
