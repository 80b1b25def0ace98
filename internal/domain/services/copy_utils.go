// Package services contains domain services for the togglegen domain model.
// These are stateless services that encapsulate business logic.
package services

import (
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// ===== DEEP COPY UTILITIES =====
//
// These functions provide deep copying of profile field sets.
// They ensure immutability by creating independent copies that don't share references.
// Used by ProfileMerger and ProfileResolver.

// CopyProfileFields creates a complete deep copy of a profile field set.
func CopyProfileFields(original entities.ProfileFields) entities.ProfileFields {
	return entities.ProfileFields{
		Brief:       copyStringPtr(original.Brief),
		Description: copyStringPtr(original.Description),
		Testing:     copyBoolPtr(original.Testing),
		Overrides:   CopyOverrides(original.Overrides),
	}
}

// CopyOverrides creates a copy of an override slice.
func CopyOverrides(src []entities.Override) []entities.Override {
	if src == nil {
		return nil
	}
	dst := make([]entities.Override, len(src))
	copy(dst, src)
	return dst
}

func copyStringPtr(src *string) *string {
	if src == nil {
		return nil
	}
	v := *src
	return &v
}

func copyBoolPtr(src *bool) *bool {
	if src == nil {
		return nil
	}
	v := *src
	return &v
}
