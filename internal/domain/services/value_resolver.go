package services

import (
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// ResolveValue returns the effective value of an option for a profile:
// the profile override when present and non-empty, else the option default.
// A nil profile yields the default.
func ResolveValue(opt *entities.OptionDefinition, profile entities.ProfileReader) string {
	if profile != nil {
		if v, ok := profile.Override(opt.Name); ok && v != "" {
			return v
		}
	}
	return opt.Default
}
