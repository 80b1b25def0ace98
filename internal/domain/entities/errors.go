package entities

import "errors"

// Configuration authoring errors. All of them are fatal for a run.
var (
	ErrDuplicateOption   = errors.New("duplicate option name")
	ErrDuplicateProfile  = errors.New("duplicate characterization id")
	ErrValueOverride     = errors.New("option declared with TYPE = VALUE cannot be overridden")
	ErrUnresolvedBase    = errors.New("unresolved BASED_ON reference")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidField      = errors.New("invalid field value")
	ErrNoProfiles        = errors.New("no characterization profiles defined")
	ErrGeneratorVersion  = errors.New("generator version constraint not satisfied")
)
