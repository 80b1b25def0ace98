package entities

// ProfileReader provides read-only access to the profile data the code
// emitter needs. This interface enforces immutability and prevents
// accidental mutations.
//
// *CharacterizationProfile implements it; a nil ProfileReader stands for
// "no profile" (master header documentation renders defaults).
type ProfileReader interface {
	ID() string
	Testing() bool
	Override(option string) (string, bool)
}

var _ ProfileReader = (*CharacterizationProfile)(nil)
