package localcontact

import "errors"

var (
	// ErrConfigParse is returned when the contacts setting is not valid JSON
	ErrConfigParse = errors.New("local site contacts: invalid JSON")
	// ErrConfigShape is returned when the contacts setting is valid JSON but
	// not an array of locale/username objects
	ErrConfigShape = errors.New("local site contacts: not an array of contact objects")
)

// IsInvalidConfig reports whether err is either configuration failure
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrConfigParse) || errors.Is(err, ErrConfigShape)
}
