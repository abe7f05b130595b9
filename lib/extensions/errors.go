package extensions

import "errors"

// Sentinel errors returned by Resolve. Both indicate configuration mistakes
// that must be fixed by the caller; there is no retry path.
var (
	// ErrInvalidConfiguration means required extension properties are missing
	// or malformed.
	ErrInvalidConfiguration = errors.New("invalid extension configuration")
	// ErrUnsupportedEventTypeCombination means IncludeBody was requested for a
	// response-stage event type.
	ErrUnsupportedEventTypeCombination = errors.New("unsupported event type combination")
)
