package mixer

import "errors"

// Sentinel errors returned by the mixer core. Handlers match them with
// errors.Is to pick an HTTP status; everything user-caused maps to 400.
var (
	// ErrUnsupportedColor indicates a well-formed color spec that is not in
	// the recognized enumeration (e.g. "green" or "#FF0000").
	ErrUnsupportedColor = errors.New("color not supported")

	// ErrInvalidColorFormat indicates a malformed color spec or request
	// field (e.g. empty string, "#FFF", non-hex digits, quantity <= 0).
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrMaxColorsReached indicates that an add would exceed the mixer's
	// capacity. The operation fails as a whole; no colors are added.
	ErrMaxColorsReached = errors.New("maximum number of colors reached")

	// ErrNoColors indicates that a mix was requested on an empty mixer.
	ErrNoColors = errors.New("no colors in mixer")

	// ErrInternal indicates an unexpected internal failure. User input can
	// never produce it.
	ErrInternal = errors.New("internal error")
)
