package renderer

import "errors"

// Errors returned while rendering and saving frames
var (
	ErrUnsupportedFormat = errors.New("renderer: unsupported image format")
	ErrUnknownToneMap    = errors.New("renderer: unknown tone map")
	ErrEmptyFrame        = errors.New("renderer: frame has no pixels")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
)
