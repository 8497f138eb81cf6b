package universe

import "errors"

// Option validation errors
var (
	ErrInvalidDimension = errors.New("universe: width and height must be positive")
	ErrInvalidInterval  = errors.New("universe: interval must not be negative")
	ErrInvalidMaxSteps  = errors.New("universe: max steps must not be negative")
	ErrUnknownTemplate  = errors.New("universe: unknown template")
)
